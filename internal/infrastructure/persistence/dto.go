package persistence

import (
	"encoding/json"
	"time"

	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/value"
)

// calculationSchema внутренняя структура для маппинга строки calculations.
type calculationSchema struct {
	ID                  string    `db:"id"`
	Cost                float64   `db:"cost"`
	ExchangeRate        float64   `db:"exchange_rate"`
	CommissionPercent   float64   `db:"commission_percent"`
	ShippingWeight      float64   `db:"shipping_weight"`
	ShippingMethod      string    `db:"shipping_method"`
	ShippingDestination string    `db:"shipping_destination"`
	Fees                []byte    `db:"fees"`
	ListingPrice        float64   `db:"listing_price"`
	FeePercent          float64   `db:"fee_percent"`
	FeeAmount           float64   `db:"fee_amount"`
	Profit              float64   `db:"profit"`
	ShippingCost        float64   `db:"shipping_cost"`
	TotalWithShipping   float64   `db:"total_with_shipping"`
	Iterations          int       `db:"iterations"`
	Approximate         bool      `db:"approximate"`
	CreatedAt           time.Time `db:"created_at"`
}

func fromCalculation(c entity.Calculation) (calculationSchema, error) {
	fees, err := json.Marshal(c.Input.Fees)
	if err != nil {
		return calculationSchema{}, err
	}

	return calculationSchema{
		ID:                  c.ID.String(),
		Cost:                c.Input.Cost,
		ExchangeRate:        c.Input.ExchangeRate,
		CommissionPercent:   c.Input.CommissionPercent,
		ShippingWeight:      c.Input.ShippingWeight,
		ShippingMethod:      c.Input.ShippingMethod.String(),
		ShippingDestination: c.Input.ShippingDestination.String(),
		Fees:                fees,
		ListingPrice:        c.Result.ListingPrice,
		FeePercent:          c.Result.FeePercent,
		FeeAmount:           c.Result.FeeAmount,
		Profit:              c.Result.Profit,
		ShippingCost:        c.Result.ShippingCost,
		TotalWithShipping:   c.Result.TotalWithShipping,
		Iterations:          c.Result.Iterations,
		Approximate:         c.Result.Approximate,
		CreatedAt:           c.CreatedAt,
	}, nil
}

func (s calculationSchema) toDomain() (entity.Calculation, error) {
	var fees entity.FeeSchedule
	if len(s.Fees) > 0 {
		if err := json.Unmarshal(s.Fees, &fees); err != nil {
			return entity.Calculation{}, err
		}
	}

	return entity.Calculation{
		ID: value.CalculationID(s.ID),
		Input: entity.CalculationInput{
			Cost:                s.Cost,
			ExchangeRate:        s.ExchangeRate,
			CommissionPercent:   s.CommissionPercent,
			ShippingWeight:      s.ShippingWeight,
			ShippingMethod:      value.ShippingMethod(s.ShippingMethod),
			ShippingDestination: value.ShippingDestination(s.ShippingDestination),
			Fees:                fees,
		},
		Result: entity.CalculationResult{
			ListingPrice:      s.ListingPrice,
			FeePercent:        s.FeePercent,
			FeeAmount:         s.FeeAmount,
			Profit:            s.Profit,
			ShippingCost:      s.ShippingCost,
			TotalWithShipping: s.TotalWithShipping,
			Iterations:        s.Iterations,
			Approximate:       s.Approximate,
		},
		CreatedAt: s.CreatedAt,
	}, nil
}
