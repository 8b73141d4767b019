package entity

import (
	"time"

	"ebay_pricer/internal/domain/value"
)

// FeeSchedule комиссии площадки. Ставка уровня выбирается по цене:
// цена <= TierThreshold -> LowTierPercent, иначе HighTierPercent.
type FeeSchedule struct {
	TierThreshold   float64 `json:"tier_threshold"`
	LowTierPercent  float64 `json:"low_tier_percent"`
	HighTierPercent float64 `json:"high_tier_percent"`
	PaypalPercent   float64 `json:"paypal_percent"`
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		TierThreshold:   5000,
		LowTierPercent:  15,
		HighTierPercent: 9,
		PaypalPercent:   1.3,
	}
}

// TierPercent ставка площадки для цены.
func (f FeeSchedule) TierPercent(price float64) float64 {
	if price <= f.TierThreshold {
		return f.LowTierPercent
	}
	return f.HighTierPercent
}

type CalculationInput struct {
	Cost                float64                   `json:"cost"`          // в домашней валюте
	ExchangeRate        float64                   `json:"exchange_rate"` // домашних единиц за единицу целевой валюты
	CommissionPercent   float64                   `json:"commission_percent"`
	ShippingWeight      float64                   `json:"shipping_weight"`
	ShippingMethod      value.ShippingMethod      `json:"shipping_method"`
	ShippingDestination value.ShippingDestination `json:"shipping_destination"`
	Fees                FeeSchedule               `json:"fees"`
}

type CalculationResult struct {
	ListingPrice      float64 `json:"listing_price"` // в целевой валюте
	FeePercent        float64 `json:"fee_percent"`
	FeeAmount         float64 `json:"fee_amount"`
	Profit            float64 `json:"profit"` // в домашней валюте
	ShippingCost      float64 `json:"shipping_cost"`
	TotalWithShipping float64 `json:"total_with_shipping"`
	Iterations        int     `json:"iterations"`
	Approximate       bool    `json:"approximate"` // итерации исчерпаны без сходимости
}

// Calculation сохранённый расчёт.
type Calculation struct {
	ID        value.CalculationID
	Input     CalculationInput
	Result    CalculationResult
	CreatedAt time.Time
}
