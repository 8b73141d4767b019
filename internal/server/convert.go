package server

import (
	"github.com/shopspring/decimal"

	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/service/calculation"
	"ebay_pricer/pkg/lox"
	"ebay_pricer/pkg/rest"
)

const moneyPlaces = 2

// money округляет половину вверх до копеек.
func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(moneyPlaces).InexactFloat64()
}

func newDomainRequest(request rest.QuoteRequest) calculation.Request {
	return calculation.Request{
		Cost:                request.Cost,
		ExchangeRate:        request.ExchangeRate,
		CommissionPercent:   request.CommissionPercent,
		ShippingWeight:      request.ShippingWeight,
		ShippingMethod:      request.ShippingMethod,
		ShippingDestination: request.ShippingDestination,
	}
}

func newRESTCalculation(calc entity.Calculation) rest.Calculation {
	in, res := calc.Input, calc.Result

	return rest.Calculation{
		ID: calc.ID.String(),
		Input: rest.CalculationInput{
			Cost:                in.Cost,
			ExchangeRate:        in.ExchangeRate,
			CommissionPercent:   in.CommissionPercent,
			ShippingWeight:      in.ShippingWeight,
			ShippingMethod:      in.ShippingMethod.String(),
			ShippingDestination: in.ShippingDestination.String(),
			Fees: rest.FeeSchedule{
				TierThreshold:   in.Fees.TierThreshold,
				LowTierPercent:  in.Fees.LowTierPercent,
				HighTierPercent: in.Fees.HighTierPercent,
				PaypalPercent:   in.Fees.PaypalPercent,
			},
		},
		Result: rest.CalculationResult{
			ListingPrice:      money(res.ListingPrice),
			FeePercent:        res.FeePercent,
			FeeAmount:         money(res.FeeAmount),
			Profit:            money(res.Profit),
			ShippingCost:      money(res.ShippingCost),
			TotalWithShipping: money(res.TotalWithShipping),
			Iterations:        res.Iterations,
			Approximate:       res.Approximate,
		},
		CreatedAt: calc.CreatedAt,
	}
}

func newRESTCalculations(calcs []entity.Calculation) []rest.Calculation {
	return lox.Map(calcs, newRESTCalculation)
}

func newRESTExchangeRate(rate entity.ExchangeRate) rest.ExchangeRate {
	return rest.ExchangeRate{
		Base:      rate.Base,
		Quote:     rate.Quote,
		Rate:      rate.Rate,
		UpdatedAt: rate.UpdatedAt,
	}
}
