// Package solver подбирает цену листинга, при которой после всех комиссий
// остаётся себестоимость плюс комиссия посредника.
package solver

import (
	"math"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/value"
	"ebay_pricer/pkg/errcodes"
)

const (
	MaxIterations = 100
	Tolerance     = 0.01

	extraWeightRate = 1.0
)

type shippingKey struct {
	method      value.ShippingMethod
	destination value.ShippingDestination
}

//nolint:gochecknoglobals
var shippingRates = map[shippingKey]float64{
	{value.ShippingStandard, value.DestinationDomestic}:      3.99,
	{value.ShippingStandard, value.DestinationInternational}: 9.99,
	{value.ShippingExpress, value.DestinationDomestic}:       7.99,
	{value.ShippingExpress, value.DestinationInternational}:  24.99,
}

// Solve решает цену итерацией неподвижной точки. Уровень комиссии на шаге
// берётся по цене предыдущего шага.
func Solve(in entity.CalculationInput) (entity.CalculationResult, error) {
	if err := validate(in); err != nil {
		return entity.CalculationResult{}, err
	}

	shipping, err := ShippingCost(in.ShippingWeight, in.ShippingMethod, in.ShippingDestination)
	if err != nil {
		return entity.CalculationResult{}, err
	}

	commission := in.CommissionPercent / 100
	gross := in.Cost * (1 + commission)

	var (
		price      float64
		iterations int
		converged  bool
	)

	for iterations < MaxIterations {
		iterations++
		previous := price

		fee := in.Fees.TierPercent(previous) / 100
		denominator := in.ExchangeRate * (1 - fee - in.Fees.PaypalPercent/100 - commission)
		if denominator <= 0 {
			return entity.CalculationResult{}, domain.Unprocessable(errcodes.Unsolvable,
				"fees sum to %.2f%% of the price", (fee+commission)*100+in.Fees.PaypalPercent)
		}

		price = gross / denominator

		if math.Abs(price-previous) < Tolerance {
			converged = true
			break
		}
	}

	feePercent := in.Fees.TierPercent(price)

	return entity.CalculationResult{
		ListingPrice:      price,
		FeePercent:        feePercent,
		FeeAmount:         price * feePercent / 100,
		Profit:            price*in.ExchangeRate - in.Cost,
		ShippingCost:      shipping,
		TotalWithShipping: price + shipping,
		Iterations:        iterations,
		Approximate:       !converged,
	}, nil
}

// ShippingCost ставка по таблице плюс доплата за каждую единицу веса сверх первой.
func ShippingCost(
	weight float64,
	method value.ShippingMethod,
	destination value.ShippingDestination,
) (float64, error) {
	if weight < 0 || math.IsNaN(weight) {
		return 0, domain.InvalidArgument(errcodes.InvalidInput, "shipping weight must not be negative")
	}

	base, ok := shippingRates[shippingKey{method, destination}]
	if !ok {
		return 0, domain.InvalidArgument(errcodes.InvalidInput,
			"no shipping rate for %q to %q", method, destination)
	}

	return base + math.Max(0, weight-1)*extraWeightRate, nil
}

// MinimumPrice минимальная цена, при которой маржа равна targetMarginPercent.
func MinimumPrice(totalCosts, targetMarginPercent float64) (float64, error) {
	if !(totalCosts > 0) {
		return 0, domain.InvalidArgument(errcodes.InvalidInput, "total costs must be positive")
	}

	if targetMarginPercent < 0 || math.IsNaN(targetMarginPercent) {
		return 0, domain.InvalidArgument(errcodes.InvalidInput, "target margin must not be negative")
	}

	if targetMarginPercent >= 100 {
		return 0, domain.Unprocessable(errcodes.Unsolvable, "target margin must be below 100%%")
	}

	return totalCosts / (1 - targetMarginPercent/100), nil
}

func validate(in entity.CalculationInput) error {
	// !(x > 0) отсекает и NaN.
	if !(in.Cost > 0) {
		return domain.InvalidArgument(errcodes.InvalidInput, "cost must be positive")
	}

	if !(in.ExchangeRate > 0) || math.IsInf(in.ExchangeRate, 0) {
		return domain.InvalidArgument(errcodes.InvalidInput, "exchange rate must be positive")
	}

	if in.CommissionPercent < 0 || in.CommissionPercent >= 100 || math.IsNaN(in.CommissionPercent) {
		return domain.InvalidArgument(errcodes.InvalidInput, "commission must be in [0, 100)")
	}

	f := in.Fees
	if f.LowTierPercent < 0 || f.HighTierPercent < 0 || f.PaypalPercent < 0 {
		return domain.InvalidArgument(errcodes.InvalidInput, "fee percents must not be negative")
	}

	return nil
}
