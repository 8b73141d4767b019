package config

import (
	"errors"

	"ebay_pricer/internal/domain/entity"
)

type Pricing struct {
	TierThreshold     float64 `env:"PRICING_TIER_THRESHOLD" envDefault:"5000"`
	LowTierPercent    float64 `env:"PRICING_LOW_TIER_PERCENT" envDefault:"15"`
	HighTierPercent   float64 `env:"PRICING_HIGH_TIER_PERCENT" envDefault:"9"`
	PaypalPercent     float64 `env:"PRICING_PAYPAL_PERCENT" envDefault:"1.3"`
	DefaultCommission float64 `env:"PRICING_DEFAULT_COMMISSION" envDefault:"5"`
}

func (p Pricing) FeeSchedule() entity.FeeSchedule {
	return entity.FeeSchedule{
		TierThreshold:   p.TierThreshold,
		LowTierPercent:  p.LowTierPercent,
		HighTierPercent: p.HighTierPercent,
		PaypalPercent:   p.PaypalPercent,
	}
}

func (p Pricing) validate() error {
	if p.LowTierPercent < 0 || p.HighTierPercent < 0 || p.PaypalPercent < 0 {
		return errors.New("fee percents must not be negative")
	}

	if p.DefaultCommission < 0 || p.DefaultCommission >= 100 {
		return errors.New("default commission must be in [0, 100)")
	}

	return nil
}
