package handler

import (
	"context"

	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/service/calculation"
	"ebay_pricer/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type calculationService interface {
	Quote(context.Context, calculation.Request) (entity.Calculation, error)
	MinimumPrice(ctx context.Context, totalCosts, targetMarginPercent float64) (float64, error)
	CurrentRate(context.Context) (entity.ExchangeRate, error)
}

type Handler struct {
	svc calculationService
}

func New(svc calculationService) *Handler {
	return &Handler{
		svc: svc,
	}
}
