package server

import (
	"context"
	"fmt"
	"net/http"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/service/calculation"
	"ebay_pricer/internal/domain/value"
	"ebay_pricer/pkg/errcodes"
	"ebay_pricer/pkg/httpx/reply"
	"ebay_pricer/pkg/httpx/req"
	"ebay_pricer/pkg/rest"
)

type calculationService interface {
	Quote(context.Context, calculation.Request) (entity.Calculation, error)
	Save(context.Context, calculation.Request) (entity.Calculation, error)
	Get(context.Context, value.CalculationID) (entity.Calculation, error)
	List(ctx context.Context, limit, offset int) ([]entity.Calculation, error)
	Delete(context.Context, value.CalculationID) error
	MinimumPrice(ctx context.Context, totalCosts, targetMarginPercent float64) (float64, error)
	CurrentRate(context.Context) (entity.ExchangeRate, error)
}

type CalculationServer struct {
	calculationService calculationService
}

func NewCalculationServer(calculationService calculationService) CalculationServer {
	return CalculationServer{
		calculationService: calculationService,
	}
}

func (s CalculationServer) postV1Quotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	calc, err := s.calculationService.Quote(ctx, newDomainRequest(request))
	if err != nil {
		return fmt.Errorf("calculationService.Quote: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCalculation(calc))

	return nil
}

func (s CalculationServer) postV1Calculations(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	calc, err := s.calculationService.Save(ctx, newDomainRequest(request))
	if err != nil {
		return fmt.Errorf("calculationService.Save: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTCalculation(calc))

	return nil
}

func (s CalculationServer) getV1Calculations(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := req.QueryInt(r, "limit", calculation.DefaultListLimit, 1, calculation.MaxListLimit)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	offset, err := req.QueryInt(r, "offset", 0, 0, maxOffset)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	calcs, err := s.calculationService.List(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("calculationService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CalculationList{
		Items:  newRESTCalculations(calcs),
		Limit:  limit,
		Offset: offset,
	})

	return nil
}

func (s CalculationServer) getV1Calculation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseCalculationID(r)
	if err != nil {
		return err
	}

	calc, err := s.calculationService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("calculationService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCalculation(calc))

	return nil
}

func (s CalculationServer) deleteV1Calculation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseCalculationID(r)
	if err != nil {
		return err
	}

	if err = s.calculationService.Delete(ctx, id); err != nil {
		return fmt.Errorf("calculationService.Delete: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s CalculationServer) postV1MinimumPrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.MinimumPriceRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	price, err := s.calculationService.MinimumPrice(ctx, request.TotalCosts, request.TargetMarginPercent)
	if err != nil {
		return fmt.Errorf("calculationService.MinimumPrice: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.MinimumPriceResponse{MinimumPrice: money(price)})

	return nil
}

func (s CalculationServer) getV1ExchangeRate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rate, err := s.calculationService.CurrentRate(ctx)
	if err != nil {
		return fmt.Errorf("calculationService.CurrentRate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTExchangeRate(rate))

	return nil
}

func parseCalculationID(r *http.Request) (value.CalculationID, error) {
	id, err := value.ParseCalculationID(r.PathValue("id"))
	if err != nil {
		return "", domain.WrapError(
			fmt.Errorf("value.ParseCalculationID: %w", err),
			domain.KindInvalidArgument,
			errcodes.InvalidCalculationID,
			"invalid calculation id",
		)
	}

	return id, nil
}
