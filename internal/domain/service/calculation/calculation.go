// Package calculation связывает решатель цены с курсом валют, историей
// расчётов и метриками.
package calculation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/service/solver"
	"ebay_pricer/internal/domain/value"
	"ebay_pricer/pkg/errcodes"
	"ebay_pricer/pkg/logx"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type Repository interface {
	Create(ctx context.Context, calc entity.Calculation) error
	GetByID(ctx context.Context, id value.CalculationID) (entity.Calculation, error)
	List(ctx context.Context, limit, offset int) ([]entity.Calculation, error)
	Delete(ctx context.Context, id value.CalculationID) error
}

type RateProvider interface {
	Current(ctx context.Context) (entity.ExchangeRate, error)
}

// Request входные данные расчёта. Пустые указатели заменяются курсом
// по умолчанию и комиссией из настроек.
type Request struct {
	Cost                float64
	ExchangeRate        *float64
	CommissionPercent   *float64
	ShippingWeight      float64
	ShippingMethod      string
	ShippingDestination string
}

type Service struct {
	repo              Repository
	rates             RateProvider
	metrics           *Metrics
	fees              entity.FeeSchedule
	defaultCommission float64
	now               func() time.Time
}

func NewService(repo Repository, rates RateProvider) *Service {
	return &Service{
		repo:              repo,
		rates:             rates,
		fees:              entity.DefaultFeeSchedule(),
		defaultCommission: 5,
		now:               time.Now,
	}
}

func (s *Service) WithFees(fees entity.FeeSchedule, defaultCommission float64) *Service {
	s.fees = fees
	s.defaultCommission = defaultCommission
	return s
}

func (s *Service) WithMetrics(m *Metrics) *Service {
	s.metrics = m
	return s
}

// Quote считает цену без сохранения в историю.
func (s *Service) Quote(ctx context.Context, req Request) (entity.Calculation, error) {
	input, err := s.buildInput(ctx, req)
	if err != nil {
		return entity.Calculation{}, err
	}

	result, err := solver.Solve(input)
	if err != nil {
		code, _ := domain.GetCode(err)
		s.metrics.observe(entity.CalculationResult{}, code, true)

		return entity.Calculation{}, fmt.Errorf("solver.Solve: %w", err)
	}

	s.metrics.observe(result, "", false)

	log := logger(ctx).With(
		slog.Int(logx.FieldIterations, result.Iterations),
		logx.Money(logx.FieldListingPrice, result.ListingPrice),
	)

	if result.Approximate {
		log.Warn("price did not converge, returning last iteration",
			slog.String("code", errcodes.NonConvergence.String()),
		)
	} else {
		log.Debug("price solved")
	}

	return entity.Calculation{
		Input:     input,
		Result:    result,
		CreatedAt: s.now().UTC(),
	}, nil
}

// Save считает цену и сохраняет расчёт в историю.
func (s *Service) Save(ctx context.Context, req Request) (entity.Calculation, error) {
	calc, err := s.Quote(ctx, req)
	if err != nil {
		return entity.Calculation{}, err
	}

	calc.ID = value.NewCalculationID()

	if err := s.repo.Create(ctx, calc); err != nil {
		return entity.Calculation{}, fmt.Errorf("repo.Create: %w", err)
	}

	s.metrics.observeSaved()

	logger(ctx).Info("calculation saved", slog.String(logx.FieldCalculationID, calc.ID.String()))

	return calc, nil
}

func (s *Service) Get(ctx context.Context, id value.CalculationID) (entity.Calculation, error) {
	calc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Calculation{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	return calc, nil
}

// List история расчётов, новые первыми.
func (s *Service) List(ctx context.Context, limit, offset int) ([]entity.Calculation, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	limit = min(limit, MaxListLimit)
	offset = max(offset, 0)

	calcs, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return calcs, nil
}

func (s *Service) Delete(ctx context.Context, id value.CalculationID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Delete: %w", err)
	}

	logger(ctx).Info("calculation deleted", slog.String(logx.FieldCalculationID, id.String()))

	return nil
}

func (s *Service) MinimumPrice(_ context.Context, totalCosts, targetMarginPercent float64) (float64, error) {
	price, err := solver.MinimumPrice(totalCosts, targetMarginPercent)
	if err != nil {
		return 0, fmt.Errorf("solver.MinimumPrice: %w", err)
	}

	return price, nil
}

func (s *Service) CurrentRate(ctx context.Context) (entity.ExchangeRate, error) {
	rate, err := s.rates.Current(ctx)
	if err != nil {
		return entity.ExchangeRate{}, fmt.Errorf("rates.Current: %w", err)
	}

	return rate, nil
}

func (s *Service) buildInput(ctx context.Context, req Request) (entity.CalculationInput, error) {
	method, err := value.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		return entity.CalculationInput{}, domain.InvalidArgument(errcodes.InvalidInput, "%v", err)
	}

	destination, err := value.ParseShippingDestination(req.ShippingDestination)
	if err != nil {
		return entity.CalculationInput{}, domain.InvalidArgument(errcodes.InvalidInput, "%v", err)
	}

	commission := s.defaultCommission
	if req.CommissionPercent != nil {
		commission = *req.CommissionPercent
	}

	var rate float64
	if req.ExchangeRate != nil {
		rate = *req.ExchangeRate
	} else {
		current, err := s.CurrentRate(ctx)
		if err != nil {
			return entity.CalculationInput{}, err
		}

		rate = current.Rate
	}

	return entity.CalculationInput{
		Cost:                req.Cost,
		ExchangeRate:        rate,
		CommissionPercent:   commission,
		ShippingWeight:      req.ShippingWeight,
		ShippingMethod:      method,
		ShippingDestination: destination,
		Fees:                s.fees,
	}, nil
}
