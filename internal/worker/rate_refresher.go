package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/hibiken/asynq"

	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/pkg/logx"
)

const TaskRefreshExchangeRate = "exchange_rate:refresh"

type RateService interface {
	LastKnown() (entity.ExchangeRate, bool)
	RefreshCurrent(ctx context.Context) (entity.ExchangeRate, error)
}

// Notifier получает сообщение о заметном изменении курса.
type Notifier interface {
	RateChanged(ctx context.Context, prev, cur entity.ExchangeRate, changePercent float64) error
}

// RateRefresher обрабатывает задачу обновления курса из планировщика asynq.
type RateRefresher struct {
	rates          RateService
	notifier       Notifier
	alertThreshold float64
}

func NewRateRefresher(rates RateService) *RateRefresher {
	return &RateRefresher{
		rates: rates,
	}
}

// WithNotifier включает уведомления при изменении курса на thresholdPercent и больше.
// Нулевой порог отключает уведомления.
func (w *RateRefresher) WithNotifier(n Notifier, thresholdPercent float64) *RateRefresher {
	w.notifier = n
	w.alertThreshold = thresholdPercent
	return w
}

func NewRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskRefreshExchangeRate, nil)
}

func (w *RateRefresher) Handle(ctx context.Context, _ *asynq.Task) error {
	log := logger(ctx).With(slog.String(logx.FieldTask, TaskRefreshExchangeRate))

	prev, hadPrev := w.rates.LastKnown()

	cur, err := w.rates.RefreshCurrent(ctx)
	if err != nil {
		return fmt.Errorf("rates.RefreshCurrent: %w", err)
	}

	log.Info("exchange rate refreshed",
		slog.String(logx.FieldCurrencyPair, cur.Pair()),
		slog.Float64(logx.FieldExchangeRate, cur.Rate),
	)

	if !hadPrev || w.notifier == nil || w.alertThreshold <= 0 || prev.Rate == 0 {
		return nil
	}

	change := (cur.Rate - prev.Rate) / prev.Rate * 100 //nolint:mnd
	if math.Abs(change) < w.alertThreshold {
		return nil
	}

	// ошибка уведомления не повод перезапускать задачу
	if err := w.notifier.RateChanged(ctx, prev, cur, change); err != nil {
		log.Error("notifier.RateChanged", logx.Error(err))
	}

	return nil
}
