package rates

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/pkg/errcodes"
	"ebay_pricer/pkg/logx"
)

const lastKnownPrefix = "last:"

type RateFetcher interface {
	Rate(ctx context.Context, base, quote string) (entity.ExchangeRate, error)
}

// RateStore общий для всех реплик кэш курсов.
type RateStore interface {
	Get(ctx context.Context, base, quote string) (entity.ExchangeRate, bool, error)
	Set(ctx context.Context, rate entity.ExchangeRate, ttl time.Duration) error
}

type Service struct {
	fetcher RateFetcher
	store   RateStore
	local   *cache.Cache
	ttl     time.Duration
	base    string
	quote   string
}

func NewService(fetcher RateFetcher, ttl time.Duration, base, quote string) *Service {
	return &Service{
		fetcher: fetcher,
		local:   cache.New(ttl, 2*ttl),
		ttl:     ttl,
		base:    strings.ToUpper(base),
		quote:   strings.ToUpper(quote),
	}
}

// WithStore подключает общий кэш (Redis).
func (s *Service) WithStore(store RateStore) *Service {
	s.store = store
	return s
}

// Current курс пары по умолчанию.
func (s *Service) Current(ctx context.Context) (entity.ExchangeRate, error) {
	return s.Rate(ctx, s.base, s.quote)
}

// RefreshCurrent обновляет курс пары по умолчанию в обход кэшей.
func (s *Service) RefreshCurrent(ctx context.Context) (entity.ExchangeRate, error) {
	return s.Refresh(ctx, s.base, s.quote)
}

// LastKnown последний полученный курс пары по умолчанию без обращения к источнику.
func (s *Service) LastKnown() (entity.ExchangeRate, bool) {
	v, found := s.local.Get(lastKnownPrefix + pairKey(s.base, s.quote))
	if !found {
		return entity.ExchangeRate{}, false
	}

	return v.(entity.ExchangeRate), true //nolint:forcetypeassert
}

func (s *Service) Rate(ctx context.Context, base, quote string) (entity.ExchangeRate, error) {
	base, quote = strings.ToUpper(base), strings.ToUpper(quote)
	key := pairKey(base, quote)

	if v, found := s.local.Get(key); found {
		return v.(entity.ExchangeRate), nil //nolint:forcetypeassert
	}

	if s.store != nil {
		rate, found, err := s.store.Get(ctx, base, quote)
		if err != nil {
			logger(ctx).Warn("rate store get failed", slog.String(logx.FieldCurrencyPair, key), logx.Error(err))
		}

		if found {
			s.remember(key, rate)
			return rate, nil
		}
	}

	return s.Refresh(ctx, base, quote)
}

func (s *Service) Refresh(ctx context.Context, base, quote string) (entity.ExchangeRate, error) {
	base, quote = strings.ToUpper(base), strings.ToUpper(quote)
	key := pairKey(base, quote)

	rate, err := s.fetcher.Rate(ctx, base, quote)
	if err != nil {
		if last, found := s.local.Get(lastKnownPrefix + key); found {
			logger(ctx).Warn("failed to fetch rate, using last known",
				slog.String(logx.FieldCurrencyPair, key),
				logx.Error(err),
			)

			return last.(entity.ExchangeRate), nil //nolint:forcetypeassert
		}

		return entity.ExchangeRate{}, domain.WrapError(
			fmt.Errorf("fetcher.Rate: %w", err),
			domain.KindUnavailable,
			errcodes.ExchangeRateUnavailable,
			"exchange rate is unavailable",
		)
	}

	s.remember(key, rate)

	if s.store != nil {
		if err := s.store.Set(ctx, rate, s.ttl); err != nil {
			logger(ctx).Warn("rate store set failed", slog.String(logx.FieldCurrencyPair, key), logx.Error(err))
		}
	}

	logger(ctx).Debug("exchange rate refreshed",
		slog.String(logx.FieldCurrencyPair, key),
		slog.Float64(logx.FieldExchangeRate, rate.Rate),
	)

	return rate, nil
}

func (s *Service) remember(key string, rate entity.ExchangeRate) {
	s.local.Set(key, rate, cache.DefaultExpiration)
	s.local.Set(lastKnownPrefix+key, rate, cache.NoExpiration)
}

func pairKey(base, quote string) string {
	return base + "/" + quote
}
