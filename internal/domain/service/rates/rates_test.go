package rates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/service/rates"
	"ebay_pricer/pkg/errcodes"
)

type fakeFetcher struct {
	rate  float64
	err   error
	calls int
}

func (f *fakeFetcher) Rate(_ context.Context, base, quote string) (entity.ExchangeRate, error) {
	f.calls++
	if f.err != nil {
		return entity.ExchangeRate{}, f.err
	}

	return entity.ExchangeRate{Base: base, Quote: quote, Rate: f.rate, UpdatedAt: time.Now()}, nil
}

type fakeStore struct {
	items map[string]entity.ExchangeRate
	err   error
}

func (s *fakeStore) Get(_ context.Context, base, quote string) (entity.ExchangeRate, bool, error) {
	if s.err != nil {
		return entity.ExchangeRate{}, false, s.err
	}

	rate, ok := s.items[base+"/"+quote]

	return rate, ok, nil
}

func (s *fakeStore) Set(_ context.Context, rate entity.ExchangeRate, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}

	s.items[rate.Pair()] = rate

	return nil
}

func TestServiceCachesLocally(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	fetcher := &fakeFetcher{rate: 33.5}
	svc := rates.NewService(fetcher, time.Minute, "usd", "thb")

	rate, err := svc.Current(ctx)
	rq.NoError(err)
	rq.Equal(33.5, rate.Rate)
	rq.Equal("USD/THB", rate.Pair())

	_, err = svc.Current(ctx)
	rq.NoError(err)
	rq.Equal(1, fetcher.calls)

	fetcher.rate = 34.1

	rate, err = svc.RefreshCurrent(ctx)
	rq.NoError(err)
	rq.Equal(34.1, rate.Rate)
	rq.Equal(2, fetcher.calls)

	rate, err = svc.Current(ctx)
	rq.NoError(err)
	rq.Equal(34.1, rate.Rate)
}

func TestServiceReadsSharedStore(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := &fakeStore{items: map[string]entity.ExchangeRate{
		"USD/EUR": {Base: "USD", Quote: "EUR", Rate: 0.86},
	}}
	fetcher := &fakeFetcher{rate: 33.5}
	svc := rates.NewService(fetcher, time.Minute, "USD", "THB").WithStore(store)

	rate, err := svc.Rate(ctx, "usd", "eur")
	rq.NoError(err)
	rq.Equal(0.86, rate.Rate)
	rq.Zero(fetcher.calls)

	_, err = svc.Current(ctx)
	rq.NoError(err)
	rq.Equal(1, fetcher.calls)
	rq.Contains(store.items, "USD/THB")
}

func TestServiceStoreFailureFallsBackToFetcher(t *testing.T) {
	rq := require.New(t)

	store := &fakeStore{err: errors.New("redis down")}
	svc := rates.NewService(&fakeFetcher{rate: 33.5}, time.Minute, "USD", "THB").WithStore(store)

	rate, err := svc.Current(context.Background())
	rq.NoError(err)
	rq.Equal(33.5, rate.Rate)
}

func TestServiceUsesLastKnownRate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	fetcher := &fakeFetcher{rate: 33.5}
	svc := rates.NewService(fetcher, time.Minute, "USD", "THB")

	_, found := svc.LastKnown()
	rq.False(found)

	_, err := svc.Current(ctx)
	rq.NoError(err)

	last, found := svc.LastKnown()
	rq.True(found)
	rq.Equal(33.5, last.Rate)

	fetcher.err = errors.New("upstream timeout")

	rate, err := svc.RefreshCurrent(ctx)
	rq.NoError(err)
	rq.Equal(33.5, rate.Rate)
}

func TestServiceUnavailable(t *testing.T) {
	rq := require.New(t)

	svc := rates.NewService(&fakeFetcher{err: errors.New("upstream timeout")}, time.Minute, "USD", "THB")

	_, err := svc.Current(context.Background())
	rq.True(domain.IsKind(err, domain.KindUnavailable))
	rq.ErrorContains(err, "upstream timeout")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ExchangeRateUnavailable, code)
}
