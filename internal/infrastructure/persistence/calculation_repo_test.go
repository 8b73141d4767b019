package persistence_test

import (
	"context"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/value"
	"ebay_pricer/internal/infrastructure/persistence"
	"ebay_pricer/pkg/dbtest"
	"ebay_pricer/pkg/errcodes"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/0001_calculations.sql"))

	_, err = db.Exec(`TRUNCATE calculations`)
	require.NoError(t, err)

	return db
}

func newCalculation(cost float64, createdAt time.Time) entity.Calculation {
	return entity.Calculation{
		ID: value.NewCalculationID(),
		Input: entity.CalculationInput{
			Cost:                cost,
			ExchangeRate:        33.5,
			CommissionPercent:   5,
			ShippingWeight:      2,
			ShippingMethod:      value.ShippingExpress,
			ShippingDestination: value.DestinationInternational,
			Fees:                entity.DefaultFeeSchedule(),
		},
		Result: entity.CalculationResult{
			ListingPrice:      1991.31,
			FeePercent:        15,
			FeeAmount:         298.7,
			Profit:            16708.9,
			ShippingCost:      25.99,
			TotalWithShipping: 2017.3,
			Iterations:        3,
		},
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
}

func TestCalculationRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewCalculationRepository(newTestDB(t))

	now := time.Now()
	older := newCalculation(1000, now.Add(-time.Hour))
	newer := newCalculation(50000, now)

	rq.NoError(repo.Create(ctx, older))
	rq.NoError(repo.Create(ctx, newer))

	got, err := repo.GetByID(ctx, newer.ID)
	rq.NoError(err)
	rq.Equal(newer.Input, got.Input)
	rq.Equal(newer.Result, got.Result)
	rq.True(newer.CreatedAt.Equal(got.CreatedAt))

	list, err := repo.List(ctx, 10, 0)
	rq.NoError(err)
	rq.Len(list, 2)
	rq.Equal(newer.ID, list[0].ID)
	rq.Equal(older.ID, list[1].ID)

	list, err = repo.List(ctx, 1, 1)
	rq.NoError(err)
	rq.Len(list, 1)
	rq.Equal(older.ID, list[0].ID)

	rq.NoError(repo.Delete(ctx, older.ID))

	_, err = repo.GetByID(ctx, older.ID)
	rq.True(domain.IsKind(err, domain.KindNotFound))

	err = repo.Delete(ctx, older.ID)
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CalculationNotFound, code)
}
