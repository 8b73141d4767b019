package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/internal/domain/value"
	"ebay_pricer/pkg/errcodes"
	"ebay_pricer/pkg/lox"
)

const calculationColumns = `
	id, cost, exchange_rate, commission_percent, shipping_weight,
	shipping_method, shipping_destination, fees, listing_price, fee_percent,
	fee_amount, profit, shipping_cost, total_with_shipping, iterations,
	approximate, created_at`

type CalculationRepository struct {
	db *sqlx.DB
}

// NewCalculationRepository создаёт новый экземпляр репозитория.
func NewCalculationRepository(db *sqlx.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Create сохраняет расчёт.
func (r *CalculationRepository) Create(ctx context.Context, calc entity.Calculation) error {
	schema, err := fromCalculation(calc)
	if err != nil {
		return domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to encode calculation")
	}

	query := `INSERT INTO calculations (` + calculationColumns + `) VALUES (
		:id, :cost, :exchange_rate, :commission_percent, :shipping_weight,
		:shipping_method, :shipping_destination, :fees, :listing_price, :fee_percent,
		:fee_amount, :profit, :shipping_cost, :total_with_shipping, :iterations,
		:approximate, :created_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to create calculation")
	}

	return nil
}

// GetByID возвращает расчёт по идентификатору.
func (r *CalculationRepository) GetByID(ctx context.Context, id value.CalculationID) (entity.Calculation, error) {
	query := `SELECT ` + calculationColumns + ` FROM calculations WHERE id = $1`

	var schema calculationSchema
	if err := r.db.GetContext(ctx, &schema, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Calculation{}, domain.NewError(domain.KindNotFound, errcodes.CalculationNotFound, "calculation not found")
		}

		return entity.Calculation{}, domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to get calculation")
	}

	calc, err := schema.toDomain()
	if err != nil {
		return entity.Calculation{}, domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to decode calculation")
	}

	return calc, nil
}

// List возвращает расчёты от новых к старым.
func (r *CalculationRepository) List(ctx context.Context, limit, offset int) ([]entity.Calculation, error) {
	query := `SELECT ` + calculationColumns + `
		FROM calculations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	var schemas []calculationSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit, offset); err != nil {
		return nil, domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to list calculations")
	}

	calcs, err := lox.MapErr(schemas, calculationSchema.toDomain)
	if err != nil {
		return nil, domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to decode calculations")
	}

	return calcs, nil
}

// Delete удаляет расчёт.
func (r *CalculationRepository) Delete(ctx context.Context, id value.CalculationID) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM calculations WHERE id = $1`, id.String())
		if err != nil {
			return domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to delete calculation")
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to delete calculation")
		}

		if affected == 0 {
			return domain.NewError(domain.KindNotFound, errcodes.CalculationNotFound, "calculation not found")
		}

		return nil
	})
}

// withTx выполняет функцию в транзакции.
func (r *CalculationRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				domain.KindInternal,
				errcodes.InternalServerError,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}
