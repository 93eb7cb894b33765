package postgres

import (
	"context"
	"errors"
	"fmt"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.CouponRepository = (*CouponRepositoryImpl)(nil)

// CouponRepositoryImpl is the PostgreSQL implementation of CouponRepository
type CouponRepositoryImpl struct {
	*TransactionManager
}

func NewCouponRepository(pool *pgxpool.Pool) repository.CouponRepository {
	return &CouponRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const couponColumns = `id, code, status, discount_type, discount_value, max_discount,
        min_order, max_usage_total, max_usage_per_user, used_count, applies_to, host_id,
        start_date, end_date, created_at`

// GetByCode retrieves a coupon by its code
func (r *CouponRepositoryImpl) GetByCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Coupon, error) {
	executor := r.getExecutor(tx...)
	c := &model.Coupon{}
	err := executor.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code).
		Scan(&c.ID, &c.Code, &c.Status, &c.DiscountType, &c.DiscountValue, &c.MaxDiscount,
			&c.MinOrder, &c.MaxUsageTotal, &c.MaxUsagePerUser, &c.UsedCount, &c.AppliesTo,
			&c.HostID, &c.StartDate, &c.EndDate, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return c, nil
}

// InsertCoupon persists a new coupon
func (r *CouponRepositoryImpl) InsertCoupon(ctx context.Context, c *model.Coupon) error {
	query := `
        INSERT INTO coupons
            (code, status, discount_type, discount_value, max_discount, min_order,
             max_usage_total, max_usage_per_user, applies_to, host_id, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, used_count, created_at`

	err := r.pool.QueryRow(ctx, query,
		c.Code, c.Status, c.DiscountType, c.DiscountValue, c.MaxDiscount, c.MinOrder,
		c.MaxUsageTotal, c.MaxUsagePerUser, c.AppliesTo, c.HostID, c.StartDate, c.EndDate).
		Scan(&c.ID, &c.UsedCount, &c.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: code already exists", model.ErrCoupon)
		}
		return fmt.Errorf("failed to insert coupon: %w", err)
	}
	return nil
}

// IncrementUsageIfBelowCap atomically increments used_count unless the global
// cap is reached. A conditional UPDATE replaces the original read-then-compare
// so concurrent payments can never push used_count past max_usage_total.
func (r *CouponRepositoryImpl) IncrementUsageIfBelowCap(ctx context.Context, code string, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE coupons
        SET used_count = used_count + 1
        WHERE code = $1
          AND (max_usage_total IS NULL OR used_count < max_usage_total)`

	commandTag, err := tx.Exec(ctx, query, code)
	if err != nil {
		return false, fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}
