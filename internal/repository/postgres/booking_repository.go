package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BookingRepository = (*BookingRepositoryImpl)(nil)

// BookingRepositoryImpl is the PostgreSQL implementation of BookingRepository
type BookingRepositoryImpl struct {
	*TransactionManager
}

func NewBookingRepository(pool *pgxpool.Pool) repository.BookingRepository {
	return &BookingRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const bookingColumns = `id, room_id, guest_id, host_id, check_in, check_out, guests,
        status, payment_status, original_price, discount_amount, total_price, coupon_code,
        refund_status, refund_amount, refund_percentage, refund_reason, refund_transaction_ref,
        refund_request_status, refund_request_reason, refund_requested_at, refund_resolved_at,
        cancelled_by, payout_settled_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	var refundStatus, requestStatus, cancelledBy *string
	err := row.Scan(&b.ID, &b.RoomID, &b.GuestID, &b.HostID, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.Status, &b.PaymentStatus, &b.OriginalPrice, &b.DiscountAmount,
		&b.TotalPrice, &b.CouponCode,
		&refundStatus, &b.Refund.Amount, &b.Refund.Percentage, &b.Refund.Reason, &b.Refund.TransactionRef,
		&requestStatus, &b.RefundRequest.Reason, &b.RefundRequest.RequestedAt, &b.RefundRequest.ResolvedAt,
		&cancelledBy, &b.PayoutSettledAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if refundStatus != nil {
		b.Refund.Status = model.RefundStatus(*refundStatus)
	}
	if requestStatus != nil {
		b.RefundRequest.Status = model.RequestStatus(*requestStatus)
	}
	if cancelledBy != nil {
		actor := model.Actor(*cancelledBy)
		b.CancelledBy = &actor
	}
	return b, nil
}

// InsertBooking persists a new booking. The bookings table carries an
// exclusion constraint over (room_id, daterange(check_in, check_out)) for
// blocking statuses, so a concurrent overlapping insert loses here even when
// the application-level conflict check passed.
func (r *BookingRepositoryImpl) InsertBooking(ctx context.Context, b *model.Booking, tx pgx.Tx) error {
	query := `
        INSERT INTO bookings
            (room_id, guest_id, host_id, check_in, check_out, guests, status,
             payment_status, original_price, discount_amount, total_price, coupon_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		b.RoomID, b.GuestID, b.HostID, b.CheckIn, b.CheckOut, b.Guests, b.Status,
		b.PaymentStatus, b.OriginalPrice, b.DiscountAmount, b.TotalPrice, b.CouponCode).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return model.ErrRoomConflict
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by id
func (r *BookingRepositoryImpl) GetBooking(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Booking, error) {
	executor := r.getExecutor(tx...)
	b, err := scanBooking(executor.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

// GetBookingForUpdate retrieves a booking with a row-level lock
func (r *BookingRepositoryImpl) GetBookingForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Booking, error) {
	b, err := scanBooking(tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}
	return b, nil
}

// HasConflict reports whether a blocking booking overlaps [checkIn, checkOut)
// for the room. Intervals conflict iff existing.check_in < checkOut AND
// existing.check_out > checkIn; cancelled and completed bookings never block.
func (r *BookingRepositoryImpl) HasConflict(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE room_id = $1
              AND status IN ('pending', 'confirmed')
              AND check_in < $3
              AND check_out > $2
              AND id <> $4
        )`

	var conflict bool
	err := r.pool.QueryRow(ctx, query, roomID, checkIn, checkOut, excludeID).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("failed to check room conflict: %w", err)
	}
	return conflict, nil
}

// UpdateBooking persists mutable booking fields
func (r *BookingRepositoryImpl) UpdateBooking(ctx context.Context, b *model.Booking, tx pgx.Tx) error {
	query := `
        UPDATE bookings
        SET status = $1,
            payment_status = $2,
            refund_status = NULLIF($3, ''),
            refund_amount = $4,
            refund_percentage = $5,
            refund_reason = $6,
            refund_transaction_ref = $7,
            refund_request_status = NULLIF($8, ''),
            refund_request_reason = $9,
            refund_requested_at = $10,
            refund_resolved_at = $11,
            cancelled_by = $12,
            payout_settled_at = $13,
            updated_at = NOW()
        WHERE id = $14`

	var cancelledBy *string
	if b.CancelledBy != nil {
		s := b.CancelledBy.String()
		cancelledBy = &s
	}

	commandTag, err := tx.Exec(ctx, query,
		b.Status, b.PaymentStatus,
		string(b.Refund.Status), b.Refund.Amount, b.Refund.Percentage, b.Refund.Reason, b.Refund.TransactionRef,
		string(b.RefundRequest.Status), b.RefundRequest.Reason, b.RefundRequest.RequestedAt, b.RefundRequest.ResolvedAt,
		cancelledBy, b.PayoutSettledAt, b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return model.ErrRoomConflict
		}
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrBookingNotFound
	}
	return nil
}

// CountPaidByCoupon counts a guest's paid bookings carrying a coupon code.
// Partial refunds still count as a use; only full refunds release the slot.
func (r *BookingRepositoryImpl) CountPaidByCoupon(ctx context.Context, guestID int64, code string) (int, error) {
	query := `
        SELECT COUNT(*) FROM bookings
        WHERE guest_id = $1
          AND coupon_code = $2
          AND payment_status IN ('paid', 'partial_refunded')`

	var count int
	err := r.pool.QueryRow(ctx, query, guestID, code).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count coupon usage: %w", err)
	}
	return count, nil
}

// ListByGuest retrieves paginated bookings for a guest, newest first
func (r *BookingRepositoryImpl) ListByGuest(ctx context.Context, guestID int64, limit, offset int) ([]*model.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE guest_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, guestID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
