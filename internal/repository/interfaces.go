package repository

import (
	"context"
	"time"

	"homestay-settlement/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// WalletRepository defines operations on wallets. All mutations require a
// transaction; GetWalletForUpdate takes a row-level lock.
type WalletRepository interface {
	// GetOrCreateWallet returns the wallet for a user, creating it lazily.
	GetOrCreateWallet(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error)

	// GetWalletForUpdate retrieves a user's wallet with a row-level lock,
	// creating it first if it does not exist (must be in a transaction).
	GetWalletForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error)

	// GetWalletByIDForUpdate locks an existing wallet by wallet id; ledger
	// entries reference wallets, not users.
	GetWalletByIDForUpdate(ctx context.Context, walletID int64, tx pgx.Tx) (*model.Wallet, error)

	// UpdateBalance persists a new balance and running totals.
	UpdateBalance(ctx context.Context, w *model.Wallet, tx pgx.Tx) error

	// SetStatus transitions wallet status (lock/unlock/suspend).
	SetStatus(ctx context.Context, userID int64, status model.WalletStatus) error
}

// LedgerRepository defines operations on the append-only transaction ledger.
type LedgerRepository interface {
	// InsertTransaction appends a ledger entry.
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetByReference retrieves a ledger entry by its unique reference.
	GetByReference(ctx context.Context, reference string, tx ...pgx.Tx) (*model.Transaction, error)

	// GetByGatewayRef retrieves a completed entry carrying a gateway reference.
	GetByGatewayRef(ctx context.Context, gatewayRef string, tx ...pgx.Tx) (*model.Transaction, error)

	// ListByWallet retrieves paginated entries for a wallet, newest first.
	ListByWallet(ctx context.Context, walletID int64, limit, offset int) ([]*model.Transaction, error)

	// FindHalfAppliedTransfers returns debit legs of transfer groups whose
	// credit leg is missing or not completed.
	FindHalfAppliedTransfers(ctx context.Context, olderThan time.Time, limit int) ([]*model.Transaction, error)

	// FlagTransaction marks an entry for operator attention.
	FlagTransaction(ctx context.Context, id int64, tx pgx.Tx) error
}

// BookingRepository defines operations on bookings.
type BookingRepository interface {
	// InsertBooking persists a new booking. Returns model.ErrRoomConflict if
	// the room's exclusion constraint rejects the interval.
	InsertBooking(ctx context.Context, b *model.Booking, tx pgx.Tx) error

	// GetBooking retrieves a booking by id.
	GetBooking(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Booking, error)

	// GetBookingForUpdate retrieves a booking with a row-level lock.
	GetBookingForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.Booking, error)

	// HasConflict reports whether a blocking booking overlaps [checkIn, checkOut)
	// for the room, optionally excluding one booking id.
	HasConflict(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error)

	// UpdateBooking persists mutable booking fields (statuses, refund record,
	// payout marker).
	UpdateBooking(ctx context.Context, b *model.Booking, tx pgx.Tx) error

	// CountPaidByCoupon counts a guest's paid bookings carrying a coupon code.
	CountPaidByCoupon(ctx context.Context, guestID int64, code string) (int, error)

	// ListByGuest retrieves paginated bookings for a guest, newest first.
	ListByGuest(ctx context.Context, guestID int64, limit, offset int) ([]*model.Booking, error)
}

// CouponRepository defines operations on coupons.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its code.
	GetByCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.Coupon, error)

	// InsertCoupon persists a new coupon.
	InsertCoupon(ctx context.Context, c *model.Coupon) error

	// IncrementUsageIfBelowCap atomically increments used_count unless the
	// global cap is reached; returns false when the cap blocked the update.
	IncrementUsageIfBelowCap(ctx context.Context, code string, tx pgx.Tx) (bool, error)
}

// RoomRepository defines read access to rooms.
type RoomRepository interface {
	// GetRoom retrieves a room with its host, capacity and nightly price.
	GetRoom(ctx context.Context, id int64) (*model.Room, error)
}
