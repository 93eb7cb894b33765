package service

import (
	"context"

	"homestay-settlement/internal/model"

	"github.com/jackc/pgx/v5"
)

// LedgerEntry describes one balance-affecting operation before it is applied.
type LedgerEntry struct {
	Type          model.TransactionType
	Amount        int64
	BookingID     *int64
	Method        string
	GatewayRef    *string
	TransferGroup *string
	Metadata      map[string]string
}

// TransferParams describes a two-leg transfer: a debit from one wallet and a
// credit to another, executed as one atomic unit.
type TransferParams struct {
	FromUserID int64
	ToUserID   int64
	Amount     int64
	BookingID  *int64
	DebitType  model.TransactionType
	CreditType model.TransactionType
	Method     string
	Metadata   map[string]string
}

// WalletService owns every balance mutation. Each operation reads the wallet
// under a row lock, validates status and balance, and persists the new
// balance together with its ledger entry in one database transaction.
type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*model.Wallet, error)
	GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	Deposit(ctx context.Context, userID, amount int64, method string) (*model.Transaction, error)
	Withdraw(ctx context.Context, userID, amount int64, method string) (*model.Transaction, error)

	// ChargeMaintenanceFee deducts min(balance, fee), clamping the balance to
	// zero. The only operation allowed to partially succeed.
	ChargeMaintenanceFee(ctx context.Context, userID, fee int64) (*model.MaintenanceFeeResult, error)

	// Transfer executes both legs in one database transaction.
	Transfer(ctx context.Context, params TransferParams) (debit, credit *model.Transaction, err error)

	// TransferTx, Debit and Credit are transaction-scoped primitives for
	// settlement flows that mutate a booking and wallets atomically.
	TransferTx(ctx context.Context, tx pgx.Tx, params TransferParams) (debit, credit *model.Transaction, err error)
	Debit(ctx context.Context, tx pgx.Tx, userID int64, entry LedgerEntry) (*model.Transaction, error)
	Credit(ctx context.Context, tx pgx.Tx, userID int64, entry LedgerEntry) (*model.Transaction, error)

	LockWallet(ctx context.Context, userID int64) error
	UnlockWallet(ctx context.Context, userID int64) error
}

// PricingService validates coupons and computes discounted totals.
type PricingService interface {
	// Quote validates a coupon for a guest and base total and returns the
	// discount. hostID scopes host-restricted coupons; zero means unknown.
	Quote(ctx context.Context, code string, baseTotal, userID, hostID int64) (*model.Quote, error)

	CreateCoupon(ctx context.Context, req *model.CreateCouponRequest, actor model.Actor, actorID int64) (*model.Coupon, error)

	// IncrementCouponUsage bumps used_count with the cap enforced atomically.
	IncrementCouponUsage(ctx context.Context, code string) (bool, error)
}

// BookingService drives the booking lifecycle and payment-status machine.
type BookingService interface {
	CreateBooking(ctx context.Context, req *model.CreateBookingRequest, guestID int64) (*model.Booking, error)
	GetBooking(ctx context.Context, id int64) (*model.Booking, error)
	ListBookings(ctx context.Context, guestID int64, limit, offset int) ([]*model.Booking, error)
	CheckRoomAvailability(ctx context.Context, roomID int64, checkIn, checkOut string) (*model.AvailabilityResponse, error)

	UpdateBookingStatus(ctx context.Context, bookingID int64, status model.BookingStatus, actor model.Actor, actorID int64) (*model.Booking, error)

	// UpdatePaymentStatus is the idempotent transition guard: a repeated
	// transition to the current status is a no-op. pending→paid settles the
	// host payout in the same transaction.
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status model.PaymentStatus, gatewayRef string) (*model.Booking, error)

	// ProcessHostPayment credits the host with the booking total. Fails with
	// model.ErrDuplicateSettlement when the payout marker is already set.
	ProcessHostPayment(ctx context.Context, bookingID int64) (*model.Booking, error)

	PayWithWallet(ctx context.Context, bookingID, guestID int64) (*model.Booking, error)

	Cancel(ctx context.Context, bookingID int64, actor model.Actor, actorID int64, reason string) (*model.Booking, error)

	RequestRefund(ctx context.Context, bookingID, guestID int64, reason string) (*model.Booking, error)
	ProcessHostRefundRequest(ctx context.Context, bookingID, hostID int64, approve bool, reason string) (*model.Booking, error)

	// ProcessManualRefund retries a refund that was recorded rejected.
	ProcessManualRefund(ctx context.Context, bookingID int64) (*model.Booking, error)
}

// SettlementService converts verified gateway callbacks into idempotent
// payment-status transitions.
type SettlementService interface {
	HandleCallback(ctx context.Context, provider string, payload map[string]string) error
}

// ReconciliationService repairs transfers left half-applied.
type ReconciliationService interface {
	ReconcileTransfers(ctx context.Context) error
}
