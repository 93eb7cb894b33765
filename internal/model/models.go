package model

import (
	"time"
)

// All monetary amounts are non-negative integers in minor currency units.

type Wallet struct {
	ID             int64        `json:"id"`
	UserID         int64        `json:"user_id"`
	Balance        int64        `json:"balance"`
	Status         WalletStatus `json:"status"`
	TotalDeposited int64        `json:"total_deposited"`
	TotalWithdrawn int64        `json:"total_withdrawn"`
	TotalSpent     int64        `json:"total_spent"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Transaction is an append-only ledger entry. Once Status is completed the
// row is never mutated; balance_before/balance_after are the audit trail,
// not the source of truth for the current balance.
type Transaction struct {
	ID            int64             `json:"id"`
	Reference     string            `json:"reference"`
	WalletID      int64             `json:"wallet_id"`
	BookingID     *int64            `json:"booking_id,omitempty"`
	Type          TransactionType   `json:"type"`
	Amount        int64             `json:"amount"`
	BalanceBefore int64             `json:"balance_before"`
	BalanceAfter  int64             `json:"balance_after"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	GatewayRef    *string           `json:"gateway_ref,omitempty"`
	TransferGroup *string           `json:"transfer_group,omitempty"`
	Flagged       bool              `json:"flagged,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type Refund struct {
	Status         RefundStatus `json:"status,omitempty"`
	Amount         int64        `json:"amount,omitempty"`
	Percentage     int          `json:"percentage,omitempty"`
	Reason         string       `json:"reason,omitempty"`
	TransactionRef *string      `json:"transaction_ref,omitempty"`
}

type RefundRequest struct {
	Status      RequestStatus `json:"status,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	RequestedAt *time.Time    `json:"requested_at,omitempty"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}

type Booking struct {
	ID              int64         `json:"id"`
	RoomID          int64         `json:"room_id"`
	GuestID         int64         `json:"guest_id"`
	HostID          int64         `json:"host_id"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	Guests          int           `json:"guests"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	OriginalPrice   int64         `json:"original_price"`
	DiscountAmount  int64         `json:"discount_amount"`
	TotalPrice      int64         `json:"total_price"`
	CouponCode      *string       `json:"coupon_code,omitempty"`
	Refund          Refund        `json:"refund,omitempty"`
	RefundRequest   RefundRequest `json:"refund_request,omitempty"`
	CancelledBy     *Actor        `json:"cancelled_by,omitempty"`
	PayoutSettledAt *time.Time    `json:"payout_settled_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Nights returns the length of the [check_in, check_out) interval in days.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

type Coupon struct {
	ID              int64        `json:"id"`
	Code            string       `json:"code"`
	Status          CouponStatus `json:"status"`
	DiscountType    DiscountType `json:"discount_type"`
	DiscountValue   int64        `json:"discount_value"`
	MaxDiscount     *int64       `json:"max_discount,omitempty"`
	MinOrder        *int64       `json:"min_order,omitempty"`
	MaxUsageTotal   *int         `json:"max_usage_total,omitempty"`
	MaxUsagePerUser *int         `json:"max_usage_per_user,omitempty"`
	UsedCount       int          `json:"used_count"`
	AppliesTo       CouponScope  `json:"applies_to"`
	HostID          *int64       `json:"host_id,omitempty"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	CreatedAt       time.Time    `json:"created_at"`
}

type Room struct {
	ID            int64  `json:"id"`
	HostID        int64  `json:"host_id"`
	Capacity      int    `json:"capacity"`
	PricePerNight int64  `json:"price_per_night"`
	Name          string `json:"name,omitempty"`
}

// ---- request / response payloads ----

type CreateBookingRequest struct {
	RoomID     int64  `json:"room_id" binding:"required,gt=0" example:"1"`
	CheckIn    string `json:"check_in" binding:"required,datetime=2006-01-02" example:"2026-09-01"`
	CheckOut   string `json:"check_out" binding:"required,datetime=2006-01-02" example:"2026-09-03"`
	Guests     int    `json:"guests" binding:"required,gt=0" example:"2"`
	CouponCode string `json:"coupon_code,omitempty" example:"SAVE10"`
}

type PaymentStatusRequest struct {
	Status     string `json:"status" binding:"required" example:"paid"`
	GatewayRef string `json:"gateway_ref,omitempty" example:"MOMO1234567890"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" example:"change of plans"`
}

type RefundDecisionRequest struct {
	Approve bool   `json:"approve" example:"true"`
	Reason  string `json:"reason,omitempty"`
}

type AmountRequest struct {
	Amount        int64  `json:"amount" binding:"required,gt=0" example:"500000"`
	PaymentMethod string `json:"payment_method,omitempty" example:"bank_transfer"`
}

type Quote struct {
	DiscountAmount int64   `json:"discount_amount"`
	FinalPrice     int64   `json:"final_price"`
	Coupon         *Coupon `json:"coupon,omitempty"`
}

type MaintenanceFeeResult struct {
	Charged             int64 `json:"charged"`
	InsufficientBalance bool  `json:"insufficient_balance"`
	MissingAmount       int64 `json:"missing_amount"`
}

type AvailabilityResponse struct {
	RoomID    int64  `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type CreateCouponRequest struct {
	Code            string `json:"code" binding:"required,max=64" example:"SAVE10"`
	DiscountType    string `json:"discount_type" binding:"required,oneof=percent fixed" example:"percent"`
	DiscountValue   int64  `json:"discount_value" binding:"required,gt=0" example:"10"`
	MaxDiscount     *int64 `json:"max_discount,omitempty" example:"150000"`
	MinOrder        *int64 `json:"min_order,omitempty" example:"1000000"`
	MaxUsageTotal   *int   `json:"max_usage_total,omitempty" example:"100"`
	MaxUsagePerUser *int   `json:"max_usage_per_user,omitempty" example:"1"`
	AppliesTo       string `json:"applies_to" binding:"required,oneof=all host" example:"all"`
	StartDate       string `json:"start_date" binding:"required,datetime=2006-01-02" example:"2026-01-01"`
	EndDate         string `json:"end_date" binding:"required,datetime=2006-01-02" example:"2026-12-31"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}
