package model

type WalletStatus string

const (
	WalletActive    WalletStatus = "active"
	WalletLocked    WalletStatus = "locked"
	WalletSuspended WalletStatus = "suspended"
)

type TransactionType string

const (
	TypeDeposit        TransactionType = "deposit"
	TypeWithdraw       TransactionType = "withdraw"
	TypePayment        TransactionType = "payment"
	TypeRefund         TransactionType = "refund"
	TypeBonus          TransactionType = "bonus"
	TypeMaintenanceFee TransactionType = "maintenance_fee"
)

// Sign reports whether a transaction type credits (+1) or debits (-1) its wallet.
func (t TransactionType) Sign() int64 {
	switch t {
	case TypeDeposit, TypeRefund, TypeBonus:
		return 1
	default:
		return -1
	}
}

type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxFailed    TransactionStatus = "failed"
	TxCancelled TransactionStatus = "cancelled"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Blocking reports whether a booking in this status reserves its room interval.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingConfirmed
}

type PaymentStatus string

const (
	PaymentPending         PaymentStatus = "pending"
	PaymentPaid            PaymentStatus = "paid"
	PaymentFailed          PaymentStatus = "failed"
	PaymentRefunded        PaymentStatus = "refunded"
	PaymentPartialRefunded PaymentStatus = "partial_refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case string(PaymentPending):
		return PaymentPending, nil
	case string(PaymentPaid):
		return PaymentPaid, nil
	case string(PaymentFailed):
		return PaymentFailed, nil
	case string(PaymentRefunded):
		return PaymentRefunded, nil
	case string(PaymentPartialRefunded):
		return PaymentPartialRefunded, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

type RefundStatus string

const (
	RefundNone      RefundStatus = ""
	RefundPending   RefundStatus = "pending"
	RefundCompleted RefundStatus = "completed"
	RefundRejected  RefundStatus = "rejected"
)

type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

type CouponScope string

const (
	ScopeAll  CouponScope = "all"
	ScopeHost CouponScope = "host"
)

// RequestStatus is the lifecycle of a guest-initiated refund request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Actor identifies who initiated a booking mutation. It is resolved once at
// the boundary and passed explicitly through the call chain.
type Actor string

const (
	ActorGuest  Actor = "guest"
	ActorHost   Actor = "host"
	ActorSystem Actor = "system"
)

func ParseActor(s string) (Actor, error) {
	switch s {
	case string(ActorGuest):
		return ActorGuest, nil
	case string(ActorHost):
		return ActorHost, nil
	case string(ActorSystem):
		return ActorSystem, nil
	default:
		return "", ErrInvalidActor
	}
}

func (a Actor) String() string {
	return string(a)
}
