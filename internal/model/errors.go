package model

import (
	"errors"
	"fmt"
)

var (
	// Validation errors, rejected before any side effect.
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrCapacityExceeded     = errors.New("guest count exceeds room capacity")
	ErrRoomConflict         = errors.New("room already booked for the requested dates")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidActor         = errors.New("invalid actor role")
	ErrInvalidTransition    = errors.New("invalid booking state transition")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// Settlement errors.
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWalletLocked        = errors.New("wallet is not active")
	ErrDuplicateSettlement = errors.New("settlement already executed")
	ErrRefundPolicy        = errors.New("refund not allowed in current state")
	ErrInvalidSignature    = errors.New("invalid gateway signature")

	// Lookup / authorization errors.
	ErrBookingNotFound  = errors.New("booking not found")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrTransferNotFound = errors.New("ledger entry not found")
	ErrUnauthorized     = errors.New("actor lacks rights over this resource")
)

// ErrCoupon is the family root for coupon validation failures; every specific
// coupon error matches it via errors.Is.
var ErrCoupon = errors.New("coupon rejected")

var (
	ErrCouponNotFound      = fmt.Errorf("%w: not found", ErrCoupon)
	ErrCouponInactive      = fmt.Errorf("%w: not active", ErrCoupon)
	ErrCouponExpired       = fmt.Errorf("%w: outside validity window", ErrCoupon)
	ErrCouponScope         = fmt.Errorf("%w: does not apply to this host", ErrCoupon)
	ErrCouponUsageExceeded = fmt.Errorf("%w: usage limit exceeded", ErrCoupon)
	ErrCouponMinOrder      = fmt.Errorf("%w: order total below minimum", ErrCoupon)
)
