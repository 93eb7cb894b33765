package service

import (
	"time"

	"homestay-settlement/internal/model"
)

// freeCancellationWindow is how long before check-in a guest still gets a
// full refund.
const freeCancellationWindow = 3 * 24 * time.Hour

// RefundPercentage returns the refund policy for a cancellation:
//
//	host or system, any time      100%
//	guest, > 3 days before check-in  100%
//	guest, later but before check-in  50%
//	guest, at or after check-in        0%
func RefundPercentage(actor model.Actor, checkIn, now time.Time) int {
	if actor == model.ActorHost || actor == model.ActorSystem {
		return 100
	}
	if !now.Before(checkIn) {
		return 0
	}
	if checkIn.Sub(now) > freeCancellationWindow {
		return 100
	}
	return 50
}
