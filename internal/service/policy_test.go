package service

import (
	"testing"
	"time"

	"homestay-settlement/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRefundPercentage(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		actor   model.Actor
		checkIn time.Time
		want    int
	}{
		{"host cancels anytime", model.ActorHost, now.Add(1 * time.Hour), 100},
		{"system cancels anytime", model.ActorSystem, now.Add(-24 * time.Hour), 100},
		{"guest cancels five days ahead", model.ActorGuest, now.Add(5 * 24 * time.Hour), 100},
		{"guest cancels just over three days ahead", model.ActorGuest, now.Add(3*24*time.Hour + time.Minute), 100},
		{"guest cancels exactly three days ahead", model.ActorGuest, now.Add(3 * 24 * time.Hour), 50},
		{"guest cancels one day ahead", model.ActorGuest, now.Add(24 * time.Hour), 50},
		{"guest cancels at check-in", model.ActorGuest, now, 0},
		{"guest cancels after check-in", model.ActorGuest, now.Add(-1 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefundPercentage(tt.actor, tt.checkIn, now))
		})
	}
}

func TestRefundAmount_Rounding(t *testing.T) {
	assert.Equal(t, int64(925000), refundAmount(1850000, 50))
	assert.Equal(t, int64(1850000), refundAmount(1850000, 100))
	assert.Equal(t, int64(50), refundAmount(99, 50))
	assert.Equal(t, int64(0), refundAmount(1850000, 0))
}
