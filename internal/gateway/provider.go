// Package gateway verifies inbound payment-gateway notifications and turns
// them into internal payment results. Verification never mutates state; a
// bad signature is rejected before the payload is looked at.
package gateway

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"homestay-settlement/internal/model"
)

// Notification is the provider-independent result of a verified callback.
type Notification struct {
	Provider   string
	BookingID  int64
	GatewayRef string
	Amount     int64
	Success    bool
	FailReason string
}

// Provider verifies one gateway's callback payload and extracts the
// notification it carries.
type Provider interface {
	Name() string
	Verify(payload map[string]string) (*Notification, error)
}

// extraPayload is the booking reference we pack into the opaque extra-data
// field when creating a payment request.
type extraPayload struct {
	BookingID int64 `json:"bookingId"`
}

// decodeBookingRef extracts the booking id from an opaque extra-data value.
// Depending on provider and SDK version the field arrives base64-encoded or
// as a raw JSON string, so both decodings are tried before giving up.
func decodeBookingRef(extra string) (int64, error) {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return 0, model.ErrBookingNotFound
	}

	candidates := []string{extra}
	if decoded, err := base64.StdEncoding.DecodeString(extra); err == nil {
		candidates = append([]string{string(decoded)}, candidates...)
	}

	for _, c := range candidates {
		var p extraPayload
		if err := json.Unmarshal([]byte(c), &p); err == nil && p.BookingID > 0 {
			return p.BookingID, nil
		}
		// Some callers pass the booking id as a bare string.
		if id, err := strconv.ParseInt(strings.TrimSpace(c), 10, 64); err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, model.ErrBookingNotFound
}
