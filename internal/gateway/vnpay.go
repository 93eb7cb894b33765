package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"homestay-settlement/internal/model"
)

// VnpayProvider verifies VNPay-style return callbacks: HMAC-SHA512 over the
// URL-encoded "vnp_"-prefixed pairs sorted by key, excluding the hash fields
// themselves. Response code "00" means the payment succeeded.
type VnpayProvider struct {
	secretKey []byte
}

func NewVnpayProvider(secretKey string) *VnpayProvider {
	return &VnpayProvider{secretKey: []byte(secretKey)}
}

func (p *VnpayProvider) Name() string {
	return "vnpay"
}

func (p *VnpayProvider) Verify(payload map[string]string) (*Notification, error) {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		if strings.HasPrefix(key, "vnp_") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+url.QueryEscape(payload[key]))
	}
	raw := strings.Join(pairs, "&")

	mac := hmac.New(sha512.New, p.secretKey)
	mac.Write([]byte(raw))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(payload["vnp_SecureHash"])) {
		return nil, model.ErrInvalidSignature
	}

	bookingID, err := decodeBookingRef(payload["vnp_OrderInfo"])
	if err != nil {
		return nil, fmt.Errorf("decode order info: %w", err)
	}

	// vnp_Amount is the amount multiplied by 100 on the provider side.
	rawAmount, err := strconv.ParseInt(payload["vnp_Amount"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount %q", model.ErrInvalidAmount, payload["vnp_Amount"])
	}

	n := &Notification{
		Provider:   p.Name(),
		BookingID:  bookingID,
		GatewayRef: payload["vnp_TransactionNo"],
		Amount:     rawAmount / 100,
		Success:    payload["vnp_ResponseCode"] == "00",
	}
	if !n.Success {
		n.FailReason = "gateway response code " + payload["vnp_ResponseCode"]
	}
	return n, nil
}
