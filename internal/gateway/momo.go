package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"homestay-settlement/internal/model"
)

// momoSignedFields are the payload keys included in the IPN signature, in
// the canonical order the provider documents.
var momoSignedFields = []string{
	"amount", "extraData", "message", "orderId", "orderInfo", "orderType",
	"partnerCode", "payType", "requestId", "responseTime", "resultCode", "transId",
}

// MomoProvider verifies MoMo-style IPN callbacks: HMAC-SHA256 over
// "key=value&"-joined pairs in documented field order, prefixed with the
// access key. resultCode 0 means the payment succeeded.
type MomoProvider struct {
	partnerCode string
	accessKey   string
	secretKey   []byte
}

func NewMomoProvider(partnerCode, accessKey, secretKey string) *MomoProvider {
	return &MomoProvider{
		partnerCode: partnerCode,
		accessKey:   accessKey,
		secretKey:   []byte(secretKey),
	}
}

func (p *MomoProvider) Name() string {
	return "momo"
}

func (p *MomoProvider) Verify(payload map[string]string) (*Notification, error) {
	raw := "accessKey=" + p.accessKey
	for _, key := range momoSignedFields {
		raw += "&" + key + "=" + payload[key]
	}

	mac := hmac.New(sha256.New, p.secretKey)
	mac.Write([]byte(raw))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(payload["signature"])) {
		return nil, model.ErrInvalidSignature
	}
	if p.partnerCode != "" && payload["partnerCode"] != p.partnerCode {
		return nil, fmt.Errorf("%w: partner code mismatch", model.ErrInvalidSignature)
	}

	bookingID, err := decodeBookingRef(payload["extraData"])
	if err != nil {
		return nil, fmt.Errorf("decode extra data: %w", err)
	}

	amount, err := strconv.ParseInt(payload["amount"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount %q", model.ErrInvalidAmount, payload["amount"])
	}

	n := &Notification{
		Provider:   p.Name(),
		BookingID:  bookingID,
		GatewayRef: payload["transId"],
		Amount:     amount,
		Success:    payload["resultCode"] == "0",
	}
	if !n.Success {
		n.FailReason = payload["message"]
	}
	return n, nil
}
