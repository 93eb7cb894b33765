package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"homestay-settlement/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func momoSign(payload map[string]string, accessKey, secretKey string) string {
	raw := "accessKey=" + accessKey
	for _, key := range momoSignedFields {
		raw += "&" + key + "=" + payload[key]
	}
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestMomoVerify_ValidSignature(t *testing.T) {
	p := NewMomoProvider("HOMESTAY", "access", "secret")

	payload := map[string]string{
		"partnerCode": "HOMESTAY",
		"orderId":     "order-1",
		"amount":      "1850000",
		"transId":     "MOMO123",
		"resultCode":  "0",
		"message":     "Successful.",
		"extraData":   base64.StdEncoding.EncodeToString([]byte(`{"bookingId":42}`)),
	}
	payload["signature"] = momoSign(payload, "access", "secret")

	n, err := p.Verify(payload)

	require.NoError(t, err)
	assert.Equal(t, "momo", n.Provider)
	assert.Equal(t, int64(42), n.BookingID)
	assert.Equal(t, "MOMO123", n.GatewayRef)
	assert.Equal(t, int64(1850000), n.Amount)
	assert.True(t, n.Success)
}

func TestMomoVerify_FailureResult(t *testing.T) {
	p := NewMomoProvider("HOMESTAY", "access", "secret")

	payload := map[string]string{
		"partnerCode": "HOMESTAY",
		"amount":      "1850000",
		"transId":     "MOMO124",
		"resultCode":  "1006",
		"message":     "Transaction denied by user.",
		"extraData":   base64.StdEncoding.EncodeToString([]byte(`{"bookingId":42}`)),
	}
	payload["signature"] = momoSign(payload, "access", "secret")

	n, err := p.Verify(payload)

	require.NoError(t, err)
	assert.False(t, n.Success)
	assert.Equal(t, "Transaction denied by user.", n.FailReason)
}

func TestMomoVerify_TamperedAmount(t *testing.T) {
	p := NewMomoProvider("HOMESTAY", "access", "secret")

	payload := map[string]string{
		"partnerCode": "HOMESTAY",
		"amount":      "1850000",
		"transId":     "MOMO125",
		"resultCode":  "0",
		"extraData":   base64.StdEncoding.EncodeToString([]byte(`{"bookingId":42}`)),
	}
	payload["signature"] = momoSign(payload, "access", "secret")
	payload["amount"] = "1"

	_, err := p.Verify(payload)

	assert.ErrorIs(t, err, model.ErrInvalidSignature)
}

func TestMomoVerify_PartnerCodeMismatch(t *testing.T) {
	p := NewMomoProvider("HOMESTAY", "access", "secret")

	payload := map[string]string{
		"partnerCode": "SOMEONE_ELSE",
		"amount":      "1850000",
		"transId":     "MOMO126",
		"resultCode":  "0",
		"extraData":   base64.StdEncoding.EncodeToString([]byte(`{"bookingId":42}`)),
	}
	payload["signature"] = momoSign(payload, "access", "secret")

	_, err := p.Verify(payload)

	assert.ErrorIs(t, err, model.ErrInvalidSignature)
}
