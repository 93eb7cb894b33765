package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homestay-settlement/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_Deposit_Success(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/wallets/deposit", f.handler.Deposit)

	f.wallets.On("Deposit", mock.Anything, int64(1), int64(500000), "bank_transfer").Return(&model.Transaction{
		Reference:    "ref-1",
		Amount:       500000,
		Type:         model.TypeDeposit,
		BalanceAfter: 500000,
		Status:       model.TxCompleted,
	}, nil)

	body, _ := json.Marshal(model.AmountRequest{Amount: 500000, PaymentMethod: "bank_transfer"})
	req, _ := http.NewRequest(http.MethodPost, "/wallets/deposit?user_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.Transaction
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(500000), resp.BalanceAfter)
}

func TestHandler_Withdraw_WalletLocked(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/wallets/withdraw", f.handler.Withdraw)

	f.wallets.On("Withdraw", mock.Anything, int64(1), int64(500000), "").Return(nil, model.ErrWalletLocked)

	body, _ := json.Marshal(model.AmountRequest{Amount: 500000})
	req, _ := http.NewRequest(http.MethodPost, "/wallets/withdraw?user_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "WALLET_LOCKED", resp.Code)
}

func TestHandler_ChargeMaintenanceFee_ReportsShortfall(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/wallets/maintenance-fee", f.handler.ChargeMaintenanceFee)

	f.wallets.On("ChargeMaintenanceFee", mock.Anything, int64(1), int64(75000)).Return(&model.MaintenanceFeeResult{
		Charged:             50000,
		InsufficientBalance: true,
		MissingAmount:       25000,
	}, nil)

	body, _ := json.Marshal(model.AmountRequest{Amount: 75000})
	req, _ := http.NewRequest(http.MethodPost, "/wallets/maintenance-fee?user_id=1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.MaintenanceFeeResult
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.InsufficientBalance)
	assert.Equal(t, int64(25000), resp.MissingAmount)
}
