package handler

import (
	"net/http"
	"strconv"

	"homestay-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// GetWallet
// @Summary Get a user's wallet
// @Description Wallets are created lazily on first access
// @Tags wallets
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} model.Wallet
// @Failure 400 {object} model.ErrorResponse
// @Router /wallets [get]
func (h *Handler) GetWallet(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	wallet, err := h.walletService.GetWallet(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// GetTransactions
// @Summary List a wallet's ledger entries
// @Tags wallets
// @Produce json
// @Param user_id query int true "User ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /wallets/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	transactions, err := h.walletService.GetTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Limit:        limit,
		Offset:       offset,
	})
}

// Deposit
// @Summary Deposit into a wallet
// @Tags wallets
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param deposit body model.AmountRequest true "Amount in minor units"
// @Success 201 {object} model.Transaction
// @Failure 403 {object} model.ErrorResponse "Wallet locked"
// @Router /wallets/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.walletService.Deposit(c.Request.Context(), userID, req.Amount, req.PaymentMethod)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trans)
}

// Withdraw
// @Summary Withdraw from a wallet
// @Tags wallets
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param withdrawal body model.AmountRequest true "Amount in minor units"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Insufficient balance"
// @Router /wallets/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.walletService.Withdraw(c.Request.Context(), userID, req.Amount, req.PaymentMethod)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trans)
}

// ChargeMaintenanceFee deducts up to the fee, clamping the balance at zero,
// and reports any shortfall.
func (h *Handler) ChargeMaintenanceFee(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	result, err := h.walletService.ChargeMaintenanceFee(c.Request.Context(), userID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) LockWallet(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	if err := h.walletService.LockWallet(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "locked"})
}

func (h *Handler) UnlockWallet(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	if err := h.walletService.UnlockWallet(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "active"})
}
