package handler

import (
	"errors"
	"net/http"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	bookingService    service.BookingService
	walletService     service.WalletService
	pricingService    service.PricingService
	settlementService service.SettlementService
	logger            zerolog.Logger
}

func NewHandler(
	bookingService service.BookingService,
	walletService service.WalletService,
	pricingService service.PricingService,
	settlementService service.SettlementService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		bookingService:    bookingService,
		walletService:     walletService,
		pricingService:    pricingService,
		settlementService: settlementService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	bookings := v1.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("/availability", h.CheckRoomAvailability)
	bookings.GET("/:id", h.GetBooking)
	bookings.POST("/:id/pay", h.PayWithWallet)
	bookings.POST("/:id/payment-status", h.UpdatePaymentStatus)
	bookings.POST("/:id/host-payment", h.ProcessHostPayment)
	bookings.POST("/:id/cancel", h.CancelBooking)
	bookings.POST("/:id/refund-request", h.RequestRefund)
	bookings.POST("/:id/refund-decision", h.ProcessRefundDecision)
	bookings.POST("/:id/manual-refund", h.ProcessManualRefund)

	wallets := v1.Group("/wallets")
	wallets.GET("", h.GetWallet)
	wallets.GET("/transactions", h.GetTransactions)
	wallets.POST("/deposit", h.Deposit)
	wallets.POST("/withdraw", h.Withdraw)
	wallets.POST("/maintenance-fee", h.ChargeMaintenanceFee)
	wallets.POST("/lock", h.LockWallet)
	wallets.POST("/unlock", h.UnlockWallet)

	coupons := v1.Group("/coupons")
	coupons.POST("", h.CreateCoupon)
	coupons.GET("/quote", h.QuoteCoupon)

	callbacks := v1.Group("/callbacks")
	callbacks.POST("/:provider", h.GatewayCallback)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInvalidDateRange):
		status = http.StatusBadRequest
		code = "INVALID_DATE_RANGE"
	case errors.Is(err, model.ErrCapacityExceeded):
		status = http.StatusBadRequest
		code = "CAPACITY_EXCEEDED"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidActor):
		status = http.StatusBadRequest
		code = "INVALID_ACTOR"
	case errors.Is(err, model.ErrInvalidPaymentStatus):
		status = http.StatusBadRequest
		code = "INVALID_PAYMENT_STATUS"
	case errors.Is(err, model.ErrInvalidTransition):
		status = http.StatusConflict
		code = "INVALID_TRANSITION"
	case errors.Is(err, model.ErrRoomConflict):
		status = http.StatusConflict
		code = "ROOM_CONFLICT"
	case errors.Is(err, model.ErrCoupon):
		status = http.StatusBadRequest
		code = "COUPON_REJECTED"
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrWalletLocked):
		status = http.StatusForbidden
		code = "WALLET_LOCKED"
	case errors.Is(err, model.ErrDuplicateSettlement):
		status = http.StatusConflict
		code = "DUPLICATE_SETTLEMENT"
	case errors.Is(err, model.ErrRefundPolicy):
		status = http.StatusConflict
		code = "REFUND_POLICY"
	case errors.Is(err, model.ErrInvalidSignature):
		status = http.StatusUnauthorized
		code = "INVALID_SIGNATURE"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusForbidden
		code = "UNAUTHORIZED_ACTION"
	case errors.Is(err, model.ErrBookingNotFound):
		status = http.StatusNotFound
		code = "BOOKING_NOT_FOUND"
	case errors.Is(err, model.ErrWalletNotFound):
		status = http.StatusNotFound
		code = "WALLET_NOT_FOUND"
	case errors.Is(err, model.ErrRoomNotFound):
		status = http.StatusNotFound
		code = "ROOM_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}
