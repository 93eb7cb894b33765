package handler

import (
	"net/http"
	"strconv"

	"homestay-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return id, true
}

func queryUserID(c *gin.Context) (int64, bool) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

// actorRole resolves the closed actor role set once at the boundary.
func (h *Handler) actorRole(c *gin.Context) (model.Actor, bool) {
	actor, err := model.ParseActor(c.GetHeader("Actor-Role"))
	if err != nil {
		h.handleError(c, err)
		return "", false
	}
	return actor, true
}

// CreateBooking
// @Summary Create a booking
// @Description Validates capacity, dates, availability and coupon, then creates a pending unpaid booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param user_id query int true "Guest user ID"
// @Param booking body model.CreateBookingRequest true "Booking details"
// @Success 201 {object} model.Booking
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Room conflict"
// @Router /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	guestID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &req, guestID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBooking
// @Summary Get a booking by id
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} model.Booking
// @Failure 404 {object} model.ErrorResponse
// @Router /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CheckRoomAvailability
// @Summary Check room availability for a date range
// @Tags bookings
// @Produce json
// @Param room_id query int true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /bookings/availability [get]
func (h *Handler) CheckRoomAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "room_id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.bookingService.CheckRoomAvailability(c.Request.Context(), roomID, c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PayWithWallet
// @Summary Pay a booking from the guest wallet
// @Description Debits the guest wallet and credits the host wallet atomically, confirming the booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Param user_id query int true "Guest user ID"
// @Success 200 {object} model.Booking
// @Failure 400 {object} model.ErrorResponse "Insufficient balance"
// @Failure 409 {object} model.ErrorResponse "Already paid"
// @Router /bookings/{id}/pay [post]
func (h *Handler) PayWithWallet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	guestID, ok := queryUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.PayWithWallet(c.Request.Context(), id, guestID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdatePaymentStatus
// @Summary Transition a booking's payment status
// @Description Idempotent: repeating the current status is a no-op; pending→paid settles the host payout
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param transition body model.PaymentStatusRequest true "Target status"
// @Success 200 {object} model.Booking
// @Failure 409 {object} model.ErrorResponse "Invalid transition"
// @Router /bookings/{id}/payment-status [post]
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	status, err := model.ParsePaymentStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.UpdatePaymentStatus(c.Request.Context(), id, status, req.GatewayRef)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ProcessHostPayment settles the host payout for a paid booking. Guarded by
// the payout marker, so a double call returns 409.
func (h *Handler) ProcessHostPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.ProcessHostPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking
// @Summary Cancel a booking
// @Description Applies the refund-percentage policy for the acting role; a refund failure is recorded, never blocks cancellation
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param user_id query int true "Acting user ID"
// @Param Actor-Role header string true "Actor role" Enums(guest, host, system)
// @Param cancellation body model.CancelBookingRequest false "Reason"
// @Success 200 {object} model.Booking
// @Failure 403 {object} model.ErrorResponse
// @Router /bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actorID, ok := queryUserID(c)
	if !ok {
		return
	}
	actor, ok := h.actorRole(c)
	if !ok {
		return
	}

	var req model.CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, actor, actorID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// RequestRefund opens a guest refund request on a paid, confirmed booking.
func (h *Handler) RequestRefund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	guestID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.RequestRefund(c.Request.Context(), id, guestID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ProcessRefundDecision lets the host approve or reject a pending refund
// request. Approval executes the two-leg transfer atomically.
func (h *Handler) ProcessRefundDecision(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	hostID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.RefundDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	booking, err := h.bookingService.ProcessHostRefundRequest(c.Request.Context(), id, hostID, req.Approve, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ProcessManualRefund retries a rejected refund. Operator path.
func (h *Handler) ProcessManualRefund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.ProcessManualRefund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
