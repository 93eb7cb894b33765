package handler

import (
	"net/http"
	"strconv"

	"homestay-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateCoupon
// @Summary Create a coupon
// @Description Host-scoped coupons are owned by the creating host; global coupons require the system role
// @Tags coupons
// @Accept json
// @Produce json
// @Param user_id query int true "Creator user ID"
// @Param Actor-Role header string true "Actor role" Enums(guest, host, system)
// @Param coupon body model.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} model.Coupon
// @Failure 403 {object} model.ErrorResponse
// @Router /coupons [post]
func (h *Handler) CreateCoupon(c *gin.Context) {
	actorID, ok := queryUserID(c)
	if !ok {
		return
	}
	actor, ok := h.actorRole(c)
	if !ok {
		return
	}

	var req model.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	coupon, err := h.pricingService.CreateCoupon(c.Request.Context(), &req, actor, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// QuoteCoupon
// @Summary Validate a coupon and quote the discount
// @Tags coupons
// @Produce json
// @Param user_id query int true "Guest user ID"
// @Param code query string true "Coupon code"
// @Param base_total query int true "Base total in minor units"
// @Param host_id query int false "Host ID for host-scoped coupons"
// @Success 200 {object} model.Quote
// @Failure 400 {object} model.ErrorResponse "Coupon rejected"
// @Router /coupons/quote [get]
func (h *Handler) QuoteCoupon(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "code query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	baseTotal, err := strconv.ParseInt(c.Query("base_total"), 10, 64)
	if err != nil || baseTotal <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "base_total must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	hostID, _ := strconv.ParseInt(c.Query("host_id"), 10, 64)

	quote, err := h.pricingService.Quote(c.Request.Context(), code, baseTotal, userID, hostID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
