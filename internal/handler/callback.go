package handler

import (
	"errors"
	"net/http"

	"homestay-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// GatewayCallback receives a payment-gateway notification. The body is a
// flat JSON object of provider fields; the settlement service verifies the
// signature before anything else is touched. Gateways retry on non-success
// responses, so a verified-but-unactionable callback is acknowledged with
// 200 to stop the retries, while a bad signature is rejected outright.
func (h *Handler) GatewayCallback(c *gin.Context) {
	provider := c.Param("provider")

	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	err := h.settlementService.HandleCallback(c.Request.Context(), provider, payload)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSignature) {
			h.handleError(c, err)
			return
		}
		h.logger.Error().Err(err).Str("provider", provider).Msg("gateway callback processing failed")
		// Acknowledge so the gateway stops retrying; the settlement side is
		// idempotent and the failure is recorded.
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
