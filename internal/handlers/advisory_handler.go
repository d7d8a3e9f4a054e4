package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartwealth/internal/services"
)

// AdvisoryHandler handles AI advisory requests
type AdvisoryHandler struct {
	advisoryService services.AdvisoryServicer
}

// NewAdvisoryHandler creates a new AdvisoryHandler
func NewAdvisoryHandler(advisoryService services.AdvisoryServicer) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryService: advisoryService}
}

// GetAdvisory handles retrieving financial advice
// @Summary     Get financial advice
// @Description Generate personalized financial advice from the user's accounts
// @Description and recent transactions. When generation is unavailable, a fixed
// @Description set of general tips is returned with fallback set to true.
// @Tags        advisory
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} advisor.Result "Advisory payload"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /advisory [get]
func (h *AdvisoryHandler) GetAdvisory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result := h.advisoryService.Advise(c.Request.Context(), userID)
	c.JSON(http.StatusOK, result)
}
