package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// @Summary Track a case by tracking ID
// @Description Public lookup. The prefix is case-insensitive.
// @Tags Tracking
// @Produce json
// @Param trackingId path string true "Tracking ID, e.g. SOS-2025-0001"
// @Success 200 {object} models.CaseSummary
// @Failure 404 {object} ErrorResponse "Unknown tracking ID"
// @Router /track/{trackingId} [get]
func (h *Handler) trackByID(c *gin.Context) {
	trackingID := c.Param("trackingId")
	log := h.logger.WithField("method", "trackByID").WithField("tracking_id", trackingID)

	summary, err := h.lookup.ByTrackingID(c.Request.Context(), trackingID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Track cases by CNIC
// @Description Public lookup of every case filed with the CNIC, newest first.
// @Tags Tracking
// @Produce json
// @Param cnic query string true "13-digit CNIC without dashes"
// @Success 200 {array} models.CaseSummary
// @Failure 400 {object} ErrorResponse "Malformed CNIC"
// @Router /track [get]
func (h *Handler) trackByCNIC(c *gin.Context) {
	log := h.logger.WithField("method", "trackByCNIC")

	summaries, err := h.lookup.ByCNIC(c.Request.Context(), c.Query("cnic"))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	if summaries == nil {
		summaries = []*models.CaseSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}
