package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// @Summary Submit an SOS request
// @Description Public endpoint for civilians. Returns the tracking ID synchronously.
// @Tags SOS
// @Accept json
// @Produce json
// @Param sos body models.SOSSubmission true "SOS payload"
// @Success 201 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse "Validation error with every rejected field"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sos [post]
func (h *Handler) submitSOS(c *gin.Context) {
	var input models.SOSSubmission
	log := h.logger.WithField("method", "submitSOS")

	if !h.bindJSON(c, log, &input, false) {
		return
	}

	req, err := h.sos.Submit(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SOSToSubmissionResponse(req))
}

// @Summary List SOS requests
// @Description Paginated SOS list ordered by priority score, then arrival. Requires API key.
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param provinceId query int false "Province filter"
// @Param districtId query int false "District filter"
// @Param status query string false "Status filter" Enums(submitted, triaged, assigned, resolved, cancelled)
// @Param activeOnly query bool false "Only non-terminal requests"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} SOSListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sos [get]
func (h *Handler) listSOS(c *gin.Context) {
	log := h.logger.WithField("method", "listSOS")

	filter := models.SOSFilter{}
	filter.ProvinceID, _ = strconv.Atoi(c.Query("provinceId"))
	filter.DistrictID, _ = strconv.Atoi(c.Query("districtId"))
	filter.ActiveOnly, _ = strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseSOSStatus(raw)
		if err != nil {
			h.writeError(c, log, models.NewValidationError("status", "oneof", "must be one of submitted triaged assigned resolved cancelled"))
			return
		}
		filter.Status = status
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = models.NormalizePage(page, pageSize)

	requests, total, err := h.sos.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SOSListResponse{Items: requests, Total: total, Page: page, PageSize: pageSize})
}

// @Summary Get SOS request by ID
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "SOS ID"
// @Success 200 {object} models.SOSRequest
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "SOS request not found"
// @Router /sos/{id} [get]
func (h *Handler) getSOS(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSOS").WithField("id", id)

	req, err := h.sos.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Triage an SOS request
// @Description Moves submitted -> triaged and fixes the priority score. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "SOS ID"
// @Param body body TriageRequest false "Optional urgency override"
// @Success 200 {object} models.SOSRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition or concurrent modification"
// @Router /sos/{id}/triage [post]
func (h *Handler) triageSOS(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "triageSOS").WithField("id", id)

	var input TriageRequest
	if !h.bindJSON(c, log, &input, true) {
		return
	}

	req, err := h.sos.Triage(c.Request.Context(), id, input.UrgencyOverride)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Assign a response team
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "SOS ID"
// @Param body body AssignRequest true "Team"
// @Success 200 {object} models.SOSRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sos/{id}/assign [post]
func (h *Handler) assignSOS(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignSOS").WithField("id", id)

	var input AssignRequest
	if !h.bindJSON(c, log, &input, false) {
		return
	}

	req, err := h.sos.Assign(c.Request.Context(), id, input.TeamID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Resolve an SOS request
// @Description Idempotent: resolving a resolved request returns it unchanged.
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "SOS ID"
// @Success 200 {object} models.SOSRequest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sos/{id}/resolve [post]
func (h *Handler) resolveSOS(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveSOS").WithField("id", id)

	req, err := h.sos.Resolve(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Cancel an SOS request
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "SOS ID"
// @Param body body ReasonRequest true "Cancellation reason"
// @Success 200 {object} models.SOSRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sos/{id}/cancel [post]
func (h *Handler) cancelSOS(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "cancelSOS").WithField("id", id)

	var input ReasonRequest
	if !h.bindJSON(c, log, &input, false) {
		return
	}

	req, err := h.sos.Cancel(c.Request.Context(), id, input.Reason)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
