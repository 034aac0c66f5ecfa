package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
)

func parseAllocationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) statusFilter(c *gin.Context, log *logrus.Entry) (models.AllocationStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return "", true
	}
	status, err := models.ParseAllocationStatus(raw)
	if err != nil {
		h.writeError(c, log, models.NewValidationError("status", "oneof", "must be one of pending approved rejected fulfilled cancelled"))
		return "", false
	}
	return status, true
}

// @Summary Submit an allocation request
// @Description A child authority asks its direct parent for resources. Requires API key.
// @Tags Allocations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AllocationSubmitRequest true "Allocation request"
// @Success 201 {object} models.AllocationRequest
// @Failure 400 {object} ErrorResponse "Validation error with every rejected field"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /allocations [post]
func (h *Handler) submitAllocation(c *gin.Context) {
	var input AllocationSubmitRequest
	log := h.logger.WithField("method", "submitAllocation")

	if !h.bindJSON(c, log, &input, false) {
		return
	}

	req, err := h.allocations.Submit(c.Request.Context(), DTOToAllocationSubmission(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// @Summary Get allocation request by ID
// @Tags Allocations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Allocation ID"
// @Success 200 {object} models.AllocationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /allocations/{id} [get]
func (h *Handler) getAllocation(c *gin.Context) {
	id, ok := parseAllocationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAllocation").WithField("id", id)

	req, err := h.allocations.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary List incoming allocation requests
// @Description Requests addressed to the authority, first-come-first-served.
// @Tags Allocations
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID, e.g. pdma:1"
// @Param status query string false "Status filter" Enums(pending, approved, rejected, fulfilled, cancelled)
// @Success 200 {array} models.AllocationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /authorities/{authorityId}/allocations/incoming [get]
func (h *Handler) listIncomingAllocations(c *gin.Context) {
	authorityID := authorityParam(c)
	log := h.logger.WithField("method", "listIncomingAllocations").WithField("authority_id", authorityID)

	status, ok := h.statusFilter(c, log)
	if !ok {
		return
	}
	requests, err := h.allocations.ListIncoming(c.Request.Context(), authorityID, status)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary List outgoing allocation requests
// @Tags Allocations
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID, e.g. district:1:5"
// @Param status query string false "Status filter" Enums(pending, approved, rejected, fulfilled, cancelled)
// @Success 200 {array} models.AllocationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /authorities/{authorityId}/allocations/outgoing [get]
func (h *Handler) listOutgoingAllocations(c *gin.Context) {
	authorityID := authorityParam(c)
	log := h.logger.WithField("method", "listOutgoingAllocations").WithField("authority_id", authorityID)

	status, ok := h.statusFilter(c, log)
	if !ok {
		return
	}
	requests, err := h.allocations.ListOutgoing(c.Request.Context(), authorityID, status)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary Approve an allocation request
// @Description Reserves stock at the target. Insufficient stock leaves the request pending.
// @Tags Allocations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Allocation ID"
// @Param body body DecisionRequest true "Decision"
// @Success 200 {object} models.AllocationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Router /allocations/{id}/approve [post]
func (h *Handler) approveAllocation(c *gin.Context) {
	id, ok := parseAllocationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "approveAllocation").WithField("id", id)

	var input DecisionRequest
	if !h.bindJSON(c, log, &input, false) {
		return
	}

	req, err := h.allocations.Approve(c.Request.Context(), id, input.DecidedBy)
	if err != nil {
		if service.IsInsufficientStock(err) {
			log = log.WithField("outcome", "stays_pending")
		}
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Reject an allocation request
// @Tags Allocations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Allocation ID"
// @Param body body DecisionRequest true "Decision with reason"
// @Success 200 {object} models.AllocationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /allocations/{id}/reject [post]
func (h *Handler) rejectAllocation(c *gin.Context) {
	id, ok := parseAllocationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "rejectAllocation").WithField("id", id)

	var input DecisionRequest
	if !h.bindJSON(c, log, &input, false) {
		return
	}

	req, err := h.allocations.Reject(c.Request.Context(), id, input.DecidedBy, input.Reason)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Fulfill an approved allocation request
// @Description Commits the reservation: stock moves from target to requester.
// @Tags Allocations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Allocation ID"
// @Success 200 {object} models.AllocationRequest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /allocations/{id}/fulfill [post]
func (h *Handler) fulfillAllocation(c *gin.Context) {
	id, ok := parseAllocationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "fulfillAllocation").WithField("id", id)

	req, err := h.allocations.Fulfill(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// @Summary Cancel an allocation request
// @Description Releases the reservation when the request was approved.
// @Tags Allocations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Allocation ID"
// @Param body body ReasonRequest false "Optional reason"
// @Success 200 {object} models.AllocationRequest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /allocations/{id}/cancel [post]
func (h *Handler) cancelAllocation(c *gin.Context) {
	id, ok := parseAllocationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "cancelAllocation").WithField("id", id)

	var input ReasonRequest
	if !h.bindJSON(c, log, &input, true) {
		return
	}

	req, err := h.allocations.Cancel(c.Request.Context(), id, input.Reason)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
