package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// @Summary Report a missing person
// @Description Public endpoint. Returns an MP tracking ID synchronously.
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Param report body models.MissingPersonReport true "Missing person report"
// @Success 201 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse "Validation error with every rejected field"
// @Failure 500 {object} ErrorResponse
// @Router /missing-persons [post]
func (h *Handler) reportMissingPerson(c *gin.Context) {
	var input models.MissingPersonReport
	log := h.logger.WithField("method", "reportMissingPerson")

	if !h.bindJSON(c, log, &input, false) {
		return
	}

	mp, err := h.missing.Report(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, MissingPersonToSubmissionResponse(mp))
}

// @Summary Get missing person case by ID
// @Tags MissingPersons
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Success 200 {object} models.MissingPersonCase
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /missing-persons/{id} [get]
func (h *Handler) getMissingPerson(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getMissingPerson").WithField("id", id)

	mp, err := h.missing.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mp)
}

// @Summary Mark a missing person as found
// @Description Idempotent.
// @Tags MissingPersons
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Success 200 {object} models.MissingPersonCase
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /missing-persons/{id}/found [post]
func (h *Handler) markMissingPersonFound(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "markMissingPersonFound").WithField("id", id)

	mp, err := h.missing.MarkFound(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mp)
}

// @Summary Close a missing person case
// @Tags MissingPersons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Param body body ReasonRequest true "Close reason"
// @Success 200 {object} models.MissingPersonCase
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /missing-persons/{id}/close [post]
func (h *Handler) closeMissingPerson(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "closeMissingPerson").WithField("id", id)

	var input ReasonRequest
	if !h.bindJSON(c, log, &input, false) {
		return
	}

	mp, err := h.missing.Close(c.Request.Context(), id, input.Reason)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mp)
}
