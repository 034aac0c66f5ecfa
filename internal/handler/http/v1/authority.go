package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// @Summary List authorities
// @Description The NDMA -> PDMA -> District directory. Requires API key.
// @Tags Authorities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Authority
// @Router /authorities [get]
func (h *Handler) listAuthorities(c *gin.Context) {
	c.JSON(http.StatusOK, h.authorities.All())
}

// @Summary List stock of an authority
// @Description Every resource type, including ones never stocked. Requires API key.
// @Tags Stock
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID"
// @Success 200 {array} StockResponse
// @Failure 404 {object} ErrorResponse
// @Router /authorities/{authorityId}/stock [get]
func (h *Handler) listStock(c *gin.Context) {
	authorityID := authorityParam(c)
	log := h.logger.WithField("method", "listStock").WithField("authority_id", authorityID)

	entries, err := h.ledger.List(c.Request.Context(), authorityID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToStockResponses(entries))
}

// @Summary Query stock of one resource
// @Tags Stock
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID"
// @Param resourceType path string true "Resource type" Enums(food, water, medical, shelter)
// @Success 200 {object} StockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /authorities/{authorityId}/stock/{resourceType} [get]
func (h *Handler) queryStock(c *gin.Context) {
	authorityID := authorityParam(c)
	log := h.logger.WithField("method", "queryStock").WithField("authority_id", authorityID)

	resourceType, err := resourceTypeParam(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	entry, err := h.ledger.Query(c.Request.Context(), authorityID, resourceType)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStockResponse(entry))
}

// @Summary Replenish stock
// @Description External intake of a resource at an authority.
// @Tags Stock
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID"
// @Param resourceType path string true "Resource type" Enums(food, water, medical, shelter)
// @Param body body StockChangeRequest true "Quantity"
// @Success 200 {object} StockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /authorities/{authorityId}/stock/{resourceType}/replenish [post]
func (h *Handler) replenishStock(c *gin.Context) {
	h.changeStock(c, "replenishStock", h.ledger.Replenish)
}

// @Summary Consume stock
// @Description Stock distributed in the field. Only the free quantity can be consumed.
// @Tags Stock
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID"
// @Param resourceType path string true "Resource type" Enums(food, water, medical, shelter)
// @Param body body StockChangeRequest true "Quantity"
// @Success 200 {object} StockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Router /authorities/{authorityId}/stock/{resourceType}/consume [post]
func (h *Handler) consumeStock(c *gin.Context) {
	h.changeStock(c, "consumeStock", h.ledger.Consume)
}

type stockChange func(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType, qty int64) (*models.StockEntry, error)

func (h *Handler) changeStock(c *gin.Context, method string, apply stockChange) {
	authorityID := authorityParam(c)
	log := h.logger.WithField("method", method).WithField("authority_id", authorityID)

	resourceType, err := resourceTypeParam(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	var input StockChangeRequest
	if !h.bindJSON(c, log, &input, false) {
		return
	}

	entry, err := apply(c.Request.Context(), authorityID, resourceType, input.Quantity)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStockResponse(entry))
}

// @Summary Dashboard badges
// @Description Pending incoming allocations, active SOS in jurisdiction and free stock per resource.
// @Tags Authorities
// @Produce json
// @Security ApiKeyAuth
// @Param authorityId path string true "Authority ID"
// @Success 200 {object} models.BadgeSnapshot
// @Failure 404 {object} ErrorResponse
// @Router /authorities/{authorityId}/badges [get]
func (h *Handler) getBadges(c *gin.Context) {
	authorityID := authorityParam(c)
	log := h.logger.WithField("method", "getBadges").WithField("authority_id", authorityID)

	snapshot, err := h.badges.Badges(c.Request.Context(), authorityID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
