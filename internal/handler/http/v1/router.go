package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Гражданские маршруты (подача SOS, заявление о пропавшем, отслеживание) публичные,
// остальное требует API-ключ.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/sos", h.submitSOS)
	api.POST("/missing-persons", h.reportMissingPerson)
	api.GET("/track", h.trackByCNIC)
	api.GET("/track/:trackingId", h.trackByID)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	staff := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	sos := staff.Group("/sos")
	{
		sos.GET("", h.listSOS)
		sos.GET("/:id", h.getSOS)
		sos.POST("/:id/triage", h.triageSOS)
		sos.POST("/:id/assign", h.assignSOS)
		sos.POST("/:id/resolve", h.resolveSOS)
		sos.POST("/:id/cancel", h.cancelSOS)
	}

	missing := staff.Group("/missing-persons")
	{
		missing.GET("/:id", h.getMissingPerson)
		missing.POST("/:id/found", h.markMissingPersonFound)
		missing.POST("/:id/close", h.closeMissingPerson)
	}

	allocations := staff.Group("/allocations")
	{
		allocations.POST("", h.submitAllocation)
		allocations.GET("/:id", h.getAllocation)
		allocations.POST("/:id/approve", h.approveAllocation)
		allocations.POST("/:id/reject", h.rejectAllocation)
		allocations.POST("/:id/fulfill", h.fulfillAllocation)
		allocations.POST("/:id/cancel", h.cancelAllocation)
	}

	authorities := staff.Group("/authorities")
	{
		authorities.GET("", h.listAuthorities)
		authorities.GET("/:authorityId/stock", h.listStock)
		authorities.GET("/:authorityId/stock/:resourceType", h.queryStock)
		authorities.POST("/:authorityId/stock/:resourceType/replenish", h.replenishStock)
		authorities.POST("/:authorityId/stock/:resourceType/consume", h.consumeStock)
		authorities.GET("/:authorityId/badges", h.getBadges)
		authorities.GET("/:authorityId/allocations/incoming", h.listIncomingAllocations)
		authorities.GET("/:authorityId/allocations/outgoing", h.listOutgoingAllocations)
	}
}
