package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Лента, статистика и экспорт панели
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.submitIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/export", h.exportIncidents)
		incidents.GET("/live", h.liveFeed)
		incidents.GET("/:key", h.getIncident)
		incidents.GET("/:key/timeline", h.getTimeline)
		incidents.PATCH("/:key/status", h.updateStatus)
		incidents.PATCH("/:key/team", h.assignTeam)
		incidents.POST("/:key/notes", h.addNote)
		incidents.PATCH("/:key/location", h.updateLocation)
		incidents.DELETE("/:key/location", h.removeLocation)
	}

	// Отслеживание исходящих записей
	operations := api.Group("/operations")
	{
		operations.GET("", h.listOperations)
		operations.GET("/:id", h.getOperation)
		operations.POST("/:id/retry", h.retryOperation)
	}

	api.GET("/safety-tips", h.safetyTips)
	api.GET("/geocode/reverse", h.reverseGeocode)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
