package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.POST("", h.Confirm)
		group.GET("/:bookingReferenceId", h.Get)
		group.PUT("/:bookingReferenceId", h.Update)
		group.DELETE("/:bookingReferenceId", h.Delete)
	}
}
