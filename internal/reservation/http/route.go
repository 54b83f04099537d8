package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.POST("", h.Make)
		group.DELETE("/:reservationId", h.Delete)
	}
}
