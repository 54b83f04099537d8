package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/slots")
	{
		group.GET("/:testCentreId", h.Get)
	}
}
