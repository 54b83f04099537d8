package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/response"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/slot"
)

type Handler struct {
	service slot.Service
}

func NewHandler(service slot.Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /slots/:testCentreId. Query values are handed to the
// service unparsed; it owns validation and the sentinel checks.
func (h *Handler) Get(c *gin.Context) {
	req := slot.Request{
		TestCentreID:  c.Param("testCentreId"),
		TestTypes:     c.Query("testTypes"),
		DateFrom:      c.Query("dateFrom"),
		DateTo:        c.Query("dateTo"),
		PreferredDate: c.Query("preferredDate"),
	}

	records, err := h.service.GetSlots(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
