package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/response"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

// Make handles POST /reservations with a batch of reservation requests.
func (h *Handler) Make(c *gin.Context) {
	var requests []reservation.Request
	if err := c.ShouldBindJSON(&requests); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	reservations, err := h.service.Make(c.Request.Context(), requests)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// Delete handles DELETE /reservations/:reservationId.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("reservationId")); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
