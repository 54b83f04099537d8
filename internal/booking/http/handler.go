package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/booking"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Confirm handles POST /bookings with a batch of confirmation requests.
func (h *Handler) Confirm(c *gin.Context) {
	var requests []booking.ConfirmRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	bookings, err := h.service.Confirm(c.Request.Context(), requests)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /bookings/:bookingReferenceId.
func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("bookingReferenceId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// Update handles PUT /bookings/:bookingReferenceId.
func (h *Handler) Update(c *gin.Context) {
	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("bookingReferenceId"), body.Notes, body.BehaviouralMarkers)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /bookings/:bookingReferenceId.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("bookingReferenceId")); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
