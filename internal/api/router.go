package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/booking"
	bookingHttp "github.com/nekogravitycat/test-centre-booking-stub/internal/booking/http"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/reservation"
	reservationHttp "github.com/nekogravitycat/test-centre-booking-stub/internal/reservation/http"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/slot"
	slotHttp "github.com/nekogravitycat/test-centre-booking-stub/internal/slot/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	SlotService        slot.Service
	ReservationService reservation.Service
	BookingService     booking.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (Logger, metrics, Recovery, CORS) and registers
// the slot, reservation and booking routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// MetricsMiddleware sits outside Recovery on purpose: a panicking
	// request (the unknown-fault path) must still be counted as a 500.
	r.Use(gin.Logger(), MetricsMiddleware(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize HTTP handlers for each module (injecting Service dependencies).
	slotHandler := slotHttp.NewHandler(cfg.SlotService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	root := r.Group("")
	{
		slotHttp.RegisterRoutes(root, slotHandler)
		reservationHttp.RegisterRoutes(root, reservationHandler)
		bookingHttp.RegisterRoutes(root, bookingHandler)
	}

	return r
}
