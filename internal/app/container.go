package app

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/api"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/booking"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/reservation"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/slot"
)

// Config holds the dependencies and settings required to start the
// application. Rand and Now are the only impurities of the whole stub;
// tests supply seeded/fixed values to make responses deterministic.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	SlotConfig   slot.Config
	Rand         *rand.Rand
	Now          func() time.Time
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// Slot module
	generator := slot.NewGenerator(cfg.SlotConfig, cfg.Rand)
	slotService := slot.NewService(generator, cfg.Now, cfg.Logger)

	// Reservation module
	reservationService := reservation.NewService(cfg.Logger)

	// Booking module
	bookingService := booking.NewService(cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		SlotService:        slotService,
		ReservationService: reservationService,
		BookingService:     bookingService,
	})

	return &Container{
		Router: router,
	}
}
