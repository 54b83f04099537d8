package reservation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/trigger"
)

// Service implements the reservations stub: batch reserve and delete.
type Service interface {
	Make(ctx context.Context, requests []Request) ([]Response, error)
	Delete(ctx context.Context, reservationID string) error
}

type service struct {
	logger *zap.Logger
}

// NewService creates a reservation Service.
func NewService(logger *zap.Logger) Service {
	return &service{logger: logger}
}

// Make validates the whole batch first and only then expands it: any
// invalid request, reserved slot or sentinel error rejects every request.
func (s *service) Make(_ context.Context, requests []Request) ([]Response, error) {
	for _, r := range requests {
		if !ValidateRequest(r) {
			return nil, apperror.ErrBadRequest
		}
		if IsSlotReserved(r.StartDateTime) {
			return nil, ErrSlotConflict
		}
		if _, err := trigger.Inspect(r.TestCentreID, trigger.Reservations); err != nil {
			return nil, err
		}
	}

	reservations := make([]Response, 0, len(requests))
	for _, r := range requests {
		for i := 0; i < r.EffectiveQuantity(); i++ {
			reservations = append(reservations, Response{
				TestCentreID:  r.TestCentreID,
				TestTypes:     r.TestTypes,
				StartDateTime: r.StartDateTime,
				ReservationID: uuid.NewString(),
			})
		}
	}

	s.logger.Info("reservations made",
		zap.Int("requests", len(requests)),
		zap.Int("reservations", len(reservations)),
	)

	return reservations, nil
}

// Delete validates the identifier and runs the sentinel checks. The
// explicit not-found check below exists only on delete, nowhere else.
func (s *service) Delete(_ context.Context, reservationID string) error {
	if err := ValidateID(reservationID); err != nil {
		return err
	}
	if reservationID == trigger.NotFound {
		return trigger.ErrReservationNotValid
	}
	_, err := trigger.Inspect(reservationID, trigger.Reservations)
	return err
}
