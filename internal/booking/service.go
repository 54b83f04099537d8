package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/trigger"
)

// Service implements the bookings stub: batch confirmation and simulated
// reads, updates and deletes of single bookings.
type Service interface {
	Confirm(ctx context.Context, requests []ConfirmRequest) ([]ConfirmResult, error)
	Get(ctx context.Context, bookingReferenceID string) (*FullResponse, error)
	Update(ctx context.Context, bookingReferenceID string, notes, behaviouralMarkers *string) (*FullResponse, error)
	Delete(ctx context.Context, bookingReferenceID string) error
}

type service struct {
	logger *zap.Logger
}

// NewService creates a booking Service.
func NewService(logger *zap.Logger) Service {
	return &service{logger: logger}
}

// Confirm processes each item of the batch independently. A blank sentinel
// drops just that item from the result; any other sentinel error aborts the
// whole batch.
func (s *service) Confirm(_ context.Context, requests []ConfirmRequest) ([]ConfirmResult, error) {
	bookings := make([]ConfirmResult, 0, len(requests))
	for _, r := range requests {
		if err := ValidateConfirmRequest(r); err != nil {
			return nil, err
		}

		outcome, err := trigger.Inspect(r.ReservationID, trigger.ConfirmBooking)
		if err != nil {
			return nil, err
		}
		if outcome == trigger.Skip {
			s.logger.Warn("dropping booking from confirm batch",
				zap.String("reservationId", r.ReservationID),
			)
			continue
		}

		bookings = append(bookings, ConfirmResult{
			ReservationID: r.ReservationID,
			Status:        "200",
			Message:       "Success",
		})
	}
	return bookings, nil
}

func (s *service) Get(_ context.Context, bookingReferenceID string) (*FullResponse, error) {
	if err := ValidateBookingReferenceID(bookingReferenceID); err != nil {
		return nil, err
	}
	if _, err := trigger.Inspect(bookingReferenceID, trigger.GetBooking); err != nil {
		return nil, err
	}
	return newFullResponse(bookingReferenceID, "", ""), nil
}

func (s *service) Update(_ context.Context, bookingReferenceID string, notes, behaviouralMarkers *string) (*FullResponse, error) {
	if err := ValidateBookingReferenceID(bookingReferenceID); err != nil {
		return nil, err
	}
	if _, err := trigger.Inspect(bookingReferenceID, trigger.ConfirmBooking); err != nil {
		return nil, err
	}
	if err := ValidateNotesAndBehaviouralMarkers(notes, behaviouralMarkers); err != nil {
		return nil, err
	}
	return newFullResponse(bookingReferenceID, *notes, *behaviouralMarkers), nil
}

func (s *service) Delete(_ context.Context, bookingReferenceID string) error {
	if err := ValidateBookingReferenceID(bookingReferenceID); err != nil {
		return err
	}
	_, err := trigger.Inspect(bookingReferenceID, trigger.ConfirmBooking)
	return err
}
