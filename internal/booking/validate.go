package booking

import (
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
)

// Booking identifiers (booking references and reservation ids) are opaque
// strings of 10 to 72 characters inclusive.
const (
	minIDLength = 10
	maxIDLength = 72
)

const maxNotesLength = 4096

// ValidateBookingReferenceID checks a booking reference from the path.
func ValidateBookingReferenceID(bookingReferenceID string) error {
	if !idLengthInRange(bookingReferenceID) {
		return apperror.ErrBadRequest
	}
	return nil
}

// ValidateNotesAndBehaviouralMarkers requires both fields to be present
// strings of at most 4096 characters. Used for confirm requests and for
// the standalone notes update.
func ValidateNotesAndBehaviouralMarkers(notes, behaviouralMarkers *string) error {
	if notes == nil || len(*notes) > maxNotesLength {
		return apperror.ErrBadRequest
	}
	if behaviouralMarkers == nil || len(*behaviouralMarkers) > maxNotesLength {
		return apperror.ErrBadRequest
	}
	return nil
}

// ValidateConfirmRequest checks one confirm-batch entry. All failures
// collapse into the same BadRequest; there is no partial success.
func ValidateConfirmRequest(r ConfirmRequest) error {
	if err := ValidateNotesAndBehaviouralMarkers(r.Notes, r.BehaviouralMarkers); err != nil {
		return err
	}
	if !idLengthInRange(r.BookingReferenceID) || !idLengthInRange(r.ReservationID) {
		return apperror.ErrBadRequest
	}
	return nil
}

func idLengthInRange(id string) bool {
	return len(id) >= minIDLength && len(id) <= maxIDLength
}
