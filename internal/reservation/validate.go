package reservation

import (
	"strings"
	"time"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
)

// ValidateRequest reports whether a reservation request is well-formed. It
// never raises; the caller turns false into a single BadRequest for the
// whole batch.
func ValidateRequest(r Request) bool {
	trimmed := strings.TrimSpace(r.TestCentreID)
	if trimmed == "" || len(r.TestCentreID) > 72 {
		return false
	}
	if !isParseableDateTime(r.StartDateTime) {
		return false
	}
	if len(r.TestTypes) < 1 {
		return false
	}
	return r.LockTime >= 1 && r.Quantity >= 1
}

// ValidateID checks a reservation identifier from the path: an opaque
// string of 10 to 72 characters inclusive.
func ValidateID(reservationID string) error {
	if len(reservationID) < 10 || len(reservationID) > 72 {
		return apperror.ErrBadRequest
	}
	return nil
}

// dateTimeLayouts accepts RFC 3339 plus the colon-less zone offset this API
// has historically emitted (e.g. "2020-07-02T11:00:00+0000").
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
}

func isParseableDateTime(value string) bool {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// IsSlotReserved reports whether the start time matches the reserved
// time-of-day marker. Textual match, as the contract specifies.
func IsSlotReserved(startDateTime string) bool {
	return strings.Contains(startDateTime, reservedTimeOfDay)
}

func isForcedDoubleBooking(startDateTime string) bool {
	return strings.Contains(startDateTime, doubleBookingTimeOfDay)
}
