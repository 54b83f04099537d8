package reservation

import (
	"net/http"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
)

// ErrSlotConflict is raised when a requested slot is already reserved.
var ErrSlotConflict = apperror.New(http.StatusConflict, "Conflict - slot no longer available")

// Fixed time-of-day markers recognised inside startDateTime values.
const (
	// reservedTimeOfDay simulates a slot that was taken between search
	// and reserve; any request at this time conflicts.
	reservedTimeOfDay = "11:00"
	// doubleBookingTimeOfDay reproduces an upstream override: requests at
	// this time always yield exactly two reservations, whatever quantity
	// was asked for. Quirk of the system being simulated, keep as is.
	doubleBookingTimeOfDay = "13:00"
)

// Request is one entry of a reserve-slots batch.
type Request struct {
	TestCentreID  string   `json:"testCentreId"`
	TestTypes     []string `json:"testTypes"`
	StartDateTime string   `json:"startDateTime"`
	Quantity      int      `json:"quantity"`
	LockTime      int      `json:"lockTime"`
}

// Response is one reserved unit. A request of quantity N produces N of
// these (subject to the double-booking override).
type Response struct {
	TestCentreID  string   `json:"testCentreId"`
	TestTypes     []string `json:"testTypes"`
	StartDateTime string   `json:"startDateTime"`
	ReservationID string   `json:"reservationId"`
}

// EffectiveQuantity is the number of response records the request expands
// into, after the double-booking override.
func (r Request) EffectiveQuantity() int {
	if isForcedDoubleBooking(r.StartDateTime) {
		return 2
	}
	return r.Quantity
}
