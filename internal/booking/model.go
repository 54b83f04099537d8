package booking

// ConfirmRequest is one entry of a confirm-bookings batch. Notes and
// behavioural markers are pointers so that an absent field can be told
// apart from an empty string; both are required.
type ConfirmRequest struct {
	BookingReferenceID string  `json:"bookingReferenceId"`
	ReservationID      string  `json:"reservationId"`
	Notes              *string `json:"notes"`
	BehaviouralMarkers *string `json:"behaviouralMarkers"`
}

// ConfirmResult is the per-item outcome of a confirm batch.
type ConfirmResult struct {
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// FullResponse is a complete booking record: the caller-supplied mutable
// fields merged with the canned static attributes below.
type FullResponse struct {
	BookingReferenceID string   `json:"bookingReferenceId"`
	ReservationID      string   `json:"reservationId"`
	TestCentreID       string   `json:"testCentreId"`
	StartDateTime      string   `json:"startDateTime"`
	TestTypes          []string `json:"testTypes"`
	Notes              string   `json:"notes"`
	BehaviouralMarkers string   `json:"behaviouralMarkers"`
}

// Canned static booking attributes. There is no store behind this API;
// every full read reports the same simulated booking details.
const (
	staticReservationID = "5050302b-e9f5-476e-b22b-6856a8026e81"
	staticTestCentreID  = "test-centre"
	staticStartDateTime = "2021-10-02T09:15:00+0000"
)

func newFullResponse(bookingReferenceID, notes, behaviouralMarkers string) *FullResponse {
	return &FullResponse{
		BookingReferenceID: bookingReferenceID,
		ReservationID:      staticReservationID,
		TestCentreID:       staticTestCentreID,
		StartDateTime:      staticStartDateTime,
		TestTypes:          []string{"Car"},
		Notes:              notes,
		BehaviouralMarkers: behaviouralMarkers,
	}
}
