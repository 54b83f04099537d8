package http

// UpdateBookingBody is the PUT body: the two caller-mutable fields of a
// booking. Pointers so missing fields fail validation instead of silently
// becoming empty strings.
type UpdateBookingBody struct {
	Notes              *string `json:"notes"`
	BehaviouralMarkers *string `json:"behaviouralMarkers"`
}
