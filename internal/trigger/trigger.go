// Package trigger maps sentinel identifier values to simulated application
// errors. Consumers send magic strings in place of a real testCentreId,
// reservationId or bookingReferenceId to deterministically exercise an error
// path; everything else passes through untouched.
package trigger

import (
	"net/http"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
)

// Sentinel identifier values. These literals are a stable contract with API
// consumers and must not change.
const (
	Unauthorised            = "123456-401"
	Forbidden               = "123456-403"
	NotFound                = "123456-404"
	TooManyRequests         = "123456-429"
	InternalServerError     = "123456-500"
	ServiceUnavailable      = "123456-503"
	ConfirmNotFound         = "123456-404-confirm"
	ConfirmBlank            = "123456-blank"
	ConfirmBlankGetNotFound = "123456-blank-404"
)

// RequestKind tags which resource operation is asking, since a few sentinels
// only fire for specific operations.
type RequestKind int

const (
	Slots RequestKind = iota
	Reservations
	ConfirmBooking
	GetBooking
)

// Outcome reports what the caller should do when no error fired.
type Outcome int

const (
	// Proceed means the identifier is not a sentinel (or not one that
	// applies here) and processing continues normally.
	Proceed Outcome = iota
	// Skip means the item must be silently dropped from a batch response
	// without raising an error.
	Skip
)

// Simulated errors raised by sentinel identifiers.
var (
	ErrUnauthorised = apperror.New(http.StatusUnauthorized, "Unauthorised")
	ErrForbidden    = apperror.New(http.StatusForbidden, "Forbidden")
	ErrTooManyRequests = apperror.NewWithHeaders(
		http.StatusTooManyRequests, "Too Many Requests",
		map[string]string{"Retry-After": "3600"},
	)
	ErrInternalServer      = apperror.New(http.StatusInternalServerError, "Internal Server Error")
	ErrServiceUnavailable  = apperror.New(http.StatusServiceUnavailable, "Service Unavailable")
	ErrTestCentreNotFound  = apperror.New(http.StatusNotFound, "Test centre with given id not found")
	ErrReservationNotValid = apperror.New(http.StatusNotFound, "Reservation no longer valid")
)

// Inspect checks an identifier against the sentinel table for the given
// request kind. First match wins; the precedence below is part of the
// contract.
func Inspect(identifier string, kind RequestKind) (Outcome, error) {
	switch identifier {
	case Unauthorised:
		return Proceed, ErrUnauthorised
	case Forbidden:
		return Proceed, ErrForbidden
	case TooManyRequests:
		return Proceed, ErrTooManyRequests
	case InternalServerError:
		return Proceed, ErrInternalServer
	case ServiceUnavailable:
		return Proceed, ErrServiceUnavailable
	}

	if kind == Slots && identifier == NotFound {
		return Proceed, ErrTestCentreNotFound
	}

	if (kind == ConfirmBooking || kind == GetBooking) && identifier == NotFound {
		return Proceed, ErrReservationNotValid
	}

	if kind == ConfirmBooking && identifier == ConfirmNotFound {
		return Proceed, ErrTestCentreNotFound
	}

	if (identifier == ConfirmBlankGetNotFound || identifier == ConfirmBlank) && kind == ConfirmBooking {
		return Skip, nil
	}

	if identifier == ConfirmBlankGetNotFound && kind == GetBooking {
		return Proceed, ErrTestCentreNotFound
	}

	return Proceed, nil
}
