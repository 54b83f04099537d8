package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectGlobalSentinels(t *testing.T) {
	// The first five sentinels fire regardless of request kind.
	kinds := []RequestKind{Slots, Reservations, ConfirmBooking, GetBooking}

	tests := []struct {
		name       string
		identifier string
		wantErr    error
	}{
		{"unauthorised", "123456-401", ErrUnauthorised},
		{"forbidden", "123456-403", ErrForbidden},
		{"too many requests", "123456-429", ErrTooManyRequests},
		{"internal server error", "123456-500", ErrInternalServer},
		{"service unavailable", "123456-503", ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range kinds {
				outcome, err := Inspect(tt.identifier, kind)
				assert.Equal(t, Proceed, outcome)
				assert.Equal(t, tt.wantErr, err)
			}
		})
	}
}

func TestInspectNotFoundVariants(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		kind       RequestKind
		wantErr    error
	}{
		{"not found on slots is a test centre 404", NotFound, Slots, ErrTestCentreNotFound},
		{"not found on confirm is a reservation 404", NotFound, ConfirmBooking, ErrReservationNotValid},
		{"not found on get booking is a reservation 404", NotFound, GetBooking, ErrReservationNotValid},
		{"not found on reservations is a no-op", NotFound, Reservations, nil},
		{"confirm not found only fires on confirm", ConfirmNotFound, ConfirmBooking, ErrTestCentreNotFound},
		{"confirm not found ignored on slots", ConfirmNotFound, Slots, nil},
		{"blank-404 on get booking is a test centre 404", ConfirmBlankGetNotFound, GetBooking, ErrTestCentreNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Inspect(tt.identifier, tt.kind)
			assert.Equal(t, Proceed, outcome)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestInspectBlankSentinelsSkipOnConfirm(t *testing.T) {
	for _, identifier := range []string{ConfirmBlank, ConfirmBlankGetNotFound} {
		outcome, err := Inspect(identifier, ConfirmBooking)
		require.NoError(t, err)
		assert.Equal(t, Skip, outcome)
	}

	// The plain blank sentinel means nothing outside confirm.
	outcome, err := Inspect(ConfirmBlank, GetBooking)
	require.NoError(t, err)
	assert.Equal(t, Proceed, outcome)
}

func TestInspectOrdinaryIdentifier(t *testing.T) {
	for _, kind := range []RequestKind{Slots, Reservations, ConfirmBooking, GetBooking} {
		outcome, err := Inspect("perfectly-normal-centre", kind)
		require.NoError(t, err)
		assert.Equal(t, Proceed, outcome)
	}
}

func TestTooManyRequestsCarriesRetryAfter(t *testing.T) {
	_, err := Inspect(TooManyRequests, Slots)
	require.Equal(t, ErrTooManyRequests, err)
	assert.Equal(t, "3600", ErrTooManyRequests.Headers["Retry-After"])
	assert.Equal(t, 429, ErrTooManyRequests.Code)
}
