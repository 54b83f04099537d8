package slot

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/trigger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(seed int64) Service {
	gen := NewGenerator(DefaultConfig(), rand.New(rand.NewSource(seed)))
	return NewService(gen, func() time.Time { return fixedNow }, zap.NewNop())
}

func validRequest() Request {
	return Request{
		TestCentreID: "test-centre",
		TestTypes:    `["Car"]`,
		DateFrom:     "2026-03-02",
		DateTo:       "2026-03-07",
	}
}

func TestGetSlotsReturnsSortedRecords(t *testing.T) {
	s := newTestService(1)

	records, err := s.GetSlots(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, records)

	var prev string
	for _, r := range records {
		assert.Equal(t, "test-centre", r.TestCentreID)
		assert.Equal(t, []string{"Car"}, r.TestTypes)
		assert.GreaterOrEqual(t, r.Quantity, 1)
		// ISO strings sort lexicographically in time order.
		assert.GreaterOrEqual(t, r.StartDateTime, prev)
		prev = r.StartDateTime
	}
}

func TestGetSlotsSentinelBeforeQueryValidation(t *testing.T) {
	s := newTestService(1)

	// The query is deliberately broken: the sentinel must win anyway.
	req := Request{TestCentreID: trigger.Unauthorised}
	_, err := s.GetSlots(context.Background(), req)
	assert.Equal(t, trigger.ErrUnauthorised, err)

	req = Request{TestCentreID: trigger.NotFound}
	_, err = s.GetSlots(context.Background(), req)
	assert.Equal(t, trigger.ErrTestCentreNotFound, err)
}

func TestGetSlotsQueryValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing testTypes", func(r *Request) { r.TestTypes = "" }},
		{"missing dateFrom", func(r *Request) { r.DateFrom = "" }},
		{"missing dateTo", func(r *Request) { r.DateTo = "" }},
		{"testTypes not JSON", func(r *Request) { r.TestTypes = "Car" }},
		{"dateFrom unparseable", func(r *Request) { r.DateFrom = "next tuesday" }},
		{"dateTo unparseable", func(r *Request) { r.DateTo = "02/03/2026" }},
		{"dateFrom after dateTo", func(r *Request) { r.DateFrom = "2026-03-08" }},
		{"span beyond six months", func(r *Request) { r.DateTo = "2026-10-15" }},
		{"preferredDate unparseable", func(r *Request) { r.PreferredDate = "soon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(1)
			req := validRequest()
			tt.mutate(&req)

			_, err := s.GetSlots(context.Background(), req)
			assert.Equal(t, apperror.ErrBadRequest, err)
		})
	}
}

func TestGetSlotsAcceptsFiveMonthSpan(t *testing.T) {
	s := newTestService(2)
	req := validRequest()
	req.DateTo = "2026-08-01"

	records, err := s.GetSlots(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, records)
}

func TestGetSlotsWithoutPreferredDateHasNoAvailability(t *testing.T) {
	s := newTestService(3)

	records, err := s.GetSlots(context.Background(), validRequest())
	require.NoError(t, err)

	for _, r := range records {
		assert.Empty(t, r.DateAvailableOnOrBeforePreferredDate)
		assert.Empty(t, r.DateAvailableOnOrAfterPreferredDate)
		assert.Empty(t, r.DateAvailableOnOrAfterToday)
	}
}

func TestGetSlotsPreferredDateYieldsAvailabilityOnEveryRecord(t *testing.T) {
	s := newTestService(4)
	req := validRequest()
	req.PreferredDate = "2026-03-04"

	records, err := s.GetSlots(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	wantNow := FormatISO(fixedNow)
	for _, r := range records {
		assert.Equal(t, wantNow, r.DateAvailableOnOrBeforePreferredDate)
		assert.Equal(t, "2026-03-04T00:00:00.000Z", r.DateAvailableOnOrAfterPreferredDate)
		assert.Equal(t, wantNow, r.DateAvailableOnOrAfterToday)
	}
}
