package slot

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/apperror"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/trigger"
)

// Request carries the raw inputs of a slot search. Query values stay as
// received so the sentinel inspection on the path parameter can run before
// any of them is parsed, matching the contract's error precedence.
type Request struct {
	TestCentreID  string
	TestTypes     string // JSON-encoded array of test type names
	DateFrom      string
	DateTo        string
	PreferredDate string // optional
}

// Service generates randomized slot listings for a test centre.
type Service interface {
	GetSlots(ctx context.Context, req Request) ([]Record, error)
}

type service struct {
	gen    *Generator
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a slot Service. The clock is injected so availability
// simulation is deterministic under test.
func NewService(gen *Generator, now func() time.Time, logger *zap.Logger) Service {
	return &service{
		gen:    gen,
		now:    now,
		logger: logger,
	}
}

func (s *service) GetSlots(_ context.Context, req Request) ([]Record, error) {
	if _, err := trigger.Inspect(req.TestCentreID, trigger.Slots); err != nil {
		return nil, err
	}

	q, err := parseQuery(req)
	if err != nil {
		return nil, err
	}

	var availability *Availability
	if q.preferredDate != nil {
		now := s.now()
		availability = &Availability{
			DateAvailableOnOrBeforePreferredDate: FormatISO(now),
			DateAvailableOnOrAfterPreferredDate:  FormatISO(*q.preferredDate),
			DateAvailableOnOrAfterToday:          FormatISO(now),
		}
	}

	collection := NewCollection(req.TestCentreID, q.testTypes)
	s.gen.FillBetween(collection, q.dateFrom, q.dateTo)
	collection.SortByDateTime()

	s.logger.Debug("generated slots",
		zap.String("testCentreId", req.TestCentreID),
		zap.Int("count", collection.Len()),
	)

	return collection.Records(availability), nil
}

type query struct {
	testTypes     []string
	dateFrom      time.Time
	dateTo        time.Time
	preferredDate *time.Time
}

func parseQuery(req Request) (query, error) {
	var q query

	if req.TestTypes == "" || req.DateFrom == "" || req.DateTo == "" {
		return q, apperror.ErrBadRequest
	}

	if err := json.Unmarshal([]byte(req.TestTypes), &q.testTypes); err != nil {
		return q, apperror.ErrBadRequest
	}

	var err error
	if q.dateFrom, err = parseDate(req.DateFrom); err != nil {
		return q, apperror.ErrBadRequest
	}
	if q.dateTo, err = parseDate(req.DateTo); err != nil {
		return q, apperror.ErrBadRequest
	}
	if q.dateFrom.After(q.dateTo) || spansMoreThanSixMonths(q.dateFrom, q.dateTo) {
		return q, apperror.ErrBadRequest
	}

	if req.PreferredDate != "" {
		preferred, err := parseDate(req.PreferredDate)
		if err != nil {
			return q, apperror.ErrBadRequest
		}
		q.preferredDate = &preferred
	}

	return q, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// spansMoreThanSixMonths is a rough cut-off, not a calendar calculation:
// a month is taken as 31 days.
func spansMoreThanSixMonths(dateFrom, dateTo time.Time) bool {
	const month = 31 * 24 * time.Hour
	return float64(dateTo.Sub(dateFrom))/float64(month) > 6
}
