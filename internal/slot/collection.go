package slot

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Collection is an ordered set of slots scoped to one (testCentreId,
// testTypes) pair. It is built fresh per request and discarded after the
// response is produced. No two slots in a collection share a start time.
type Collection struct {
	testCentreID string
	testTypes    []string
	slots        []Slot
}

// NewCollection creates an empty collection for the given centre and test types.
func NewCollection(testCentreID string, testTypes []string) *Collection {
	return &Collection{
		testCentreID: testCentreID,
		testTypes:    testTypes,
	}
}

// Add inserts the slot unless an equal slot (same start time) is already
// present. It reports whether the slot was inserted.
func (c *Collection) Add(s Slot) bool {
	if c.Contains(s) {
		return false
	}
	c.slots = append(c.slots, s)
	return true
}

// Contains reports whether an equal slot is already in the collection.
func (c *Collection) Contains(s Slot) bool {
	for _, existing := range c.slots {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

// Len returns the number of slots in the collection.
func (c *Collection) Len() int {
	return len(c.slots)
}

// Slots returns the underlying slots in their current order.
func (c *Collection) Slots() []Slot {
	return c.slots
}

// SortByDateTime orders the slots ascending by start time. Start times are
// unique within a collection, so tie order is a non-issue.
func (c *Collection) SortByDateTime() {
	sort.Slice(c.slots, func(i, j int) bool {
		return c.slots[i].Before(c.slots[j])
	})
}

// Records projects every slot to its wire record. When availability is
// non-nil its fields are merged into every record.
func (c *Collection) Records(availability *Availability) []Record {
	records := make([]Record, 0, len(c.slots))
	for _, s := range c.slots {
		r := Record{
			TestCentreID:  c.testCentreID,
			TestTypes:     c.testTypes,
			StartDateTime: FormatISO(s.StartTime),
			Quantity:      s.Quantity,
		}
		if availability != nil {
			r.DateAvailableOnOrBeforePreferredDate = availability.DateAvailableOnOrBeforePreferredDate
			r.DateAvailableOnOrAfterPreferredDate = availability.DateAvailableOnOrAfterPreferredDate
			r.DateAvailableOnOrAfterToday = availability.DateAvailableOnOrAfterToday
		}
		records = append(records, r)
	}
	return records
}

// Generator produces randomized slots according to a Config. The random
// source is injected so tests can seed it; a mutex guards it because the
// HTTP server calls the generator from concurrent requests and *rand.Rand
// is not goroutine-safe.
type Generator struct {
	cfg Config

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates a generator with the given policy and random source.
func NewGenerator(cfg Config, rnd *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rnd: rnd}
}

// Config returns the generation policy.
func (g *Generator) Config() Config {
	return g.cfg
}

// randomInt returns a uniform integer in [min, max] inclusive.
func (g *Generator) randomInt(min, max int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(max-min+1) + min
}

var quarterHours = []int{0, 15, 30, 45}

// RandomiseStartTime moves the slot to a random quarter-hour start within
// the working-hour window, keeping the date.
func (g *Generator) RandomiseStartTime(s *Slot) {
	hour := g.randomInt(g.cfg.DayStartHour, g.cfg.DayEndHour)
	min := quarterHours[g.randomInt(0, len(quarterHours)-1)]
	t := s.StartTime
	s.StartTime = time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, t.Location())
}

// RandomiseQuantity assigns a uniform quantity in [1, MaxSlotQuantity].
func (g *Generator) RandomiseQuantity(s *Slot) {
	s.Quantity = g.randomInt(1, g.cfg.MaxSlotQuantity)
}

// FillBetween populates the collection with slots for every calendar day in
// [dateFrom, dateTo] inclusive. Skip days get nothing, full days get every
// possible start time, other days get a random count of at least two.
func (g *Generator) FillBetween(c *Collection, dateFrom, dateTo time.Time) {
	day := midnight(dateFrom)
	last := midnight(dateTo)
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		if g.cfg.isSkipDay(day.Weekday()) {
			continue
		}
		if g.cfg.isFullDay(day.Weekday()) {
			g.addRandomSlotsOn(c, day, g.cfg.MaxSlotsInDay())
			continue
		}
		g.addRandomSlotsOn(c, day, g.randomInt(2, g.cfg.MaxSlotsInDay()))
	}
}

// addRandomSlotsOn inserts numberOfSlots randomized slots on the given day,
// retrying collisions until the target count is reached. numberOfSlots must
// not exceed MaxSlotsInDay or the loop cannot terminate.
func (g *Generator) addRandomSlotsOn(c *Collection, day time.Time, numberOfSlots int) {
	capacity := c.Len() + numberOfSlots
	for c.Len() < capacity {
		s := On(day, g.cfg.DayStartHour)
		g.RandomiseStartTime(&s)
		g.RandomiseQuantity(&s)
		c.Add(s)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
