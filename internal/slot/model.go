package slot

import (
	"time"
)

// isoLayout matches the ISO-8601 UTC format the API has always emitted for
// slot start times.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Config is the immutable slot-generation policy. It is built once at
// startup and passed into the generator; nothing mutates it afterwards.
type Config struct {
	DayStartHour    int // first bookable hour of the day
	DayEndHour      int // last bookable hour of the day (inclusive)
	MaxSlotQuantity int
	SkipDays        []time.Weekday // days that never get slots
	FullDays        []time.Weekday // days that get every possible slot
}

// DefaultConfig mirrors the historical stub policy: 09:00-17:00 working
// hours, quantities up to 5, Sundays closed, Fridays fully booked out.
func DefaultConfig() Config {
	return Config{
		DayStartHour:    9,
		DayEndHour:      17,
		MaxSlotQuantity: 5,
		SkipDays:        []time.Weekday{time.Sunday},
		FullDays:        []time.Weekday{time.Friday},
	}
}

// MaxSlotsInDay is the number of distinct quarter-hour start times inside
// the working-hour window.
func (c Config) MaxSlotsInDay() int {
	return ((c.DayEndHour + 1) - c.DayStartHour) * 4
}

func (c Config) isSkipDay(d time.Weekday) bool {
	return containsWeekday(c.SkipDays, d)
}

func (c Config) isFullDay(d time.Weekday) bool {
	return containsWeekday(c.FullDays, d)
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}

// Slot is a single bookable time slot. Two slots are considered the same
// slot when their start times match exactly, regardless of quantity.
type Slot struct {
	StartTime time.Time
	Quantity  int
}

// On constructs a slot on the given date anchored to the day-start hour,
// with quantity 1.
func On(date time.Time, dayStartHour int) Slot {
	return Slot{
		StartTime: time.Date(date.Year(), date.Month(), date.Day(), dayStartHour, 0, 0, 0, date.Location()),
		Quantity:  1,
	}
}

// Equal reports whether both slots start at the same instant.
func (s Slot) Equal(other Slot) bool {
	return s.StartTime.Equal(other.StartTime)
}

// Before reports whether s starts before other.
func (s Slot) Before(other Slot) bool {
	return s.StartTime.Before(other.StartTime)
}

// Availability is the placeholder availability sub-record returned when the
// caller supplied a preferred date. It is a simulation stand-in, not a real
// availability search: "on or before" and "on or after today" both report
// the current timestamp, "on or after preferred" echoes the preferred date.
type Availability struct {
	DateAvailableOnOrBeforePreferredDate string `json:"dateAvailableOnOrBeforePreferredDate"`
	DateAvailableOnOrAfterPreferredDate  string `json:"dateAvailableOnOrAfterPreferredDate"`
	DateAvailableOnOrAfterToday          string `json:"dateAvailableOnOrAfterToday"`
}

// Record is the wire representation of one slot. The availability fields
// appear on every record of a response or on none of them.
type Record struct {
	TestCentreID  string   `json:"testCentreId"`
	TestTypes     []string `json:"testTypes"`
	StartDateTime string   `json:"startDateTime"`
	Quantity      int      `json:"quantity"`

	DateAvailableOnOrBeforePreferredDate string `json:"dateAvailableOnOrBeforePreferredDate,omitempty"`
	DateAvailableOnOrAfterPreferredDate  string `json:"dateAvailableOnOrAfterPreferredDate,omitempty"`
	DateAvailableOnOrAfterToday          string `json:"dateAvailableOnOrAfterToday,omitempty"`
}

// FormatISO renders a timestamp the way every date on this API is rendered.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
