package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// DateLayout is the layout of travel dates.
const DateLayout = "2006-01-02"

// UTC is the IANA name of the default booking timezone.
const UTC = "UTC"

var locations sync.Map

// GetLocation loads the IANA timezone name and caches it for later calls.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	actual, _ := locations.LoadOrStore(name, loc)
	return actual.(*time.Location), nil
}

// MustGetLocation is GetLocation for names that were already validated.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseDate reads a YYYY-MM-DD date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}

// Calendar answers calendar-date questions in one timezone. "Today" depends
// on the zone: 23:30 UTC is already tomorrow two hours east.
type Calendar struct {
	Clock    Clock
	Location *time.Location
}

// NewCalendar returns a Calendar. A nil clock means the system clock and a
// nil location means UTC.
func NewCalendar(clock Clock, loc *time.Location) Calendar {
	if clock == nil {
		clock = NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Clock: clock, Location: loc}
}

// Today returns midnight of the current day.
func (c Calendar) Today() time.Time {
	y, m, d := c.Clock.Now().In(c.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location)
}

// Parse reads a YYYY-MM-DD date in the calendar's timezone.
func (c Calendar) Parse(value string) (time.Time, error) {
	return ParseDate(value, c.Location)
}

// InPast reports whether day lies before Today. Today itself is not past.
func (c Calendar) InPast(day time.Time) bool {
	return day.Before(c.Today())
}

// DaysFromToday formats the date n days after Today; negative n goes back.
func (c Calendar) DaysFromToday(n int) string {
	return c.Today().AddDate(0, 0, n).Format(DateLayout)
}
