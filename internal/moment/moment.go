// Package moment provides a mutable date wrapper with a chaining API.
//
// Unlike time.Time, a *Moment is changed in place by Add and Subtract,
// which return the same receiver so calls can be chained:
//
//	m := moment.Now()
//	m.Subtract(14, "days").Add(1, "h")
//
// Calendar arithmetic is delegated to github.com/golang-module/carbon/v2.
// A Moment is not safe for concurrent use.
package moment

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// Moment is a mutable point in time.
type Moment struct {
	c   carbon.Carbon
	loc *time.Location
}

// Now returns a Moment for the current instant in the local time zone.
func Now() *Moment {
	return FromTime(time.Now())
}

// FromTime wraps t. The location of t is kept.
func FromTime(t time.Time) *Moment {
	return &Moment{
		c:   carbon.CreateFromStdTime(t),
		loc: t.Location(),
	}
}

// Add moves the moment forward by amount units and returns the receiver.
//
// An unrecognised unit leaves the moment unchanged.
func (m *Moment) Add(amount int, unit string) *Moment {
	return m.shift(amount, unit)
}

// Subtract moves the moment back by amount units and returns the receiver.
//
// An unrecognised unit leaves the moment unchanged.
func (m *Moment) Subtract(amount int, unit string) *Moment {
	return m.shift(-amount, unit)
}

func (m *Moment) shift(amount int, unit string) *Moment {
	u, err := ParseUnit(unit)
	if err != nil || amount == 0 {
		return m
	}

	switch u {
	case Year:
		m.c = m.c.AddYearsNoOverflow(amount)
	case Quarter:
		m.c = m.c.AddQuartersNoOverflow(amount)
	case Month:
		m.c = m.c.AddMonthsNoOverflow(amount)
	case Week:
		m.c = m.c.AddWeeks(amount)
	case Day:
		m.c = m.c.AddDays(amount)
	default:
		// Sub-day units are fixed durations.
		t := m.c.ToStdTime().Add(time.Duration(amount) * u.Duration())
		m.c = carbon.CreateFromStdTime(t)
	}
	return m
}

// ToDate returns the moment as a time.Time in its original location.
func (m *Moment) ToDate() time.Time {
	return m.c.ToStdTime().In(m.loc)
}

// Clone returns an independent copy of m.
func (m *Moment) Clone() *Moment {
	return &Moment{c: m.c, loc: m.loc}
}

// String formats the moment as RFC 3339.
func (m *Moment) String() string {
	return m.ToDate().Format(time.RFC3339)
}
