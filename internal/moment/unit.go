package moment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownUnit is returned by ParseUnit for an unrecognised unit tag.
var ErrUnknownUnit = errors.New("moment: unknown unit")

// Unit is a time granularity accepted by Add and Subtract.
type Unit int

// Units, smallest first. Millisecond to Hour are fixed durations; Day and
// larger follow the calendar.
const (
	Millisecond Unit = iota + 1 // "ms", "millisecond(s)"
	Second                      // "s", "second(s)"
	Minute                      // "m", "minute(s)"
	Hour                        // "h", "hour(s)"
	Day                         // "d", "day(s)"
	Week                        // "w", "week(s)"
	Month                       // "M", "month(s)"
	Quarter                     // "Q", "quarter(s)"
	Year                        // "y", "year(s)"
)

var unitNames = map[Unit]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Quarter:     "quarter",
	Year:        "year",
}

// Short aliases are case sensitive ("M" is month, "m" is minute).
var unitAliases = map[string]Unit{
	"ms": Millisecond,
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"M":  Month,
	"Q":  Quarter,
	"y":  Year,
}

// ParseUnit resolves a unit tag such as "days", "day" or "d".
//
// Long forms are case insensitive and may be singular or plural.
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[s]; ok {
		return u, nil
	}
	name := strings.TrimSuffix(strings.ToLower(s), "s")
	for u, n := range unitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Duration returns the fixed length of sub-day units and zero for
// calendar units, whose length depends on the date.
func (u Unit) Duration() time.Duration {
	switch u {
	case Millisecond:
		return time.Millisecond
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	}
	return 0
}

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}
