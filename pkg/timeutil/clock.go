package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Clock is a wall-clock time expressed as minutes since midnight.
// The schedule uses local 24-hour times only; there is no timezone or
// date component.
type Clock int

const (
	// EndOfDay is the exclusive upper bound of a day, used to normalize
	// a trailing "00:00" end time to midnight-as-end rather than
	// midnight-as-start.
	EndOfDay Clock = 24 * 60
)

var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// ParseClock parses an "HH:MM" string into a Clock. Hours must be in
// [0,23] and minutes in [0,59].
func ParseClock(input string) (Clock, error) {
	matches := clockPattern.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", input)
	}
	hour, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock hour %q: %w", matches[1], err)
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("invalid clock minute %q: %w", matches[2], err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock minute %d out of range", minute)
	}
	return Clock(hour*60 + minute), nil
}

// ParseEnd parses an event end time. "00:00" means end of day here, so
// the last event of a day keeps end > start.
func ParseEnd(input string) (Clock, error) {
	c, err := ParseClock(input)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return EndOfDay, nil
	}
	return c, nil
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

// String renders the clock back as zero-padded "HH:MM". EndOfDay is
// rendered as "00:00", matching the source data it was parsed from.
func (c Clock) String() string {
	if c == EndOfDay {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// FromTime samples the clock from a time.Time, ignoring seconds.
func FromTime(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}
