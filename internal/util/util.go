// Package util holds small time helpers shared by the use cases.
package util

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"adhan/internal/errors"
)

//nolint:gochecknoglobals
var locations sync.Map

// LoadLocation resolves an IANA zone name, caching the parsed zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("empty timezone")
	}
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", name)
	}
	locations.Store(name, loc)

	return loc, nil
}

// LocalMidnight returns the start of t's calendar day in loc.
func LocalMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextLocalDay returns noon of the calendar day after t in loc. Noon never
// falls into a DST gap.
func NextLocalDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d+1, 12, 0, 0, 0, loc)
}

// MaxTime returns the later of a and b.
func MaxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	sign := ""
	if duration < 0 {
		sign = "-"
		duration = -duration
	}
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%s%ds", sign, int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%s%dm%ds", sign, m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%s%dh%dm", sign, h, m)
}
