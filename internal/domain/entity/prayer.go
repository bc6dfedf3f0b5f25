package entity

import (
	"strconv"
	"time"

	"adhan/internal/errors"
)

// Prayer names a daily prayer time.
type Prayer string

const (
	Fajr    Prayer = "Fajr"
	Sunrise Prayer = "Sunrise"
	Dhuhr   Prayer = "Dhuhr"
	Asr     Prayer = "Asr"
	Maghrib Prayer = "Maghrib"
	Isha    Prayer = "Isha"
)

// PrayerOrder is the fixed chronological order of a day's timings.
var PrayerOrder = []Prayer{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// ErrInvalidTimings is returned when a set is incomplete or not strictly increasing.
var ErrInvalidTimings = errors.New("invalid timing set")

// Notifiable reports whether subscribers are notified for the prayer.
// Sunrise is computed but never targeted.
func (p Prayer) Notifiable() bool {
	return p != Sunrise && p != ""
}

// TimingSet holds canonical HH:MM wall-clock strings for one calendar day.
type TimingSet struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Clock returns the wall-clock value for a prayer.
func (s TimingSet) Clock(p Prayer) string {
	switch p {
	case Fajr:
		return s.Fajr
	case Sunrise:
		return s.Sunrise
	case Dhuhr:
		return s.Dhuhr
	case Asr:
		return s.Asr
	case Maghrib:
		return s.Maghrib
	case Isha:
		return s.Isha
	default:
		return ""
	}
}

// SetClock assigns the wall-clock value for a prayer.
func (s *TimingSet) SetClock(p Prayer, clock string) {
	switch p {
	case Fajr:
		s.Fajr = clock
	case Sunrise:
		s.Sunrise = clock
	case Dhuhr:
		s.Dhuhr = clock
	case Asr:
		s.Asr = clock
	case Maghrib:
		s.Maghrib = clock
	case Isha:
		s.Isha = clock
	}
}

// IsEmpty reports whether no prayer has a value.
func (s TimingSet) IsEmpty() bool {
	return s == TimingSet{}
}

// Validate checks that all six times are present and strictly increasing.
// Maghrib and Isha collapsing to the same minute is the common upstream defect
// this catches.
func (s TimingSet) Validate() error {
	prev := -1
	for _, p := range PrayerOrder {
		minutes, err := ClockMinutes(s.Clock(p))
		if err != nil {
			return errors.Wrapf(ErrInvalidTimings, "%s: %v", p, err)
		}
		if minutes <= prev {
			return errors.Wrapf(ErrInvalidTimings, "%s at %s is not after the previous prayer", p, s.Clock(p))
		}
		prev = minutes
	}

	return nil
}

// ClockMinutes parses a canonical HH:MM string into minutes after midnight.
func ClockMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, errors.Errorf("malformed clock %q", clock)
	}
	hour, err := strconv.Atoi(clock[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, errors.Errorf("malformed hour in %q", clock)
	}
	minute, err := strconv.Atoi(clock[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, errors.Errorf("malformed minute in %q", clock)
	}

	return hour*60 + minute, nil
}

// PrayerInstant is a prayer bound to an absolute instant.
type PrayerInstant struct {
	Name Prayer    `json:"name"`
	At   time.Time `json:"at"`
}

// DayTimings is a validated TimingSet anchored to a date in a timezone.
type DayTimings struct {
	Date     time.Time      `json:"date"` // Local midnight of the day.
	Location *time.Location `json:"-"`
	Set      TimingSet      `json:"timings"`
	Source   string         `json:"source"` // Provider that produced the set.
}

// Instants converts the wall-clock strings into absolute instants in the
// day's own timezone, in PrayerOrder.
func (d *DayTimings) Instants() ([]PrayerInstant, error) {
	year, month, day := d.Date.Date()
	out := make([]PrayerInstant, 0, len(PrayerOrder))
	for _, p := range PrayerOrder {
		minutes, err := ClockMinutes(d.Set.Clock(p))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidTimings, "%s: %v", p, err)
		}
		at := time.Date(year, month, day, minutes/60, minutes%60, 0, 0, d.Location)
		out = append(out, PrayerInstant{Name: p, At: at})
	}

	return out, nil
}

// NextAfter returns the first notifiable prayer of the day strictly after t.
func (d *DayTimings) NextAfter(t time.Time) (PrayerInstant, bool, error) {
	instants, err := d.Instants()
	if err != nil {
		return PrayerInstant{}, false, err
	}
	for _, inst := range instants {
		if !inst.Name.Notifiable() {
			continue
		}
		if inst.At.After(t) {
			return inst, true, nil
		}
	}

	return PrayerInstant{}, false, nil
}
