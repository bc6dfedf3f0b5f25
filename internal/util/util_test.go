package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "negative", duration: -90 * time.Second, expected: "-1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("Europe/Oslo")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Oslo", loc.String())

	again, err := LoadLocation(" Europe/Oslo ")
	require.NoError(t, err)
	assert.Same(t, loc, again)

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.Error(t, err)

	_, err = LoadLocation("")
	assert.Error(t, err)
}

func TestLocalDayBoundaries(t *testing.T) {
	t.Parallel()

	oslo, err := LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	// 23:30 UTC on Jan 15 is already Jan 16 in Oslo.
	instant := time.Date(2024, time.January, 15, 23, 30, 0, 0, time.UTC)

	midnight := LocalMidnight(instant, oslo)
	assert.Equal(t, time.Date(2024, time.January, 16, 0, 0, 0, 0, oslo), midnight)

	next := NextLocalDay(instant, oslo)
	assert.Equal(t, time.Date(2024, time.January, 17, 12, 0, 0, 0, oslo), next)

	// Month rollover.
	endOfMonth := time.Date(2024, time.January, 31, 20, 0, 0, 0, oslo)
	assert.Equal(t, time.February, NextLocalDay(endOfMonth, oslo).Month())
}

func TestMaxTime(t *testing.T) {
	t.Parallel()

	a := time.Unix(100, 0)
	b := time.Unix(200, 0)
	assert.Equal(t, b, MaxTime(a, b))
	assert.Equal(t, b, MaxTime(b, a))
}
