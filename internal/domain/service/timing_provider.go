// Package service declares contracts for infrastructure the use cases depend on.
package service

import (
	"context"
	"time"

	"adhan/internal/domain/entity"
	"adhan/internal/errors"
)

// Resolution errors.
var (
	// ErrNoLocationsAvailable is returned when the regional catalog is empty or unreachable.
	ErrNoLocationsAvailable = errors.New("no regional locations available")
	// ErrNoValidCandidate is returned when no catalog entry has finite coordinates.
	ErrNoValidCandidate = errors.New("no valid regional location candidate")
	// ErrMissingDay is returned when a regional month table has no row for the requested day.
	ErrMissingDay = errors.New("day missing from regional month table")
	// ErrProviderUnavailable is returned for transport or status failures of an upstream.
	ErrProviderUnavailable = errors.New("timing provider unavailable")
	// ErrMalformedResponse is returned when an upstream body cannot be normalized.
	ErrMalformedResponse = errors.New("malformed timing provider response")
)

// CalculationProfile holds the parameters sent to the generic astronomical provider.
type CalculationProfile struct {
	Method                   int    `json:"method"`
	School                   int    `json:"school"`
	LatitudeAdjustmentMethod int    `json:"latitudeAdjustmentMethod"`
	MethodSettings           string `json:"methodSettings,omitempty"` // Twilight angle overrides, e.g. "16,null,15".
	Tune                     string `json:"tune,omitempty"`           // Per-prayer minute offsets.
}

// TimingRequest is what a provider needs to produce one day's set.
type TimingRequest struct {
	Lat      float64
	Lon      float64
	Location *time.Location
	Date     time.Time // Any instant on the wanted local day, expressed in Location.
}

// TimingProvider produces raw-normalized timings for a single day.
type TimingProvider interface {
	// Name identifies the provider in logs, metrics and DayTimings.Source.
	Name() string

	// DayTimings returns the normalized set for the requested day.
	DayTimings(ctx context.Context, req TimingRequest) (entity.TimingSet, error)
}

// MonthProvider is implemented by providers that can return a whole month.
type MonthProvider interface {
	MonthTimings(ctx context.Context, req TimingRequest) (map[int]entity.TimingSet, error)
}
