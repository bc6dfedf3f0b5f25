package usecase

import (
	"context"
	"time"

	"adhan/internal/domain/entity"
)

// TimingQuery identifies where timings are resolved for.
type TimingQuery struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`               // IANA zone; days are computed in this zone.
	CountryCode string  `json:"country_code,omitempty"` // Optional; shortcuts provider selection.
}

// TimingUsecase resolves canonical prayer instants for a location.
type TimingUsecase interface {
	// GetTimings returns the validated timings for the local day containing date.
	GetTimings(ctx context.Context, query TimingQuery, date time.Time) (*entity.DayTimings, error)

	// GetMonthTimings returns every resolvable day of a month, ordered by day.
	GetMonthTimings(ctx context.Context, query TimingQuery, year int, month time.Month) ([]*entity.DayTimings, error)

	// NextPrayer returns the first notifiable prayer strictly after the given
	// instant, rolling to tomorrow's Fajr when none remains today.
	NextPrayer(ctx context.Context, query TimingQuery, after time.Time) (entity.PrayerInstant, error)
}
