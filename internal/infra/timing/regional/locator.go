package regional

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

const catalogCacheKey = "regional:locations"

// catalogSource fetches the full reference location catalog.
type catalogSource interface {
	Locations(ctx context.Context) ([]entity.LocationRecord, error)
}

// locator resolves coordinates to the nearest catalog entry.
type locator struct {
	source catalogSource
	cache  service.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func newLocator(source catalogSource, cache service.Cache, ttl time.Duration, logger *slog.Logger) *locator {
	return &locator{source: source, cache: cache, ttl: ttl, logger: logger}
}

// Resolve returns the catalog entry closest to (lat, lon) by great-circle distance.
func (l *locator) Resolve(ctx context.Context, lat, lon float64) (entity.LocationMatch, error) {
	bucketKey := fmt.Sprintf("regional:nearest:%.2f:%.2f", lat, lon)

	var cached entity.LocationMatch
	if found, err := l.cache.Get(ctx, bucketKey, &cached); err != nil {
		l.logger.Warn("[Regional] nearest-location cache read failed", slog.Any("error", err))
	} else if found && cached.ID != "" {
		return cached, nil
	}

	catalog, err := l.catalog(ctx)
	if err != nil {
		return entity.LocationMatch{}, err
	}

	match, err := Nearest(catalog, lat, lon)
	if err != nil {
		return entity.LocationMatch{}, err
	}

	if err := l.cache.Set(ctx, bucketKey, match, l.ttl); err != nil {
		l.logger.Warn("[Regional] nearest-location cache write failed", slog.Any("error", err))
	}

	return match, nil
}

// catalog returns the finite-coordinate entries of the catalog, from cache when possible.
func (l *locator) catalog(ctx context.Context) ([]entity.LocationRecord, error) {
	var cached []entity.LocationRecord
	if found, err := l.cache.Get(ctx, catalogCacheKey, &cached); err != nil {
		l.logger.Warn("[Regional] catalog cache read failed", slog.Any("error", err))
	} else if found && len(cached) > 0 {
		return cached, nil
	}

	all, err := l.source.Locations(ctx)
	if err != nil {
		return nil, errors.Wrapf(service.ErrNoLocationsAvailable, "%v", err)
	}
	if len(all) == 0 {
		return nil, service.ErrNoLocationsAvailable
	}

	valid := make([]entity.LocationRecord, 0, len(all))
	for _, rec := range all {
		if isFinite(rec.Lat) && isFinite(rec.Lon) {
			valid = append(valid, rec)
		}
	}
	if len(valid) == 0 {
		return nil, service.ErrNoValidCandidate
	}

	if err := l.cache.Set(ctx, catalogCacheKey, valid, l.ttl); err != nil {
		l.logger.Warn("[Regional] catalog cache write failed", slog.Any("error", err))
	}

	return valid, nil
}

// Nearest performs a linear nearest-neighbor search by haversine distance.
// Entries with non-finite coordinates are ignored.
func Nearest(catalog []entity.LocationRecord, lat, lon float64) (entity.LocationMatch, error) {
	if len(catalog) == 0 {
		return entity.LocationMatch{}, service.ErrNoLocationsAvailable
	}

	query := orb.Point{lon, lat}
	best := entity.LocationMatch{DistanceKm: math.Inf(1)}
	for _, rec := range catalog {
		if !isFinite(rec.Lat) || !isFinite(rec.Lon) {
			continue
		}
		d := geo.DistanceHaversine(query, orb.Point{rec.Lon, rec.Lat}) / 1000
		if d < best.DistanceKm {
			best = entity.LocationMatch{ID: rec.ID, DistanceKm: d}
		}
	}

	if best.ID == "" {
		return entity.LocationMatch{}, service.ErrNoValidCandidate
	}

	return best, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
