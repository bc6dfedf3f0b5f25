package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.uber.org/fx"

	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
	"adhan/internal/infra/metrics"
	"adhan/internal/infra/timing"
	"adhan/internal/usecase"
	"adhan/internal/util"
)

// TimingServiceParams holds dependencies for the timing resolver, injected by Fx
type TimingServiceParams struct {
	fx.In

	Regional service.TimingProvider `name:"regional" optional:"true"`
	Generic  service.TimingProvider `name:"generic"`
	Fallback service.TimingProvider `name:"regionalFallback"`
	Geofence timing.Geofence
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

type timingService struct {
	regional service.TimingProvider
	generic  service.TimingProvider
	fallback service.TimingProvider
	geofence timing.Geofence
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewTimingService creates the timing resolver.
func NewTimingService(params TimingServiceParams) usecase.TimingUsecase {
	m := params.Metrics
	if m == nil {
		m = metrics.NewNop()
	}

	return &timingService{
		regional: params.Regional,
		generic:  params.Generic,
		fallback: params.Fallback,
		geofence: params.Geofence,
		metrics:  m,
		logger:   params.Logger,
	}
}

// selectProvider picks the strategy for a query once per call. The second
// return value is the provider to fall back to, nil for the generic path.
func (s *timingService) selectProvider(query usecase.TimingQuery) (primary, fallback service.TimingProvider) {
	if s.regional != nil && s.geofence.Covers(query.CountryCode, query.Lat, query.Lon) {
		return s.regional, s.fallback
	}

	return s.generic, nil
}

// GetTimings resolves the local day containing date.
func (s *timingService) GetTimings(ctx context.Context, query usecase.TimingQuery, date time.Time) (*entity.DayTimings, error) {
	loc, err := util.LoadLocation(query.Timezone)
	if err != nil {
		return nil, domainerrors.ErrInvalidTimezone.WithDetails(query.Timezone)
	}

	day := util.LocalMidnight(date, loc)
	req := service.TimingRequest{Lat: query.Lat, Lon: query.Lon, Location: loc, Date: day}

	primary, fallback := s.selectProvider(query)

	set, source, err := s.resolveDay(ctx, primary, fallback, req)
	if err != nil {
		return nil, err
	}

	return &entity.DayTimings{Date: day, Location: loc, Set: set, Source: source}, nil
}

func (s *timingService) resolveDay(ctx context.Context, primary, fallback service.TimingProvider, req service.TimingRequest) (entity.TimingSet, string, error) {
	set, err := dayFrom(ctx, primary, req)
	if err == nil {
		return set, primary.Name(), nil
	}
	if fallback == nil {
		return entity.TimingSet{}, "", errors.Wrapf(err, "%s timings for %s", primary.Name(), req.Date.Format(time.DateOnly))
	}

	s.metrics.ProviderFallbacks.Inc()
	s.logger.WarnContext(ctx, "[Timing] regional provider failed, using fallback profile",
		slog.String("date", req.Date.Format(time.DateOnly)),
		slog.String("fallback", fallback.Name()),
		slog.Any("error", err),
	)

	set, fbErr := dayFrom(ctx, fallback, req)
	if fbErr != nil {
		return entity.TimingSet{}, "", errors.Wrapf(fbErr, "fallback after regional failure (%v)", err)
	}

	return set, fallback.Name(), nil
}

func dayFrom(ctx context.Context, provider service.TimingProvider, req service.TimingRequest) (entity.TimingSet, error) {
	set, err := provider.DayTimings(ctx, req)
	if err != nil {
		return entity.TimingSet{}, err
	}
	if err := set.Validate(); err != nil {
		return entity.TimingSet{}, err
	}

	return set, nil
}

// GetMonthTimings resolves a month table. Days with an invalid set are left out.
func (s *timingService) GetMonthTimings(ctx context.Context, query usecase.TimingQuery, year int, month time.Month) ([]*entity.DayTimings, error) {
	loc, err := util.LoadLocation(query.Timezone)
	if err != nil {
		return nil, domainerrors.ErrInvalidTimezone.WithDetails(query.Timezone)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	req := service.TimingRequest{Lat: query.Lat, Lon: query.Lon, Location: loc, Date: first}

	primary, fallback := s.selectProvider(query)

	table, source, err := monthFrom(ctx, primary, req)
	if err != nil && fallback != nil {
		s.metrics.ProviderFallbacks.Inc()
		s.logger.WarnContext(ctx, "[Timing] regional month failed, using fallback profile",
			slog.String("month", first.Format("2006-01")),
			slog.Any("error", err),
		)
		table, source, err = monthFrom(ctx, fallback, req)
	}
	if err != nil {
		return nil, err
	}

	days := make([]int, 0, len(table))
	for d := range table {
		days = append(days, d)
	}
	sort.Ints(days)

	out := make([]*entity.DayTimings, 0, len(days))
	for _, d := range days {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		if date.Month() != month {
			continue
		}
		set := table[d]
		if err := set.Validate(); err != nil {
			s.logger.DebugContext(ctx, "[Timing] skipping invalid day", slog.String("date", date.Format(time.DateOnly)), slog.Any("error", err))

			continue
		}
		out = append(out, &entity.DayTimings{Date: date, Location: loc, Set: set, Source: source})
	}

	return out, nil
}

func monthFrom(ctx context.Context, provider service.TimingProvider, req service.TimingRequest) (map[int]entity.TimingSet, string, error) {
	mp, ok := provider.(service.MonthProvider)
	if !ok {
		return nil, "", errors.Errorf("%s does not serve month tables", provider.Name())
	}

	table, err := mp.MonthTimings(ctx, req)
	if err != nil {
		return nil, "", err
	}

	return table, provider.Name(), nil
}

// NextPrayer returns the first notifiable prayer strictly after the given instant.
func (s *timingService) NextPrayer(ctx context.Context, query usecase.TimingQuery, after time.Time) (entity.PrayerInstant, error) {
	today, err := s.GetTimings(ctx, query, after)
	if err != nil {
		return entity.PrayerInstant{}, err
	}

	next, ok, err := today.NextAfter(after)
	if err != nil {
		return entity.PrayerInstant{}, err
	}
	if ok {
		return next, nil
	}

	tomorrow, err := s.GetTimings(ctx, query, util.NextLocalDay(after, today.Location))
	if err != nil {
		return entity.PrayerInstant{}, err
	}

	next, ok, err = tomorrow.NextAfter(after)
	if err != nil {
		return entity.PrayerInstant{}, err
	}
	if !ok {
		return entity.PrayerInstant{}, errors.Errorf("no prayer after %s", after.Format(time.RFC3339))
	}

	return next, nil
}
