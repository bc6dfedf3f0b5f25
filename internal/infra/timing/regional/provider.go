package regional

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/domain/constants"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
	"adhan/internal/infra/metrics"
	"adhan/internal/infra/timing"
)

// Params holds dependencies for the regional provider, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Cache   service.Cache
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Provider serves day and month timings from the regional precise provider.
type Provider struct {
	source   *guardedClient
	locator  *locator
	cache    service.Cache
	monthTTL time.Duration
	logger   *slog.Logger
}

var (
	_ service.TimingProvider = (*Provider)(nil)
	_ service.MonthProvider  = (*Provider)(nil)
)

// New creates the regional provider with its circuit breaker and rate limiter.
func New(params Params) *Provider {
	cfg := params.Config.Regional

	headers := http.Header{}
	if cfg.APIToken != "" {
		headers.Set(cfg.TokenHeader, cfg.APIToken)
	}

	upstream := timing.NewUpstream(timing.UpstreamOptions{
		Name:              constants.ProviderRegional,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		Headers:           headers,
		Metrics:           params.Metrics,
	})

	logger := params.Logger
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        constants.ProviderRegional,
		MaxRequests: 1,
		Timeout:     cfg.Breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[Regional] circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	source := &guardedClient{inner: newClient(cfg.BaseURL, upstream), breaker: breaker}

	return &Provider{
		source:   source,
		locator:  newLocator(source, params.Cache, cfg.LocationTTL, logger),
		cache:    params.Cache,
		monthTTL: cfg.MonthTTL,
		logger:   logger,
	}
}

// Name identifies the provider.
func (p *Provider) Name() string {
	return constants.ProviderRegional
}

// DayTimings returns the validated set for the requested local day.
func (p *Provider) DayTimings(ctx context.Context, req service.TimingRequest) (entity.TimingSet, error) {
	table, err := p.MonthTimings(ctx, req)
	if err != nil {
		return entity.TimingSet{}, err
	}

	local := req.Date.In(req.Location)
	set, ok := table[local.Day()]
	if !ok {
		return entity.TimingSet{}, errors.Wrapf(service.ErrMissingDay, "day %s", local.Format(time.DateOnly))
	}
	if err := set.Validate(); err != nil {
		return entity.TimingSet{}, err
	}

	return set, nil
}

// MonthTimings returns the month table of the nearest location for the
// month containing req.Date in req.Location.
func (p *Provider) MonthTimings(ctx context.Context, req service.TimingRequest) (map[int]entity.TimingSet, error) {
	match, err := p.locator.Resolve(ctx, req.Lat, req.Lon)
	if err != nil {
		return nil, err
	}

	local := req.Date.In(req.Location)
	year, month := local.Year(), local.Month()
	key := fmt.Sprintf("regional:month:%s:%04d-%02d", match.ID, year, int(month))

	var table map[int]entity.TimingSet
	if found, err := p.cache.Get(ctx, key, &table); err != nil {
		p.logger.Warn("[Regional] month cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if found && len(table) > 0 {
		return table, nil
	}

	table, err = p.source.Month(ctx, match.ID, year, month)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, table, p.monthTTL); err != nil {
		p.logger.Warn("[Regional] month cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return table, nil
}

// guardedClient routes every upstream call through the circuit breaker.
type guardedClient struct {
	inner   *client
	breaker *gobreaker.CircuitBreaker
}

func (g *guardedClient) Locations(ctx context.Context) ([]entity.LocationRecord, error) {
	res, err := g.breaker.Execute(func() (any, error) {
		return g.inner.Locations(ctx)
	})
	if err != nil {
		return nil, breakerError(err)
	}

	records, _ := res.([]entity.LocationRecord)

	return records, nil
}

func (g *guardedClient) Month(ctx context.Context, locationID string, year int, month time.Month) (map[int]entity.TimingSet, error) {
	res, err := g.breaker.Execute(func() (any, error) {
		return g.inner.Month(ctx, locationID, year, month)
	})
	if err != nil {
		return nil, breakerError(err)
	}

	table, _ := res.(map[int]entity.TimingSet)

	return table, nil
}

func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Wrapf(service.ErrProviderUnavailable, "regional: %v", err)
	}

	return err
}

// Module provides the regional provider to the timing usecase
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(service.TimingProvider)),
			fx.ResultTags(`name:"regional"`),
		),
	),
)
