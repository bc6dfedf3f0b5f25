// Package generic implements the astronomical timing provider speaking the
// aladhan-compatible /timings and /calendar API.
package generic

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/domain/constants"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
	"adhan/internal/infra/metrics"
	"adhan/internal/infra/timing"
)

// Params holds dependencies for the generic provider, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Cache   service.Cache
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Provider queries the generic provider with a fixed calculation profile.
type Provider struct {
	name     string
	baseURL  string
	profile  service.CalculationProfile
	upstream *timing.Upstream
	cache    service.Cache
	dayTTL   time.Duration
	logger   *slog.Logger
}

var (
	_ service.TimingProvider = (*Provider)(nil)
	_ service.MonthProvider  = (*Provider)(nil)
)

// New creates the generic provider using the configured default profile.
func New(params Params) *Provider {
	cfg := params.Config.Generic

	upstream := timing.NewUpstream(timing.UpstreamOptions{
		Name:              constants.ProviderGeneric,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		Metrics:           params.Metrics,
	})

	return &Provider{
		name:     constants.ProviderGeneric,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		profile:  ProfileFromConfig(cfg.Profile),
		upstream: upstream,
		cache:    params.Cache,
		dayTTL:   cfg.DayTTL,
		logger:   params.Logger,
	}
}

// ProfileFromConfig converts a configured profile.
func ProfileFromConfig(p config.ProfileConfig) service.CalculationProfile {
	return service.CalculationProfile{
		Method:                   p.Method,
		School:                   p.School,
		LatitudeAdjustmentMethod: p.LatitudeAdjustmentMethod,
		MethodSettings:           p.MethodSettings,
		Tune:                     p.Tune,
	}
}

// WithProfile returns a provider sharing this one's client and cache but
// sending a different calculation profile.
func (p *Provider) WithProfile(name string, profile service.CalculationProfile) *Provider {
	clone := *p
	clone.name = name
	clone.profile = profile

	return &clone
}

// Name identifies the provider.
func (p *Provider) Name() string {
	return p.name
}

// Profile returns the calculation profile sent upstream.
func (p *Provider) Profile() service.CalculationProfile {
	return p.profile
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

type calendarResponse struct {
	Code int `json:"code"`
	Data []struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Gregorian struct {
				Day string `json:"day"`
			} `json:"gregorian"`
		} `json:"date"`
	} `json:"data"`
}

// DayTimings returns the validated set for the requested local day.
func (p *Provider) DayTimings(ctx context.Context, req service.TimingRequest) (entity.TimingSet, error) {
	local := req.Date.In(req.Location)
	key := fmt.Sprintf("generic:day:%s:%s:%s", p.cacheScope(req), local.Format(time.DateOnly), p.profileKey())

	var set entity.TimingSet
	if found, err := p.cache.Get(ctx, key, &set); err != nil {
		p.logger.Warn("[Generic] day cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if found && !set.IsEmpty() {
		return set, nil
	}

	endpoint := fmt.Sprintf("%s/timings/%s?%s", p.baseURL, local.Format("02-01-2006"), p.query(req).Encode())

	var resp timingsResponse
	if err := p.upstream.GetJSON(ctx, endpoint, &resp); err != nil {
		return entity.TimingSet{}, err
	}

	set = timing.TimingSetFromFields(resp.Data.Timings)
	if set.IsEmpty() {
		return entity.TimingSet{}, errors.Wrap(service.ErrMalformedResponse, "generic: response has no timings")
	}
	if err := set.Validate(); err != nil {
		return entity.TimingSet{}, err
	}

	if err := p.cache.Set(ctx, key, set, p.dayTTL); err != nil {
		p.logger.Warn("[Generic] day cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return set, nil
}

// MonthTimings returns the calendar for the month containing req.Date, keyed by day.
func (p *Provider) MonthTimings(ctx context.Context, req service.TimingRequest) (map[int]entity.TimingSet, error) {
	local := req.Date.In(req.Location)
	endpoint := fmt.Sprintf("%s/calendar/%d/%d?%s", p.baseURL, local.Year(), int(local.Month()), p.query(req).Encode())

	var resp calendarResponse
	if err := p.upstream.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	out := make(map[int]entity.TimingSet, len(resp.Data))
	for i, row := range resp.Data {
		day, err := strconv.Atoi(row.Date.Gregorian.Day)
		if err != nil || day < 1 || day > 31 {
			day = i + 1
		}
		if set := timing.TimingSetFromFields(row.Timings); !set.IsEmpty() {
			out[day] = set
		}
	}

	if len(out) == 0 {
		return nil, errors.Wrap(service.ErrMalformedResponse, "generic: calendar has no rows")
	}

	return out, nil
}

// query sends the same rounded coordinates the cache is keyed on, so every
// subscriber in a bucket gets the timings for the bucket itself.
func (p *Provider) query(req service.TimingRequest) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(round2(req.Lat), 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(round2(req.Lon), 'f', -1, 64))
	q.Set("timezonestring", req.Location.String())
	q.Set("method", strconv.Itoa(p.profile.Method))
	q.Set("school", strconv.Itoa(p.profile.School))
	q.Set("latitudeAdjustmentMethod", strconv.Itoa(p.profile.LatitudeAdjustmentMethod))
	if p.profile.MethodSettings != "" {
		q.Set("methodSettings", p.profile.MethodSettings)
	}
	if p.profile.Tune != "" {
		q.Set("tune", p.profile.Tune)
	}

	return q
}

// cacheScope rounds coordinates to two decimals, matching the location buckets.
func (p *Provider) cacheScope(req service.TimingRequest) string {
	return fmt.Sprintf("%.2f:%.2f:%s", round2(req.Lat), round2(req.Lon), req.Location.String())
}

func (p *Provider) profileKey() string {
	return fmt.Sprintf("%d-%d-%d-%s-%s",
		p.profile.Method, p.profile.School, p.profile.LatitudeAdjustmentMethod,
		p.profile.MethodSettings, p.profile.Tune)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// NewRegionalFallback is the generic provider run with the profile tuned for
// the regional provider's area. Without one it keeps the default profile.
func NewRegionalFallback(p *Provider, cfg *config.Config) service.TimingProvider {
	if cfg.Regional == nil || cfg.Regional.Fallback.Method == 0 {
		return p.WithProfile(constants.ProviderRegionalFallback, p.Profile())
	}

	return p.WithProfile(constants.ProviderRegionalFallback, ProfileFromConfig(cfg.Regional.Fallback))
}

// Module provides the generic provider under the names the timing usecase expects
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		fx.Annotate(
			func(p *Provider) service.TimingProvider { return p },
			fx.ResultTags(`name:"generic"`),
		),
		fx.Annotate(
			NewRegionalFallback,
			fx.ResultTags(`name:"regionalFallback"`),
		),
	),
)
