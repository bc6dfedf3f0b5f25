package generic

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhan/config"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/infra/cache"
	"adhan/internal/infra/metrics"
)

const timingsBody = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "06:28 (CET)", "Sunrise": "09:05 (CET)", "Dhuhr": "12:31 (CET)",
			"Asr": "13:41 (CET)", "Sunset": "15:54 (CET)", "Maghrib": "15:54 (CET)",
			"Isha": "17:48 (CET)", "Imsak": "06:18 (CET)", "Midnight": "00:31 (CET)"
		},
		"date": {"readable": "15 Jan 2024"}
	}
}`

const calendarBody = `{
	"code": 200,
	"data": [
		{"timings": {"Fajr": "06:40 (CET)", "Sunrise": "09:17 (CET)", "Dhuhr": "12:27 (CET)", "Asr": "13:20 (CET)", "Maghrib": "15:36 (CET)", "Isha": "17:42 (CET)"},
		 "date": {"gregorian": {"day": "01"}}},
		{"timings": {"Fajr": "06:39 (CET)", "Sunrise": "09:16 (CET)", "Dhuhr": "12:27 (CET)", "Asr": "13:21 (CET)", "Maghrib": "15:38 (CET)", "Isha": "17:44 (CET)"},
		 "date": {"gregorian": {"day": "02"}}}
	]
}`

type recorder struct {
	mu      sync.Mutex
	paths   []string
	queries []url.Values
}

func (r *recorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, req.URL.Path)
	r.queries = append(r.queries, req.URL.Query())
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.paths)
}

func newServer(t *testing.T, status int) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.WriteHeader(status)
		if r.URL.Path == "/calendar/2024/1" {
			_, _ = io.WriteString(w, calendarBody)

			return
		}
		_, _ = io.WriteString(w, timingsBody)
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func newTestProvider(t *testing.T, baseURL string) *Provider {
	t.Helper()

	cfg := &config.Config{Generic: &config.GenericConfig{BaseURL: baseURL}}
	cfg.ApplyDefaults()

	return New(Params{
		Config:  cfg,
		Cache:   cache.NewMemoryCache(time.Minute),
		Metrics: metrics.NewNop(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func osloRequest(t *testing.T) service.TimingRequest {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	return service.TimingRequest{
		Lat:      59.9139,
		Lon:      10.7522,
		Location: loc,
		Date:     time.Date(2024, time.January, 15, 23, 30, 0, 0, loc),
	}
}

func TestProvider_DayTimings(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK)
	p := newTestProvider(t, srv.URL)

	set, err := p.DayTimings(context.Background(), osloRequest(t))
	require.NoError(t, err)
	assert.Equal(t, entity.TimingSet{
		Fajr: "06:28", Sunrise: "09:05", Dhuhr: "12:31", Asr: "13:41", Maghrib: "15:54", Isha: "17:48",
	}, set)

	require.Equal(t, 1, rec.calls())
	assert.Equal(t, "/timings/15-01-2024", rec.paths[0])
	q := rec.queries[0]
	assert.Equal(t, "59.91", q.Get("latitude"))
	assert.Equal(t, "10.75", q.Get("longitude"))
	assert.Equal(t, "Europe/Oslo", q.Get("timezonestring"))
	assert.Equal(t, "3", q.Get("method"))
	assert.Empty(t, q.Get("tune"))

	// Second call is served from cache.
	_, err = p.DayTimings(context.Background(), osloRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.calls())
}

func TestProvider_DayTimingsSharesBucketWithNearbyPoint(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK)
	p := newTestProvider(t, srv.URL)

	first := osloRequest(t)
	first.Lat, first.Lon = 59.9061, 10.7541
	_, err := p.DayTimings(context.Background(), first)
	require.NoError(t, err)

	second := osloRequest(t)
	second.Lat, second.Lon = 59.9139, 10.7522
	_, err = p.DayTimings(context.Background(), second)
	require.NoError(t, err)

	require.Equal(t, 1, rec.calls())
	assert.Equal(t, "59.91", rec.queries[0].Get("latitude"))
	assert.Equal(t, "10.75", rec.queries[0].Get("longitude"))
}

func TestProvider_WithProfileSendsTuning(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK)
	base := newTestProvider(t, srv.URL)

	tuned := base.WithProfile("generic-regional-profile", service.CalculationProfile{
		Method:                   99,
		LatitudeAdjustmentMethod: 3,
		MethodSettings:           "16,null,15",
		Tune:                     "0,-6,0,5,0,0,3,0,0",
	})
	assert.Equal(t, "generic-regional-profile", tuned.Name())
	assert.Equal(t, "generic", base.Name())

	_, err := tuned.DayTimings(context.Background(), osloRequest(t))
	require.NoError(t, err)

	require.Equal(t, 1, rec.calls())
	q := rec.queries[0]
	assert.Equal(t, "99", q.Get("method"))
	assert.Equal(t, "16,null,15", q.Get("methodSettings"))
	assert.Equal(t, "0,-6,0,5,0,0,3,0,0", q.Get("tune"))
	assert.Equal(t, "3", q.Get("latitudeAdjustmentMethod"))

	// The base profile has its own cache entry.
	_, err = base.DayTimings(context.Background(), osloRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.calls())
}

func TestProvider_UpstreamError(t *testing.T) {
	srv, _ := newServer(t, http.StatusBadGateway)
	p := newTestProvider(t, srv.URL)

	_, err := p.DayTimings(context.Background(), osloRequest(t))
	assert.ErrorIs(t, err, service.ErrProviderUnavailable)
}

func TestProvider_MonthTimings(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK)
	p := newTestProvider(t, srv.URL)

	table, err := p.MonthTimings(context.Background(), osloRequest(t))
	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "15:38", table[2].Maghrib)
	assert.Equal(t, "/calendar/2024/1", rec.paths[0])
}

func TestNewRegionalFallback(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK)
	base := newTestProvider(t, srv.URL)

	t.Run("uses the configured regional profile", func(t *testing.T) {
		cfg := &config.Config{Regional: &config.RegionalConfig{
			Fallback: config.ProfileConfig{Method: 99, MethodSettings: "16,null,15"},
		}}

		fallback := NewRegionalFallback(base, cfg)

		assert.Equal(t, "generic-regional-profile", fallback.Name())
		assert.Equal(t, 99, fallback.(*Provider).Profile().Method)
	})

	t.Run("keeps the default profile when none is configured", func(t *testing.T) {
		fallback := NewRegionalFallback(base, &config.Config{})

		assert.Equal(t, "generic-regional-profile", fallback.Name())
		assert.Equal(t, base.Profile(), fallback.(*Provider).Profile())
	})
}
