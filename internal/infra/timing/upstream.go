package timing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"adhan/internal/domain/service"
	"adhan/internal/errors"
	"adhan/internal/infra/metrics"
)

// maxBodyBytes caps upstream response bodies.
const maxBodyBytes = 4 << 20

// Upstream performs rate-limited JSON GETs against a timing provider.
type Upstream struct {
	name    string
	client  *http.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
	headers http.Header
}

// UpstreamOptions configures an Upstream.
type UpstreamOptions struct {
	Name              string
	Timeout           time.Duration
	RequestsPerSecond float64 // Zero disables limiting.
	Burst             int
	Headers           http.Header
	Metrics           *metrics.Metrics
	Transport         http.RoundTripper
}

// NewUpstream builds an Upstream with its own HTTP client.
func NewUpstream(opts UpstreamOptions) *Upstream {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	m := opts.Metrics
	if m == nil {
		m = metrics.NewNop()
	}

	return &Upstream{
		name:    opts.Name,
		client:  &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
		limiter: limiter,
		metrics: m,
		headers: opts.Headers,
	}
}

// GetJSON fetches url and decodes the body into dest. Transport failures and
// non-2xx statuses wrap service.ErrProviderUnavailable; undecodable bodies wrap
// service.ErrMalformedResponse.
func (u *Upstream) GetJSON(ctx context.Context, url string, dest any) error {
	if err := u.limiter.Wait(ctx); err != nil {
		return errors.Wrapf(service.ErrProviderUnavailable, "%s rate limiter: %v", u.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range u.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := u.client.Do(req)
	u.metrics.ProviderLatency.WithLabelValues(u.name).Observe(time.Since(start).Seconds())
	if err != nil {
		u.metrics.ProviderRequests.WithLabelValues(u.name, "transport_error").Inc()

		return errors.Wrapf(service.ErrProviderUnavailable, "%s: %v", u.name, err)
	}
	defer resp.Body.Close()

	u.metrics.ProviderRequests.WithLabelValues(u.name, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

		return errors.Wrapf(service.ErrProviderUnavailable, "%s returned status %d", u.name, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dest); err != nil {
		return errors.Wrapf(service.ErrMalformedResponse, "%s: %v", u.name, err)
	}

	return nil
}
