package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"adhan/config"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

const webpushTimeout = 10 * time.Second

// webpushService delivers to browser push endpoints signed with VAPID keys.
type webpushService struct {
	cfg        *config.VAPIDConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebPushService creates the Web Push transport.
func NewWebPushService(cfg *config.VAPIDConfig, logger *slog.Logger) service.PushService {
	return &webpushService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: webpushTimeout},
		logger:     logger,
	}
}

// Send encrypts and posts the payload to the subscription endpoint.
// 404 and 410 mean the browser dropped the subscription.
func (s *webpushService) Send(ctx context.Context, sub *entity.Subscription, payload *entity.PushPayload) (entity.DeliveryOutcome, error) {
	if s.cfg.PublicKey == "" || s.cfg.PrivateKey == "" {
		return entity.DeliveryTransient, errors.New("vapid keys not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entity.DeliveryTransient, errors.WithStack(err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.PublicKey,
		VAPIDPrivateKey: s.cfg.PrivateKey,
		TTL:             int(s.cfg.TTL.Seconds()),
		Urgency:         webpush.UrgencyHigh,
		Topic:           payload.Tag,
	})
	if err != nil {
		return entity.DeliveryTransient, errors.Wrap(err, "webpush send failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return entity.DeliveryGone, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return entity.DeliveryDelivered, nil
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return entity.DeliveryTransient, errors.Errorf("push service returned %d: %s", resp.StatusCode, string(detail))
	}
}
