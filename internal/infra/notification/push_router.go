// Package notification contains the push delivery transports.
package notification

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

// pushRouter picks FCM for app subscribers and Web Push for browsers.
type pushRouter struct {
	webpush service.PushService
	fcm     service.PushService
}

// Params holds dependencies for the push service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService wires the configured transports behind service.PushService.
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config
	router := &pushRouter{
		webpush: NewWebPushService(cfg.VAPID, params.Logger),
	}

	if cfg.Firebase != nil && cfg.Firebase.CredentialsPath != "" {
		fcm, err := NewFirebaseService(params.Ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		router.fcm = fcm
		params.Logger.Info("FCM transport enabled", slog.String("project_id", cfg.Firebase.ProjectID))
	} else {
		params.Logger.Info("FCM transport disabled, app subscribers will not be reached")
	}

	return router, nil
}

func (r *pushRouter) Send(ctx context.Context, sub *entity.Subscription, payload *entity.PushPayload) (entity.DeliveryOutcome, error) {
	if sub.FCMToken != "" {
		if r.fcm != nil {
			return r.fcm.Send(ctx, sub, payload)
		}
		if sub.Endpoint == "" {
			return entity.DeliveryTransient, errors.New("fcm transport not configured")
		}
	}

	if sub.Endpoint == "" {
		return entity.DeliveryGone, nil
	}

	return r.webpush.Send(ctx, sub, payload)
}
