package notification

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"adhan/config"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

// messagingClient is the subset of the FCM client used for delivery.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseService delivers to native app subscribers through FCM.
type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates the FCM transport from a service account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send pushes the payload to the subscriber's FCM token.
// Unregistered or invalid tokens mean the app instance is gone.
func (s *firebaseService) Send(ctx context.Context, sub *entity.Subscription, payload *entity.PushPayload) (entity.DeliveryOutcome, error) {
	data := map[string]string{"url": payload.URL}
	if payload.Tag != "" {
		data["tag"] = payload.Tag
	}

	message := &messaging.Message{
		Token: sub.FCMToken,
		Notification: &messaging.Notification{
			Title:    payload.Title,
			Body:     payload.Body,
			ImageURL: payload.Icon,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority:    "high",
			CollapseKey: payload.Tag,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return entity.DeliveryGone, nil
		}

		return entity.DeliveryTransient, errors.Wrap(err, "failed to send notification")
	}

	return entity.DeliveryDelivered, nil
}
