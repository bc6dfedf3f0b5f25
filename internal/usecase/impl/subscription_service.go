package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"go.uber.org/fx"

	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/domain/repository"
	"adhan/internal/errors"
	"adhan/internal/usecase"
	"adhan/internal/util"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// subscriptionIDFor derives the record id. Native app subscribers have no
// endpoint and are keyed by their FCM token instead.
func subscriptionIDFor(endpoint, fcmToken string) string {
	if endpoint != "" {
		return entity.SubscriptionID(endpoint)
	}

	return entity.SubscriptionID("fcm:" + fcmToken)
}

// Subscribe creates or updates the record for an endpoint
func (s *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.Subscription, error) {
	candidate := &entity.Subscription{
		Endpoint: strings.TrimSpace(input.Endpoint),
		Keys: entity.PushKeys{
			P256dh: strings.TrimSpace(input.Keys.P256dh),
			Auth:   strings.TrimSpace(input.Keys.Auth),
		},
		FCMToken:    strings.TrimSpace(input.FCMToken),
		Lat:         input.Lat,
		Lon:         input.Lon,
		Timezone:    strings.TrimSpace(input.Timezone),
		CountryCode: strings.ToUpper(strings.TrimSpace(input.CountryCode)),
		Active:      true,
	}

	if err := validateSubscription(candidate); err != nil {
		return nil, err
	}
	candidate.ID = subscriptionIDFor(candidate.Endpoint, candidate.FCMToken)

	existing, err := s.subscriptionRepo.Get(ctx, candidate.ID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, domainerrors.NewStoreError(err, "read subscription")
	}

	now := s.now().UTC()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if existing != nil {
		candidate.CreatedAt = existing.CreatedAt
		candidate.LastSentAt = existing.LastSentAt
		candidate.LastSentName = existing.LastSentName
		if sameSchedulingInputs(existing, candidate) {
			candidate.NextPrayerName = existing.NextPrayerName
			candidate.NextPrayerAt = existing.NextPrayerAt
		} else {
			s.logger.InfoContext(ctx, "[Subscription] location changed, schedule cleared",
				slog.String("subscription_id", candidate.ID))
		}
	}

	if err := s.subscriptionRepo.Upsert(ctx, candidate); err != nil {
		return nil, domainerrors.NewStoreError(err, "write subscription")
	}

	s.logger.InfoContext(ctx, "[Subscription] subscribed",
		slog.String("subscription_id", candidate.ID),
		slog.Bool("updated", existing != nil),
	)

	return candidate, nil
}

func validateSubscription(sub *entity.Subscription) error {
	if !sub.Deliverable() {
		return domainerrors.ErrSubscriptionInvalid.WithDetails("an endpoint with p256dh and auth keys, or an fcm token, is required")
	}

	if (sub.Lat == nil) != (sub.Lon == nil) {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lon must be provided together")
	}
	if sub.HasLocation() {
		lat, lon := *sub.Lat, *sub.Lon
		if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}
	}

	if sub.Timezone != "" {
		if _, err := util.LoadLocation(sub.Timezone); err != nil {
			return domainerrors.ErrInvalidTimezone.WithDetails(sub.Timezone)
		}
	}

	return nil
}

// sameSchedulingInputs reports whether the pending target is still valid.
func sameSchedulingInputs(a, b *entity.Subscription) bool {
	return sameCoordinate(a.Lat, b.Lat) && sameCoordinate(a.Lon, b.Lon) &&
		a.Timezone == b.Timezone && a.CountryCode == b.CountryCode
}

func sameCoordinate(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// Unsubscribe deletes a subscription by id. Deleting a missing id succeeds.
func (s *subscriptionService) Unsubscribe(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domainerrors.ErrValidationFailed.WithDetails("id is required")
	}

	if err := s.subscriptionRepo.Delete(ctx, id); err != nil {
		return domainerrors.NewStoreError(err, "delete subscription")
	}

	s.logger.InfoContext(ctx, "[Subscription] unsubscribed", slog.String("subscription_id", id))

	return nil
}

// UnsubscribeEndpoint deletes the subscription derived from a push endpoint
func (s *subscriptionService) UnsubscribeEndpoint(ctx context.Context, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	}

	return s.Unsubscribe(ctx, entity.SubscriptionID(endpoint))
}

// GetSubscription returns a subscription for inspection
func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*entity.Subscription, error) {
	sub, err := s.subscriptionRepo.Get(ctx, id)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, domainerrors.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "read subscription")
	}

	return sub, nil
}
