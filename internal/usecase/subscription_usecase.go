package usecase

import (
	"context"

	"adhan/internal/domain/entity"
)

// SubscribeInput is what a browser or app registers.
type SubscribeInput struct {
	Endpoint    string
	Keys        entity.PushKeys
	FCMToken    string
	Lat         *float64
	Lon         *float64
	Timezone    string
	CountryCode string
}

// SubscriptionUsecase manages the subscription lifecycle.
type SubscriptionUsecase interface {
	// Subscribe creates or updates the record for the endpoint. A changed
	// location clears the pending schedule.
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.Subscription, error)

	// Unsubscribe deletes a subscription by id.
	Unsubscribe(ctx context.Context, id string) error

	// UnsubscribeEndpoint deletes the subscription derived from endpoint.
	UnsubscribeEndpoint(ctx context.Context, endpoint string) error

	// GetSubscription returns a subscription for inspection.
	GetSubscription(ctx context.Context, id string) (*entity.Subscription, error)
}
