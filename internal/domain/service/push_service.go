package service

import (
	"context"

	"adhan/internal/domain/entity"
)

// PushService is the outbound push transport.
type PushService interface {
	// Send delivers payload to the subscription. A non-nil error always comes
	// with DeliveryTransient or DeliveryGone; DeliveryDelivered means success.
	Send(ctx context.Context, sub *entity.Subscription, payload *entity.PushPayload) (entity.DeliveryOutcome, error)
}
