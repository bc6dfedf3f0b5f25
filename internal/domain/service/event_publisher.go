package service

import (
	"context"
	"time"
)

// TickEvent asks a worker to run one dispatch evaluation.
type TickEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	TickID      string    `json:"tick_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// EventPublisher defines the interface for publishing tick events to a message queue
type EventPublisher interface {
	// PublishTickEvent publishes a tick event for async processing
	PublishTickEvent(ctx context.Context, event *TickEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
