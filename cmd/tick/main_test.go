package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adhan/internal/domain/service"
	mockSvc "adhan/internal/mocks/service"
)

func TestNewTickEvent(t *testing.T) {
	now := time.Date(2024, time.March, 15, 16, 28, 42, 0, time.FixedZone("CET", 3600))

	t.Run("explicit ids", func(t *testing.T) {
		event := newTickEvent(tickFlags{tickID: "tick-1", requestID: "req-1"}, now)

		assert.Equal(t, "tick-1", event.TickID)
		assert.Equal(t, "req-1", event.RequestID)
		assert.Equal(t, time.Date(2024, time.March, 15, 15, 28, 0, 0, time.UTC), event.ScheduledAt)
	})

	t.Run("generated tick id", func(t *testing.T) {
		event := newTickEvent(tickFlags{}, now)

		_, err := uuid.Parse(event.TickID)
		require.NoError(t, err)
	})
}

func TestPublishTick(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishTickEvent(mock.Anything, mock.MatchedBy(func(e *service.TickEvent) bool {
		return e.TickID == "tick-1"
	})).Return(nil)

	err := publishTick(publishParams{
		Ctx:       context.Background(),
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Flags:     tickFlags{tickID: "tick-1"},
	})

	require.NoError(t, err)
}

func TestPublishTick_PropagatesError(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishTickEvent(mock.Anything, mock.Anything).Return(assert.AnError)

	err := publishTick(publishParams{
		Ctx:       context.Background(),
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Flags:     tickFlags{},
	})

	assert.ErrorIs(t, err, assert.AnError)
}
