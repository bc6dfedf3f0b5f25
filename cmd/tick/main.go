// Command tick publishes one dispatch tick event. It is meant to be run by a
// scheduler every minute; the workers do the evaluation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/domain/lifecycle"
	"adhan/internal/domain/service"
	logs "adhan/internal/infra/log"
	"adhan/internal/infra/pubsub"
)

type tickFlags struct {
	tickID    string
	requestID string
}

type publishParams struct {
	fx.In

	Ctx       context.Context
	Publisher service.EventPublisher
	Logger    *slog.Logger
	Flags     tickFlags
}

func main() {
	tickID := flag.String("tick-id", "", "Tick id (generated when empty)")
	requestID := flag.String("request-id", "", "Request id propagated to the worker logs")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
		fx.Supply(tickFlags{tickID: *tickID, requestID: *requestID}),
		fx.Invoke(publishTick),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func publishTick(params publishParams) error {
	event := newTickEvent(params.Flags, time.Now())
	if err := params.Publisher.PublishTickEvent(params.Ctx, event); err != nil {
		return err
	}

	params.Logger.Info("[Tick] published",
		slog.String("tick_id", event.TickID),
		slog.Time("scheduled_at", event.ScheduledAt),
	)

	return nil
}

func newTickEvent(flags tickFlags, now time.Time) *service.TickEvent {
	tickID := flags.tickID
	if tickID == "" {
		tickID = uuid.NewString()
	}

	return &service.TickEvent{
		RequestID:   flags.requestID,
		TickID:      tickID,
		ScheduledAt: now.UTC().Truncate(time.Minute),
	}
}
