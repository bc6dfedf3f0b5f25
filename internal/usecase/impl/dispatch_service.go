package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"adhan/config"
	deliverycontext "adhan/internal/delivery/context"
	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/domain/repository"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
	"adhan/internal/infra/metrics"
	"adhan/internal/usecase"
	"adhan/internal/util"
)

// DispatchServiceParams holds dependencies for the dispatch loop, injected by Fx
type DispatchServiceParams struct {
	fx.In

	Config  *config.Config
	Repo    repository.SubscriptionRepository
	Timings usecase.TimingUsecase
	Push    service.PushService
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// evaluation is the outcome of one subscriber inside a tick.
type evaluation int

const (
	evalSkipped evaluation = iota
	evalScheduled
	evalSent
	evalPruned
	evalFailed
)

type dispatchService struct {
	repo         repository.SubscriptionRepository
	timings      usecase.TimingUsecase
	push         service.PushService
	policy       usecase.WindowPolicy
	concurrency  int
	fallback     usecase.TimingQuery
	notification config.NotificationConfig
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

// NewDispatchService creates the dispatch loop.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return newDispatchService(params, time.Now)
}

func newDispatchService(params DispatchServiceParams, now func() time.Time) *dispatchService {
	cfg := params.Config.Dispatch

	m := params.Metrics
	if m == nil {
		m = metrics.NewNop()
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &dispatchService{
		repo:        params.Repo,
		timings:     params.Timings,
		push:        params.Push,
		policy:      usecase.WindowPolicy{LateTolerance: cfg.LateTolerance, TooLate: cfg.TooLate},
		concurrency: concurrency,
		fallback: usecase.TimingQuery{
			Lat:         cfg.DefaultLocation.Lat,
			Lon:         cfg.DefaultLocation.Lon,
			Timezone:    cfg.DefaultLocation.Timezone,
			CountryCode: cfg.DefaultLocation.CountryCode,
		},
		notification: cfg.Notification,
		metrics:      m,
		logger:       params.Logger,
		now:          now,
	}
}

// Tick evaluates every subscriber once against a single clock reading.
// An empty tickID falls back to the one carried by ctx.
func (s *dispatchService) Tick(ctx context.Context, tickID string) (*usecase.TickReport, error) {
	start := s.now()
	if tickID == "" {
		tickID = deliverycontext.GetTickIDFromContext(ctx)
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("tick_id", tickID))

	ids, err := s.repo.ListActiveIDs(ctx)
	if err != nil {
		s.metrics.TicksTotal.WithLabelValues("aborted").Inc()
		logger.ErrorContext(ctx, "[Dispatch] cannot list subscribers, aborting tick", slog.Any("error", err))

		return nil, errors.Retryable(domainerrors.NewStoreError(err, "list subscriber ids"))
	}

	report := &usecase.TickReport{TickID: tickID, StartedAt: start, Total: len(ids)}

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			result := s.evaluate(ctx, logger.With(slog.String("subscription_id", id)), id, start)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case evalScheduled:
				report.Scheduled++
			case evalSent:
				report.Sent++
			case evalPruned:
				report.Pruned++
			case evalFailed:
				report.Failed++
			default:
				report.Skipped++
			}

			return nil
		})
	}
	_ = g.Wait()

	report.Duration = s.now().Sub(start)
	s.metrics.TicksTotal.WithLabelValues("completed").Inc()
	s.metrics.TickDuration.Observe(report.Duration.Seconds())

	logger.InfoContext(ctx, "[Dispatch] tick completed",
		slog.Int("total", report.Total),
		slog.Int("sent", report.Sent),
		slog.Int("scheduled", report.Scheduled),
		slog.Int("skipped", report.Skipped),
		slog.Int("pruned", report.Pruned),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)

	return report, nil
}

func (s *dispatchService) evaluate(ctx context.Context, logger *slog.Logger, id string, now time.Time) evaluation {
	sub, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		// Set membership without a record; drop the dangling id.
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			logger.WarnContext(ctx, "[Dispatch] failed to drop dangling id", slog.Any("error", delErr))
		}

		return evalSkipped
	}
	if err != nil {
		return s.fail(ctx, logger, "read subscription", err)
	}

	if !sub.Active {
		return evalSkipped
	}
	if !sub.Deliverable() {
		logger.WarnContext(ctx, "[Dispatch] subscription has no push credentials, skipping")

		return evalSkipped
	}

	state := usecase.ClassifyWindow(now, sub.NextPrayerAt, sub.LastSentAt, s.policy)
	s.metrics.WindowStates.WithLabelValues(state.String()).Inc()

	switch state {
	case usecase.WindowUnscheduled:
		if sub.NextPrayerAt != 0 && sub.LastSentAt < sub.NextPrayerAt {
			logger.InfoContext(ctx, "[Dispatch] target passed the too-late threshold unsent, rescheduling",
				slog.String("prayer", string(sub.NextPrayerName)),
				slog.Int64("next_at", sub.NextPrayerAt),
			)
		}

		return s.schedule(ctx, logger, sub, now)
	case usecase.WindowDue:
		return s.deliver(ctx, logger, sub, now)
	default:
		return evalSkipped
	}
}

// schedule stores the first prayer strictly after the given instant.
func (s *dispatchService) schedule(ctx context.Context, logger *slog.Logger, sub *entity.Subscription, after time.Time) evaluation {
	next, err := s.timings.NextPrayer(ctx, s.queryFor(sub), after)
	if err != nil {
		return s.fail(ctx, logger, "resolve next prayer", err)
	}

	if err := s.repo.SetFields(ctx, sub.ID, entity.ScheduleFields(next)); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return evalSkipped
		}

		return s.fail(ctx, logger, "store next prayer", err)
	}

	logger.DebugContext(ctx, "[Dispatch] scheduled",
		slog.String("prayer", string(next.Name)),
		slog.Time("at", next.At),
	)

	return evalScheduled
}

func (s *dispatchService) deliver(ctx context.Context, logger *slog.Logger, sub *entity.Subscription, now time.Time) evaluation {
	nextAt := sub.NextPrayerAt

	won, err := s.repo.ClaimDelivery(ctx, sub.ID, nextAt, sub.NextPrayerName)
	if err != nil {
		return s.fail(ctx, logger, "claim delivery", err)
	}
	if !won {
		// Another run already sent this instant.
		s.metrics.DeliveriesTotal.WithLabelValues("claimed_elsewhere").Inc()

		return evalSkipped
	}

	outcome, sendErr := s.push.Send(ctx, sub, s.payloadFor(sub))
	s.metrics.DeliveriesTotal.WithLabelValues(outcome.String()).Inc()

	switch outcome {
	case entity.DeliveryDelivered:
		logger.InfoContext(ctx, "[Dispatch] notification sent", slog.String("prayer", string(sub.NextPrayerName)))

		after := util.MaxTime(now, time.UnixMilli(nextAt))
		if res := s.schedule(ctx, logger, sub, after); res == evalFailed {
			// The claim stays; the next tick sees AlreadySent and then Unscheduled.
			logger.WarnContext(ctx, "[Dispatch] sent but follow-up schedule failed")
		}

		return evalSent

	case entity.DeliveryGone:
		logger.InfoContext(ctx, "[Dispatch] endpoint gone, pruning subscription", slog.Any("error", sendErr))
		if err := s.repo.Delete(ctx, sub.ID); err != nil {
			return s.fail(ctx, logger, "prune subscription", err)
		}
		s.metrics.SubscribersPruned.Inc()

		return evalPruned

	default:
		if err := s.repo.ReleaseDelivery(ctx, sub.ID, nextAt, sub.LastSentAt, sub.LastSentName); err != nil {
			logger.ErrorContext(ctx, "[Dispatch] failed to release claim after transient failure", slog.Any("error", err))
		}

		return s.fail(ctx, logger, "send notification", sendErr)
	}
}

func (s *dispatchService) fail(ctx context.Context, logger *slog.Logger, step string, err error) evaluation {
	s.metrics.SubscriberErrors.Inc()
	logger.WarnContext(ctx, "[Dispatch] subscriber evaluation failed",
		slog.String("step", step),
		slog.Any("error", err),
	)

	return evalFailed
}

// queryFor falls back to the configured default location for records
// without coordinates or timezone.
func (s *dispatchService) queryFor(sub *entity.Subscription) usecase.TimingQuery {
	q := s.fallback
	if sub.HasLocation() {
		q.Lat, q.Lon = *sub.Lat, *sub.Lon
		q.CountryCode = sub.CountryCode
	}
	if sub.Timezone != "" {
		q.Timezone = sub.Timezone
	}

	return q
}

func (s *dispatchService) payloadFor(sub *entity.Subscription) *entity.PushPayload {
	at := time.UnixMilli(sub.NextPrayerAt)
	if loc, err := util.LoadLocation(s.queryFor(sub).Timezone); err == nil {
		at = at.In(loc)
	}

	return &entity.PushPayload{
		Title: string(sub.NextPrayerName),
		Body:  fmt.Sprintf("It is time for %s (%s)", sub.NextPrayerName, at.Format("15:04")),
		URL:   s.notification.URL,
		Icon:  s.notification.Icon,
		Badge: s.notification.Badge,
		Tag:   strings.ToLower(string(sub.NextPrayerName)),
	}
}
