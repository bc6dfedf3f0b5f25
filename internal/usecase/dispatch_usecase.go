package usecase

import (
	"context"
	"time"
)

// WindowState is the delivery window classification of one subscriber.
type WindowState int

const (
	// WindowUnscheduled means there is no usable target; recompute it.
	WindowUnscheduled WindowState = iota
	// WindowTooEarly means the target is further away than the late tolerance.
	WindowTooEarly
	// WindowAlreadySent means the target has been delivered.
	WindowAlreadySent
	// WindowDue means the notification should be sent now.
	WindowDue
)

func (s WindowState) String() string {
	switch s {
	case WindowTooEarly:
		return "too_early"
	case WindowAlreadySent:
		return "already_sent"
	case WindowDue:
		return "due"
	default:
		return "unscheduled"
	}
}

// WindowPolicy bounds the delivery window around a prayer instant.
type WindowPolicy struct {
	LateTolerance time.Duration // Window opens this long before the prayer.
	TooLate       time.Duration // Window closes this long after the prayer.
}

// ClassifyWindow is a pure function of the clock and the stored schedule.
// nextAt and lastSentAt are epoch milliseconds; zero means absent.
func ClassifyWindow(now time.Time, nextAt, lastSentAt int64, policy WindowPolicy) WindowState {
	nowMs := now.UnixMilli()

	if nextAt == 0 || nowMs-nextAt > policy.TooLate.Milliseconds() {
		return WindowUnscheduled
	}
	if nowMs < nextAt-policy.LateTolerance.Milliseconds() {
		return WindowTooEarly
	}
	if lastSentAt >= nextAt {
		return WindowAlreadySent
	}

	return WindowDue
}

// TickReport summarizes one dispatch evaluation pass.
type TickReport struct {
	TickID    string        `json:"tick_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Total     int           `json:"total"`
	Skipped   int           `json:"skipped"`
	Scheduled int           `json:"scheduled"`
	Sent      int           `json:"sent"`
	Pruned    int           `json:"pruned"`
	Failed    int           `json:"failed"`
}

// DispatchUsecase runs the notification loop.
type DispatchUsecase interface {
	// Tick evaluates every subscriber once. It fails only when the store
	// cannot be read at all.
	Tick(ctx context.Context, tickID string) (*TickReport, error)
}
