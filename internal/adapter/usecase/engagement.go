package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
	"slot-engine/internal/metrics"
)

// EngagementUseCase counts views and clicks of ad units. Nothing here is
// ever reported back to the visitor: failures end up in logs and metrics.
type EngagementUseCase struct {
	tracker  port.SessionTracker
	counters port.CounterStore
	sink     port.EngagementSink
	logger   *slog.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewEngagementUseCase wires the counter. sink may be nil.
func NewEngagementUseCase(
	tracker port.SessionTracker,
	counters port.CounterStore,
	sink port.EngagementSink,
	logger *slog.Logger,
	timeout time.Duration,
) *EngagementUseCase {
	return &EngagementUseCase{
		tracker:  tracker,
		counters: counters,
		sink:     sink,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (u *EngagementUseCase) BeginSession() string {
	return u.tracker.Begin()
}

func (u *EngagementUseCase) EndSession(session string) {
	u.tracker.End(session)
}

// RecordView issues at most one view increment per session and unit. The
// pair is marked before the increment and stays marked if it fails, so a
// flapping visibility signal can never double count.
func (u *EngagementUseCase) RecordView(ctx context.Context, session string, unit domain.EntryRef) bool {
	if !unit.Kind.IsUnit() {
		u.logger.Warn("view on non-unit entry ignored", slog.String("unit", unit.String()))
		return false
	}
	first, err := u.tracker.MarkCounted(session, unit)
	if err != nil {
		u.logger.Warn("view not counted",
			slog.String("session", session),
			slog.String("unit", unit.String()),
			slog.Any("error", err))
		metrics.Engagements.WithLabelValues(string(domain.EngagementView), string(unit.Kind), metrics.StatusError).Inc()
		return false
	}
	if !first {
		metrics.Engagements.WithLabelValues(string(domain.EngagementView), string(unit.Kind), metrics.StatusDuplicate).Inc()
		return false
	}
	u.count(ctx, domain.EngagementView, session, unit, u.counters.IncrementViews)
	return true
}

// RecordClick increments the click counter on every call.
func (u *EngagementUseCase) RecordClick(ctx context.Context, unit domain.EntryRef) {
	if !unit.Kind.IsUnit() {
		u.logger.Warn("click on non-unit entry ignored", slog.String("unit", unit.String()))
		return
	}
	u.count(ctx, domain.EngagementClick, "", unit, u.counters.IncrementClicks)
}

func (u *EngagementUseCase) count(
	ctx context.Context,
	typ domain.EngagementType,
	session string,
	unit domain.EntryRef,
	increment func(context.Context, domain.EntryRef) (int64, error),
) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	total, err := increment(ctx, unit)
	if err != nil {
		metrics.Engagements.WithLabelValues(string(typ), string(unit.Kind), metrics.StatusError).Inc()
		u.logger.Error("increment counter",
			slog.String("type", string(typ)),
			slog.String("unit", unit.String()),
			slog.Any("error", err))
		return
	}
	metrics.Engagements.WithLabelValues(string(typ), string(unit.Kind), metrics.StatusOK).Inc()

	if u.sink == nil {
		return
	}
	e := domain.Engagement{
		ID:        uuid.NewString(),
		Type:      typ,
		Unit:      unit,
		SessionID: session,
		Count:     total,
		Timestamp: u.now().UTC(),
	}
	if err = u.sink.PublishEngagement(ctx, e); err != nil {
		u.logger.Warn("publish engagement",
			slog.String("id", e.ID),
			slog.String("unit", unit.String()),
			slog.Any("error", err))
	}
}
