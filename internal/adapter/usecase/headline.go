package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"slot-engine/internal/config/configs"
	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
	"slot-engine/internal/metrics"
)

// HeadlineUseCase composes headline areas and applies operator edits to
// them. Edits of one area are serialized: a second edit arriving while one
// is in flight is rejected with domain.ErrEditInProgress.
type HeadlineUseCase struct {
	catalog  port.HeadlineCatalog
	slots    port.SlotStores
	notifier port.HeadlineNotifier
	logger   *slog.Logger

	concurrency  int
	writeTimeout time.Duration
	now          func() time.Time

	mu   sync.Mutex
	busy map[domain.Area]bool
}

// NewHeadlineUseCase wires the compositor and reconciler. notifier may be
// nil when nobody listens for changes.
func NewHeadlineUseCase(
	catalog port.HeadlineCatalog,
	slots port.SlotStores,
	notifier port.HeadlineNotifier,
	logger *slog.Logger,
	cfg configs.Reconcile,
) *HeadlineUseCase {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &HeadlineUseCase{
		catalog:      catalog,
		slots:        slots,
		notifier:     notifier,
		logger:       logger,
		concurrency:  concurrency,
		writeTimeout: cfg.WriteTimeout,
		now:          time.Now,
		busy:         make(map[domain.Area]bool),
	}
}

// Compose returns the entries of an area ordered by slot. Pinned content,
// ad units and slider ad units share one numbering space; when two of them
// claim the same slot the first one read wins, in that source order, and a
// DataIntegrityWarning is attached to the result.
func (u *HeadlineUseCase) Compose(ctx context.Context, area domain.Area) (*domain.Headline, error) {
	if !area.Valid() {
		return nil, domain.ErrInvalidArea
	}
	version, err := u.catalog.Version(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("read version of area %d: %w", area, err)
	}

	sources := []struct {
		kind domain.EntryKind
		list func(context.Context, domain.Area) ([]domain.HeadlineEntry, error)
	}{
		{domain.KindPinned, u.catalog.ListPinned},
		{domain.KindAd, u.catalog.ListAdUnits},
		{domain.KindSliderAd, u.catalog.ListSliderUnits},
	}
	var union []domain.HeadlineEntry
	for _, src := range sources {
		entries, err := src.list(ctx, area)
		if err != nil {
			return nil, fmt.Errorf("list %s entries of area %d: %w", src.kind, area, err)
		}
		for _, e := range entries {
			e.Kind = src.kind
			union = append(union, e)
		}
	}

	h := compose(area, union)
	h.Version = version
	for _, w := range h.Warnings {
		metrics.IntegrityWarnings.WithLabelValues(strconv.Itoa(int(area)), string(w.Problem)).Inc()
		u.logger.Warn("headline data integrity", slog.String("warning", w.String()))
	}
	return h, nil
}

// compose orders entries by slot and drops out-of-range and duplicate
// slots. The sort is stable so the earliest entry keeps a contested slot.
func compose(area domain.Area, entries []domain.HeadlineEntry) *domain.Headline {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.HeadlineEntry) int { return cmp.Compare(a.Slot, b.Slot) })

	h := &domain.Headline{Area: area, Entries: make([]domain.HeadlineEntry, 0, min(len(sorted), domain.MaxSlots))}
	for _, e := range sorted {
		if e.Slot < 1 || e.Slot > domain.MaxSlots {
			h.Warnings = append(h.Warnings, domain.DataIntegrityWarning{
				Problem: domain.ProblemSlotOutOfRange,
				Area:    area,
				Slot:    e.Slot,
				Dropped: e.Ref(),
			})
			continue
		}
		if n := len(h.Entries); n > 0 && h.Entries[n-1].Slot == e.Slot {
			kept := h.Entries[n-1].Ref()
			h.Warnings = append(h.Warnings, domain.DataIntegrityWarning{
				Problem: domain.ProblemDuplicateSlot,
				Area:    area,
				Slot:    e.Slot,
				Dropped: e.Ref(),
				Kept:    &kept,
			})
			continue
		}
		h.Entries = append(h.Entries, e)
	}
	return h
}

// Place puts an item into a free slot of an area. Placing an item into the
// slot it already holds is a no-op; any other occupant makes the call fail
// with domain.ErrSlotOccupied.
func (u *HeadlineUseCase) Place(ctx context.Context, req port.PlaceRequest) (*domain.Headline, error) {
	if !req.Area.Valid() {
		return nil, domain.ErrInvalidArea
	}
	store, err := u.store(req.Ref.Kind)
	if err != nil {
		return nil, err
	}
	if req.Slot < 1 || req.Slot > domain.MaxSlots {
		return nil, fmt.Errorf("%w: %d", domain.ErrSlotOutOfRange, req.Slot)
	}

	release, err := u.acquire(req.Area)
	if err != nil {
		return nil, err
	}
	defer release()

	h, err := u.Compose(ctx, req.Area)
	if err != nil {
		return nil, err
	}
	if occ, ok := h.Occupant(req.Slot); ok {
		if occ.Ref() == req.Ref {
			return h, nil
		}
		return nil, fmt.Errorf("%w: slot %d of area %d holds %s", domain.ErrSlotOccupied, req.Slot, req.Area, occ.Ref())
	}

	if err = u.write(ctx, req.Ref.Kind, func(ctx context.Context) error {
		return store.AssignSlot(ctx, req.Area, req.Ref.ID, req.Slot)
	}); err != nil {
		return nil, fmt.Errorf("place %s in slot %d of area %d: %w", req.Ref, req.Slot, req.Area, err)
	}

	version := u.bump(ctx, req.Area)
	u.notify(ctx, domain.HeadlineChange{Area: req.Area, Action: domain.ChangePlaced, Version: version, Refs: []domain.EntryRef{req.Ref}})
	return u.Compose(ctx, req.Area)
}

// Remove takes an item out of an area. For pinned content this deletes its
// occupancy row, which is also what makes it stop counting as "in the
// headline"; for ad units the slot column is nulled. Removing an item that
// holds no slot succeeds.
func (u *HeadlineUseCase) Remove(ctx context.Context, area domain.Area, ref domain.EntryRef) error {
	if !area.Valid() {
		return domain.ErrInvalidArea
	}
	store, err := u.store(ref.Kind)
	if err != nil {
		return err
	}

	release, err := u.acquire(area)
	if err != nil {
		return err
	}
	defer release()

	err = u.write(ctx, ref.Kind, func(ctx context.Context) error {
		return store.ClearSlot(ctx, area, ref.ID)
	})
	if errors.Is(err, domain.ErrNotFound) {
		u.logger.Info("nothing to remove, entry holds no slot",
			slog.Int("area", int(area)),
			slog.String("ref", ref.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove %s from area %d: %w", ref, area, err)
	}

	version := u.bump(ctx, area)
	u.notify(ctx, domain.HeadlineChange{Area: area, Action: domain.ChangeRemoved, Version: version, Refs: []domain.EntryRef{ref}})
	return nil
}

func (u *HeadlineUseCase) store(kind domain.EntryKind) (port.SlotStore, error) {
	if !kind.Draggable() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}
	store, ok := u.slots[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no slot store for %q", domain.ErrInvalidKind, kind)
	}
	return store, nil
}

// acquire marks area as being edited. The returned func clears the mark.
func (u *HeadlineUseCase) acquire(area domain.Area) (func(), error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.busy[area] {
		return nil, domain.ErrEditInProgress
	}
	u.busy[area] = true
	return func() {
		u.mu.Lock()
		delete(u.busy, area)
		u.mu.Unlock()
	}, nil
}

// write runs one slot write under the configured timeout and records its
// outcome.
func (u *HeadlineUseCase) write(ctx context.Context, kind domain.EntryKind, fn func(context.Context) error) error {
	if u.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.writeTimeout)
		defer cancel()
	}
	err := fn(ctx)
	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	metrics.SlotWrites.WithLabelValues(string(kind), status).Inc()
	return err
}

// bump advances the area version after a single-item edit. The edit has
// already been persisted, so a failure here is only logged.
func (u *HeadlineUseCase) bump(ctx context.Context, area domain.Area) int64 {
	version, err := u.catalog.BumpVersion(ctx, area)
	if err != nil {
		u.logger.Error("bump headline version", slog.Int("area", int(area)), slog.Any("error", err))
	}
	return version
}

func (u *HeadlineUseCase) notify(ctx context.Context, change domain.HeadlineChange) {
	if u.notifier == nil {
		return
	}
	change.Timestamp = u.now().UTC()
	if err := u.notifier.NotifyHeadlineChanged(ctx, change); err != nil {
		u.logger.Warn("headline change notification failed",
			slog.Int("area", int(change.Area)),
			slog.String("action", string(change.Action)),
			slog.Any("error", err))
	}
}
