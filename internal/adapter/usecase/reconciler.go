package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
)

// slotMove is one draggable entry of a requested order and the slot its
// position maps to.
type slotMove struct {
	ref     domain.EntryRef
	store   port.SlotStore
	target  int
	current int
	failed  bool
}

// Reorder persists a new visual order of an area. The entry at index i is
// moved to slot i+1; recommendation entries hold their index but are never
// written. Only entries whose persisted slot differs from the target are
// written, so reordering an unchanged list performs no writes.
//
// A target slot held by an entry the order does not include is rejected
// with domain.ErrSlotOccupied before anything is written.
//
// Writes are independent and not atomic as a batch. When any of them fails
// the returned error is a *domain.PersistenceError and the result has
// Reload set: the caller must drop its local order and re-read the area.
func (u *HeadlineUseCase) Reorder(ctx context.Context, req port.ReorderRequest) (*port.ReorderResult, error) {
	if !req.Area.Valid() {
		return nil, domain.ErrInvalidArea
	}
	moves, skipped, err := u.plan(req.Order)
	if err != nil {
		return nil, err
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
	if err = checkTargets(h, moves); err != nil {
		return nil, err
	}

	res := &port.ReorderResult{Area: req.Area, Skipped: skipped}
	failures := &multierror.Error{}

	// Re-read every slot instead of trusting the order the operator saw.
	u.readCurrent(ctx, req.Area, moves, failures)

	pending := make([]*slotMove, 0, len(moves))
	for i := range moves {
		m := &moves[i]
		switch {
		case m.current < 0:
			// read failed, already recorded
		case m.current == m.target:
			res.Unchanged++
		default:
			pending = append(pending, m)
		}
	}

	if len(pending) == 0 {
		res.Failed = failures.Len()
		res.Version = h.Version
		if res.Failed > 0 {
			res.Reload = true
			return res, &domain.PersistenceError{Area: req.Area, Errors: failures}
		}
		return res, nil
	}

	version, err := u.catalog.AdvanceVersion(ctx, req.Area, req.Version)
	if err != nil {
		res.Reload = true
		return res, fmt.Errorf("claim area %d at version %d: %w", req.Area, req.Version, err)
	}
	res.Version = version

	u.applyMoves(ctx, req.Area, pending, failures)

	res.Failed = failures.Len()
	res.Writes = len(pending) - countWriteFailures(failures)

	if res.Writes > 0 {
		refs := make([]domain.EntryRef, 0, res.Writes)
		for _, m := range pending {
			if !m.failed {
				refs = append(refs, m.ref)
			}
		}
		u.notify(ctx, domain.HeadlineChange{Area: req.Area, Action: domain.ChangeReordered, Version: version, Refs: refs})
	}

	if res.Failed > 0 {
		res.Reload = true
		u.logger.Error("headline reorder partially failed",
			slog.Int("area", int(req.Area)),
			slog.Int("writes", res.Writes),
			slog.Int("failed", res.Failed))
		return res, &domain.PersistenceError{Area: req.Area, Errors: failures}
	}
	u.logger.Info("headline reordered",
		slog.Int("area", int(req.Area)),
		slog.Int64("version", version),
		slog.Int("writes", res.Writes),
		slog.Int("unchanged", res.Unchanged))
	return res, nil
}

// plan validates an order and maps every draggable entry to its target
// slot.
func (u *HeadlineUseCase) plan(order []domain.EntryRef) ([]slotMove, int, error) {
	seen := make(map[domain.EntryRef]struct{}, len(order))
	moves := make([]slotMove, 0, len(order))
	skipped := 0
	for i, ref := range order {
		if !ref.Kind.Valid() {
			return nil, 0, fmt.Errorf("%w: %q at index %d", domain.ErrInvalidKind, ref.Kind, i)
		}
		if _, dup := seen[ref]; dup {
			return nil, 0, fmt.Errorf("%w: %s listed twice", domain.ErrInvalidOrder, ref)
		}
		seen[ref] = struct{}{}

		if !ref.Kind.Draggable() {
			skipped++
			continue
		}
		target := i + 1
		if target > domain.MaxSlots {
			return nil, 0, fmt.Errorf("%w: %s at position %d", domain.ErrSlotOutOfRange, ref, target)
		}
		store, err := u.store(ref.Kind)
		if err != nil {
			return nil, 0, err
		}
		moves = append(moves, slotMove{ref: ref, store: store, target: target})
	}
	return moves, skipped, nil
}

// readCurrent fills in the persisted slot of every move. A missing slot is
// read as 0; a failed read marks the move with -1 and records the error.
func (u *HeadlineUseCase) readCurrent(ctx context.Context, area domain.Area, moves []slotMove, failures *multierror.Error) {
	var mu sync.Mutex
	g := errgroup.Group{}
	g.SetLimit(u.concurrency)
	for i := range moves {
		m := &moves[i]
		g.Go(func() error {
			slot, err := m.store.CurrentSlot(ctx, area, m.ref.ID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				u.logger.Info("entry holds no slot, treating as unassigned",
					slog.Int("area", int(area)),
					slog.String("ref", m.ref.String()))
				m.current = 0
			case err != nil:
				m.current = -1
				mu.Lock()
				failures.Errors = append(failures.Errors, fmt.Errorf("read slot of %s: %w", m.ref, err))
				mu.Unlock()
			default:
				m.current = slot
			}
			return nil
		})
	}
	_ = g.Wait()
}

// applyMoves writes the pending moves concurrently. Every write is
// attempted regardless of the others.
func (u *HeadlineUseCase) applyMoves(ctx context.Context, area domain.Area, pending []*slotMove, failures *multierror.Error) {
	var mu sync.Mutex
	g := errgroup.Group{}
	g.SetLimit(u.concurrency)
	for _, m := range pending {
		g.Go(func() error {
			err := u.write(ctx, m.ref.Kind, func(ctx context.Context) error {
				return m.store.AssignSlot(ctx, area, m.ref.ID, m.target)
			})
			if err != nil {
				u.logger.Warn("slot write failed",
					slog.Int("area", int(area)),
					slog.String("ref", m.ref.String()),
					slog.Int("from", m.current),
					slog.Int("to", m.target),
					slog.Any("error", err))
				m.failed = true
				mu.Lock()
				failures.Errors = append(failures.Errors, &domain.SlotWriteError{Ref: m.ref, Target: m.target, Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
}

// checkTargets rejects a move onto a slot held by an entry outside the
// batch. An entry hidden by a duplicate slot still holds that slot.
func checkTargets(h *domain.Headline, moves []slotMove) error {
	inBatch := make(map[domain.EntryRef]struct{}, len(moves))
	for _, m := range moves {
		inBatch[m.ref] = struct{}{}
	}
	holders := make(map[int][]domain.EntryRef, len(h.Entries))
	for _, e := range h.Entries {
		holders[e.Slot] = append(holders[e.Slot], e.Ref())
	}
	for _, w := range h.Warnings {
		if w.Problem == domain.ProblemDuplicateSlot {
			holders[w.Slot] = append(holders[w.Slot], w.Dropped)
		}
	}
	for _, m := range moves {
		for _, ref := range holders[m.target] {
			if _, ok := inBatch[ref]; !ok {
				return fmt.Errorf("%w: slot %d of area %d holds %s, which the order leaves out",
					domain.ErrSlotOccupied, m.target, h.Area, ref)
			}
		}
	}
	return nil
}

func countWriteFailures(failures *multierror.Error) int {
	n := 0
	for _, err := range failures.Errors {
		var we *domain.SlotWriteError
		if errors.As(err, &we) {
			n++
		}
	}
	return n
}
