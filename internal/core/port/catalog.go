package port

import (
	"context"

	"slot-engine/internal/core/domain"
)

// AdCatalog is the read side of the ad pool used by placement selection.
type AdCatalog interface {
	// ListActiveAds returns the active ads bound to a placement code.
	ListActiveAds(ctx context.Context, placement string) ([]domain.Ad, error)
}

// HeadlineCatalog reads the occupants of a headline area and guards
// concurrent edits with a per-area version.
type HeadlineCatalog interface {
	// ListPinned returns pinned content holding an occupancy row in area.
	ListPinned(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error)
	// ListAdUnits returns ads with a non-null slot for area.
	ListAdUnits(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error)
	// ListSliderUnits returns slider ads with a non-null slot for area.
	ListSliderUnits(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error)

	// Version returns the current version of area.
	Version(ctx context.Context, area domain.Area) (int64, error)
	// AdvanceVersion increments the version of area if it still equals
	// expected and returns the new value. A mismatch yields
	// domain.ErrVersionConflict.
	AdvanceVersion(ctx context.Context, area domain.Area, expected int64) (int64, error)
	// BumpVersion increments the version of area unconditionally.
	BumpVersion(ctx context.Context, area domain.Area) (int64, error)
}

// SlotStore reads and writes the slot of one entry kind. Implementations
// return domain.ErrNotFound when the item holds no slot in the area.
type SlotStore interface {
	CurrentSlot(ctx context.Context, area domain.Area, id int64) (int, error)
	AssignSlot(ctx context.Context, area domain.Area, id int64, slot int) error
	ClearSlot(ctx context.Context, area domain.Area, id int64) error
}

// SlotStores maps each draggable entry kind to its store.
type SlotStores map[domain.EntryKind]SlotStore

// CounterStore increments the engagement counters of ad units and returns
// the updated value.
type CounterStore interface {
	IncrementViews(ctx context.Context, unit domain.EntryRef) (int64, error)
	IncrementClicks(ctx context.Context, unit domain.EntryRef) (int64, error)
}
