package port

import (
	"context"

	"slot-engine/internal/core/domain"
)

// PlacementUseCase picks the ads to render for a placement.
type PlacementUseCase interface {
	// SelectAds returns the eligible ads of a placement ordered by id. An
	// empty result is not an error.
	SelectAds(ctx context.Context, req domain.SelectRequest) ([]domain.Ad, error)
}

// HeadlineUseCase composes headline areas and applies operator edits.
type HeadlineUseCase interface {
	// Compose returns the slot-ordered entries of an area.
	Compose(ctx context.Context, area domain.Area) (*domain.Headline, error)
	// Reorder persists a new visual order for an area with the minimal
	// number of slot writes.
	Reorder(ctx context.Context, req ReorderRequest) (*ReorderResult, error)
	// Place puts an item into a free slot.
	Place(ctx context.Context, req PlaceRequest) (*domain.Headline, error)
	// Remove takes an item out of an area.
	Remove(ctx context.Context, area domain.Area, ref domain.EntryRef) error
}

// EngagementUseCase counts views and clicks. Counting failures are logged
// and never returned.
type EngagementUseCase interface {
	BeginSession() string
	EndSession(session string)
	// RecordView counts a view once per session and unit. It reports
	// whether an increment was issued.
	RecordView(ctx context.Context, session string, unit domain.EntryRef) bool
	// RecordClick counts every click.
	RecordClick(ctx context.Context, unit domain.EntryRef)
}

// ReorderRequest carries the order produced by an operator drag. Version is
// the headline version the order was based on.
type ReorderRequest struct {
	Area    domain.Area       `json:"area"`
	Version int64             `json:"version"`
	Order   []domain.EntryRef `json:"order"`
}

// ReorderResult summarizes a reconcile batch. Reload is set whenever the
// caller must discard its local order and read the persisted one.
type ReorderResult struct {
	Area      domain.Area `json:"area"`
	Version   int64       `json:"version"`
	Writes    int         `json:"writes"`
	Unchanged int         `json:"unchanged"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	Reload    bool        `json:"reload"`
}

// PlaceRequest puts Ref into Slot of Area.
type PlaceRequest struct {
	Area domain.Area     `json:"area"`
	Ref  domain.EntryRef `json:"ref"`
	Slot int             `json:"slot"`
}
