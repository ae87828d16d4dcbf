package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
)

// HeadlineRepository implements port.HeadlineCatalog.
type HeadlineRepository struct {
	db *sql.DB
}

func NewHeadlineRepository(db *sql.DB) *HeadlineRepository {
	return &HeadlineRepository{db: db}
}

// Slots returns the slot stores of every draggable kind.
func (r *HeadlineRepository) Slots() port.SlotStores {
	return port.SlotStores{
		domain.KindPinned:   &pinnedSlots{db: r.db},
		domain.KindAd:       &unitSlots{db: r.db, table: "ads", touch: true},
		domain.KindSliderAd: &unitSlots{db: r.db, table: "slider_ads"},
	}
}

func (r *HeadlineRepository) ListPinned(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error) {
	return r.list(ctx, domain.KindPinned, `
        SELECT hs.content_id, hs.slot, c.title
        FROM headline_slots hs
        JOIN contents c ON c.id = hs.content_id
        WHERE hs.area = ?
        ORDER BY hs.slot`, int(area))
}

func (r *HeadlineRepository) ListAdUnits(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error) {
	return r.listUnits(ctx, area, "ads", domain.KindAd)
}

func (r *HeadlineRepository) ListSliderUnits(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error) {
	return r.listUnits(ctx, area, "slider_ads", domain.KindSliderAd)
}

func (r *HeadlineRepository) listUnits(ctx context.Context, area domain.Area, table string, kind domain.EntryKind) ([]domain.HeadlineEntry, error) {
	column, err := slotColumn(area)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, kind,
		fmt.Sprintf(`SELECT id, %[1]s, name FROM %[2]s WHERE %[1]s IS NOT NULL ORDER BY %[1]s, id`, column, table))
}

func (r *HeadlineRepository) list(ctx context.Context, kind domain.EntryKind, query string, args ...any) ([]domain.HeadlineEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HeadlineEntry
	for rows.Next() {
		e := domain.HeadlineEntry{Kind: kind}
		if err = rows.Scan(&e.ID, &e.Slot, &e.Label); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *HeadlineRepository) Version(ctx context.Context, area domain.Area) (int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx, `SELECT version FROM headline_areas WHERE area = ?`, int(area)).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return version, err
}

func (r *HeadlineRepository) AdvanceVersion(ctx context.Context, area domain.Area, expected int64) (int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx, `
        UPDATE headline_areas SET version = version + 1
        WHERE area = ? AND version = ?
        RETURNING version`, int(area), expected).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("area %d is no longer at version %d: %w", area, expected, domain.ErrVersionConflict)
	}
	return version, err
}

func (r *HeadlineRepository) BumpVersion(ctx context.Context, area domain.Area) (int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO headline_areas (area, version) VALUES (?, 1)
        ON CONFLICT (area) DO UPDATE SET version = version + 1
        RETURNING version`, int(area)).Scan(&version)
	return version, err
}
