package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
)

// HeadlineRepository implements port.HeadlineCatalog. Pinned membership is
// read from headline_slots only; ad units from their slot columns.
type HeadlineRepository struct {
	pool *pgxpool.Pool
}

func NewHeadlineRepository(pool *pgxpool.Pool) *HeadlineRepository {
	return &HeadlineRepository{pool: pool}
}

// Slots returns the slot stores of every draggable kind.
func (r *HeadlineRepository) Slots() port.SlotStores {
	return port.SlotStores{
		domain.KindPinned:   &pinnedSlots{pool: r.pool},
		domain.KindAd:       &unitSlots{pool: r.pool, table: "ads", touch: true},
		domain.KindSliderAd: &unitSlots{pool: r.pool, table: "slider_ads"},
	}
}

func (r *HeadlineRepository) ListPinned(ctx context.Context, area domain.Area) ([]domain.HeadlineEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT hs.content_id, hs.slot, c.title
        FROM headline_slots hs
        JOIN contents c ON c.id = hs.content_id
        WHERE hs.area = $1
        ORDER BY hs.slot`, int(area))
	if err != nil {
		return nil, err
	}
	return collectEntries(rows, domain.KindPinned)
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
	query := fmt.Sprintf(`SELECT id, %[1]s, name FROM %[2]s WHERE %[1]s IS NOT NULL ORDER BY %[1]s, id`, column, table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows, kind)
}

func collectEntries(rows pgx.Rows, kind domain.EntryKind) ([]domain.HeadlineEntry, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HeadlineEntry, error) {
		e := domain.HeadlineEntry{Kind: kind}
		err := row.Scan(&e.ID, &e.Slot, &e.Label)
		return e, err
	})
}

// Version returns the current version of area. An area that was never
// edited is at version 0.
func (r *HeadlineRepository) Version(ctx context.Context, area domain.Area) (int64, error) {
	var version int64
	err := r.pool.QueryRow(ctx, `SELECT version FROM headline_areas WHERE area = $1`, int(area)).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return version, err
}

// AdvanceVersion is a compare-and-set on the area version.
func (r *HeadlineRepository) AdvanceVersion(ctx context.Context, area domain.Area, expected int64) (int64, error) {
	var version int64
	err := r.pool.QueryRow(ctx, `
        UPDATE headline_areas SET version = version + 1
        WHERE area = $1 AND version = $2
        RETURNING version`, int(area), expected).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("area %d is no longer at version %d: %w", area, expected, domain.ErrVersionConflict)
	}
	return version, err
}

func (r *HeadlineRepository) BumpVersion(ctx context.Context, area domain.Area) (int64, error) {
	var version int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO headline_areas (area, version) VALUES ($1, 1)
        ON CONFLICT (area) DO UPDATE SET version = headline_areas.version + 1
        RETURNING version`, int(area)).Scan(&version)
	return version, err
}
