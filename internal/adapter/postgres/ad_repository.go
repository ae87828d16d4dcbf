package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot-engine/internal/core/domain"
)

// AdRepository implements port.AdCatalog and port.CounterStore using
// pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// ListActiveAds returns the active ads of a placement. Targeting values
// are returned as stored; normalization happens in the selector.
func (r *AdRepository) ListActiveAds(ctx context.Context, placement string) ([]domain.Ad, error) {
	query := `
        SELECT
            id,
            name,
            kind,
            placement_code,
            media,
            link_url,
            device_type,
            target_page,
            target_category,
            target_news_id,
            start_date,
            end_date,
            active,
            headline_slot,
            secondary_headline_slot,
            views,
            clicks,
            created_at,
            updated_at
        FROM ads
        WHERE placement_code = $1 AND active
        ORDER BY id`
	rows, err := r.pool.Query(ctx, query, placement)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var (
			ad                 domain.Ad
			kind, device, page string
		)
		err := row.Scan(
			&ad.ID,
			&ad.Name,
			&kind,
			&ad.Placement,
			&ad.Media,
			&ad.LinkURL,
			&device,
			&page,
			&ad.Targeting.Category,
			&ad.Targeting.NewsID,
			&ad.StartDate,
			&ad.EndDate,
			&ad.Active,
			&ad.HeadlineSlot,
			&ad.SecondarySlot,
			&ad.Views,
			&ad.Clicks,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		ad.Kind = domain.AdKind(kind)
		ad.Targeting.Device = domain.DeviceType(device)
		ad.Targeting.Page = domain.TargetPage(page)
		return ad, err
	})
}

// IncrementViews adds one view to an ad unit and returns the new total.
func (r *AdRepository) IncrementViews(ctx context.Context, unit domain.EntryRef) (int64, error) {
	return r.increment(ctx, unit, "views")
}

// IncrementClicks adds one click to an ad unit and returns the new total.
func (r *AdRepository) IncrementClicks(ctx context.Context, unit domain.EntryRef) (int64, error) {
	return r.increment(ctx, unit, "clicks")
}

// increment issues a single atomic UPDATE so concurrent requests never
// lose an increment. column is one of two literals, never user input.
func (r *AdRepository) increment(ctx context.Context, unit domain.EntryRef, column string) (int64, error) {
	table, err := unitTable(unit.Kind)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE id = $1 RETURNING %s`, table, column, column, column)
	var total int64
	err = r.pool.QueryRow(ctx, query, unit.ID).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", unit, domain.ErrNotFound)
	}
	return total, err
}

func unitTable(kind domain.EntryKind) (string, error) {
	switch kind {
	case domain.KindAd:
		return "ads", nil
	case domain.KindSliderAd:
		return "slider_ads", nil
	}
	return "", fmt.Errorf("%w: %q has no counters", domain.ErrInvalidKind, kind)
}

func slotColumn(area domain.Area) (string, error) {
	switch area {
	case domain.AreaPrimary:
		return "headline_slot", nil
	case domain.AreaSecondary:
		return "secondary_headline_slot", nil
	}
	return "", domain.ErrInvalidArea
}
