// Package sqlite implements the catalog ports on an embedded SQLite
// database for single-node deployments and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"slot-engine/internal/core/domain"
)

// AdRepository implements port.AdCatalog and port.CounterStore.
type AdRepository struct {
	db *sql.DB
}

func NewAdRepository(db *sql.DB) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) ListActiveAds(ctx context.Context, placement string) ([]domain.Ad, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, kind, placement_code, media, link_url,
               device_type, target_page, target_category, target_news_id,
               start_date, end_date, active, headline_slot, secondary_headline_slot,
               views, clicks, created_at, updated_at
        FROM ads
        WHERE placement_code = ? AND active
        ORDER BY id`, placement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		var (
			ad                 domain.Ad
			kind, device, page string
			newsID             sql.NullInt64
			start, end         sql.NullTime
			primary, secondary sql.NullInt64
		)
		if err = rows.Scan(
			&ad.ID, &ad.Name, &kind, &ad.Placement, &ad.Media, &ad.LinkURL,
			&device, &page, &ad.Targeting.Category, &newsID,
			&start, &end, &ad.Active, &primary, &secondary,
			&ad.Views, &ad.Clicks, &ad.CreatedAt, &ad.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ad.Kind = domain.AdKind(kind)
		ad.Targeting.Device = domain.DeviceType(device)
		ad.Targeting.Page = domain.TargetPage(page)
		ad.Targeting.NewsID = nullInt64(newsID)
		ad.StartDate = nullTime(start)
		ad.EndDate = nullTime(end)
		ad.HeadlineSlot = nullInt(primary)
		ad.SecondarySlot = nullInt(secondary)
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (r *AdRepository) IncrementViews(ctx context.Context, unit domain.EntryRef) (int64, error) {
	return r.increment(ctx, unit, "views")
}

func (r *AdRepository) IncrementClicks(ctx context.Context, unit domain.EntryRef) (int64, error) {
	return r.increment(ctx, unit, "clicks")
}

func (r *AdRepository) increment(ctx context.Context, unit domain.EntryRef, column string) (int64, error) {
	table, err := unitTable(unit.Kind)
	if err != nil {
		return 0, err
	}
	var total int64
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE id = ? RETURNING %s`, table, column, column, column),
		unit.ID).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", unit, domain.ErrNotFound)
	}
	return total, err
}
