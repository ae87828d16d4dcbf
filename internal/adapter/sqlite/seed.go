package sqlite

import (
	"context"
	"database/sql"

	"slot-engine/internal/db"
)

// Seed loads a fixture in one transaction, skipping ids that already
// exist.
func Seed(ctx context.Context, conn *sql.DB, f *db.Fixture) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, c := range f.Contents {
		if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO contents (id, title) VALUES (?, ?)`, c.ID, c.Title); err != nil {
			return err
		}
	}
	for _, a := range f.Ads {
		a = a.WithDefaults()
		if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO ads
    (id, name, kind, placement_code, media, link_url, device_type, target_page, target_category,
     target_news_id, start_date, end_date, active, headline_slot, secondary_headline_slot)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			a.ID, a.Name, a.Kind, a.Placement, a.Media, a.LinkURL, a.Device, a.Page, a.Category,
			a.NewsID, a.StartDate, a.EndDate, a.Active, a.HeadlineSlot, a.SecondarySlot); err != nil {
			return err
		}
	}
	for _, s := range f.SliderAds {
		if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO slider_ads
    (id, name, image_url, link_url, active, headline_slot, secondary_headline_slot)
VALUES (?,?,?,?,?,?,?)`,
			s.ID, s.Name, s.ImageURL, s.LinkURL, s.Active, s.HeadlineSlot, s.SecondarySlot); err != nil {
			return err
		}
	}
	for _, p := range f.Pinned {
		if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO headline_slots (area, slot, content_id) VALUES (?, ?, ?)`,
			p.Area, p.Slot, p.ContentID); err != nil {
			return err
		}
	}
	return nil
}
