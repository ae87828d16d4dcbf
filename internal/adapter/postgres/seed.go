package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot-engine/internal/db"
)

// Seed loads a fixture in one transaction. Existing rows with the same ids
// are left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool, f *db.Fixture) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, c := range f.Contents {
		batch.Queue(`INSERT INTO contents (id, title) VALUES ($1, $2) ON CONFLICT DO NOTHING`, c.ID, c.Title)
	}
	for _, a := range f.Ads {
		a = a.WithDefaults()
		batch.Queue(`INSERT INTO ads
    (id, name, kind, placement_code, media, link_url, device_type, target_page, target_category,
     target_news_id, start_date, end_date, active, headline_slot, secondary_headline_slot)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15) ON CONFLICT DO NOTHING`,
			a.ID, a.Name, a.Kind, a.Placement, a.Media, a.LinkURL, a.Device, a.Page, a.Category,
			a.NewsID, a.StartDate, a.EndDate, a.Active, a.HeadlineSlot, a.SecondarySlot)
	}
	for _, s := range f.SliderAds {
		batch.Queue(`INSERT INTO slider_ads
    (id, name, image_url, link_url, active, headline_slot, secondary_headline_slot)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			s.ID, s.Name, s.ImageURL, s.LinkURL, s.Active, s.HeadlineSlot, s.SecondarySlot)
	}
	for _, p := range f.Pinned {
		batch.Queue(`INSERT INTO headline_slots (area, slot, content_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			p.Area, p.Slot, p.ContentID)
	}
	// keep the serial sequences ahead of the explicit ids
	for _, table := range []string{"contents", "ads", "slider_ads"} {
		batch.Queue(`SELECT setval(pg_get_serial_sequence('` + table + `', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM ` + table + `), 1))`)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return nil
}
