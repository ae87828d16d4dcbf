package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot-engine/internal/core/domain"
)

// pinnedSlots stores pinned content slots as rows of headline_slots.
type pinnedSlots struct {
	pool *pgxpool.Pool
}

func (s *pinnedSlots) CurrentSlot(ctx context.Context, area domain.Area, id int64) (int, error) {
	var slot int
	err := s.pool.QueryRow(ctx, `SELECT slot FROM headline_slots WHERE area = $1 AND content_id = $2`, int(area), id).Scan(&slot)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return slot, err
}

// AssignSlot moves content into slot. The content's previous row is
// removed and the target slot is claimed with an upsert, so a concurrent
// move out of that slot within the same reorder cannot fail on the
// primary key. Pinned writes of one area hold a transaction scoped
// advisory lock, since two swapping moves would otherwise each wait on the
// other's deleted row.
func (s *pinnedSlots) AssignSlot(ctx context.Context, area domain.Area, id int64, slot int) (err error) {
	tx, err := s.pool.Begin(ctx)
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
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('headline_slots'), $1)`, int(area)); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM headline_slots WHERE area = $1 AND content_id = $2`, int(area), id); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO headline_slots (area, slot, content_id) VALUES ($1, $2, $3)
        ON CONFLICT (area, slot) DO UPDATE SET content_id = EXCLUDED.content_id`, int(area), slot, id)
	return err
}

// ClearSlot deletes the occupancy row. This is what takes content out of
// the headline.
func (s *pinnedSlots) ClearSlot(ctx context.Context, area domain.Area, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM headline_slots WHERE area = $1 AND content_id = $2`, int(area), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// unitSlots stores ad unit slots in the per-area slot columns of table.
type unitSlots struct {
	pool  *pgxpool.Pool
	table string
	// touch also refreshes updated_at.
	touch bool
}

func (s *unitSlots) CurrentSlot(ctx context.Context, area domain.Area, id int64) (int, error) {
	column, err := slotColumn(area)
	if err != nil {
		return 0, err
	}
	var slot *int
	err = s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, column, s.table), id).Scan(&slot)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && slot == nil) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return *slot, nil
}

func (s *unitSlots) AssignSlot(ctx context.Context, area domain.Area, id int64, slot int) error {
	return s.set(ctx, area, id, &slot)
}

func (s *unitSlots) ClearSlot(ctx context.Context, area domain.Area, id int64) error {
	return s.set(ctx, area, id, nil)
}

func (s *unitSlots) set(ctx context.Context, area domain.Area, id int64, slot *int) error {
	column, err := slotColumn(area)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET %s = $2`, s.table, column)
	if s.touch {
		query += `, updated_at = now()`
	}
	query += ` WHERE id = $1`
	if slot == nil {
		query += fmt.Sprintf(` AND %s IS NOT NULL`, column)
	}
	tag, err := s.pool.Exec(ctx, query, id, slot)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
