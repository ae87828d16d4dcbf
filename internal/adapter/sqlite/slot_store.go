package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"slot-engine/internal/core/domain"
)

type pinnedSlots struct {
	db *sql.DB
}

func (s *pinnedSlots) CurrentSlot(ctx context.Context, area domain.Area, id int64) (int, error) {
	var slot int
	err := s.db.QueryRowContext(ctx, `SELECT slot FROM headline_slots WHERE area = ? AND content_id = ?`, int(area), id).Scan(&slot)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return slot, err
}

// AssignSlot drops the content's previous row and claims slot with an
// upsert, displacing whatever row held it.
func (s *pinnedSlots) AssignSlot(ctx context.Context, area domain.Area, id int64, slot int) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
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
	if _, err = tx.ExecContext(ctx, `DELETE FROM headline_slots WHERE area = ? AND content_id = ?`, int(area), id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
        INSERT INTO headline_slots (area, slot, content_id) VALUES (?, ?, ?)
        ON CONFLICT (area, slot) DO UPDATE SET content_id = excluded.content_id`, int(area), slot, id)
	return err
}

func (s *pinnedSlots) ClearSlot(ctx context.Context, area domain.Area, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM headline_slots WHERE area = ? AND content_id = ?`, int(area), id)
	if err != nil {
		return err
	}
	return affected(res)
}

type unitSlots struct {
	db    *sql.DB
	table string
	touch bool
}

func (s *unitSlots) CurrentSlot(ctx context.Context, area domain.Area, id int64) (int, error) {
	column, err := slotColumn(area)
	if err != nil {
		return 0, err
	}
	var slot sql.NullInt64
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, column, s.table), id).Scan(&slot)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !slot.Valid) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return int(slot.Int64), nil
}

func (s *unitSlots) AssignSlot(ctx context.Context, area domain.Area, id int64, slot int) error {
	return s.set(ctx, area, id, sql.NullInt64{Int64: int64(slot), Valid: true})
}

func (s *unitSlots) ClearSlot(ctx context.Context, area domain.Area, id int64) error {
	return s.set(ctx, area, id, sql.NullInt64{})
}

func (s *unitSlots) set(ctx context.Context, area domain.Area, id int64, slot sql.NullInt64) error {
	column, err := slotColumn(area)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET %s = ?`, s.table, column)
	if s.touch {
		query += `, updated_at = CURRENT_TIMESTAMP`
	}
	query += ` WHERE id = ?`
	if !slot.Valid {
		query += fmt.Sprintf(` AND %s IS NOT NULL`, column)
	}
	res, err := s.db.ExecContext(ctx, query, slot, id)
	if err != nil {
		return err
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
