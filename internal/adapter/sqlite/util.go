package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"slot-engine/internal/core/domain"
)

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

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
