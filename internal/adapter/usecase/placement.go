package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
	"slot-engine/internal/core/targeting"
	"slot-engine/internal/metrics"
)

// PlacementUseCase selects the ads rendered in a placement. It only reads
// from the catalog.
type PlacementUseCase struct {
	ads    port.AdCatalog
	logger *slog.Logger
	now    func() time.Time
}

// NewPlacementUseCase creates a placement selector over the given catalog.
func NewPlacementUseCase(ads port.AdCatalog, logger *slog.Logger) *PlacementUseCase {
	return &PlacementUseCase{ads: ads, logger: logger, now: time.Now}
}

// SelectAds filters the placement's ad pool through the targeting rules
// and returns the survivors in ascending id order, which is creation
// order. Malformed targeting fields are defaulted and logged.
func (u *PlacementUseCase) SelectAds(ctx context.Context, req domain.SelectRequest) ([]domain.Ad, error) {
	pool, err := u.ads.ListActiveAds(ctx, req.Placement)
	if err != nil {
		return nil, fmt.Errorf("list ads of placement %q: %w", req.Placement, err)
	}

	now := u.now()
	selected := make([]domain.Ad, 0, len(pool))
	for _, raw := range pool {
		ad, verr := targeting.Normalize(raw)
		if verr != nil {
			metrics.TargetingDefaults.Inc()
			u.logger.Warn("targeting defaulted", slog.Int64("ad_id", ad.ID), slog.Any("error", verr))
		}
		d := targeting.Evaluate(ad, req, now)
		metrics.AdDecisions.WithLabelValues(req.Placement, string(d.Reason)).Inc()
		if !d.Eligible {
			u.logger.Debug("ad not eligible",
				slog.Int64("ad_id", ad.ID),
				slog.String("placement", req.Placement),
				slog.String("reason", string(d.Reason)))
			continue
		}
		selected = append(selected, ad)
	}

	slices.SortStableFunc(selected, func(a, b domain.Ad) int { return cmp.Compare(a.ID, b.ID) })
	return selected, nil
}
