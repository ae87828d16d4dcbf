package port

import (
	"context"

	"slot-engine/internal/core/domain"
)

// HeadlineNotifier announces operator changes to a headline area.
type HeadlineNotifier interface {
	NotifyHeadlineChanged(ctx context.Context, change domain.HeadlineChange) error
}

// EngagementSink receives every counted view and click.
type EngagementSink interface {
	PublishEngagement(ctx context.Context, e domain.Engagement) error
}
