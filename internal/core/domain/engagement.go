package domain

import "time"

// EngagementType distinguishes impressions from clicks.
type EngagementType string

const (
	EngagementView  EngagementType = "view"
	EngagementClick EngagementType = "click"
)

// Engagement is a counted view or click on an ad unit.
type Engagement struct {
	ID        string         `json:"id"`
	Type      EngagementType `json:"type"`
	Unit      EntryRef       `json:"unit"`
	SessionID string         `json:"session_id,omitempty"`
	// Count is the counter value returned by the catalog after increment.
	Count     int64     `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
