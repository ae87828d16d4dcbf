package domain

import "time"

// AdKind distinguishes image creatives from raw embed code.
type AdKind string

const (
	AdKindImage AdKind = "image"
	AdKindCode  AdKind = "code"
)

// Ad represents a single ad unit bound to a placement code. Media holds an
// image URL for image ads and the embed snippet for code ads.
type Ad struct {
	ID        int64
	Name      string
	Kind      AdKind
	Placement string
	Media     string
	LinkURL   string
	Targeting Targeting
	StartDate *time.Time
	EndDate   *time.Time
	Active    bool
	// HeadlineSlot and SecondarySlot are nil until the ad is placed in
	// headline area 1 or 2 respectively.
	HeadlineSlot  *int
	SecondarySlot *int
	Views         int64
	Clicks        int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
