package domain

import (
	"fmt"
	"time"
)

// MaxSlots is the number of numbered positions in a headline area.
const MaxSlots = 15

// Area identifies one of the two independently ordered headline regions.
type Area int

const (
	AreaPrimary   Area = 1
	AreaSecondary Area = 2
)

// Valid reports whether a is a known headline area.
func (a Area) Valid() bool {
	return a == AreaPrimary || a == AreaSecondary
}

// EntryKind is the discriminant of a headline entry.
type EntryKind string

const (
	KindPinned   EntryKind = "pinned"
	KindAd       EntryKind = "ad"
	KindSliderAd EntryKind = "slider_ad"
	// KindRecommendation marks suggested items shown next to the headline
	// list in the operator UI. They are never persisted in a slot.
	KindRecommendation EntryKind = "recommendation"
)

// Valid reports whether k is a known kind.
func (k EntryKind) Valid() bool {
	switch k {
	case KindPinned, KindAd, KindSliderAd, KindRecommendation:
		return true
	}
	return false
}

// Draggable reports whether entries of this kind carry a slot the
// operator can move.
func (k EntryKind) Draggable() bool {
	return k == KindPinned || k == KindAd || k == KindSliderAd
}

// IsUnit reports whether the kind is an ad unit with view/click counters.
func (k EntryKind) IsUnit() bool {
	return k == KindAd || k == KindSliderAd
}

// EntryRef identifies an item independent of its position.
type EntryRef struct {
	Kind EntryKind `json:"kind"`
	ID   int64     `json:"id"`
}

func (r EntryRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// HeadlineEntry is one occupied slot of a headline area. It is derived on
// every read from the occupancy table and the ad slot columns.
type HeadlineEntry struct {
	Kind  EntryKind `json:"kind"`
	ID    int64     `json:"id"`
	Slot  int       `json:"slot"`
	Label string    `json:"label,omitempty"`
}

// Ref returns the identity of the entry.
func (e HeadlineEntry) Ref() EntryRef {
	return EntryRef{Kind: e.Kind, ID: e.ID}
}

// Headline is the composed, slot-ordered content of one area.
type Headline struct {
	Area     Area                   `json:"area"`
	Version  int64                  `json:"version"`
	Entries  []HeadlineEntry        `json:"entries"`
	Warnings []DataIntegrityWarning `json:"warnings,omitempty"`
}

// Contains reports whether the headline holds the referenced item.
func (h Headline) Contains(ref EntryRef) bool {
	for _, e := range h.Entries {
		if e.Ref() == ref {
			return true
		}
	}
	return false
}

// Occupant returns the entry sitting in slot, if any.
func (h Headline) Occupant(slot int) (HeadlineEntry, bool) {
	for _, e := range h.Entries {
		if e.Slot == slot {
			return e, true
		}
	}
	return HeadlineEntry{}, false
}

// ChangeAction names the operation behind a HeadlineChange.
type ChangeAction string

const (
	ChangeReordered ChangeAction = "reordered"
	ChangePlaced    ChangeAction = "placed"
	ChangeRemoved   ChangeAction = "removed"
)

// HeadlineChange is published after an operator mutates an area.
type HeadlineChange struct {
	Area      Area         `json:"area"`
	Action    ChangeAction `json:"action"`
	Version   int64        `json:"version"`
	Refs      []EntryRef   `json:"refs"`
	Timestamp time.Time    `json:"timestamp"`
}
