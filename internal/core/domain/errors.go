package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNotFound is returned by catalog lookups when the expected row is
	// missing. Slot lookups treat it as "currently unassigned".
	ErrNotFound = errors.New("not found")

	ErrInvalidArea     = errors.New("invalid headline area")
	ErrInvalidOrder    = errors.New("invalid headline order")
	ErrInvalidKind     = errors.New("invalid entry kind")
	ErrSlotOutOfRange  = errors.New("slot out of range")
	ErrSlotOccupied    = errors.New("slot already occupied")
	ErrEditInProgress  = errors.New("headline edit already in progress")
	ErrVersionConflict = errors.New("headline version conflict")
	ErrUnknownSession  = errors.New("unknown session")
)

// ValidationError lists targeting fields that were malformed and have been
// defaulted to their permissive value. It never blocks evaluation.
type ValidationError struct {
	AdID   int64
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ad %d: defaulted malformed targeting fields: %s", e.AdID, strings.Join(e.Fields, ", "))
}

// IntegrityProblem classifies a DataIntegrityWarning.
type IntegrityProblem string

const (
	ProblemDuplicateSlot  IntegrityProblem = "duplicate_slot"
	ProblemSlotOutOfRange IntegrityProblem = "slot_out_of_range"
)

// DataIntegrityWarning reports an entry dropped while composing a
// headline. Kept is the entry that won the slot, if any.
type DataIntegrityWarning struct {
	Problem IntegrityProblem `json:"problem"`
	Area    Area             `json:"area"`
	Slot    int              `json:"slot"`
	Dropped EntryRef         `json:"dropped"`
	Kept    *EntryRef        `json:"kept,omitempty"`
}

func (w DataIntegrityWarning) String() string {
	if w.Kept != nil {
		return fmt.Sprintf("area %d slot %d: %s dropped, %s kept (%s)", w.Area, w.Slot, w.Dropped, *w.Kept, w.Problem)
	}
	return fmt.Sprintf("area %d slot %d: %s dropped (%s)", w.Area, w.Slot, w.Dropped, w.Problem)
}

// SlotWriteError is one failed write of a reconcile batch.
type SlotWriteError struct {
	Ref    EntryRef
	Target int
	Err    error
}

func (e *SlotWriteError) Error() string {
	return fmt.Sprintf("move %s to slot %d: %v", e.Ref, e.Target, e.Err)
}

func (e *SlotWriteError) Unwrap() error { return e.Err }

// PersistenceError aggregates the failed writes of a reconcile batch.
// Callers must discard any locally held order and reload.
type PersistenceError struct {
	Area   Area
	Errors *multierror.Error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("headline area %d: %d slot writes failed: %v", e.Area, e.Len(), e.Errors.ErrorOrNil())
}

func (e *PersistenceError) Unwrap() error { return e.Errors.ErrorOrNil() }

// Len returns the number of failed writes.
func (e *PersistenceError) Len() int {
	if e.Errors == nil {
		return 0
	}
	return e.Errors.Len()
}

// Failed returns the refs whose writes failed.
func (e *PersistenceError) Failed() []EntryRef {
	if e.Errors == nil {
		return nil
	}
	refs := make([]EntryRef, 0, len(e.Errors.Errors))
	for _, err := range e.Errors.Errors {
		var we *SlotWriteError
		if errors.As(err, &we) {
			refs = append(refs, we.Ref)
		}
	}
	return refs
}
