package port

import "slot-engine/internal/core/domain"

// SessionTracker owns the per-session set of units whose view has already
// been counted.
type SessionTracker interface {
	// Begin opens a new session and returns its id.
	Begin() string
	// MarkCounted records unit for session and reports whether this was the
	// first mark. Check and mark happen atomically. Unknown or expired
	// sessions yield domain.ErrUnknownSession.
	MarkCounted(session string, unit domain.EntryRef) (bool, error)
	// End discards the session and its dedupe set.
	End(session string)
}
