package dict

import "sync/atomic"

// entry pairs a stored Value with its access flag. The flag is metadata for
// the audit protocol, never part of the value: equality ignores it.
//
// Marking is the one mutation allowed from concurrent readers. Every writer
// stores the same value (true), so the store needs atomicity but no ordering
// and no mutex.
type entry struct {
	val      Value
	accessed atomic.Bool
}

func (e *entry) markAccessed() {
	// The load avoids redundant stores on hot read paths; correctness does
	// not depend on it.
	if !e.accessed.Load() {
		e.accessed.Store(true)
	}
}
