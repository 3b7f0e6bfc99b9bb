package dict

import (
	"sort"

	"github.com/joshuapare/dictkit/pkg/types"
)

// Dict is a string-keyed container over the closed alternative set, with the
// access-audit protocol threaded through every read path.
//
// A *Dict is the shared handle to its storage: copies of the pointer alias
// the same entries, and the storage lives as long as any handle does. There
// is no deep-clone operation; copying data means rebuilding key by key (or
// UpdateDictionary into a fresh dictionary).
//
// Concurrency: many workers may read concurrently. Inserting, overwriting and
// erasing entries is restricted to serial phases by caller discipline; the
// audit pair enforces this through its Guard argument. The only shared-state
// mutation on the read path is marking the access flag, which is atomic.
type Dict struct {
	entries map[string]*entry
}

// New returns a fresh, empty dictionary. A handle is never nil-backed.
func New() *Dict {
	return &Dict{entries: make(map[string]*entry)}
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.entries) }

// Keys returns all keys in sorted order. Iteration order of the underlying
// map is unspecified; every deterministic surface sorts.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set stores v under key, inserting or overwriting. The entry is marked
// accessed: writing a key counts as having dealt with it, so a dictionary
// assembled programmatically and never read back passes the audit.
func (d *Dict) Set(key string, v Value) {
	e, ok := d.entries[key]
	if !ok {
		e = &entry{}
		d.entries[key] = e
	}
	e.val = v
	e.markAccessed()
}

// At returns the value stored under key and marks it accessed. A missing key
// fails with a KeyError.
func (d *Dict) At(key string) (Value, error) {
	e, ok := d.entries[key]
	if !ok {
		return Value{}, &types.KeyError{Key: key}
	}
	e.markAccessed()
	return e.val, nil
}

// Find returns the value stored under key, or ok=false if absent. The entry
// is marked accessed only on a hit.
func (d *Dict) Find(key string) (Value, bool) {
	e, ok := d.entries[key]
	if !ok {
		return Value{}, false
	}
	e.markAccessed()
	return e.val, true
}

// Known reports whether key exists. It never marks the entry accessed, so
// callers can probe for optional keys without certifying them as handled.
func (d *Dict) Known(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Delete removes key if present.
func (d *Dict) Delete(key string) {
	delete(d.entries, key)
}

// UpdateDictionary copies every entry of d into target, overwriting existing
// keys, and reports whether d was non-empty. Copied entries are marked
// accessed in target (they arrive via Set); d's own flags are untouched.
func (d *Dict) UpdateDictionary(target *Dict) bool {
	for k, e := range d.entries {
		target.Set(k, e.val)
	}
	return len(d.entries) > 0
}

// InitAccessFlags resets every entry's access flag, opening an audited
// configuration pass. The Guard certifies that no worker is concurrently
// reading this dictionary (pass ThreadLocal for worker-private dictionaries).
func (d *Dict) InitAccessFlags(g Guard) {
	g.AssertSingleThreaded()
	for _, e := range d.entries {
		e.accessed.Store(false)
	}
}

// AllEntriesAccessed closes an audited configuration pass. It fails with an
// UnaccessedError listing every key whose flag is still false, in sorted
// order; where names the calling context and what the parameter group, both
// carried into the error for diagnostics. An empty or fully-accessed
// dictionary passes.
func (d *Dict) AllEntriesAccessed(g Guard, where, what string) error {
	g.AssertSingleThreaded()

	var missed []string
	for k, e := range d.entries {
		if !e.accessed.Load() {
			missed = append(missed, k)
		}
	}
	if len(missed) > 0 {
		sort.Strings(missed)
		return &types.UnaccessedError{Where: where, What: what, Keys: missed}
	}
	return nil
}
