// Package dict implements the status dictionary: the string-keyed,
// schema-constrained value container carried across the boundary between the
// simulation kernel and its scripting front end.
//
// # Overview
//
// A Dict behaves like an untyped dictionary from the scripting side while
// giving kernel code type-directed extraction with diagnostic failure. The
// set of storable value shapes is fixed and closed (see Kind); a value
// outside the set cannot be constructed.
//
// The main pieces are:
//
//   - Value: a tagged union over the closed alternative set
//   - Dict: the key-unique table, shared through *Dict handles
//   - Get / GetInteger / UpdateValue / VectorRef: the casting layer
//   - InitAccessFlags / AllEntriesAccessed: the access-audit pair
//
// # Handles and aliasing
//
// A *Dict is the handle to shared storage. Copying the pointer aliases the
// same entries, so one logical dictionary can be handed to multiple kernel
// subsystems that mutate it collaboratively:
//
//	d := dict.New()
//	d.Set("tau_m", dict.NewDouble(10.0))
//	h2 := d // same storage; mutations through h2 are visible through d
//
// There is no deep clone; copying data means rebuilding key by key.
//
// # Access auditing
//
// Every read that finds a key marks its entry accessed, and so does writing
// one. A configuration pass brackets consumer reads with the audit pair and
// learns about every supplied-but-unread key at once:
//
//	d.InitAccessFlags(guard)
//	// ... subsystems read the keys they understand ...
//	if err := d.AllEntriesAccessed(guard, "SetStatus", "neuron parameters"); err != nil {
//	    // err lists every key no subsystem consumed
//	}
//
// Known probes existence without marking, for optional-key checks that must
// not certify a key as handled.
//
// # Concurrency
//
// Inside a parallel region many workers may read one Dict concurrently; the
// access-flag store is atomic and needs no further synchronization. Entry
// insertion, overwrite and erasure belong to serial phases, which the audit
// pair enforces through its Guard argument. Worker-private dictionaries pass
// ThreadLocal instead.
package dict
