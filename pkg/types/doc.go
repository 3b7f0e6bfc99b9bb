// Package types defines the shared API surface of dictkit: the typed error
// taxonomy produced by dictionary operations and the verbosity enumeration
// stored in status dictionaries.
//
// Errors carry structured payloads (key, type labels, missed-key lists) and a
// stable ErrKind so callers can branch on intent rather than message text:
//
//	if kind, ok := types.KindOf(err); ok && kind == types.ErrKindType {
//	    // wrong alternative stored under the key
//	}
package types
