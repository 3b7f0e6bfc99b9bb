package types

import (
	"errors"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound   ErrKind = iota // missing dictionary key
	ErrKindType                      // requested cast doesn't match the stored alternative
	ErrKindRange                     // numeric conversion would lose information
	ErrKindUnaccessed                // audit found keys that were supplied but never read
	ErrKindComparison                // equality reached an alternative with no comparator
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not-found"
	case ErrKindType:
		return "type-mismatch"
	case ErrKindRange:
		return "range"
	case ErrKindUnaccessed:
		return "unaccessed-entry"
	case ErrKindComparison:
		return "unsupported-comparison"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Kinder is implemented by every error this module produces.
type Kinder interface {
	error
	Kind() ErrKind
}

// KindOf returns the ErrKind of err, or ok=false for foreign errors.
func KindOf(err error) (ErrKind, bool) {
	var k Kinder
	if errors.As(err, &k) {
		return k.Kind(), true
	}
	return 0, false
}

// KeyError reports a lookup of a key that does not exist.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q does not exist in dictionary", e.Key)
}

// Kind returns ErrKindNotFound.
func (e *KeyError) Kind() ErrKind { return ErrKindNotFound }

// TypeMismatchError reports a cast that does not match the stored alternative
// and has no lossless promotion rule.
type TypeMismatchError struct {
	Key      string // dictionary key the cast was applied to
	Actual   string // label of the stored alternative
	Expected string // label of the requested type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("failed to cast %q from %s to type %s", e.Key, e.Actual, e.Expected)
}

// Kind returns ErrKindType.
func (e *TypeMismatchError) Kind() ErrKind { return ErrKindType }

// RangeError reports a numeric conversion that would lose information.
type RangeError struct {
	Key    string // dictionary key the conversion was applied to
	Value  string // rendered source value
	Target string // label of the target type
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s at key %q is out of range for type %s", e.Value, e.Key, e.Target)
}

// Kind returns ErrKindRange.
func (e *RangeError) Kind() ErrKind { return ErrKindRange }

// UnaccessedError reports keys that were supplied but never read during an
// audited configuration pass. Keys holds every missed key, in sorted order.
type UnaccessedError struct {
	Where string   // calling context, e.g. the operation being configured
	What  string   // parameter group name
	Keys  []string // all unaccessed keys, sorted
}

func (e *UnaccessedError) Error() string {
	return fmt.Sprintf("unaccessed elements in %s while setting %s: %s",
		e.What, e.Where, strings.Join(e.Keys, " "))
}

// Kind returns ErrKindUnaccessed.
func (e *UnaccessedError) Kind() ErrKind { return ErrKindUnaccessed }

// ComparisonError reports structural equality reaching an alternative with no
// defined comparator. With the closed alternative set this indicates an
// internal-consistency fault, not caller misuse.
type ComparisonError struct {
	Label string // label of the alternative that could not be compared
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("no comparison defined for values of type %s", e.Label)
}

// Kind returns ErrKindComparison.
func (e *ComparisonError) Kind() ErrKind { return ErrKindComparison }
