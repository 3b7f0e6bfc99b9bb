package dict

import "fmt"

// Kind identifies the active alternative of a Value. The set is closed: every
// function over values (cast, equality, rendering) switches exhaustively over
// these constants, so an unhandled alternative surfaces as a diagnostic
// failure rather than a silent gap.
type Kind int

const (
	KindInvalid Kind = iota

	// Scalars.
	KindBool
	KindInt32
	KindInt64
	KindUInt32
	KindUInt64
	KindSize
	KindDouble
	KindString
	KindVerbosity

	// Vectors of scalars.
	KindBoolVector
	KindInt32Vector
	KindInt64Vector
	KindSizeVector
	KindDoubleVector
	KindStringVector

	// Nested numeric containers.
	KindInt64Matrix
	KindDoubleMatrix
	KindInt64Cube
	KindDoubleCube

	// KindEmptyList is the untyped empty-container sentinel. It is distinct
	// from a typed empty vector.
	KindEmptyList

	// Containers and opaque handles.
	KindDict
	KindParameter
	KindNodeCollection
)

// String returns the human-readable label of the alternative. Labels are
// owned by this package and stable; they appear in error messages and dumps.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUInt32:
		return "uint32"
	case KindUInt64:
		return "uint64"
	case KindSize:
		return "size"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindVerbosity:
		return "verbosity level"
	case KindBoolVector:
		return "vector<bool>"
	case KindInt32Vector:
		return "vector<int32>"
	case KindInt64Vector:
		return "vector<int64>"
	case KindSizeVector:
		return "vector<size>"
	case KindDoubleVector:
		return "vector<double>"
	case KindStringVector:
		return "vector<string>"
	case KindInt64Matrix:
		return "vector<vector<int64>>"
	case KindDoubleMatrix:
		return "vector<vector<double>>"
	case KindInt64Cube:
		return "vector<vector<vector<int64>>>"
	case KindDoubleCube:
		return "vector<vector<vector<double>>>"
	case KindEmptyList:
		return "empty list"
	case KindDict:
		return "dictionary"
	case KindParameter:
		return "parameter"
	case KindNodeCollection:
		return "node collection"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
