package dict

import "github.com/joshuapare/dictkit/pkg/types"

// Parameter is an opaque handle to a polymorphic kernel parameter object.
// Dictionaries store and compare these handles; they never draw from them.
// Handle equality is identity, so implementations must be pointer types.
type Parameter interface {
	// Value draws or returns the parameter's current value.
	Value() float64
}

// NodeCollection is an opaque handle to a collection of kernel nodes.
// Like Parameter, it is stored by identity and implementations must be
// pointer types.
type NodeCollection interface {
	// Size returns the number of nodes in the collection.
	Size() int
}

// Value is one element of the closed alternative set. Exactly one alternative
// is active; the zero Value holds no alternative (KindInvalid) and is not
// storable through any constructor.
//
// Values are immutable once constructed, with one exception: vector payloads
// are held behind a slice pointer so that VectorRef can hand out a
// write-through reference for accumulation.
type Value struct {
	kind Kind
	data any
}

// Kind returns the active alternative.
func (v Value) Kind() Kind { return v.kind }

// IsA reports whether the active alternative is k.
func (v Value) IsA(k Kind) bool { return v.kind == k }

// Scalar constructors.

func NewBool(b bool) Value { return Value{KindBool, b} }

func NewInt32(i int32) Value { return Value{KindInt32, i} }

func NewInt64(i int64) Value { return Value{KindInt64, i} }

func NewUInt32(u uint32) Value { return Value{KindUInt32, u} }

func NewUInt64(u uint64) Value { return Value{KindUInt64, u} }

func NewSize(s uint64) Value { return Value{KindSize, s} }

func NewDouble(f float64) Value { return Value{KindDouble, f} }

func NewString(s string) Value { return Value{KindString, s} }

// NewVerbosity wraps a kernel verbosity level.
func NewVerbosity(v types.Verbosity) Value { return Value{KindVerbosity, v} }

// Vector constructors. The dictionary takes over the given slice; callers
// that keep using the slice observe shared backing storage.

func NewBoolVector(s []bool) Value { return Value{KindBoolVector, &s} }

func NewInt32Vector(s []int32) Value { return Value{KindInt32Vector, &s} }

func NewInt64Vector(s []int64) Value { return Value{KindInt64Vector, &s} }

func NewSizeVector(s []uint64) Value { return Value{KindSizeVector, &s} }

func NewDoubleVector(s []float64) Value { return Value{KindDoubleVector, &s} }

func NewStringVector(s []string) Value { return Value{KindStringVector, &s} }

// Nested numeric container constructors.

func NewInt64Matrix(m [][]int64) Value { return Value{KindInt64Matrix, m} }

func NewDoubleMatrix(m [][]float64) Value { return Value{KindDoubleMatrix, m} }

func NewInt64Cube(c [][][]int64) Value { return Value{KindInt64Cube, c} }

func NewDoubleCube(c [][][]float64) Value { return Value{KindDoubleCube, c} }

// EmptyList returns the untyped empty-container sentinel.
func EmptyList() Value { return Value{KindEmptyList, nil} }

// NewDict wraps a nested dictionary. The handle is stored, not a copy: the
// nested dictionary remains shared with every other holder.
func NewDict(d *Dict) Value { return Value{KindDict, d} }

// NewParameter wraps an opaque parameter handle.
func NewParameter(p Parameter) Value { return Value{KindParameter, p} }

// NewNodeCollection wraps an opaque node-collection handle.
func NewNodeCollection(nc NodeCollection) Value { return Value{KindNodeCollection, nc} }

// payload returns the stored Go value with vector pointers dereferenced, so
// that exact-match extraction can assert directly against slice types.
func (v Value) payload() any {
	switch v.kind {
	case KindBoolVector:
		return *v.data.(*[]bool)
	case KindInt32Vector:
		return *v.data.(*[]int32)
	case KindInt64Vector:
		return *v.data.(*[]int64)
	case KindSizeVector:
		return *v.data.(*[]uint64)
	case KindDoubleVector:
		return *v.data.(*[]float64)
	case KindStringVector:
		return *v.data.(*[]string)
	default:
		return v.data
	}
}
