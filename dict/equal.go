package dict

import "github.com/joshuapare/dictkit/pkg/types"

// Equal reports structural equality with other: same cardinality, and every
// key of other present in d with an equal value. Access flags and insertion
// history never influence the result.
//
// Equality is exhaustive over the closed alternative set; reaching an
// alternative without a comparator fails with a ComparisonError instead of
// silently returning false.
func (d *Dict) Equal(other *Dict) (bool, error) {
	if d == nil || other == nil {
		return d == other, nil
	}
	if len(d.entries) != len(other.entries) {
		return false, nil
	}
	for k, oe := range other.entries {
		e, ok := d.entries[k]
		if !ok {
			return false, nil
		}
		eq, err := valueEqual(e.val, oe.val)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

// ValueEqual reports whether two values hold the same alternative with equal
// contents. Values of different alternatives are never equal; numeric
// unification happens only in the casting layer, not here.
func ValueEqual(a, b Value) (bool, error) {
	return valueEqual(a, b)
}

func valueEqual(a, b Value) (bool, error) {
	if a.kind != b.kind {
		return false, nil
	}
	switch a.kind {
	case KindBool, KindInt32, KindInt64, KindUInt32, KindUInt64,
		KindSize, KindDouble, KindString, KindVerbosity:
		return a.data == b.data, nil
	case KindBoolVector:
		return slicesEqual(*a.data.(*[]bool), *b.data.(*[]bool)), nil
	case KindInt32Vector:
		return slicesEqual(*a.data.(*[]int32), *b.data.(*[]int32)), nil
	case KindInt64Vector:
		return slicesEqual(*a.data.(*[]int64), *b.data.(*[]int64)), nil
	case KindSizeVector:
		return slicesEqual(*a.data.(*[]uint64), *b.data.(*[]uint64)), nil
	case KindDoubleVector:
		return slicesEqual(*a.data.(*[]float64), *b.data.(*[]float64)), nil
	case KindStringVector:
		return slicesEqual(*a.data.(*[]string), *b.data.(*[]string)), nil
	case KindInt64Matrix:
		return matrixEqual(a.data.([][]int64), b.data.([][]int64)), nil
	case KindDoubleMatrix:
		return matrixEqual(a.data.([][]float64), b.data.([][]float64)), nil
	case KindInt64Cube:
		return cubeEqual(a.data.([][][]int64), b.data.([][][]int64)), nil
	case KindDoubleCube:
		return cubeEqual(a.data.([][][]float64), b.data.([][][]float64)), nil
	case KindEmptyList:
		return true, nil
	case KindDict:
		return a.data.(*Dict).Equal(b.data.(*Dict))
	case KindParameter, KindNodeCollection:
		// Opaque handles compare by identity.
		return a.data == b.data, nil
	default:
		return false, &types.ComparisonError{Label: a.kind.String()}
	}
}

func slicesEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func matrixEqual[T comparable](a, b [][]T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slicesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cubeEqual[T comparable](a, b [][][]T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !matrixEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
