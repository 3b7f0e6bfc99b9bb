package dict

import (
	"fmt"
	"math"

	"github.com/joshuapare/dictkit/pkg/types"
)

// Integer is the set of Go integer types a stored integer alternative can be
// narrowed or widened into.
type Integer interface {
	int | int32 | int64 | uint | uint32 | uint64
}

// VectorElement is the set of element types with a vector alternative.
type VectorElement interface {
	bool | int32 | int64 | uint64 | float64 | string
}

// Get returns the value stored under key as T and marks the entry accessed.
//
// The stored alternative must match T exactly, with two lossless promotion
// rules: a float64 target accepts every integer alternative, and a []float64
// target accepts a stored vector<int64> (element-wise) or the empty-list
// sentinel (as an empty vector). Conversions are exact-checked; an integer
// too large for exact float64 representation fails with a RangeError rather
// than losing precision.
func Get[T any](d *Dict, key string) (T, error) {
	v, err := d.At(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return CastValue[T](v, key)
}

// GetInteger returns the value stored under key as the integer type T. Any
// integer alternative (int32, int64, uint32, uint64, size) is accepted; a
// value outside T's range fails with a RangeError instead of truncating.
func GetInteger[T Integer](d *Dict, key string) (T, error) {
	v, err := d.At(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return CastInteger[T](v, key)
}

// UpdateValue assigns the value stored under key into dst and returns true.
// If key is absent it returns false and leaves dst untouched. Cast failures
// propagate. This is the idiom for configuration code that overrides a
// default only when the caller supplied the key.
func UpdateValue[T any](d *Dict, key string, dst *T) (bool, error) {
	v, ok := d.Find(key)
	if !ok {
		return false, nil
	}
	t, err := CastValue[T](v, key)
	if err != nil {
		return false, err
	}
	*dst = t
	return true, nil
}

// UpdateIntegerValue is the integer-narrowing analogue of UpdateValue.
func UpdateIntegerValue[T Integer](d *Dict, key string, dst *T) (bool, error) {
	v, ok := d.Find(key)
	if !ok {
		return false, nil
	}
	t, err := CastInteger[T](v, key)
	if err != nil {
		return false, err
	}
	*dst = t
	return true, nil
}

// VectorRef returns a reference to the vector stored under key, inserting an
// empty vector if the key is absent. The entry is marked accessed either
// way. The reference writes through: appending via it grows the stored
// vector. A key holding a non-vector alternative (or a vector of a different
// element type) fails with a TypeMismatch.
func VectorRef[T VectorElement](d *Dict, key string) (*[]T, error) {
	e, ok := d.entries[key]
	if !ok {
		s := []T{}
		e = &entry{val: Value{vectorKind[T](), &s}}
		d.entries[key] = e
	}
	ref, ok := e.val.data.(*[]T)
	if !ok {
		// A failed cast must not certify the key as handled.
		return nil, &types.TypeMismatchError{
			Key:      key,
			Actual:   e.val.kind.String(),
			Expected: vectorKind[T]().String(),
		}
	}
	e.markAccessed()
	return ref, nil
}

// CastValue extracts v as T, applying Get's promotion rules. The key is used
// only for error context.
func CastValue[T any](v Value, key string) (T, error) {
	var zero T
	switch out := any(&zero).(type) {
	case *float64:
		f, err := castDouble(v, key)
		if err != nil {
			return zero, err
		}
		*out = f
		return zero, nil

	case *[]float64:
		s, err := castDoubleVector(v, key)
		if err != nil {
			return zero, err
		}
		*out = s
		return zero, nil

	default:
		if t, ok := v.payload().(T); ok {
			return t, nil
		}
		return zero, &types.TypeMismatchError{
			Key:      key,
			Actual:   v.kind.String(),
			Expected: fmt.Sprintf("%T", zero),
		}
	}
}

// CastInteger extracts a stored integer alternative as T with a range check.
func CastInteger[T Integer](v Value, key string) (T, error) {
	switch v.kind {
	case KindInt32:
		return narrowSigned[T](int64(v.data.(int32)), key)
	case KindInt64:
		return narrowSigned[T](v.data.(int64), key)
	case KindUInt32:
		return narrowUnsigned[T](uint64(v.data.(uint32)), key)
	case KindUInt64, KindSize:
		return narrowUnsigned[T](v.data.(uint64), key)
	default:
		var zero T
		return zero, &types.TypeMismatchError{
			Key:      key,
			Actual:   v.kind.String(),
			Expected: "an integer type",
		}
	}
}

// castDouble widens any integer alternative into float64, exactly.
func castDouble(v Value, key string) (float64, error) {
	switch v.kind {
	case KindDouble:
		return v.data.(float64), nil
	case KindInt32:
		return float64(v.data.(int32)), nil
	case KindUInt32:
		return float64(v.data.(uint32)), nil
	case KindInt64:
		i := v.data.(int64)
		f, exact := exactFloat(i)
		if !exact {
			return 0, rangeErr(key, fmt.Sprint(i), "double")
		}
		return f, nil
	case KindUInt64, KindSize:
		u := v.data.(uint64)
		f := float64(u)
		if f >= maxUint64AsFloat || uint64(f) != u {
			return 0, rangeErr(key, fmt.Sprint(u), "double")
		}
		return f, nil
	default:
		return 0, &types.TypeMismatchError{
			Key:      key,
			Actual:   v.kind.String(),
			Expected: "double",
		}
	}
}

// castDoubleVector maps a stored vector<double> as-is, a vector<int64>
// element-wise, and the empty-list sentinel to an empty vector.
func castDoubleVector(v Value, key string) ([]float64, error) {
	switch v.kind {
	case KindDoubleVector:
		return *v.data.(*[]float64), nil
	case KindInt64Vector:
		src := *v.data.(*[]int64)
		res := make([]float64, len(src))
		for i, n := range src {
			f, exact := exactFloat(n)
			if !exact {
				return nil, rangeErr(key, fmt.Sprint(n), "vector<double>")
			}
			res[i] = f
		}
		return res, nil
	case KindEmptyList:
		return []float64{}, nil
	default:
		return nil, &types.TypeMismatchError{
			Key:      key,
			Actual:   v.kind.String(),
			Expected: "vector<double>",
		}
	}
}

// maxUint64AsFloat is the smallest float64 not representable as uint64;
// float64(math.MaxUint64) rounds up to 2^64. maxInt64AsFloat likewise for
// int64. Both bounds are exact powers of two.
const (
	maxUint64AsFloat = float64(1 << 63 << 1)
	maxInt64AsFloat  = float64(1 << 63)
)

// exactFloat converts i to float64 and reports whether the conversion is
// exact. The upper-bound guard keeps the back-conversion in defined range.
func exactFloat(i int64) (float64, bool) {
	f := float64(i)
	if f >= maxInt64AsFloat || int64(f) != i {
		return 0, false
	}
	return f, true
}

func rangeErr(key, value, target string) error {
	return &types.RangeError{Key: key, Value: value, Target: target}
}

func narrowSigned[T Integer](i int64, key string) (T, error) {
	var zero T
	ok := true
	switch any(zero).(type) {
	case int:
		ok = i >= math.MinInt && i <= math.MaxInt
	case int32:
		ok = i >= math.MinInt32 && i <= math.MaxInt32
	case int64:
	case uint:
		ok = i >= 0 && uint64(i) <= math.MaxUint
	case uint32:
		ok = i >= 0 && i <= math.MaxUint32
	case uint64:
		ok = i >= 0
	}
	if !ok {
		return zero, rangeErr(key, fmt.Sprint(i), fmt.Sprintf("%T", zero))
	}
	return T(i), nil
}

func narrowUnsigned[T Integer](u uint64, key string) (T, error) {
	var zero T
	ok := true
	switch any(zero).(type) {
	case int:
		ok = u <= math.MaxInt
	case int32:
		ok = u <= math.MaxInt32
	case int64:
		ok = u <= math.MaxInt64
	case uint:
		ok = u <= math.MaxUint
	case uint32:
		ok = u <= math.MaxUint32
	case uint64:
	}
	if !ok {
		return zero, rangeErr(key, fmt.Sprint(u), fmt.Sprintf("%T", zero))
	}
	return T(u), nil
}

// vectorKind maps a vector element type onto its alternative.
func vectorKind[T VectorElement]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBoolVector
	case int32:
		return KindInt32Vector
	case int64:
		return KindInt64Vector
	case uint64:
		return KindSizeVector
	case float64:
		return KindDoubleVector
	case string:
		return KindStringVector
	}
	return KindInvalid
}
