package dict

import (
	"errors"
	"strings"
	"testing"

	"github.com/joshuapare/dictkit/pkg/types"
)

// Test_KindLabels verifies every alternative has an owned, stable label.
func Test_KindLabels(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBool, "bool"},
		{KindInt32, "int32"},
		{KindInt64, "int64"},
		{KindUInt32, "uint32"},
		{KindUInt64, "uint64"},
		{KindSize, "size"},
		{KindDouble, "double"},
		{KindString, "string"},
		{KindVerbosity, "verbosity level"},
		{KindBoolVector, "vector<bool>"},
		{KindInt32Vector, "vector<int32>"},
		{KindInt64Vector, "vector<int64>"},
		{KindSizeVector, "vector<size>"},
		{KindDoubleVector, "vector<double>"},
		{KindStringVector, "vector<string>"},
		{KindInt64Matrix, "vector<vector<int64>>"},
		{KindDoubleMatrix, "vector<vector<double>>"},
		{KindInt64Cube, "vector<vector<vector<int64>>>"},
		{KindDoubleCube, "vector<vector<vector<double>>>"},
		{KindEmptyList, "empty list"},
		{KindDict, "dictionary"},
		{KindParameter, "parameter"},
		{KindNodeCollection, "node collection"},
		{KindInvalid, "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

// Test_IsA tests the tag probe.
func Test_IsA(t *testing.T) {
	v := NewDouble(1.0)
	if !v.IsA(KindDouble) {
		t.Error("IsA(KindDouble) = false for a double")
	}
	if v.IsA(KindInt64) {
		t.Error("IsA(KindInt64) = true for a double")
	}
}

// Test_ValueEquality covers the comparator across representative
// alternatives.
func Test_ValueEquality(t *testing.T) {
	p1 := &fakeParameter{v: 1.0}
	p2 := &fakeParameter{v: 1.0}

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal int64", NewInt64(3), NewInt64(3), true},
		{"unequal int64", NewInt64(3), NewInt64(4), false},
		{"int64 vs int32 never unified", NewInt64(3), NewInt32(3), false},
		{"size vs uint64 distinct", NewSize(3), NewUInt64(3), false},
		{"equal vectors", NewInt64Vector([]int64{1, 2}), NewInt64Vector([]int64{1, 2}), true},
		{"unequal vectors", NewInt64Vector([]int64{1, 2}), NewInt64Vector([]int64{1, 3}), false},
		{"different length vectors", NewInt64Vector([]int64{1}), NewInt64Vector([]int64{1, 2}), false},
		{"empty list sentinel", EmptyList(), EmptyList(), true},
		{"empty list vs typed empty", EmptyList(), NewDoubleVector([]float64{}), false},
		{"equal matrices", NewDoubleMatrix([][]float64{{1}}), NewDoubleMatrix([][]float64{{1}}), true},
		{"unequal cubes", NewInt64Cube([][][]int64{{{1}}}), NewInt64Cube([][][]int64{{{2}}}), false},
		{"same parameter handle", NewParameter(p1), NewParameter(p1), true},
		{"distinct parameter handles", NewParameter(p1), NewParameter(p2), false},
		{"equal verbosity", NewVerbosity(types.VerbosityInfo), NewVerbosity(types.VerbosityInfo), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valueEqual(tt.a, tt.b)
			if err != nil {
				t.Fatalf("valueEqual failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("valueEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

// Test_InvalidComparison verifies that a value outside the closed set is an
// internal fault, not a silent false.
func Test_InvalidComparison(t *testing.T) {
	_, err := valueEqual(Value{}, Value{})
	var ce *types.ComparisonError
	if !errors.As(err, &ce) {
		t.Errorf("comparing invalid values = %v, want *types.ComparisonError", err)
	}
}

// Test_DictString exercises the diagnostic dump: keys sorted, labels shown,
// no failure for any alternative.
func Test_DictString(t *testing.T) {
	d := New()
	d.Set("beta", NewDouble(0.5))
	d.Set("alpha", NewInt64Vector([]int64{1, 2}))
	d.Set("gamma", NewDoubleCube([][][]float64{{{1}}}))
	d.Set("delta", NewParameter(&fakeParameter{}))

	out := d.String()
	for _, want := range []string{
		"alpha", "(vector<int64>) vector[1, 2]",
		"beta", "(double) 0.5",
		"(vector<vector<vector<double>>>)",
		"(parameter) <parameter>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "alpha") > strings.Index(out, "beta") {
		t.Error("dump keys should be sorted")
	}

	if New().String() != "Dictionary{}" {
		t.Errorf("empty dump = %q", New().String())
	}
}

// Test_DumpTypes verifies the type-only dump.
func Test_DumpTypes(t *testing.T) {
	d := New()
	d.Set("a", NewString("x"))
	d.Set("b", EmptyList())

	out := DumpTypes(d)
	if !strings.Contains(out, "a: string") || !strings.Contains(out, "b: empty list") {
		t.Errorf("DumpTypes = %q", out)
	}
}
