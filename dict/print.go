package dict

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the dictionary for diagnostics: one line per key with its
// type label and value, keys sorted and aligned. Rendering never fails;
// alternatives without a natural element-wise form print a symbolic label.
func (d *Dict) String() string {
	if d == nil || len(d.entries) == 0 {
		return "Dictionary{}"
	}

	keys := make([]string, 0, len(d.entries))
	maxLen := 0
	for k := range d.entries {
		keys = append(keys, k)
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Dictionary{\n")
	for _, k := range keys {
		v := d.entries[k].val
		fmt.Fprintf(&b, "    %-*s (%s) %s\n", maxLen, k, v.kind, v)
	}
	b.WriteString("}")
	return b.String()
}

// DumpTypes renders each key with the label of its active alternative, for
// quick inspection of a dictionary's shape without its contents.
func DumpTypes(d *Dict) string {
	var b strings.Builder
	b.WriteString("[Dictionary]\n")
	if d == nil {
		return b.String()
	}
	for _, k := range d.Keys() {
		fmt.Fprintf(&b, "%s: %s\n", k, d.entries[k].val.kind)
	}
	return b.String()
}

// String renders the value itself. Scalar vectors render element-wise;
// deeply nested containers and opaque handles render symbolically to keep
// diagnostic output bounded.
func (v Value) String() string {
	switch v.kind {
	case KindBool, KindInt32, KindInt64, KindUInt32, KindUInt64,
		KindSize, KindDouble, KindVerbosity:
		return fmt.Sprint(v.data)
	case KindString:
		return fmt.Sprintf("%q", v.data)
	case KindBoolVector:
		return renderVector(*v.data.(*[]bool))
	case KindInt32Vector:
		return renderVector(*v.data.(*[]int32))
	case KindInt64Vector:
		return renderVector(*v.data.(*[]int64))
	case KindSizeVector:
		return renderVector(*v.data.(*[]uint64))
	case KindDoubleVector:
		return renderVector(*v.data.(*[]float64))
	case KindStringVector:
		return renderVector(*v.data.(*[]string))
	case KindInt64Matrix, KindDoubleMatrix, KindInt64Cube, KindDoubleCube:
		return "<" + v.kind.String() + ">"
	case KindEmptyList:
		return "[]"
	case KindDict:
		return fmt.Sprintf("<dictionary (%d entries)>", v.data.(*Dict).Len())
	case KindParameter:
		return "<parameter>"
	case KindNodeCollection:
		return "<node collection>"
	default:
		return "<invalid>"
	}
}

func renderVector[T any](s []T) string {
	var b strings.Builder
	b.WriteString("vector[")
	for i, el := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, el)
	}
	b.WriteString("]")
	return b.String()
}
