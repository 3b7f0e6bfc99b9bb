// Package yamldict converts YAML status files to and from dictionaries for
// the CLI. It is an outer-layer convenience, not a storage contract: the
// container itself defines no serialization.
//
// Scalars and sequences map onto the closed alternative set by inference:
// integers become int64, floats double, homogeneous sequences the matching
// vector, sequences of sequences the nested numeric containers, and the
// empty sequence the empty-list sentinel. Shapes outside the closed set are
// rejected.
package yamldict

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/dictkit/dict"
	"github.com/joshuapare/dictkit/pkg/types"
)

// Decode parses a YAML document into a dictionary.
func Decode(data []byte) (*dict.Dict, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("yamldict: parse: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return dict.New(), nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yamldict: top level must be a mapping, line %d", doc.Line)
	}
	return decodeMapping(doc)
}

func decodeMapping(node *yaml.Node) (*dict.Dict, error) {
	d := dict.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yamldict: non-scalar key, line %d", keyNode.Line)
		}
		v, err := decodeValue(valNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		d.Set(keyNode.Value, v)
	}
	return d, nil
}

func decodeValue(node *yaml.Node) (dict.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.MappingNode:
		sub, err := decodeMapping(node)
		if err != nil {
			return dict.Value{}, err
		}
		return dict.NewDict(sub), nil
	case yaml.SequenceNode:
		return decodeSequence(node)
	case yaml.AliasNode:
		return decodeValue(node.Alias)
	default:
		return dict.Value{}, fmt.Errorf("unsupported YAML node, line %d", node.Line)
	}
}

func decodeScalar(node *yaml.Node) (dict.Value, error) {
	switch node.ShortTag() {
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return dict.NewInt64(i), nil
		}
		u, err := strconv.ParseUint(node.Value, 0, 64)
		if err != nil {
			return dict.Value{}, fmt.Errorf("bad integer %q, line %d", node.Value, node.Line)
		}
		return dict.NewUInt64(u), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return dict.Value{}, fmt.Errorf("bad float %q, line %d", node.Value, node.Line)
		}
		return dict.NewDouble(f), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return dict.Value{}, fmt.Errorf("bad bool %q, line %d", node.Value, node.Line)
		}
		return dict.NewBool(b), nil
	case "!!str":
		return dict.NewString(node.Value), nil
	default:
		return dict.Value{}, fmt.Errorf("unsupported scalar tag %s, line %d", node.ShortTag(), node.Line)
	}
}

func decodeSequence(node *yaml.Node) (dict.Value, error) {
	if len(node.Content) == 0 {
		return dict.EmptyList(), nil
	}

	switch node.Content[0].Kind {
	case yaml.ScalarNode:
		return decodeScalarSequence(node)
	case yaml.SequenceNode:
		return decodeNestedSequence(node)
	default:
		return dict.Value{}, fmt.Errorf("unsupported sequence element, line %d", node.Line)
	}
}

func decodeScalarSequence(node *yaml.Node) (dict.Value, error) {
	// One pass decides the element alternative: any float makes the whole
	// sequence a double vector, matching the promotion direction of the
	// casting layer.
	kind := "!!int"
	for _, el := range node.Content {
		if el.Kind != yaml.ScalarNode {
			return dict.Value{}, fmt.Errorf("mixed sequence, line %d", node.Line)
		}
		tag := el.ShortTag()
		switch {
		case tag == kind:
		case tag == "!!float" && kind == "!!int":
			kind = "!!float"
		case tag == "!!int" && kind == "!!float":
		default:
			if el == node.Content[0] {
				kind = tag
			} else {
				return dict.Value{}, fmt.Errorf("mixed sequence, line %d", node.Line)
			}
		}
	}

	switch kind {
	case "!!int":
		out := make([]int64, len(node.Content))
		for i, el := range node.Content {
			n, err := strconv.ParseInt(el.Value, 0, 64)
			if err != nil {
				return dict.Value{}, fmt.Errorf("bad integer %q, line %d", el.Value, el.Line)
			}
			out[i] = n
		}
		return dict.NewInt64Vector(out), nil
	case "!!float":
		out := make([]float64, len(node.Content))
		for i, el := range node.Content {
			f, err := strconv.ParseFloat(el.Value, 64)
			if err != nil {
				return dict.Value{}, fmt.Errorf("bad float %q, line %d", el.Value, el.Line)
			}
			out[i] = f
		}
		return dict.NewDoubleVector(out), nil
	case "!!bool":
		out := make([]bool, len(node.Content))
		for i, el := range node.Content {
			b, err := strconv.ParseBool(el.Value)
			if err != nil {
				return dict.Value{}, fmt.Errorf("bad bool %q, line %d", el.Value, el.Line)
			}
			out[i] = b
		}
		return dict.NewBoolVector(out), nil
	case "!!str":
		out := make([]string, len(node.Content))
		for i, el := range node.Content {
			out[i] = el.Value
		}
		return dict.NewStringVector(out), nil
	default:
		return dict.Value{}, fmt.Errorf("unsupported sequence element tag %s, line %d", kind, node.Line)
	}
}

func decodeNestedSequence(node *yaml.Node) (dict.Value, error) {
	// Depth decides matrix vs cube; element alternatives follow the same
	// int-unless-any-float rule as flat sequences.
	depth := sequenceDepth(node)
	switch depth {
	case 2:
		if anyFloatAtDepth(node, 2) {
			m, err := floatMatrix(node)
			if err != nil {
				return dict.Value{}, err
			}
			return dict.NewDoubleMatrix(m), nil
		}
		m, err := intMatrix(node)
		if err != nil {
			return dict.Value{}, err
		}
		return dict.NewInt64Matrix(m), nil
	case 3:
		for _, el := range node.Content {
			if el.Kind != yaml.SequenceNode {
				return dict.Value{}, fmt.Errorf("ragged nesting, line %d", el.Line)
			}
		}
		if anyFloatAtDepth(node, 3) {
			c := make([][][]float64, len(node.Content))
			for i, el := range node.Content {
				m, err := floatMatrix(el)
				if err != nil {
					return dict.Value{}, err
				}
				c[i] = m
			}
			return dict.NewDoubleCube(c), nil
		}
		c := make([][][]int64, len(node.Content))
		for i, el := range node.Content {
			m, err := intMatrix(el)
			if err != nil {
				return dict.Value{}, err
			}
			c[i] = m
		}
		return dict.NewInt64Cube(c), nil
	default:
		return dict.Value{}, fmt.Errorf("sequence nesting depth %d unsupported, line %d", depth, node.Line)
	}
}

func sequenceDepth(node *yaml.Node) int {
	if node.Kind != yaml.SequenceNode {
		return 0
	}
	max := 0
	for _, el := range node.Content {
		if d := sequenceDepth(el); d > max {
			max = d
		}
	}
	return max + 1
}

func anyFloatAtDepth(node *yaml.Node, depth int) bool {
	if depth == 1 {
		for _, el := range node.Content {
			if el.ShortTag() == "!!float" {
				return true
			}
		}
		return false
	}
	for _, el := range node.Content {
		if anyFloatAtDepth(el, depth-1) {
			return true
		}
	}
	return false
}

func intMatrix(node *yaml.Node) ([][]int64, error) {
	out := make([][]int64, len(node.Content))
	for i, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("ragged nesting, line %d", row.Line)
		}
		out[i] = make([]int64, len(row.Content))
		for j, el := range row.Content {
			n, err := strconv.ParseInt(el.Value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("bad integer %q, line %d", el.Value, el.Line)
			}
			out[i][j] = n
		}
	}
	return out, nil
}

func floatMatrix(node *yaml.Node) ([][]float64, error) {
	out := make([][]float64, len(node.Content))
	for i, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("ragged nesting, line %d", row.Line)
		}
		out[i] = make([]float64, len(row.Content))
		for j, el := range row.Content {
			f, err := strconv.ParseFloat(el.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("bad float %q, line %d", el.Value, el.Line)
			}
			out[i][j] = f
		}
	}
	return out, nil
}

// Encode renders a dictionary as a YAML document with sorted keys. Opaque
// handles have no YAML form and are rejected.
func Encode(d *dict.Dict) ([]byte, error) {
	node, err := encodeDict(d)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func encodeDict(d *dict.Dict) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.Keys() {
		v, err := d.At(k)
		if err != nil {
			return nil, err
		}
		valNode, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			valNode,
		)
	}
	return m, nil
}

func encodeValue(v dict.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case dict.KindParameter, dict.KindNodeCollection:
		return nil, fmt.Errorf("%s has no YAML form", v.Kind())
	case dict.KindDict:
		sub, err := dict.CastValue[*dict.Dict](v, "")
		if err != nil {
			return nil, err
		}
		return encodeDict(sub)
	case dict.KindEmptyList:
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}, nil
	default:
		raw, err := extract(v)
		if err != nil {
			return nil, err
		}
		n := &yaml.Node{}
		if err := n.Encode(raw); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// extract pulls the alternative out as a shape yaml.Marshal takes directly.
func extract(v dict.Value) (any, error) {
	switch v.Kind() {
	case dict.KindBool:
		return dict.CastValue[bool](v, "")
	case dict.KindInt32:
		return dict.CastValue[int32](v, "")
	case dict.KindInt64:
		return dict.CastValue[int64](v, "")
	case dict.KindUInt32:
		return dict.CastValue[uint32](v, "")
	case dict.KindUInt64, dict.KindSize:
		return dict.CastValue[uint64](v, "")
	case dict.KindDouble:
		return dict.CastValue[float64](v, "")
	case dict.KindString:
		return dict.CastValue[string](v, "")
	case dict.KindVerbosity:
		verb, err := dict.CastValue[types.Verbosity](v, "")
		if err != nil {
			return nil, err
		}
		return verb.String(), nil
	case dict.KindBoolVector:
		return dict.CastValue[[]bool](v, "")
	case dict.KindInt32Vector:
		return dict.CastValue[[]int32](v, "")
	case dict.KindInt64Vector:
		return dict.CastValue[[]int64](v, "")
	case dict.KindSizeVector:
		return dict.CastValue[[]uint64](v, "")
	case dict.KindDoubleVector:
		return dict.CastValue[[]float64](v, "")
	case dict.KindStringVector:
		return dict.CastValue[[]string](v, "")
	case dict.KindInt64Matrix:
		return dict.CastValue[[][]int64](v, "")
	case dict.KindDoubleMatrix:
		return dict.CastValue[[][]float64](v, "")
	case dict.KindInt64Cube:
		return dict.CastValue[[][][]int64](v, "")
	case dict.KindDoubleCube:
		return dict.CastValue[[][][]float64](v, "")
	default:
		return nil, fmt.Errorf("%s has no YAML form", v.Kind())
	}
}
