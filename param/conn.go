package param

import (
	"fmt"

	"github.com/joshuapare/dictkit/dict"
)

// ConnParameter yields per-connection parameter values during connection
// building. Implementations are chosen by NewConnParameter from the
// alternative stored in the connection specification.
//
// Thread indexes select per-worker state; scalar and wrapped parameters
// ignore them.
type ConnParameter interface {
	// ValueDouble returns the next value for the given worker thread.
	ValueDouble(thread int) (float64, error)

	// ValueInt is like ValueDouble for integer-valued parameters. Parameters
	// without an integer form fail.
	ValueInt(thread int) (int64, error)

	// IsArray reports whether the parameter draws from a fixed array.
	IsArray() bool

	// NumValues returns the array length, or 0 for non-array parameters.
	NumValues() int

	// Reset rewinds the given worker thread's position. A no-op for
	// non-array parameters.
	Reset(thread int)
}

// NewConnParameter builds the sampling strategy for one stored value. The
// dispatch covers a scalar double, a scalar integer, a double or integer
// array (one value per connection, consumed in order per thread), and an
// opaque Parameter handle; any other alternative is rejected with its type
// label.
func NewConnParameter(v dict.Value, nthreads int) (ConnParameter, error) {
	if nthreads < 1 {
		return nil, fmt.Errorf("connection parameter: thread count must be positive, got %d", nthreads)
	}
	switch v.Kind() {
	case dict.KindDouble:
		c, err := dict.CastValue[float64](v, "")
		if err != nil {
			return nil, err
		}
		return &scalarDouble{v: c}, nil

	case dict.KindInt64:
		c, err := dict.CastValue[int64](v, "")
		if err != nil {
			return nil, err
		}
		return &scalarInteger{v: c}, nil

	case dict.KindDoubleVector:
		c, err := dict.CastValue[[]float64](v, "")
		if err != nil {
			return nil, err
		}
		return &arrayDouble{values: c, next: make([]int, nthreads)}, nil

	case dict.KindInt64Vector:
		c, err := dict.CastValue[[]int64](v, "")
		if err != nil {
			return nil, err
		}
		return &arrayInteger{values: c, next: make([]int, nthreads)}, nil

	case dict.KindParameter:
		p, err := dict.CastValue[dict.Parameter](v, "")
		if err != nil {
			return nil, err
		}
		return &wrapped{p: p}, nil

	default:
		return nil, fmt.Errorf("cannot handle connection parameter of type %s", v.Kind())
	}
}

type scalarDouble struct {
	v float64
}

func (p *scalarDouble) ValueDouble(int) (float64, error) { return p.v, nil }

func (p *scalarDouble) ValueInt(int) (int64, error) {
	return 0, fmt.Errorf("double parameter cannot be used as integer")
}

func (p *scalarDouble) IsArray() bool  { return false }
func (p *scalarDouble) NumValues() int { return 0 }
func (p *scalarDouble) Reset(int)      {}

type scalarInteger struct {
	v int64
}

func (p *scalarInteger) ValueDouble(int) (float64, error) { return float64(p.v), nil }
func (p *scalarInteger) ValueInt(int) (int64, error)      { return p.v, nil }
func (p *scalarInteger) IsArray() bool                    { return false }
func (p *scalarInteger) NumValues() int                   { return 0 }
func (p *scalarInteger) Reset(int)                        {}

type arrayDouble struct {
	values []float64
	next   []int // per-thread position
}

func (p *arrayDouble) ValueDouble(thread int) (float64, error) {
	if p.next[thread] >= len(p.values) {
		return 0, fmt.Errorf("out of values: array parameter holds %d", len(p.values))
	}
	v := p.values[p.next[thread]]
	p.next[thread]++
	return v, nil
}

func (p *arrayDouble) ValueInt(int) (int64, error) {
	return 0, fmt.Errorf("double array parameter cannot be used as integer")
}

func (p *arrayDouble) IsArray() bool    { return true }
func (p *arrayDouble) NumValues() int   { return len(p.values) }
func (p *arrayDouble) Reset(thread int) { p.next[thread] = 0 }

type arrayInteger struct {
	values []int64
	next   []int
}

func (p *arrayInteger) ValueDouble(thread int) (float64, error) {
	v, err := p.ValueInt(thread)
	return float64(v), err
}

func (p *arrayInteger) ValueInt(thread int) (int64, error) {
	if p.next[thread] >= len(p.values) {
		return 0, fmt.Errorf("out of values: array parameter holds %d", len(p.values))
	}
	v := p.values[p.next[thread]]
	p.next[thread]++
	return v, nil
}

func (p *arrayInteger) IsArray() bool    { return true }
func (p *arrayInteger) NumValues() int   { return len(p.values) }
func (p *arrayInteger) Reset(thread int) { p.next[thread] = 0 }

// wrapped adapts an opaque Parameter handle stored in a dictionary.
type wrapped struct {
	p dict.Parameter
}

func (w *wrapped) ValueDouble(int) (float64, error) { return w.p.Value(), nil }

func (w *wrapped) ValueInt(int) (int64, error) {
	return 0, fmt.Errorf("continuous parameter cannot be used as integer")
}

func (w *wrapped) IsArray() bool  { return false }
func (w *wrapped) NumValues() int { return 0 }
func (w *wrapped) Reset(int)      {}
