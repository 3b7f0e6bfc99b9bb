// Package nodes implements the node-collection handle stored opaquely in
// status dictionaries. A collection is a contiguous, inclusive range of node
// IDs; dictionaries treat it as an identity-compared handle, consumers
// iterate or slice it.
package nodes

import "fmt"

// Collection is a contiguous range of node IDs, first through last inclusive.
// It satisfies dict.NodeCollection. Collections are immutable after
// construction and shared by handle.
type Collection struct {
	first uint64
	last  uint64
}

// NewRange returns the collection covering [first, last]. IDs start at 1;
// zero is never a valid node ID.
func NewRange(first, last uint64) (*Collection, error) {
	if first == 0 {
		return nil, fmt.Errorf("node collection: node IDs start at 1")
	}
	if last < first {
		return nil, fmt.Errorf("node collection: last (%d) precedes first (%d)", last, first)
	}
	return &Collection{first: first, last: last}, nil
}

// Size returns the number of nodes.
func (c *Collection) Size() int {
	return int(c.last - c.first + 1)
}

// First returns the lowest node ID.
func (c *Collection) First() uint64 { return c.first }

// Last returns the highest node ID.
func (c *Collection) Last() uint64 { return c.last }

// Contains reports whether id is in the collection.
func (c *Collection) Contains(id uint64) bool {
	return id >= c.first && id <= c.last
}

// Slice returns the sub-collection covering positions [start, stop) of this
// collection.
func (c *Collection) Slice(start, stop int) (*Collection, error) {
	if start < 0 || stop > c.Size() || start >= stop {
		return nil, fmt.Errorf("node collection: invalid slice [%d, %d) of %d nodes", start, stop, c.Size())
	}
	return &Collection{
		first: c.first + uint64(start),
		last:  c.first + uint64(stop) - 1,
	}, nil
}

// IDs returns every node ID in ascending order.
func (c *Collection) IDs() []uint64 {
	ids := make([]uint64, 0, c.Size())
	for id := c.first; id <= c.last; id++ {
		ids = append(ids, id)
	}
	return ids
}

// String renders the collection for diagnostics.
func (c *Collection) String() string {
	if c.first == c.last {
		return fmt.Sprintf("NodeCollection(%d)", c.first)
	}
	return fmt.Sprintf("NodeCollection(%d..%d, size=%d)", c.first, c.last, c.Size())
}
