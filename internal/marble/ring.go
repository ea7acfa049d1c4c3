package marble

import (
	"fmt"

	"github.com/rocketscienceinc/marble-mania/internal/apperror"
)

// Marble is the value written on a marble. It doubles as its placement order.
type Marble int

// NodeID addresses a node inside a Ring's arena. IDs stay stable while the
// node is in the circle; once removed the ID must not be used again.
type NodeID int

const noNode NodeID = -1

type node struct {
	value      Marble
	next, prev NodeID
	live       bool
}

// Ring is a circular doubly-linked sequence of marbles backed by an arena.
// It does not track a current position: every operation takes the node it is
// relative to and returns the node the caller should treat as current.
//
// A Ring is not safe for concurrent use.
type Ring struct {
	nodes []node
	free  []NodeID
	size  int
}

// New creates a ring holding a single marble and returns it with its node.
func New(value Marble) (*Ring, NodeID) {
	return NewWithCapacity(value, 1)
}

// NewWithCapacity is like New but preallocates room for capacity nodes.
func NewWithCapacity(value Marble, capacity int) (*Ring, NodeID) {
	if capacity < 1 {
		capacity = 1
	}

	ring := &Ring{
		nodes: make([]node, 0, capacity),
	}

	return ring, ring.alloc(value)
}

// Len returns the number of marbles in the circle.
func (that *Ring) Len() int {
	return that.size
}

// Value returns the marble held by id.
func (that *Ring) Value(id NodeID) Marble {
	return that.at(id).value
}

// Next returns the node clockwise of id.
func (that *Ring) Next(id NodeID) NodeID {
	return that.at(id).next
}

// Prev returns the node counter-clockwise of id.
func (that *Ring) Prev(id NodeID) NodeID {
	return that.at(id).prev
}

// Shift walks k steps clockwise from id, or -k steps counter-clockwise when
// k is negative. Cost is proportional to |k| bounded by the ring size.
func (that *Ring) Shift(id NodeID, k int) NodeID {
	that.at(id)

	if k >= that.size || -k >= that.size {
		k %= that.size
	}

	current := id
	for ; k > 0; k-- {
		current = that.nodes[current].next
	}
	for ; k < 0; k++ {
		current = that.nodes[current].prev
	}

	return current
}

// InsertAfter places value between id and its clockwise neighbour and
// returns the new node.
func (that *Ring) InsertAfter(id NodeID, value Marble) NodeID {
	that.at(id)

	added := that.alloc(value)
	next := that.nodes[id].next

	that.nodes[added].prev = id
	that.nodes[added].next = next
	that.nodes[next].prev = added
	that.nodes[id].next = added

	return added
}

// Remove takes id out of the circle and returns the node that was clockwise
// of it. The last remaining node cannot be removed.
func (that *Ring) Remove(id NodeID) (NodeID, error) {
	if !that.valid(id) {
		return noNode, fmt.Errorf("%w: node %d", apperror.ErrReleasedNode, id)
	}

	if that.size < 2 {
		return noNode, apperror.ErrEmptyRingRemoval
	}

	removed := &that.nodes[id]
	next, prev := removed.next, removed.prev

	that.nodes[prev].next = next
	that.nodes[next].prev = prev

	removed.next, removed.prev = noNode, noNode
	removed.live = false
	that.free = append(that.free, id)
	that.size--

	return next, nil
}

// Values returns the marbles in clockwise order starting at from.
func (that *Ring) Values(from NodeID) []Marble {
	that.at(from)

	values := make([]Marble, 0, that.size)
	current := from
	for i := 0; i < that.size; i++ {
		values = append(values, that.nodes[current].value)
		current = that.nodes[current].next
	}

	return values
}

func (that *Ring) alloc(value Marble) NodeID {
	var id NodeID

	if n := len(that.free); n > 0 {
		id = that.free[n-1]
		that.free = that.free[:n-1]
	} else {
		id = NodeID(len(that.nodes))
		that.nodes = append(that.nodes, node{})
	}

	that.nodes[id] = node{value: value, next: id, prev: id, live: true}
	that.size++

	return id
}

func (that *Ring) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(that.nodes) && that.nodes[id].live
}

// at panics on a released or foreign node: navigating from one is a caller bug.
func (that *Ring) at(id NodeID) *node {
	if !that.valid(id) {
		panic(fmt.Errorf("%w: node %d", apperror.ErrReleasedNode, id))
	}

	return &that.nodes[id]
}
