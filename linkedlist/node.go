package linkedlist

import (
	"fmt"
)

// Node is the link-structure element of a List. It stores one immutable
// value plus references to its circular neighbours and to the list that
// currently owns it.
//
// A Node is either contained exactly once in exactly one List or contained
// in no List. Free nodes are made by NewNode or by removing a node from
// its list; owned nodes are made by PushFront, PushBack, InsertBefore and
// the AddNode methods.
type Node[T any] struct {
	value T
	next  *Node[T]
	prev  *Node[T]
	list  *List[T]
}

// NewNode returns a free node holding v, not yet contained in any list.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the immutable value this node contains.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the successor of this node in the circular chain. The
// successor of the tail is the head. Next returns nil for a free node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor of this node in the circular chain. The
// predecessor of the head is the tail. Prev returns nil for a free node.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List returns the list this node is a member of, or nil for a free node.
func (n *Node[T]) List() *List[T] {
	return n.list
}

func (n *Node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.list == nil {
		return fmt.Sprintf(" - %v - ", n.value)
	}

	return fmt.Sprintf("%v -> %v -> %v", n.prev.value, n.value, n.next.value)
}
