package linkedlist

import (
	"errors"
)

var (
	// ErrNodeContained is returned on adding a node that is already a
	// member of this or another list. The failed add leaves every list
	// unchanged.
	ErrNodeContained = errors.New("linkedlist: node already contained in a list")

	// ErrNodeNotContained is returned when a node given as an insert
	// position is not a member of this list.
	ErrNodeNotContained = errors.New("linkedlist: node not contained in this list")

	// ErrEmptyList is returned by accessors that need at least one node.
	ErrEmptyList = errors.New("linkedlist: list is empty")

	// ErrIndexOutOfRange is returned for indexes outside [0, size) on
	// reads and [0, size] on inserts.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

	// ErrConcurrentModification is returned by an iterator whose list was
	// structurally modified through any path other than the iterator's
	// own mutating calls.
	ErrConcurrentModification = errors.New("linkedlist: concurrent modification detected")

	// ErrIteratorState is returned by Set and Remove when no node was
	// returned yet, or the returned node was already removed or replaced.
	ErrIteratorState = errors.New("linkedlist: iterator has no current node")

	// ErrNoSuchElement is returned when a value lookup finds no node or
	// an exhausted iterator is advanced.
	ErrNoSuchElement = errors.New("linkedlist: no such element")

	// ErrSameList is returned on moving a list into itself.
	ErrSameList = errors.New("linkedlist: cannot move a list into itself")

	// ErrUnsupported is returned by every mutating method of a reversed
	// view.
	ErrUnsupported = errors.New("linkedlist: operation not supported on a reversed view")
)
