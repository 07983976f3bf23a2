package linkedlist

import (
	"fmt"

	"github.com/raulgarciaph/jgrapht/internal/xerrors"
)

// ListIterator is a bidirectional, index-aware iterator over a List. Its
// cursor sits between two nodes.
//
// Every cursor operation first validates that the list was not
// structurally modified behind the iterator's back and returns
// ErrConcurrentModification if it was. The iterator's own Add, Set and
// Remove keep the iterator valid.
type ListIterator[T any] struct {
	list *List[T]

	// nextIndex is the position of the node the next NextNode call
	// returns.
	nextIndex int
	// next is the node the next NextNode call returns. Nil if the list
	// is empty.
	next *Node[T]
	// last is the node returned last, nil before the first move and
	// after Add and Remove.
	last *Node[T]

	// expectedModCount is the list modification count this iterator is
	// in sync with.
	expectedModCount uint64

	// readonly marks iterators handed out by a reversed view.
	readonly bool
}

// Iterator returns a ListIterator positioned before the first element.
func (l *List[T]) Iterator() *ListIterator[T] {
	it, _ := l.ListIteratorAt(0) // 0 is always in bounds

	return it
}

// ListIteratorAt returns a ListIterator positioned before the element at
// index. Bounds are [0, size], size meaning "after the last element".
func (l *List[T]) ListIteratorAt(index int) (*ListIterator[T], error) {
	if index < 0 || index > l.size {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size),
		)
	}
	it := &ListIterator[T]{
		list:             l,
		nextIndex:        index,
		expectedModCount: l.modCount,
	}
	if index == l.size {
		if !l.IsEmpty() {
			it.next = l.head
		}
	} else {
		it.next, _ = l.nodeAt(index)
	}

	return it, nil
}

// ListIteratorFrom returns a ListIterator whose first NextNode call
// returns the first node holding a value equal to v, or ErrNoSuchElement
// if no node does.
func (l *List[T]) ListIteratorFrom(v T) (*ListIterator[T], error) {
	n, index := l.searchNode(v, true)
	if n == nil {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: value %v", ErrNoSuchElement, v),
		)
	}

	return &ListIterator[T]{
		list:             l,
		nextIndex:        index,
		next:             n,
		expectedModCount: l.modCount,
	}, nil
}

// checkModification verifies that the list structure did not change since
// the iterator was created or last mutated through it.
func (it *ListIterator[T]) checkModification() error {
	if it.expectedModCount != it.list.modCount {
		return xerrors.WithStackTrace(ErrConcurrentModification, xerrors.WithSkipDepth(1))
	}

	return nil
}

func (it *ListIterator[T]) HasNext() bool {
	return it.nextIndex < it.list.size
}

func (it *ListIterator[T]) HasPrev() bool {
	return it.nextIndex > 0
}

// NextIndex returns the position of the element a NextNode call would
// return, equal to the list size when the cursor is at the end.
func (it *ListIterator[T]) NextIndex() int {
	return it.nextIndex
}

// PrevIndex returns the position of the element a PrevNode call would
// return, -1 when the cursor is at the start.
func (it *ListIterator[T]) PrevIndex() int {
	return it.nextIndex - 1
}

// NextNode returns the node after the cursor and advances the cursor.
func (it *ListIterator[T]) NextNode() (*Node[T], error) {
	if err := it.checkModification(); err != nil {
		return nil, err
	}
	if !it.HasNext() {
		return nil, xerrors.WithStackTrace(ErrNoSuchElement)
	}

	it.last = it.next
	it.next = it.next.next
	it.nextIndex++

	return it.last, nil
}

// PrevNode returns the node before the cursor and moves the cursor
// backwards.
func (it *ListIterator[T]) PrevNode() (*Node[T], error) {
	if err := it.checkModification(); err != nil {
		return nil, err
	}
	if !it.HasPrev() {
		return nil, xerrors.WithStackTrace(ErrNoSuchElement)
	}

	it.next = it.next.prev
	it.last = it.next
	it.nextIndex--

	return it.last, nil
}

// Next returns the value after the cursor and advances the cursor.
func (it *ListIterator[T]) Next() (T, error) {
	n, err := it.NextNode()
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// Prev returns the value before the cursor and moves the cursor
// backwards.
func (it *ListIterator[T]) Prev() (T, error) {
	n, err := it.PrevNode()
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// Add inserts v before the cursor. The cursor stays between the new
// element and the one a NextNode call would have returned.
func (it *ListIterator[T]) Add(v T) error {
	if err := it.checkModification(); err != nil {
		return err
	}
	if it.readonly {
		return xerrors.WithStackTrace(ErrUnsupported)
	}

	if it.nextIndex == it.list.size {
		it.list.PushBack(v) // moves head to the new node if the list was empty
		if it.list.size == 1 {
			// jump over the head threshold so the cursor stays at the end
			it.next = it.list.head
		}
	} else {
		if _, err := it.list.InsertBefore(v, it.next); err != nil {
			return err
		}
	}
	it.last = nil
	it.nextIndex++
	it.expectedModCount++

	return nil
}

// Set replaces the node returned last with a fresh node holding v and
// returns that node. The replaced node becomes free, so node handles
// captured before Set go stale.
//
// Set fails with ErrIteratorState if no node was returned yet or the node
// was already removed or replaced.
func (it *ListIterator[T]) Set(v T) (*Node[T], error) {
	if it.last == nil {
		return nil, xerrors.WithStackTrace(ErrIteratorState)
	}
	if err := it.checkModification(); err != nil {
		return nil, err
	}
	if it.readonly {
		return nil, xerrors.WithStackTrace(ErrUnsupported)
	}

	successor := it.last.next
	wasLast := it.last == it.list.tail()
	replaced := it.last
	it.list.RemoveNode(replaced)

	var (
		n   *Node[T]
		err error
	)
	if wasLast { // or the sole node
		n = it.list.PushBack(v)
	} else {
		n, err = it.list.InsertBefore(v, successor)
		if err != nil {
			return nil, err
		}
	}
	if it.next == replaced { // PrevNode was called before
		it.next = n
	}
	it.last = n
	it.expectedModCount += 2 // one unlink, one insert

	return n, nil
}

// Remove unlinks the node returned last. It fails with ErrIteratorState
// if no node was returned yet or the node was already removed or
// replaced.
func (it *ListIterator[T]) Remove() error {
	if it.last == nil {
		return xerrors.WithStackTrace(ErrIteratorState)
	}
	if err := it.checkModification(); err != nil {
		return err
	}
	if it.readonly {
		return xerrors.WithStackTrace(ErrUnsupported)
	}

	lastsNext := it.last.next
	it.list.RemoveNode(it.last)
	if it.next == it.last {
		// PrevNode was called before: the removed node was the one after
		// the cursor
		it.next = lastsNext
	} else {
		// NextNode was called before: the removed node was before the
		// cursor, the index shrinks
		it.nextIndex--
	}
	it.last = nil
	it.expectedModCount++

	return nil
}

// ReverseIterator iterates a list from back to front. It is obtained from
// DescendingIterator.
type ReverseIterator[T any] struct {
	it *ListIterator[T]
}

// DescendingIterator returns an iterator over the list elements in
// reverse order.
func (l *List[T]) DescendingIterator() *ReverseIterator[T] {
	it, _ := l.ListIteratorAt(l.size) // size is always in bounds

	return &ReverseIterator[T]{it: it}
}

func (r *ReverseIterator[T]) HasNext() bool {
	return r.it.HasPrev()
}

func (r *ReverseIterator[T]) NextNode() (*Node[T], error) {
	return r.it.PrevNode()
}

func (r *ReverseIterator[T]) Next() (T, error) {
	return r.it.Prev()
}

// Remove unlinks the node returned last.
func (r *ReverseIterator[T]) Remove() error {
	return r.it.Remove()
}

// CircularIterator walks the ring of nodes starting at a given node,
// ignoring the head and tail boundary. It is exhausted after one full
// turn, when the walk would return to its starting node.
type CircularIterator[T any] struct {
	list *List[T]
	next *Node[T]
	// remaining counts the nodes not yet returned.
	remaining int
	forward   bool

	expectedModCount uint64
}

// CircularIterator returns an iterator starting at the first node holding
// a value equal to first and walking forward across the tail boundary
// until one full turn is done. It fails with ErrNoSuchElement if no node
// holds first.
func (l *List[T]) CircularIterator(first T) (*CircularIterator[T], error) {
	return l.circularIterator(first, true)
}

// ReverseCircularIterator is CircularIterator walking backwards.
func (l *List[T]) ReverseCircularIterator(first T) (*CircularIterator[T], error) {
	return l.circularIterator(first, false)
}

func (l *List[T]) circularIterator(first T, forward bool) (*CircularIterator[T], error) {
	start := l.NodeOf(first)
	if start == nil {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: value %v", ErrNoSuchElement, first),
			xerrors.WithSkipDepth(1),
		)
	}

	return &CircularIterator[T]{
		list:             l,
		next:             start,
		remaining:        l.size,
		forward:          forward,
		expectedModCount: l.modCount,
	}, nil
}

func (c *CircularIterator[T]) HasNext() bool {
	return c.remaining > 0
}

func (c *CircularIterator[T]) NextNode() (*Node[T], error) {
	if c.expectedModCount != c.list.modCount {
		return nil, xerrors.WithStackTrace(ErrConcurrentModification)
	}
	if !c.HasNext() {
		return nil, xerrors.WithStackTrace(ErrNoSuchElement)
	}

	n := c.next
	if c.forward {
		c.next = n.next
	} else {
		c.next = n.prev
	}
	c.remaining--

	return n, nil
}

func (c *CircularIterator[T]) Next() (T, error) {
	n, err := c.NextNode()
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}
