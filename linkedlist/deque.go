package linkedlist

import (
	"fmt"

	"github.com/raulgarciaph/jgrapht/internal/xerrors"
)

// Index-based sequence methods.

// Insert places v at position index, bounds [0, size].
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.size {
		return xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size),
		)
	}
	if index == l.size { // also true for an empty list
		l.PushBack(v)

		return nil
	}
	successor, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	_, err = l.InsertBefore(v, successor)

	return err
}

// Get returns the value at position index, bounds [0, size).
func (l *List[T]) Get(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// RemoveAt unlinks the node at position index and returns its value.
func (l *List[T]) RemoveAt(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		var zero T

		return zero, err
	}
	l.RemoveNode(n)

	return n.value, nil
}

// Deque methods.

func (l *List[T]) AddFirst(v T) {
	l.PushFront(v)
}

func (l *List[T]) AddLast(v T) {
	l.PushBack(v)
}

func (l *List[T]) OfferFirst(v T) bool {
	l.PushFront(v)

	return true
}

func (l *List[T]) OfferLast(v T) bool {
	l.PushBack(v)

	return true
}

// RemoveFirst unlinks the head and returns its value, or ErrEmptyList.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.IsEmpty() {
		var zero T

		return zero, xerrors.WithStackTrace(ErrEmptyList)
	}
	n := l.head
	l.RemoveNode(n) // advances head

	return n.value, nil
}

// RemoveLast unlinks the tail and returns its value, or ErrEmptyList.
func (l *List[T]) RemoveLast() (T, error) {
	if l.IsEmpty() {
		var zero T

		return zero, xerrors.WithStackTrace(ErrEmptyList)
	}
	n := l.tail()
	l.RemoveNode(n)

	return n.value, nil
}

// PollFirst unlinks the head and returns its value, reporting false on an
// empty list.
func (l *List[T]) PollFirst() (T, bool) {
	if l.IsEmpty() {
		var zero T

		return zero, false
	}
	n := l.head
	l.RemoveNode(n)

	return n.value, true
}

// PollLast unlinks the tail and returns its value, reporting false on an
// empty list.
func (l *List[T]) PollLast() (T, bool) {
	if l.IsEmpty() {
		var zero T

		return zero, false
	}
	n := l.tail()
	l.RemoveNode(n)

	return n.value, true
}

// First returns the head value, or ErrEmptyList.
func (l *List[T]) First() (T, error) {
	n, err := l.FirstNode()
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// Last returns the tail value, or ErrEmptyList.
func (l *List[T]) Last() (T, error) {
	n, err := l.LastNode()
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// PeekFirst returns the head value, reporting false on an empty list.
func (l *List[T]) PeekFirst() (T, bool) {
	if l.IsEmpty() {
		var zero T

		return zero, false
	}

	return l.head.value, true
}

// PeekLast returns the tail value, reporting false on an empty list.
func (l *List[T]) PeekLast() (T, bool) {
	if l.IsEmpty() {
		var zero T

		return zero, false
	}

	return l.tail().value, true
}

// Contains reports whether some node holds a value equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.NodeOf(v) != nil
}

// RemoveFirstOccurrence unlinks the first node holding a value equal to v
// and reports whether one was found.
func (l *List[T]) RemoveFirstOccurrence(v T) bool {
	n := l.NodeOf(v)
	if n == nil {
		return false
	}
	l.RemoveNode(n)

	return true
}

// RemoveLastOccurrence unlinks the last node holding a value equal to v
// and reports whether one was found.
func (l *List[T]) RemoveLastOccurrence(v T) bool {
	n := l.LastNodeOf(v)
	if n == nil {
		return false
	}
	l.RemoveNode(n)

	return true
}

// Queue methods, FIFO over the deque surface.

func (l *List[T]) Offer(v T) bool {
	return l.OfferLast(v)
}

func (l *List[T]) Poll() (T, bool) {
	return l.PollFirst()
}

func (l *List[T]) Peek() (T, bool) {
	return l.PeekFirst()
}

// Element returns the head value without removing it, or ErrEmptyList.
func (l *List[T]) Element() (T, error) {
	return l.First()
}

// Stack methods, LIFO over the deque surface.

func (l *List[T]) Push(v T) {
	l.AddFirst(v)
}

func (l *List[T]) Pop() (T, error) {
	return l.RemoveFirst()
}
