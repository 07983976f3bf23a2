package linkedlist

import (
	"fmt"

	"github.com/raulgarciaph/jgrapht/internal/xerrors"
	"github.com/raulgarciaph/jgrapht/internal/xstring"
)

// Reversed is a read-only, reverse-ordered view of a List.
//
// The view keeps no state of its own: every access is resolved against
// the backing list at call time, so the view always reflects the current
// list content. Node handles returned by the view are the backing list's
// own nodes; their Next and Prev still follow the backing order.
//
// Every mutating method fails with ErrUnsupported and leaves the backing
// list untouched.
type Reversed[T any] struct {
	orig *List[T]
}

// Reversed returns a read-only, reverse-ordered view of this list.
// Unlike Invert, the list itself stays unmodified.
func (l *List[T]) Reversed() *Reversed[T] {
	return &Reversed[T]{orig: l}
}

// Unreversed returns the backing list.
func (r *Reversed[T]) Unreversed() *List[T] {
	return r.orig
}

func (r *Reversed[T]) Size() int {
	return r.orig.size
}

func (r *Reversed[T]) IsEmpty() bool {
	return r.orig.IsEmpty()
}

// NodeAt returns the backing node at the mirrored position size-1-index.
func (r *Reversed[T]) NodeAt(index int) (*Node[T], error) {
	if index < 0 || index >= r.orig.size {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, r.orig.size),
		)
	}

	return r.orig.nodeAt(r.orig.size - 1 - index)
}

// Get returns the value at position index of the view.
func (r *Reversed[T]) Get(index int) (T, error) {
	n, err := r.NodeAt(index)
	if err != nil {
		var zero T

		return zero, err
	}

	return n.value, nil
}

// FirstNode returns the backing list's tail, or ErrEmptyList.
func (r *Reversed[T]) FirstNode() (*Node[T], error) {
	return r.orig.LastNode()
}

// LastNode returns the backing list's head, or ErrEmptyList.
func (r *Reversed[T]) LastNode() (*Node[T], error) {
	return r.orig.FirstNode()
}

func (r *Reversed[T]) First() (T, error) {
	return r.orig.Last()
}

func (r *Reversed[T]) Last() (T, error) {
	return r.orig.First()
}

func (r *Reversed[T]) PeekFirst() (T, bool) {
	return r.orig.PeekLast()
}

func (r *Reversed[T]) PeekLast() (T, bool) {
	return r.orig.PeekFirst()
}

func (r *Reversed[T]) Contains(v T) bool {
	return r.orig.Contains(v)
}

func (r *Reversed[T]) ContainsNode(n *Node[T]) bool {
	return r.orig.ContainsNode(n)
}

// IndexOfNode returns the view position of n, the mirror of its backing
// position.
func (r *Reversed[T]) IndexOfNode(n *Node[T]) int {
	i := r.orig.IndexOfNode(n)
	if i < 0 {
		return -1
	}

	return r.orig.size - 1 - i
}

// NodeOf returns the first node of the view holding a value equal to v,
// the backing list's last such node.
func (r *Reversed[T]) NodeOf(v T) *Node[T] {
	return r.orig.LastNodeOf(v)
}

// LastNodeOf returns the last node of the view holding a value equal to
// v, the backing list's first such node.
func (r *Reversed[T]) LastNodeOf(v T) *Node[T] {
	return r.orig.NodeOf(v)
}

// Values returns the view content as a slice, backing tail first.
func (r *Reversed[T]) Values() []T {
	values := make([]T, 0, r.orig.size)
	if !r.orig.IsEmpty() {
		for n, i := r.orig.tail(), 0; i < r.orig.size; n, i = n.prev, i+1 {
			values = append(values, n.value)
		}
	}

	return values
}

func (r *Reversed[T]) String() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteByte('[')
	if !r.orig.IsEmpty() {
		for n, i := r.orig.tail(), 0; i < r.orig.size; n, i = n.prev, i+1 {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%v", n.value)
		}
	}
	b.WriteByte(']')

	return b.String()
}

// Iterator returns a read-only iterator over the view, walking the
// backing list from tail to head.
func (r *Reversed[T]) Iterator() *ReverseIterator[T] {
	it, _ := r.orig.ListIteratorAt(r.orig.size) // size is always in bounds
	it.readonly = true

	return &ReverseIterator[T]{it: it}
}

// DescendingIterator returns a read-only iterator over the view in
// reverse order, which is the backing list's own order.
func (r *Reversed[T]) DescendingIterator() *ListIterator[T] {
	it, _ := r.orig.ListIteratorAt(0) // 0 is always in bounds
	it.readonly = true

	return it
}

// ListIteratorAt returns a read-only ListIterator over the backing list,
// positioned before the backing element mirroring the view position
// index. Its direction follows the backing list.
func (r *Reversed[T]) ListIteratorAt(index int) (*ListIterator[T], error) {
	if index < 0 || index > r.orig.size {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, r.orig.size),
		)
	}
	it, err := r.orig.ListIteratorAt(r.orig.size - index)
	if err != nil {
		return nil, err
	}
	it.readonly = true

	return it, nil
}

// CircularIterator returns an iterator starting at the first view node
// holding a value equal to first and walking in view order, backwards
// through the backing ring.
func (r *Reversed[T]) CircularIterator(first T) (*CircularIterator[T], error) {
	return r.circularIterator(first, false)
}

// ReverseCircularIterator is the view's CircularIterator walking in
// backing order.
func (r *Reversed[T]) ReverseCircularIterator(first T) (*CircularIterator[T], error) {
	return r.circularIterator(first, true)
}

func (r *Reversed[T]) circularIterator(first T, forward bool) (*CircularIterator[T], error) {
	start := r.NodeOf(first)
	if start == nil {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: value %v", ErrNoSuchElement, first),
			xerrors.WithSkipDepth(1),
		)
	}

	return &CircularIterator[T]{
		list:             r.orig,
		next:             start,
		remaining:        r.orig.size,
		forward:          forward,
		expectedModCount: r.orig.modCount,
	}, nil
}

// unsupported is the shared failure of every mutating view method.
func (r *Reversed[T]) unsupported() error {
	return xerrors.WithStackTrace(ErrUnsupported, xerrors.WithSkipDepth(2))
}

func (r *Reversed[T]) AddNodeAt(int, *Node[T]) error { return r.unsupported() }

func (r *Reversed[T]) AddNodeFirst(*Node[T]) error { return r.unsupported() }

func (r *Reversed[T]) AddNodeLast(*Node[T]) error { return r.unsupported() }

func (r *Reversed[T]) AddNodeBefore(*Node[T], *Node[T]) error { return r.unsupported() }

func (r *Reversed[T]) RemoveNode(*Node[T]) error { return r.unsupported() }

func (r *Reversed[T]) PushFront(T) (*Node[T], error) { return nil, r.unsupported() }

func (r *Reversed[T]) PushBack(T) (*Node[T], error) { return nil, r.unsupported() }

func (r *Reversed[T]) InsertBefore(T, *Node[T]) (*Node[T], error) { return nil, r.unsupported() }

func (r *Reversed[T]) Insert(int, T) error { return r.unsupported() }

func (r *Reversed[T]) RemoveAt(int) (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) AddFirst(T) error { return r.unsupported() }

func (r *Reversed[T]) AddLast(T) error { return r.unsupported() }

func (r *Reversed[T]) OfferFirst(T) error { return r.unsupported() }

func (r *Reversed[T]) OfferLast(T) error { return r.unsupported() }

func (r *Reversed[T]) RemoveFirst() (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) RemoveLast() (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) PollFirst() (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) PollLast() (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) RemoveFirstOccurrence(T) error { return r.unsupported() }

func (r *Reversed[T]) RemoveLastOccurrence(T) error { return r.unsupported() }

func (r *Reversed[T]) Offer(T) error { return r.unsupported() }

func (r *Reversed[T]) Poll() (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) Push(T) error { return r.unsupported() }

func (r *Reversed[T]) Pop() (T, error) { var zero T; return zero, r.unsupported() }

func (r *Reversed[T]) Clear() error { return r.unsupported() }

func (r *Reversed[T]) Invert() error { return r.unsupported() }

func (r *Reversed[T]) MoveFrom(int, *List[T]) error { return r.unsupported() }

func (r *Reversed[T]) Append(*List[T]) error { return r.unsupported() }

func (r *Reversed[T]) Prepend(*List[T]) error { return r.unsupported() }
