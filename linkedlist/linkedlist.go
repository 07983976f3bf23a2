// Package linkedlist implements a doubly linked list that exposes the
// nodes its values are stored in.
//
// A caller holding a *Node can remove it from its list or use it as an
// insert position in constant time, without the linear search a plain
// slice or list requires. Methods operating on the first and last node
// run in constant time as well; index-based methods are linear in the
// list size.
//
// Nodes are stored in a circular chain, so the successor of the tail is
// the head and the predecessor of the head is the tail. The public API
// presents the chain as a linear sequence bounded by head and tail.
//
// A List is not safe for concurrent use and must be synchronized
// externally if shared. Iterators are fail-fast: a structural change made
// behind an iterator's back surfaces as ErrConcurrentModification on the
// iterator's next cursor use instead of a wrong result.
package linkedlist

import (
	"fmt"

	"github.com/raulgarciaph/jgrapht/internal/xerrors"
	"github.com/raulgarciaph/jgrapht/internal/xstring"
	"github.com/raulgarciaph/jgrapht/trace"
)

// List is a doubly linked list of nodes holding values of type T.
//
// The zero value is not ready for use, construct lists with New, NewFunc
// or FromSlice.
type List[T any] struct {
	// head is the first node of the list, nil if the list is empty.
	head *Node[T]
	size int

	// modCount increments on every structural change and backs the
	// fail-fast iterator contract.
	modCount uint64

	equals func(a, b T) bool
	trace  *trace.LinkedList
}

// New returns an empty list using == for value lookups.
func New[T comparable](opts ...Option[T]) *List[T] {
	return NewFunc[T](func(a, b T) bool { return a == b }, opts...)
}

// NewFunc returns an empty list using equals for value lookups. It allows
// element types that are not comparable.
func NewFunc[T any](equals func(a, b T) bool, opts ...Option[T]) *List[T] {
	l := &List[T]{
		equals: equals,
		trace:  &trace.LinkedList{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

// FromSlice returns a list holding the given values in order, each stored
// in its own node.
func FromSlice[T comparable](values []T, opts ...Option[T]) *List[T] {
	l := New[T](opts...)
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// tail returns the last node of the list. The list must not be empty.
func (l *List[T]) tail() *Node[T] {
	return l.head.prev
}

// link establishes predecessor -> successor.
func link[T any](predecessor, successor *Node[T]) {
	predecessor.next = successor
	successor.prev = predecessor
}

// addNode claims ownership of n for this list. It runs before any link is
// touched so that a failed ownership check leaves every list unchanged.
func (l *List[T]) addNode(n *Node[T]) error {
	if n.list != nil {
		which := "other"
		if n.list == l {
			which = "this"
		}

		return xerrors.WithStackTrace(
			fmt.Errorf("%w: node <%s> already contained in %s list", ErrNodeContained, n, which),
			xerrors.WithSkipDepth(1),
		)
	}
	n.list = l
	l.size++
	l.modCount++
	trace.LinkedListOnPushNode(l.trace, l.size)

	return nil
}

// removeNode releases n from this list, clearing its links. Reports false
// if n is not owned by this list.
func (l *List[T]) removeNode(n *Node[T]) bool {
	if n.list != l {
		return false
	}
	n.list = nil
	n.next = nil
	n.prev = nil
	l.size--
	l.modCount++
	trace.LinkedListOnRemoveNode(l.trace, l.size)

	return true
}

// linkBefore inserts the free node n before successor.
func (l *List[T]) linkBefore(n, successor *Node[T]) error {
	if err := l.addNode(n); err != nil {
		return err
	}
	link(successor.prev, n)
	link(n, successor)

	return nil
}

// linkLast inserts the free node n as the last node.
func (l *List[T]) linkLast(n *Node[T]) error {
	if l.IsEmpty() { // n will be the first and only one
		if err := l.addNode(n); err != nil {
			return err
		}
		link(n, n) // self link
		l.head = n

		return nil
	}

	return l.linkBefore(n, l.head)
}

// unlink removes n from the list. Reports false if n is not owned by this
// list.
func (l *List[T]) unlink(n *Node[T]) bool {
	prev, next := n.prev, n.next
	if !l.removeNode(n) { // clears prev and next of n
		return false
	}
	if l.size == 0 {
		l.head = nil
	} else {
		// the chain is circular, no nil values to worry about
		link(prev, next)
		if l.head == n {
			l.head = next
		}
	}

	return true
}

// nodeAt returns the node at index, walking from whichever end is closer.
func (l *List[T]) nodeAt(index int) (*Node[T], error) {
	if index < 0 || l.size <= index {
		return nil, xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size),
			xerrors.WithSkipDepth(1),
		)
	}
	var n *Node[T]
	if index < l.size/2 {
		n = l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
	} else {
		n = l.tail()
		for i := l.size - 1; index < i; i-- {
			n = n.prev
		}
	}

	return n, nil
}

// AddNodeAt links the free node n into this list at position index.
// Bounds are [0, size]. Linking as first or last takes constant time,
// other positions cost a walk to index.
//
// AddNodeAt fails with ErrNodeContained if n is already a member of this
// or another list, leaving every list unchanged.
func (l *List[T]) AddNodeAt(index int, n *Node[T]) error {
	if index < 0 || index > l.size {
		return xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size),
		)
	}
	if index == l.size { // also true for an empty list
		return l.linkLast(n)
	}
	successor := l.head
	if index > 0 {
		var err error
		successor, err = l.nodeAt(index)
		if err != nil {
			return err
		}
	}
	if err := l.linkBefore(n, successor); err != nil {
		return err
	}
	if l.head == successor {
		l.head = n
	}

	return nil
}

// AddNodeFirst links the free node n in as the new head in O(1).
func (l *List[T]) AddNodeFirst(n *Node[T]) error {
	return l.AddNodeAt(0, n)
}

// AddNodeLast links the free node n in as the new tail in O(1).
func (l *List[T]) AddNodeLast(n *Node[T]) error {
	return l.AddNodeAt(l.size, n)
}

// AddNodeBefore links the free node n in directly before successor in
// O(1). It fails with ErrNodeNotContained if successor is not a member of
// this list.
func (l *List[T]) AddNodeBefore(n, successor *Node[T]) error {
	if successor == nil || successor.list != l {
		return xerrors.WithStackTrace(
			fmt.Errorf("%w: successor <%s>", ErrNodeNotContained, successor),
		)
	}
	if err := l.linkBefore(n, successor); err != nil {
		return err
	}
	if l.head == successor {
		l.head = n
	}

	return nil
}

// RemoveNode unlinks n from this list in O(1). It reports whether n was a
// member of this list; removing a foreign or free node is a no-op.
func (l *List[T]) RemoveNode(n *Node[T]) bool {
	if n == nil {
		return false
	}

	return l.unlink(n)
}

// ContainsNode reports in O(1) whether n is a member of this list.
func (l *List[T]) ContainsNode(n *Node[T]) bool {
	return n != nil && n.list == l
}

// IndexOfNode returns the position of n in this list, or -1 if n is not a
// member. The miss case costs O(1), the hit case a scan from head.
func (l *List[T]) IndexOfNode(n *Node[T]) int {
	if !l.ContainsNode(n) {
		return -1
	}
	current := l.head
	for i := 0; i < l.size; i++ {
		if current == n {
			return i
		}
		current = current.next
	}

	return -1 // unreachable: contained nodes are always found
}

// FirstNode returns the head of the list, or ErrEmptyList.
func (l *List[T]) FirstNode() (*Node[T], error) {
	if l.IsEmpty() {
		return nil, xerrors.WithStackTrace(ErrEmptyList)
	}

	return l.head, nil
}

// LastNode returns the tail of the list, or ErrEmptyList.
func (l *List[T]) LastNode() (*Node[T], error) {
	if l.IsEmpty() {
		return nil, xerrors.WithStackTrace(ErrEmptyList)
	}

	return l.tail(), nil
}

// NodeAt returns the node at index, bounds [0, size).
func (l *List[T]) NodeAt(index int) (*Node[T], error) {
	return l.nodeAt(index)
}

// searchNode scans for the first node holding a value equal to v,
// starting at head and walking next when forward is true, else starting
// at tail and walking prev. It returns the node and the number of steps
// taken, or (nil, -1).
func (l *List[T]) searchNode(v T, forward bool) (*Node[T], int) {
	if l.IsEmpty() {
		return nil, -1
	}
	n := l.head
	if !forward {
		n = l.tail()
	}
	for i := 0; i < l.size; i++ {
		if l.equals(n.value, v) {
			return n, i
		}
		if forward {
			n = n.next
		} else {
			n = n.prev
		}
	}

	return nil, -1
}

// NodeOf returns the first node holding a value equal to v, or nil.
func (l *List[T]) NodeOf(v T) *Node[T] {
	n, _ := l.searchNode(v, true)

	return n
}

// LastNodeOf returns the last node holding a value equal to v, or nil.
func (l *List[T]) LastNodeOf(v T) *Node[T] {
	n, _ := l.searchNode(v, false)

	return n
}

// PushFront inserts v at the front and returns the node allocated to
// store it. The returned node is the new head.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := NewNode(v)
	_ = l.AddNodeAt(0, n) // a fresh node is always free

	return n
}

// PushBack inserts v at the end and returns the node allocated to store
// it. The returned node is the new tail.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := NewNode(v)
	_ = l.AddNodeAt(l.size, n) // a fresh node is always free

	return n
}

// InsertBefore inserts v directly before successor and returns the node
// allocated to store it.
func (l *List[T]) InsertBefore(v T, successor *Node[T]) (*Node[T], error) {
	n := NewNode(v)
	if err := l.AddNodeBefore(n, successor); err != nil {
		return nil, err
	}

	return n, nil
}

// Clear removes every node, leaving each of them free.
func (l *List[T]) Clear() {
	if l.IsEmpty() {
		return
	}
	onDone := trace.LinkedListOnClear(l.trace, l.size)
	removed := 0
	node := l.head
	for {
		next := node.next
		l.removeNode(node) // clears all links of the removed node
		removed++
		node = next
		if node == l.head {
			break
		}
	}
	l.head = nil
	onDone(removed)
}

// Values returns the list content as a slice, head first.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n, i := l.head, 0; i < l.size; n, i = n.next, i+1 {
		values = append(values, n.value)
	}

	return values
}

func (l *List[T]) String() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteByte('[')
	for n, i := l.head, 0; i < l.size; n, i = n.next, i+1 {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%v", n.value)
	}
	b.WriteByte(']')

	return b.String()
}
