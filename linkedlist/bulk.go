package linkedlist

import (
	"fmt"

	"github.com/raulgarciaph/jgrapht/internal/xerrors"
	"github.com/raulgarciaph/jgrapht/trace"
)

// moveAllNodes retargets every node of other to this list, as if each was
// removed from other and added here, without touching any link. It runs
// before the splice so both sizes change together.
func (l *List[T]) moveAllNodes(other *List[T]) {
	for n, i := other.head, 0; i < other.size; n, i = n.next, i+1 {
		n.list = l
	}
	l.size += other.size
	other.size = 0
	l.modCount++
	other.modCount++
}

// MoveFrom transplants all nodes of other into this list so that the
// former head of other ends up at position index. The splice itself is
// O(1), retargeting node ownership costs O(len(other)). After the call
// other is empty; no value is copied and all node handles stay valid.
//
// The transplant is atomic: a failed call leaves both lists unchanged.
func (l *List[T]) MoveFrom(index int, other *List[T]) error {
	onDone := trace.LinkedListOnMove(l.trace, index, l.size, other.Size())
	err := l.moveFrom(index, other)
	onDone(l.size, err)

	return err
}

func (l *List[T]) moveFrom(index int, other *List[T]) error {
	if index < 0 || index > l.size {
		return xerrors.WithStackTrace(
			fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size),
			xerrors.WithSkipDepth(1),
		)
	}
	if other == l {
		return xerrors.WithStackTrace(ErrSameList, xerrors.WithSkipDepth(1))
	}
	if other.IsEmpty() {
		return nil
	}

	// resolve the insert position before any size changes
	previousSize := l.size
	var refNode *Node[T]
	if previousSize > 0 && index < previousSize {
		var err error
		refNode, err = l.nodeAt(index)
		if err != nil {
			return err
		}
	} else if previousSize > 0 { // index == previousSize, insert at the end
		refNode = l.head
	}

	otherHead, otherTail := other.head, other.tail()
	l.moveAllNodes(other)

	if previousSize == 0 {
		l.head = otherHead // head and tail already linked together
	} else {
		link(refNode.prev, otherHead)
		link(otherTail, refNode)
		if index == 0 {
			l.head = otherHead
		}
	}
	// empty other without freeing its former nodes, they live here now
	other.head = nil

	return nil
}

// Append transplants all nodes of other to the end of this list. After
// the call other is empty.
func (l *List[T]) Append(other *List[T]) error {
	return l.MoveFrom(l.size, other)
}

// Prepend transplants all nodes of other to the front of this list.
// After the call other is empty.
func (l *List[T]) Prepend(other *List[T]) error {
	return l.MoveFrom(0, other)
}

// Invert reverses the list in place by swapping every node's links and
// moving the head to the former tail. It performs no allocation: all
// node handles stay valid and now traverse in the opposite direction.
func (l *List[T]) Invert() {
	if l.size < 2 {
		return
	}
	trace.LinkedListOnInvert(l.trace, l.size)
	newHead := l.tail()
	current := l.head
	for {
		next := current.next
		current.next, current.prev = current.prev, next
		current = next
		if current == l.head {
			break
		}
	}
	l.head = newHead
	l.modCount++
}
