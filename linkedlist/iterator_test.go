package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorTraversal(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	it := l.Iterator()

	require.False(t, it.HasPrev())
	require.Equal(t, 0, it.NextIndex())
	require.Equal(t, -1, it.PrevIndex())

	var forward []string
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		forward = append(forward, v)
	}
	require.Equal(t, []string{"a", "b", "c"}, forward)
	require.Equal(t, 3, it.NextIndex())
	require.Equal(t, 2, it.PrevIndex())

	_, err := it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)

	// the same iterator walks back again
	var backward []string
	for it.HasPrev() {
		v, err := it.Prev()
		require.NoError(t, err)
		backward = append(backward, v)
	}
	require.Equal(t, []string{"c", "b", "a"}, backward)

	_, err = it.Prev()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestListIteratorAt(t *testing.T) {
	l := FromSlice([]int{10, 20, 30})

	it, err := l.ListIteratorAt(1)
	require.NoError(t, err)
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 20, v)

	// index size positions the cursor after the last element
	it, err = l.ListIteratorAt(l.Size())
	require.NoError(t, err)
	require.False(t, it.HasNext())
	v, err = it.Prev()
	require.NoError(t, err)
	require.Equal(t, 30, v)

	_, err = l.ListIteratorAt(4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.ListIteratorAt(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListIteratorFrom(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})

	it, err := l.ListIteratorFrom("b")
	require.NoError(t, err)
	require.Equal(t, 1, it.NextIndex())
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = l.ListIteratorFrom("x")
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestIteratorFailFast(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iterator()

	_, err := it.Next()
	require.NoError(t, err)

	// structural change behind the iterator's back
	l.PushBack(4)

	_, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
	_, err = it.Prev()
	require.ErrorIs(t, err, ErrConcurrentModification)
	require.ErrorIs(t, it.Add(5), ErrConcurrentModification)
	require.ErrorIs(t, it.Remove(), ErrConcurrentModification)
	_, err = it.Set(5)
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestIteratorFailFastOnNodeRemoval(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iterator()

	n, err := l.NodeAt(2)
	require.NoError(t, err)
	require.True(t, l.RemoveNode(n))

	_, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestIteratorAdd(t *testing.T) {
	l := FromSlice([]string{"a", "c"})
	it := l.Iterator()

	_, err := it.Next()
	require.NoError(t, err)

	// insert between a and c, the cursor stays before c
	require.NoError(t, it.Add("b"))
	require.Equal(t, 2, it.NextIndex())
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "c", v)

	// append at the end through the cursor
	require.NoError(t, it.Add("d"))
	require.False(t, it.HasNext())
	require.Equal(t, []string{"a", "b", "c", "d"}, l.Values())

	// Add leaves no current node for Set or Remove
	require.ErrorIs(t, it.Remove(), ErrIteratorState)
}

func TestIteratorAddToEmptyList(t *testing.T) {
	l := New[int]()
	it := l.Iterator()

	require.NoError(t, it.Add(1))
	require.NoError(t, it.Add(2))
	require.False(t, it.HasNext())
	require.Equal(t, 2, it.NextIndex())
	require.Equal(t, []int{1, 2}, l.Values())

	v, err := it.Prev()
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestIteratorSet(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	it := l.Iterator()

	_, err := it.Next()
	require.NoError(t, err)
	old, err := it.NextNode()
	require.NoError(t, err)
	require.Equal(t, "b", old.Value())

	// Set replaces the node, not just the value
	replacement, err := it.Set("B")
	require.NoError(t, err)
	require.NotEqual(t, old, replacement)
	require.Equal(t, "B", replacement.Value())
	require.Equal(t, []string{"a", "B", "c"}, l.Values())

	// the replaced node is free, handles to it are stale
	require.Nil(t, old.List())
	require.False(t, l.ContainsNode(old))
	require.True(t, l.ContainsNode(replacement))

	// the iterator itself stays usable
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "c", v)

	// a repeated Set replaces the replacement
	again, err := it.Set("C")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "B", "C"}, l.Values())
	require.True(t, l.ContainsNode(again))
}

func TestIteratorSetAfterPrev(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	it, err := l.ListIteratorAt(2)
	require.NoError(t, err)

	v, err := it.Prev()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	n, err := it.Set("B")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "B", "c"}, l.Values())

	// the cursor still sits before the replaced position
	got, err := it.NextNode()
	require.NoError(t, err)
	require.Equal(t, n, got)
}

func TestIteratorSetLastElement(t *testing.T) {
	l := FromSlice([]int{1, 2})
	it := l.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}

	n, err := it.Set(9)
	require.NoError(t, err)
	require.Equal(t, []int{1, 9}, l.Values())

	tail, err := l.LastNode()
	require.NoError(t, err)
	require.Equal(t, n, tail)
	require.False(t, it.HasNext())
}

func TestIteratorSetWithoutCurrent(t *testing.T) {
	l := FromSlice([]int{1})
	it := l.Iterator()

	_, err := it.Set(9)
	require.ErrorIs(t, err, ErrIteratorState)

	_, err = it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())

	_, err = it.Set(9)
	require.ErrorIs(t, err, ErrIteratorState)
}

func TestIteratorRemove(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})
	it := l.Iterator()

	// remove after Next: the element before the cursor goes away
	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	require.Equal(t, 0, it.NextIndex())
	require.Equal(t, []int{2, 3, 4}, l.Values())

	// remove after Prev: the element after the cursor goes away
	_, err = it.Next()
	require.NoError(t, err)
	_, err = it.Prev()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	require.Equal(t, 0, it.NextIndex())
	require.Equal(t, []int{3, 4}, l.Values())

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	// a second Remove without a move in between fails
	require.NoError(t, it.Remove())
	require.ErrorIs(t, it.Remove(), ErrIteratorState)
	require.Equal(t, []int{4}, l.Values())
}

func TestIteratorRemoveAll(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
	}
	require.True(t, l.IsEmpty())
}

func TestDescendingIterator(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})
	it := l.DescendingIterator()

	var values []string
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		values = append(values, v)
	}
	require.Equal(t, []string{"c", "b", "a"}, values)

	_, err := it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestDescendingIteratorRemove(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.DescendingIterator()

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.NoError(t, it.Remove())
	require.Equal(t, []int{1, 2}, l.Values())

	n, err := it.NextNode()
	require.NoError(t, err)
	require.Equal(t, 2, n.Value())
}

func TestCircularIterator(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c", "d"})

	// starts in the middle and crosses the tail boundary
	it, err := l.CircularIterator("c")
	require.NoError(t, err)

	var values []string
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		values = append(values, v)
	}
	require.Equal(t, []string{"c", "d", "a", "b"}, values)

	// exhausted after one full turn
	_, err = it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestReverseCircularIterator(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c", "d"})
	it, err := l.ReverseCircularIterator("b")
	require.NoError(t, err)

	var values []string
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		values = append(values, v)
	}
	require.Equal(t, []string{"b", "a", "d", "c"}, values)
}

func TestCircularIteratorMissingStart(t *testing.T) {
	l := FromSlice([]int{1, 2})
	_, err := l.CircularIterator(7)
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = l.ReverseCircularIterator(7)
	require.ErrorIs(t, err, ErrNoSuchElement)

	empty := New[int]()
	_, err = empty.CircularIterator(1)
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestCircularIteratorFailFast(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it, err := l.CircularIterator(2)
	require.NoError(t, err)

	_, err = it.Next()
	require.NoError(t, err)

	l.PushBack(4)

	_, err = it.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestCircularIteratorNodes(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it, err := l.CircularIterator(3)
	require.NoError(t, err)

	// yields the nodes of the ring itself
	n, err := it.NextNode()
	require.NoError(t, err)
	tail, err := l.LastNode()
	require.NoError(t, err)
	require.Equal(t, tail, n)

	n, err = it.NextNode()
	require.NoError(t, err)
	head, err := l.FirstNode()
	require.NoError(t, err)
	require.Equal(t, head, n)
}
