package trace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedListCompose(t *testing.T) {
	var (
		pushes  []int
		starts  int
		dones   []error
		inverts int
	)
	t1 := &LinkedList{
		OnPushNode: func(info LinkedListPushNodeInfo) {
			pushes = append(pushes, info.Size)
		},
		OnMove: func(info LinkedListMoveStartInfo) func(LinkedListMoveDoneInfo) {
			starts++

			return func(info LinkedListMoveDoneInfo) {
				dones = append(dones, info.Error)
			}
		},
	}
	t2 := &LinkedList{
		OnPushNode: func(info LinkedListPushNodeInfo) {
			pushes = append(pushes, -info.Size)
		},
		OnMove: func(info LinkedListMoveStartInfo) func(LinkedListMoveDoneInfo) {
			starts++

			return nil
		},
		OnInvert: func(info LinkedListInvertInfo) {
			inverts++
		},
	}

	composed := t1.Compose(t2)

	LinkedListOnPushNode(composed, 3)
	require.Equal(t, []int{3, -3}, pushes)

	testErr := errors.New("test")
	done := LinkedListOnMove(composed, 0, 1, 2)
	done(3, testErr)
	require.Equal(t, 2, starts)
	require.Equal(t, []error{testErr}, dones)

	LinkedListOnInvert(composed, 5)
	require.Equal(t, 1, inverts)

	// remove hook is unset on both sides
	require.Nil(t, composed.OnRemoveNode)
	LinkedListOnRemoveNode(composed, 1)
}

func TestLinkedListShortcutsOnNil(t *testing.T) {
	require.NotPanics(t, func() {
		LinkedListOnPushNode(nil, 1)
		LinkedListOnRemoveNode(nil, 1)
		LinkedListOnInvert(nil, 1)
		LinkedListOnMove(nil, 0, 0, 0)(0, nil)
		LinkedListOnClear(nil, 0)(0)
	})
}
