package trace

type (
	// LinkedList is a set of hooks fired by a linked list on structural
	// mutation. Every hook is optional. Hooks must not mutate the list
	// they observe.
	LinkedList struct {
		OnPushNode   func(LinkedListPushNodeInfo)
		OnRemoveNode func(LinkedListRemoveNodeInfo)
		OnMove       func(LinkedListMoveStartInfo) func(LinkedListMoveDoneInfo)
		OnInvert     func(LinkedListInvertInfo)
		OnClear      func(LinkedListClearStartInfo) func(LinkedListClearDoneInfo)
	}
	LinkedListPushNodeInfo struct {
		// Size is the list size after the node was linked in.
		Size int
	}
	LinkedListRemoveNodeInfo struct {
		// Size is the list size after the node was unlinked.
		Size int
	}
	LinkedListMoveStartInfo struct {
		// Index is the destination position of the transplanted run.
		Index int
		// Size is the destination list size before the transplant.
		Size int
		// Moved is the source list size.
		Moved int
	}
	LinkedListMoveDoneInfo struct {
		// Size is the destination list size after the transplant.
		Size  int
		Error error
	}
	LinkedListInvertInfo struct {
		Size int
	}
	LinkedListClearStartInfo struct {
		Size int
	}
	LinkedListClearDoneInfo struct {
		Removed int
	}
)

// Compose returns a new LinkedList which has methods set to both t and x
// hooks.
func (t *LinkedList) Compose(x *LinkedList) *LinkedList {
	ret := &LinkedList{}
	{
		h1 := t.OnPushNode
		h2 := x.OnPushNode
		ret.OnPushNode = composeSimpleHook(h1, h2)
	}
	{
		h1 := t.OnRemoveNode
		h2 := x.OnRemoveNode
		ret.OnRemoveNode = composeSimpleHook(h1, h2)
	}
	{
		h1 := t.OnMove
		h2 := x.OnMove
		ret.OnMove = composeStartDoneHook(h1, h2)
	}
	{
		h1 := t.OnInvert
		h2 := x.OnInvert
		ret.OnInvert = composeSimpleHook(h1, h2)
	}
	{
		h1 := t.OnClear
		h2 := x.OnClear
		ret.OnClear = composeStartDoneHook(h1, h2)
	}

	return ret
}

func composeSimpleHook[Info any](h1, h2 func(Info)) func(Info) {
	switch {
	case h1 == nil:
		return h2
	case h2 == nil:
		return h1
	default:
		return func(info Info) {
			h1(info)
			h2(info)
		}
	}
}

func composeStartDoneHook[Start, Done any](
	h1, h2 func(Start) func(Done),
) func(Start) func(Done) {
	switch {
	case h1 == nil:
		return h2
	case h2 == nil:
		return h1
	default:
		return func(info Start) func(Done) {
			d1 := h1(info)
			d2 := h2(info)
			switch {
			case d1 == nil:
				return d2
			case d2 == nil:
				return d1
			default:
				return func(info Done) {
					d1(info)
					d2(info)
				}
			}
		}
	}
}

func LinkedListOnPushNode(t *LinkedList, size int) {
	if t == nil || t.OnPushNode == nil {
		return
	}
	t.OnPushNode(LinkedListPushNodeInfo{Size: size})
}

func LinkedListOnRemoveNode(t *LinkedList, size int) {
	if t == nil || t.OnRemoveNode == nil {
		return
	}
	t.OnRemoveNode(LinkedListRemoveNodeInfo{Size: size})
}

func LinkedListOnMove(t *LinkedList, index, size, moved int) func(size int, err error) {
	var onDone func(LinkedListMoveDoneInfo)
	if t != nil && t.OnMove != nil {
		onDone = t.OnMove(LinkedListMoveStartInfo{
			Index: index,
			Size:  size,
			Moved: moved,
		})
	}
	if onDone == nil {
		onDone = func(LinkedListMoveDoneInfo) {}
	}

	return func(size int, err error) {
		onDone(LinkedListMoveDoneInfo{
			Size:  size,
			Error: err,
		})
	}
}

func LinkedListOnInvert(t *LinkedList, size int) {
	if t == nil || t.OnInvert == nil {
		return
	}
	t.OnInvert(LinkedListInvertInfo{Size: size})
}

func LinkedListOnClear(t *LinkedList, size int) func(removed int) {
	var onDone func(LinkedListClearDoneInfo)
	if t != nil && t.OnClear != nil {
		onDone = t.OnClear(LinkedListClearStartInfo{Size: size})
	}
	if onDone == nil {
		onDone = func(LinkedListClearDoneInfo) {}
	}

	return func(removed int) {
		onDone(LinkedListClearDoneInfo{Removed: removed})
	}
}
