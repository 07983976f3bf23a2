package log

import (
	"context"
	"time"

	"github.com/raulgarciaph/jgrapht/trace"
)

// LinkedList makes trace.LinkedList with logging events from details
func LinkedList(l Logger) trace.LinkedList {
	return trace.LinkedList{
		OnPushNode: func(info trace.LinkedListPushNodeInfo) {
			ctx := with(context.Background(), TRACE, "jgrapht", "linkedlist", "push")
			l.Log(ctx, "node linked",
				Int("size", info.Size),
			)
		},
		OnRemoveNode: func(info trace.LinkedListRemoveNodeInfo) {
			ctx := with(context.Background(), TRACE, "jgrapht", "linkedlist", "remove")
			l.Log(ctx, "node unlinked",
				Int("size", info.Size),
			)
		},
		OnMove: func(info trace.LinkedListMoveStartInfo) func(trace.LinkedListMoveDoneInfo) {
			ctx := with(context.Background(), DEBUG, "jgrapht", "linkedlist", "move")
			index := info.Index
			moved := info.Moved
			l.Log(ctx, "move starting...",
				Int("index", index),
				Int("moved", moved),
				Int("size", info.Size),
			)
			start := time.Now()

			return func(info trace.LinkedListMoveDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "move done",
						Int("index", index),
						Int("moved", moved),
						Int("size", info.Size),
						Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "move failed",
						Error(info.Error),
						Int("index", index),
						Int("moved", moved),
						Latency(start),
					)
				}
			}
		},
		OnInvert: func(info trace.LinkedListInvertInfo) {
			ctx := with(context.Background(), DEBUG, "jgrapht", "linkedlist", "invert")
			l.Log(ctx, "list inverted",
				Int("size", info.Size),
			)
		},
		OnClear: func(info trace.LinkedListClearStartInfo) func(trace.LinkedListClearDoneInfo) {
			ctx := with(context.Background(), DEBUG, "jgrapht", "linkedlist", "clear")
			l.Log(ctx, "clear starting...",
				Int("size", info.Size),
			)
			start := time.Now()

			return func(info trace.LinkedListClearDoneInfo) {
				l.Log(ctx, "clear done",
					Int("removed", info.Removed),
					Latency(start),
				)
			}
		},
	}
}
