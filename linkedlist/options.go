package linkedlist

import (
	"github.com/raulgarciaph/jgrapht/trace"
)

type Option[T any] func(l *List[T])

// WithTrace appends t to the hooks fired on structural mutation of the
// list.
func WithTrace[T any](t trace.LinkedList) Option[T] {
	return func(l *List[T]) {
		l.trace = l.trace.Compose(&t)
	}
}
