package xtest

import (
	"context"
	"runtime/pprof"
	"testing"
)

// Context returns a context cancelled on test finish, labelled with the
// test name for profiling.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = pprof.WithLabels(ctx, pprof.Labels("test", t.Name()))
	pprof.SetGoroutineLabels(ctx)

	t.Cleanup(func() {
		pprof.SetGoroutineLabels(ctx)
		cancel()
	})

	return ctx
}
