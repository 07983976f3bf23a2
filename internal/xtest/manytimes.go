package xtest

import (
	"sync"
	"testing"
	"time"
)

type TestFunc func(t testing.TB)

// TestManyTimes runs test in a loop for about a second. It is used for
// tests whose failure depends on scheduling, to give them many chances to
// catch a broken interleaving within one run.
func TestManyTimes(t testing.TB, test TestFunc) {
	t.Helper()

	const testTimeout = time.Second

	start := time.Now()
	for {
		// run test, then check timeout for guarantee run test least once
		runTest(t, test)

		if time.Since(start) > testTimeout {
			return
		}
	}
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

// testWrapper intercepts Cleanup calls so cleanups run after every loop
// iteration instead of once at the end of the whole test.
type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
