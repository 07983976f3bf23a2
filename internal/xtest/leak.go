package xtest

import (
	"go.uber.org/goleak"
)

// FindGoroutinesLeak reports goroutines left running by the calling test.
func FindGoroutinesLeak(ignoreTopFunctions ...string) error {
	opts := make([]goleak.Option, 0, len(ignoreTopFunctions))
	for _, f := range ignoreTopFunctions {
		opts = append(opts, goleak.IgnoreTopFunction(f))
	}

	return goleak.Find(opts...)
}
