package linkedlist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/raulgarciaph/jgrapht/internal/xtest"
)

// A list is not safe for concurrent use on its own. These tests pin down
// that a single external mutex is enough to share one across goroutines.

func TestConcurrentPushUnderMutex(t *testing.T) {
	xtest.TestManyTimes(t, func(t testing.TB) {
		const (
			writers         = 8
			pushesPerWriter = 50
		)

		var (
			mu sync.Mutex
			l  = New[int]()
		)

		g, _ := errgroup.WithContext(xtest.Context(t))
		for w := 0; w < writers; w++ {
			w := w
			g.Go(func() error {
				for i := 0; i < pushesPerWriter; i++ {
					mu.Lock()
					l.PushBack(w)
					mu.Unlock()
				}

				return nil
			})
		}
		require.NoError(t, g.Wait())
		require.Equal(t, writers*pushesPerWriter, l.Size())

		counts := make(map[int]int)
		for _, v := range l.Values() {
			counts[v]++
		}
		for w := 0; w < writers; w++ {
			require.Equal(t, pushesPerWriter, counts[w])
		}
	})
}

func TestConcurrentProducerConsumer(t *testing.T) {
	xtest.TestManyTimes(t, func(t testing.TB) {
		const items = 200

		var (
			mu sync.Mutex
			l  = New[int]()
		)

		g, _ := errgroup.WithContext(xtest.Context(t))
		g.Go(func() error {
			for i := 0; i < items; i++ {
				mu.Lock()
				l.Offer(i)
				mu.Unlock()
			}

			return nil
		})

		consumed := 0
		g.Go(func() error {
			prev := -1
			for consumed < items {
				mu.Lock()
				v, ok := l.Poll()
				mu.Unlock()
				if !ok {
					continue
				}
				if v != prev+1 {
					t.Errorf("polled %d after %d", v, prev)
				}
				prev = v
				consumed++
			}

			return nil
		})

		require.NoError(t, g.Wait())
		require.True(t, l.IsEmpty())
		require.Equal(t, items, consumed)
	})
}
