package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run("serializes the same key", func(t *testing.T) {
		var inside, maxInside int32
		wg := sync.WaitGroup{}
		errs := make(chan error, 5)
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := WithDelay(context.Background(), "group-E", 5*time.Second, func() error {
					cur := atomic.AddInt32(&inside, 1)
					if cur > atomic.LoadInt32(&maxInside) {
						atomic.StoreInt32(&maxInside, cur)
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					return nil
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		require.EqualValues(t, 1, maxInside)
	})
	t.Run("times out on a taken key", func(t *testing.T) {
		lockMap.Store("busy", true)
		defer lockMap.Delete("busy")
		called := false
		err := WithDelay(context.Background(), "busy", 50*time.Millisecond, func() error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, ErrTimeout)
		require.False(t, called)
	})
	t.Run("returns the error of the guarded code", func(t *testing.T) {
		err := WithDelay(context.Background(), "key", time.Second, func() error {
			return context.Canceled
		})
		require.ErrorIs(t, err, context.Canceled)
		_, taken := lockMap.Load("key")
		require.False(t, taken)
	})
}

func TestResourceLock(t *testing.T) {
	l := newResourceLock()
	require.True(t, l.Acquire(context.Background(), "users-load"))
	require.Equal(t, "users-load", l.Holder())

	acquired := make(chan bool)
	go func() {
		acquired <- l.Acquire(context.Background(), "archive")
	}()
	require.Eventually(t, func() bool { return l.WaitCount() == 1 }, time.Second, 5*time.Millisecond)
	l.Release("users-load")
	require.True(t, <-acquired)
	require.Equal(t, "archive", l.Holder())

	l.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, l.Acquire(ctx, "users-load"))
}
