package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	lockMap sync.Map

	ErrTimeout = errors.New("resource is busy, try again later")
)

// WithDelay runs safeCode while holding the key lock. It waits up to wait for
// the lock and returns ErrTimeout when the key stays taken.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return ErrTimeout
		case <-ctx.Done():
			return ctx.Err()
		default:
			time.Sleep(20 * time.Millisecond)
		}
	}
	defer lockMap.Delete(key)
	return safeCode()
}
