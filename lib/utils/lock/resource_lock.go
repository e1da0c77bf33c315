package lock

import (
	"context"
	"sync"
	"sync/atomic"
)

// Resource serializes long running jobs (bulk user load, archiving) so only
// one of them touches the database and the object storage at a time.
var Resource = newResourceLock()

func InitResourceLock(ctx context.Context) {
	Resource = newResourceLock()

	go func() {
		<-ctx.Done()
		Resource.Stop()
	}()
}

type ResourceLock struct {
	mu        sync.Mutex
	cond      *sync.Cond
	holder    string
	waitCount int32
	stopped   bool
}

func newResourceLock() *ResourceLock {
	lock := &ResourceLock{}
	lock.cond = sync.NewCond(&lock.mu)
	return lock
}

// Acquire blocks until the resource is free. It returns false when the lock
// was stopped or ctx was already done.
func (c *ResourceLock) Acquire(ctx context.Context, jobName string) bool {
	atomic.AddInt32(&c.waitCount, 1)
	defer atomic.AddInt32(&c.waitCount, -1)

	c.mu.Lock()
	defer c.mu.Unlock()

	for c.holder != "" && !c.stopped {
		if ctx.Err() != nil {
			return false
		}
		c.cond.Wait()
	}
	if c.stopped || ctx.Err() != nil {
		return false
	}
	c.holder = jobName
	return true
}

func (c *ResourceLock) Release(jobName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.holder == jobName {
		c.holder = ""
		c.cond.Broadcast()
	}
}

func (c *ResourceLock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	c.cond.Broadcast()
}

func (c *ResourceLock) Holder() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holder
}

func (c *ResourceLock) WaitCount() int {
	return int(atomic.LoadInt32(&c.waitCount))
}
