package plugincontainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
)

// ErrFacetLockTimeout is returned when a facet lock is not acquired in time.
var ErrFacetLockTimeout = errors.New("timed out acquiring facet lock")

// maxReaders bounds concurrent READ holders. A WRITE takes every slot.
const maxReaders = 1 << 10

// facetLock is a read/write lock whose acquisition can time out. Waiters
// are served in order, so a pending writer holds back later readers.
type facetLock struct {
	sem *semaphore.Weighted
}

func newFacetLock() *facetLock {
	return &facetLock{sem: semaphore.NewWeighted(maxReaders)}
}

func weight(t pluginapi.FacetLockType) int64 {
	switch t {
	case pluginapi.FacetLockTypeWrite:
		return maxReaders
	case pluginapi.FacetLockTypeRead:
		return 1
	default:
		return 0
	}
}

// acquire takes the lock for t, waiting at most timeout. The returned
// function releases it.
func (l *facetLock) acquire(ctx context.Context, t pluginapi.FacetLockType, timeout time.Duration) (func(), error) {
	w := weight(t)
	if w == 0 {
		return func() {}, nil
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := l.sem.Acquire(ctx, w); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s lock after %s", ErrFacetLockTimeout, t, timeout)
		}
		return nil, err
	}
	return func() { l.sem.Release(w) }, nil
}
