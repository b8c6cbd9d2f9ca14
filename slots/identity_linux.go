//go:build linux

package slots

import (
	"fmt"
	"sync"

	"github.com/npillmayer/grove"
	"golang.org/x/sys/unix"
)

// OSThreadIdentity resolves callers through their OS thread id, mapping
// each distinct thread to a stable small integer. Callers must pin their
// goroutine with runtime.LockOSThread for the id to stay meaningful across
// calls.
//
// The mapping is bounded: once maxThreads distinct threads have been seen,
// further threads fail with ErrCapacityExceeded. Thread ids are never
// recycled by this provider.
type OSThreadIdentity struct {
	mu    sync.Mutex
	ids   map[int]int // OS tid -> small stable id
	limit int
}

// NewOSThreadIdentity creates a provider bounded by maxThreads.
func NewOSThreadIdentity(maxThreads int) (*OSThreadIdentity, error) {
	if maxThreads < 1 {
		return nil, fmt.Errorf("%w: thread bound must be positive", grove.ErrInvalidArgument)
	}
	return &OSThreadIdentity{
		ids:   make(map[int]int),
		limit: maxThreads,
	}, nil
}

// ThreadID returns the stable small id of the calling OS thread.
func (p *OSThreadIdentity) ThreadID() (int, error) {
	tid := unix.Gettid()
	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.ids[tid]; ok {
		return id, nil
	}
	if len(p.ids) >= p.limit {
		return 0, fmt.Errorf("%w: more than %d concurrent threads", grove.ErrCapacityExceeded, p.limit)
	}
	id := len(p.ids)
	p.ids[tid] = id
	return id, nil
}
