package slots

import (
	"fmt"
	"sync"

	"github.com/npillmayer/grove"
)

// Key identifies one registered extension slot within a registry.
type Key int

// slot is one registry entry: a destructor plus the mapping from owner
// identity to stored value. Each slot is guarded independently so access to
// distinct keys never contends.
type slot[O comparable, V any] struct {
	mu      sync.Mutex
	live    bool
	owners  map[O]V
	dispose func(V)
}

// Registry is a fixed-capacity, key-indexed extension store scoped to
// arbitrary comparable owner handles. Registries are explicitly constructed
// and destroyed; tests can create and tear down independent instances
// without cross-test leakage.
//
// All operations are safe for concurrent use without caller-side locking.
type Registry[O comparable, V any] struct {
	mu    sync.Mutex // guards key allocation state
	used  *bitset
	slots []slot[O, V]
}

// NewRegistry creates a registry with room for capacity keys.
func NewRegistry[O comparable, V any](capacity int) (*Registry[O, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: registry capacity must be positive", grove.ErrInvalidArgument)
	}
	return &Registry[O, V]{
		used:  newBitset(capacity),
		slots: make([]slot[O, V], capacity),
	}, nil
}

// Cap returns the configured maximum key count.
func (r *Registry[O, V]) Cap() int {
	return len(r.slots)
}

// RegisterKey allocates a fresh key with an optional destructor, which will
// be invoked exactly once per (key, owner) pair at unregistration or
// registry teardown. It fails with ErrCapacityExceeded once the configured
// maximum key count is reached.
func (r *Registry[O, V]) RegisterKey(dispose func(V)) (Key, error) {
	r.mu.Lock()
	idx, ok := r.used.firstClear()
	if !ok {
		r.mu.Unlock()
		return 0, fmt.Errorf("%w: all %d registry keys in use", grove.ErrCapacityExceeded, len(r.slots))
	}
	r.used.set(idx)
	r.mu.Unlock()

	s := &r.slots[idx]
	s.mu.Lock()
	s.live = true
	s.owners = make(map[O]V)
	s.dispose = dispose
	s.mu.Unlock()
	return Key(idx), nil
}

// Get returns the value stored for owner under key, or the zero value when
// unset. Get never fails; an unknown key reads as unset.
func (r *Registry[O, V]) Get(owner O, key Key) V {
	var none V
	s := r.slot(key)
	if s == nil {
		return none
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live {
		return none
	}
	return s.owners[owner]
}

// Set stores or overwrites the value for owner under key. It fails with
// ErrInvalidArgument for an unknown or retired key.
func (r *Registry[O, V]) Set(owner O, key Key, value V) error {
	s := r.slot(key)
	if s == nil {
		return fmt.Errorf("%w: unknown registry key %d", grove.ErrInvalidArgument, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live {
		return fmt.Errorf("%w: unknown registry key %d", grove.ErrInvalidArgument, key)
	}
	s.owners[owner] = value
	return nil
}

// Delete drops the owner's mapping under key, invoking the key's destructor
// for the dropped value. It fails with ErrInvalidArgument for an unknown
// key and with ErrNotFound when the owner holds no value under it.
func (r *Registry[O, V]) Delete(owner O, key Key) error {
	s := r.slot(key)
	if s == nil {
		return fmt.Errorf("%w: unknown registry key %d", grove.ErrInvalidArgument, key)
	}
	s.mu.Lock()
	if !s.live {
		s.mu.Unlock()
		return fmt.Errorf("%w: unknown registry key %d", grove.ErrInvalidArgument, key)
	}
	value, ok := s.owners[owner]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: no value for owner under key %d", grove.ErrNotFound, key)
	}
	delete(s.owners, owner)
	dispose := s.dispose
	s.mu.Unlock()

	// destructors run outside the per-key guard
	if dispose != nil {
		dispose(value)
	}
	return nil
}

// UnregisterKey retires a key: the registered destructor is invoked for
// every owner still holding a value under it, then the key id is freed for
// reuse. It fails with ErrInvalidArgument for an unknown key.
func (r *Registry[O, V]) UnregisterKey(key Key) error {
	s := r.slot(key)
	if s == nil {
		return fmt.Errorf("%w: unknown registry key %d", grove.ErrInvalidArgument, key)
	}
	s.mu.Lock()
	if !s.live {
		s.mu.Unlock()
		return fmt.Errorf("%w: unknown registry key %d", grove.ErrInvalidArgument, key)
	}
	orphans := s.owners
	dispose := s.dispose
	s.live = false
	s.owners = nil
	s.dispose = nil
	s.mu.Unlock()

	r.mu.Lock()
	r.used.clear(int(key))
	r.mu.Unlock()

	if dispose != nil {
		for _, value := range orphans {
			dispose(value)
		}
	}
	return nil
}

// Destroy retires every live key, invoking destructors for all remaining
// values. The registry must not be used afterwards.
func (r *Registry[O, V]) Destroy() {
	for idx := range r.slots {
		r.mu.Lock()
		live := r.used.test(idx)
		r.mu.Unlock()
		if live {
			if err := r.UnregisterKey(Key(idx)); err != nil {
				grove.T().Errorf("registry teardown: %s", err.Error())
			}
		}
	}
}

func (r *Registry[O, V]) slot(key Key) *slot[O, V] {
	if key < 0 || int(key) >= len(r.slots) {
		return nil
	}
	return &r.slots[key]
}
