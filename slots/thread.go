package slots

import (
	"fmt"

	"github.com/npillmayer/grove"
)

// Identity resolves the calling thread to a stable small integer, bounded
// by a configured maximum concurrent-thread count. Implementations fail
// with ErrCapacityExceeded once that bound is reached.
//
// Go deliberately hides goroutine identity, so identity resolution is an
// injected collaborator rather than a built-in: OSThreadIdentity (Linux)
// resolves the OS thread of a pinned goroutine, and embedders which manage
// their own workers can supply any scheme through IdentityFunc.
type Identity interface {
	ThreadID() (int, error)
}

// IdentityFunc adapts a plain function to the Identity interface.
type IdentityFunc func() (int, error)

// ThreadID calls f.
func (f IdentityFunc) ThreadID() (int, error) {
	return f()
}

// StaticIdentity returns an Identity resolving every caller to the same
// id, sufficient for single-threaded embeddings and tests.
func StaticIdentity(id int) Identity {
	return IdentityFunc(func() (int, error) {
		return id, nil
	})
}

// ThreadRegistry is the thread-scoped registry variant: values are stored
// per (calling thread, key) instead of per (owner handle, key). Operations
// return errors where identity resolution can fail; apart from that the
// contract matches Registry.
type ThreadRegistry[V any] struct {
	ids Identity
	reg *Registry[int, V]
}

// NewThreadRegistry creates a thread-scoped registry with room for
// capacity keys, resolving callers through ids.
func NewThreadRegistry[V any](ids Identity, capacity int) (*ThreadRegistry[V], error) {
	if ids == nil {
		return nil, fmt.Errorf("%w: identity provider is required", grove.ErrInvalidArgument)
	}
	reg, err := NewRegistry[int, V](capacity)
	if err != nil {
		return nil, err
	}
	return &ThreadRegistry[V]{ids: ids, reg: reg}, nil
}

// Cap returns the configured maximum key count.
func (r *ThreadRegistry[V]) Cap() int {
	return r.reg.Cap()
}

// RegisterKey allocates a fresh key with an optional destructor.
func (r *ThreadRegistry[V]) RegisterKey(dispose func(V)) (Key, error) {
	return r.reg.RegisterKey(dispose)
}

// Get returns the calling thread's value under key, or the zero value when
// unset.
func (r *ThreadRegistry[V]) Get(key Key) (V, error) {
	id, err := r.ids.ThreadID()
	if err != nil {
		var none V
		return none, err
	}
	return r.reg.Get(id, key), nil
}

// Set stores or overwrites the calling thread's value under key.
func (r *ThreadRegistry[V]) Set(key Key, value V) error {
	id, err := r.ids.ThreadID()
	if err != nil {
		return err
	}
	return r.reg.Set(id, key, value)
}

// Delete drops the calling thread's value under key, invoking the key's
// destructor for it.
func (r *ThreadRegistry[V]) Delete(key Key) error {
	id, err := r.ids.ThreadID()
	if err != nil {
		return err
	}
	return r.reg.Delete(id, key)
}

// UnregisterKey retires a key, invoking its destructor for every thread
// still holding a value under it.
func (r *ThreadRegistry[V]) UnregisterKey(key Key) error {
	return r.reg.UnregisterKey(key)
}

// Destroy retires every live key.
func (r *ThreadRegistry[V]) Destroy() {
	r.reg.Destroy()
}
