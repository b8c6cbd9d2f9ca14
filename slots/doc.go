/*
Package slots provides the extension-slot registry of grove: a
fixed-capacity, key-indexed store which lets independent subsystems attach
data to opaque owner handles without changing the owners' layout.

A subsystem registers a key once and then reads and writes values under
(owner, key) pairs. Two variants share one design: Registry scopes values
to arbitrary comparable owner handles, ThreadRegistry scopes them to the
calling thread's identity, resolved through an injected Identity
collaborator.

This registry is the one structure in grove that is concurrency-safe by
default. Every key slot carries its own guard, so concurrent access to
distinct keys never contends and access to the same key is serialized
internally. Destructors are never invoked while a per-key guard is held.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package slots
