/*
Package grove provides the foundational in-process collection types for an
object/runtime platform: a balanced ordered tree, a doubly linked list, and
a concurrent extension-slot registry.

Iteration

All collections in this module hand out their elements through one shared
iteration contract, Iter. Platform code is expected to consume collections
uniformly through this contract, never through collection internals:

	it := tree.Iter()
	defer it.Release()
	for it.HasNext() {
		v, err := it.Next()
		…
	}

Iterators are stateful, single-use and not restartable. An iterator may hold
resources allocated by the producing collection (the ordered tree's cursor
keeps an explicit traversal stack, for example), which is why Release is
part of the contract and has to be called exactly once, whether the walk
completed or was abandoned early.

Collections

Sub-package rbtree implements a self-balancing ordered tree keyed by a
caller-supplied comparator, with stateful traversal cursors that detect
structural modification of their tree. Sub-package dlist implements a
doubly linked sequence with positional editing at a cursor. Sub-package
slots implements a fixed-capacity, key-indexed extension store which lets
independent subsystems attach per-object and per-thread data to opaque
handles without changing the handles' layout.

Neither tree nor list synchronize internally; concurrent mutation requires
an external lock held by the embedding system. The slot registry is the one
structure in this module that is safe for concurrent use by default.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package grove

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
