/*
Package dlist provides the linked list engine of grove: a doubly linked
sequence with O(1) appends and positional editing at a cursor.

Unlike the ordered tree, list traversal deliberately tolerates one kind of
structural change: removing the element at the current cursor position
(List.RemoveAt) repositions the walk onto the next live element, so
consumers may delete while iterating. Any other concurrent mutation is the
embedding system's responsibility to lock, exactly as with the tree.

Payload ownership is configured per list instance: a list constructed with
a Dispose callback owns its payloads and runs the callback when elements
are removed or the list is destroyed; without a callback payloads are
borrowed and the caller keeps responsibility for their lifetime.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dlist
