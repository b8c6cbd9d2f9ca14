package rbtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/grove"
)

func seededTree(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree := intTree(t, RejectDuplicates)
	for _, k := range keys {
		if err := tree.Insert(k, "v"); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}
	return tree
}

func TestCursorForwardTraversal(t *testing.T) {
	tree := seededTree(t, 5, 3, 8, 1, 4, 7, 9)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	want := []int{1, 3, 4, 5, 7, 8, 9}
	for i, expected := range want {
		k, _, err := cursor.Next()
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if k != expected {
			t.Fatalf("step %d: expected key %d, got %d", i, expected, k)
		}
	}
	if _, _, err := cursor.Next(); !errors.Is(err, grove.ErrNotFound) {
		t.Fatalf("expected ErrNotFound past the end, got %v", err)
	}
}

func TestCursorBackwardTraversal(t *testing.T) {
	tree := seededTree(t, 5, 3, 8, 1, 4, 7, 9)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	want := []int{9, 8, 7, 5, 4, 3, 1}
	for i, expected := range want {
		k, _, err := cursor.Prev()
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if k != expected {
			t.Fatalf("step %d: expected key %d, got %d", i, expected, k)
		}
	}
	if _, _, err := cursor.Prev(); !errors.Is(err, grove.ErrNotFound) {
		t.Fatalf("expected ErrNotFound past the start, got %v", err)
	}
}

func TestCursorDirectionSwitch(t *testing.T) {
	tree := seededTree(t, 1, 2, 3)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	if k, _, _ := cursor.Next(); k != 1 {
		t.Fatalf("expected 1, got %d", k)
	}
	if k, _, _ := cursor.Next(); k != 2 {
		t.Fatalf("expected 2, got %d", k)
	}
	if k, _, err := cursor.Prev(); err != nil || k != 1 {
		t.Fatalf("expected to step back to 1, got %d (%v)", k, err)
	}
	if k, _, err := cursor.Next(); err != nil || k != 2 {
		t.Fatalf("expected to step forward to 2 again, got %d (%v)", k, err)
	}
}

func TestCursorInvalidatedByInsert(t *testing.T) {
	tree := seededTree(t, 5, 3, 8)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	if err := tree.Insert(1, "v"); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if _, _, err := cursor.Next(); !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated, got %v", err)
	}
}

func TestCursorInvalidatedByReplacingInsert(t *testing.T) {
	tree, err := New[int, string](Config[int, string]{
		Compare:    grove.OrderedCompare[int](),
		Duplicates: ReplaceDuplicates,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Insert(1, "v"); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	if err := tree.Insert(1, "w"); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if _, _, err := cursor.Next(); !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated after replacement, got %v", err)
	}
}

func TestCursorInvalidatedByRemove(t *testing.T) {
	tree := seededTree(t, 5, 3, 8)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	if _, _, err := cursor.Next(); err != nil {
		t.Fatalf("unexpected step error: %v", err)
	}
	if err := tree.Remove(5); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if _, _, err := cursor.Next(); !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated, got %v", err)
	}
}

func TestCursorFindDoesNotInvalidate(t *testing.T) {
	tree := seededTree(t, 5, 3, 8)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	if _, ok := tree.Find(3); !ok {
		t.Fatalf("expected key 3 to be present")
	}
	if _, _, err := cursor.Next(); err != nil {
		t.Fatalf("find must not invalidate cursors, got %v", err)
	}
}

func TestCursorAfterRelease(t *testing.T) {
	tree := seededTree(t, 5)
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	cursor.Release()
	cursor.Release() // no-op
	if _, _, err := cursor.Next(); !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated after release, got %v", err)
	}
}

func TestCursorHeightLimitExceeded(t *testing.T) {
	tree, err := New[int, string](Config[int, string]{
		Compare:     grove.OrderedCompare[int](),
		Duplicates:  RejectDuplicates,
		HeightLimit: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := 0; k < 63; k++ {
		if err := tree.Insert(k, "v"); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}
	cursor, err := tree.Cursor()
	if err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	defer cursor.Release()
	for {
		_, _, err := cursor.Next()
		if err == nil {
			continue
		}
		if errors.Is(err, grove.ErrCapacityExceeded) {
			return // expected: stack bound enforced instead of overflow
		}
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestIterProtocol(t *testing.T) {
	tree := seededTree(t, 2, 1, 3)
	it := tree.Iter()
	if !it.HasNext() || !it.HasNext() {
		t.Fatalf("HasNext must be idempotent")
	}
	var got []string
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected iterator error: %v", err)
		}
		got = append(got, v)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 values, got %d", len(got))
	}
	if _, err := it.Next(); !errors.Is(err, grove.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on exhausted iterator, got %v", err)
	}
	it.Release()
}

func TestIterNextRefMutatesInPlace(t *testing.T) {
	tree := seededTree(t, 1, 2)
	it := tree.Iter()
	defer it.Release()
	for it.HasNext() {
		ref, err := it.NextRef()
		if err != nil {
			t.Fatalf("unexpected iterator error: %v", err)
		}
		*ref = "patched"
	}
	tree.Walk(func(k int, v string) bool {
		if v != "patched" {
			t.Fatalf("key %d not mutated in place, got %q", k, v)
		}
		return true
	})
}

func TestIterSurfacesInvalidation(t *testing.T) {
	tree := seededTree(t, 1, 2, 3)
	it := tree.Iter()
	defer it.Release()
	if _, err := it.Next(); err != nil {
		t.Fatalf("unexpected iterator error: %v", err)
	}
	if err := tree.Insert(4, "v"); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if !it.HasNext() {
		t.Fatalf("pending invalidation must surface through Next, not vanish")
	}
	if _, err := it.Next(); !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated, got %v", err)
	}
}

func TestIterRejectsPrimedValueAfterInsert(t *testing.T) {
	tree := seededTree(t, 1, 2, 3)
	it := tree.Iter()
	defer it.Release()
	if !it.HasNext() { // primes an element
		t.Fatalf("expected a first element")
	}
	if err := tree.Insert(4, "v"); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if _, err := it.Next(); !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated for the primed element, got %v", err)
	}
}

func TestIterRejectsPrimedRefAfterRemove(t *testing.T) {
	tree := seededTree(t, 1, 2, 3)
	it := tree.Iter()
	defer it.Release()
	if !it.HasNext() { // primes element 1 and its value-slot address
		t.Fatalf("expected a first element")
	}
	if err := tree.Remove(1); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	ref, err := it.NextRef()
	if !errors.Is(err, grove.ErrIteratorInvalidated) {
		t.Fatalf("expected ErrIteratorInvalidated for the primed element, got %v", err)
	}
	if ref != nil {
		t.Fatalf("expected no address into an unlinked node, got %p", ref)
	}
}

func TestWalkHelperOverTreeIter(t *testing.T) {
	tree := seededTree(t, 5, 3, 8, 1)
	count := 0
	err := grove.Walk(tree.Iter(), func(string) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 visits, got %d", count)
	}
}
