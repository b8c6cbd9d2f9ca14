package dlist

import (
	"testing"

	"github.com/npillmayer/grove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, l *List[T]) []T {
	t.Helper()
	var out []T
	it := l.Iter()
	defer it.Release()
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	l := New(Config[int]{})
	for _, v := range []int{1, 2, 3} {
		l.Append(v)
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, drain(t, l))
}

func TestPrependYieldsMostRecentFirst(t *testing.T) {
	l := New(Config[int]{})
	for _, v := range []int{1, 2, 3} {
		l.Prepend(v)
	}
	assert.Equal(t, []int{3, 2, 1}, drain(t, l))
}

func TestFirstLastTakeFirst(t *testing.T) {
	disposed := 0
	l := New(Config[string]{Dispose: func(string) { disposed++ }})
	_, ok := l.First()
	assert.False(t, ok)
	l.Append("a")
	l.Append("b")
	v, ok := l.First()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = l.Last()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = l.TakeFirst()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, l.Len())
	assert.Zero(t, disposed, "TakeFirst transfers ownership, no dispose")
}

func TestFindAndRemove(t *testing.T) {
	l := New(Config[int]{})
	for _, v := range []int{10, 20, 30} {
		l.Append(v)
	}
	eq := func(a, b int) bool { return a == b }

	_, err := l.Find(20, nil)
	assert.ErrorIs(t, err, grove.ErrInvalidArgument)

	v, err := l.Find(20, eq)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = l.Find(99, eq)
	assert.ErrorIs(t, err, grove.ErrNotFound)

	require.NoError(t, l.Remove(20, eq))
	assert.Equal(t, []int{10, 30}, drain(t, l))
	assert.ErrorIs(t, l.Remove(20, eq), grove.ErrNotFound)
	assert.ErrorIs(t, l.Remove(10, nil), grove.ErrInvalidArgument)
}

func TestRemoveDisposesOwnedPayload(t *testing.T) {
	var disposed []string
	l := New(Config[string]{Dispose: func(s string) { disposed = append(disposed, s) }})
	l.Append("a")
	l.Append("b")
	eq := func(a, b string) bool { return a == b }
	require.NoError(t, l.Remove("a", eq))
	assert.Equal(t, []string{"a"}, disposed)
}

func TestSortStable(t *testing.T) {
	type pair struct {
		key int
		tag string
	}
	l := New(Config[pair]{})
	for _, p := range []pair{{2, "a"}, {1, "a"}, {2, "b"}, {1, "b"}} {
		l.Append(p)
	}
	assert.ErrorIs(t, l.Sort(nil), grove.ErrInvalidArgument)
	require.NoError(t, l.Sort(func(a, b pair) int { return a.key - b.key }))
	assert.Equal(t,
		[]pair{{1, "a"}, {1, "b"}, {2, "a"}, {2, "b"}},
		drain(t, l),
		"equal keys must keep their relative order")
}

func TestDestroyDisposesAll(t *testing.T) {
	disposed := 0
	l := New(Config[int]{Dispose: func(int) { disposed++ }})
	for v := 0; v < 5; v++ {
		l.Append(v)
	}
	l.Destroy()
	assert.Equal(t, 5, disposed)
	assert.Zero(t, l.Len())
}
