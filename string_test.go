// SPDX-License-Identifier: Apache-2.0

package stringpool

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringZeroValue(t *testing.T) {
	var s String
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())
	require.Equal(t, "", s.String())
	require.Equal(t, "", s.Clone())

	b := s.Bytes()
	require.Len(t, b, 0)
	// The view is backed by a terminator even without arena storage.
	require.Equal(t, 1, cap(b))
	require.Equal(t, byte(0), b[:1][0])
}

func TestStringEmptyAllocated(t *testing.T) {
	pool := New()
	s, err := pool.AllocString("")
	require.NoError(t, err)
	require.True(t, s.IsEmpty())
	require.Equal(t, "", s.Clone())

	var zero String
	require.True(t, s.Equal(zero))
}

func TestBytesViewIsTerminated(t *testing.T) {
	pool := New()
	s, err := pool.AllocString("hello")
	require.NoError(t, err)

	b := s.Bytes()
	require.Equal(t, []byte("hello"), b)
	require.Equal(t, len(b)+1, cap(b))
	require.Equal(t, byte(0), b[:cap(b)][len(b)])
}

func TestCompareMatchesGoStrings(t *testing.T) {
	pool := New()

	pairs := [][2]string{
		{"", ""},
		{"", "a"},
		{"a", "a"},
		{"a", "b"},
		{"abc", "abd"},
		{"abc", "abcd"}, // shorter is less on shared prefix
		{"Apple", "apple"},
		{"banana", "Banana"},
	}
	for _, p := range pairs {
		a, err := pool.AllocString(p[0])
		require.NoError(t, err)
		b, err := pool.AllocString(p[1])
		require.NoError(t, err)

		want := strings.Compare(p[0], p[1])
		require.Equal(t, want, a.Compare(b), "Compare(%q, %q)", p[0], p[1])
		require.Equal(t, -want, b.Compare(a), "Compare(%q, %q)", p[1], p[0])
		require.Equal(t, want == 0, a.Equal(b))
		require.Equal(t, want < 0, a.Less(b))
	}
}

func TestSortMatchesOwnedStrings(t *testing.T) {
	pool := New()

	words := []string{"banana", "Apple", "apple", "Banana"}
	handles := make([]String, 0, len(words))
	for _, w := range words {
		s, err := pool.AllocString(w)
		require.NoError(t, err)
		handles = append(handles, s)
	}

	owned := slices.Clone(words)
	slices.Sort(owned)
	slices.SortFunc(handles, String.Compare)

	for i, s := range handles {
		require.Equal(t, owned[i], s.Clone())
	}
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	pool := New()
	h, err := pool.AllocString("payload")
	require.NoError(t, err)

	h2 := h.Move()
	require.True(t, h.IsEmpty())
	require.Equal(t, "payload", h2.Clone())

	// The moved-from handle stays safely usable as an empty string.
	require.Equal(t, "", h.Clone())
	require.Equal(t, -1, h.Compare(h2))
	require.Len(t, h.Bytes(), 0)
}

func TestCopyIsValueSemantic(t *testing.T) {
	pool := New()
	a, err := pool.AllocString("shared")
	require.NoError(t, err)

	b := a
	require.True(t, a.Equal(b))
	require.Equal(t, a.Clone(), b.Clone())

	// Moving out of the copy does not disturb the original.
	_ = b.Move()
	require.Equal(t, "shared", a.Clone())
}

func TestCloneOutlivesReset(t *testing.T) {
	pool := New()
	s, err := pool.AllocString("survivor")
	require.NoError(t, err)

	owned := s.Clone()
	pool.Reset()
	require.Equal(t, "survivor", owned)
}

func BenchmarkStringCompare(b *testing.B) {
	pool := New()
	x, _ := pool.AllocString(strings.Repeat("c", 64))
	y, _ := pool.AllocString(strings.Repeat("c", 63) + "d")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Compare(y)
	}
}
