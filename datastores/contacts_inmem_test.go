package datastores

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, n int) (*ContactsInmem, []string) {
	t.Helper()
	s := NewContactsInmem()
	names := make([]string, n)
	for i := range n {
		names[i] = fmt.Sprintf("contact%02d", i)
		r, err := NewRecord(names[i], "")
		require.NoError(t, err)
		s.Put(r)
	}
	return s, names
}

func TestContactsInmemPages(t *testing.T) {
	for _, tt := range []struct{ n, size, pages int }{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{12, 3, 4},
		{7, 0, 2}, // default page size
	} {
		t.Run(fmt.Sprintf("%d by %d", tt.n, tt.size), func(t *testing.T) {
			s, names := newStore(t, tt.n)
			size := tt.size
			if size <= 0 {
				size = DefaultPageSize
			}

			var got []string
			pages := 0
			for page := range s.Pages(tt.size) {
				pages++
				if pages < tt.pages {
					assert.Len(t, page, size)
				} else {
					assert.LessOrEqual(t, len(page), size)
					assert.NotEmpty(t, page)
				}
				for _, r := range page {
					got = append(got, r.Name.Value)
				}
			}
			assert.Equal(t, tt.pages, pages)
			if diff := cmp.Diff(names, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("pages (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContactsInmemPagesRestartable(t *testing.T) {
	s, _ := newStore(t, 7)
	seq := s.Pages(5)

	count := func() (n int) {
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())

	for range seq {
		break // stopping early must not panic
	}
}

func TestContactsInmemPut(t *testing.T) {
	s, _ := newStore(t, 3)

	replacement, err := NewRecord("contact01", "2000-01-01")
	require.NoError(t, err)
	s.Put(replacement)

	assert.Equal(t, 3, s.Len())
	got, err := s.Get("contact01")
	require.NoError(t, err)
	assert.Same(t, replacement, got)
	assert.Same(t, replacement, s.List(1, 1)[0], "overwrite keeps the position")
}

func TestContactsInmemGet(t *testing.T) {
	s, _ := newStore(t, 1)

	_, err := s.Get("contact00")
	require.NoError(t, err)

	_, err = s.Get("nobody")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestContactsInmemList(t *testing.T) {
	s, _ := newStore(t, 4)

	assert.Len(t, s.List(0, 10), 4)
	assert.Len(t, s.List(2, 10), 2)
	assert.Len(t, s.List(3, 1), 1)
	assert.Empty(t, s.List(10, 5))
}
