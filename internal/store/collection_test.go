package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int64
	Name string
}

func newWidgets() *Collection[widget] {
	return NewCollection(
		func(w widget) int64 { return w.ID },
		func(w *widget, id int64) { w.ID = id },
	)
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	c := newWidgets()
	for i, name := range []string{"a", "b", "c"} {
		got := c.Insert(widget{Name: name})
		assert.Equal(t, int64(i+1), got.ID)
	}

	listed := c.List()
	require.Len(t, listed, 3)
	assert.Equal(t, []widget{{1, "a"}, {2, "b"}, {3, "c"}}, listed)
}

func TestListPreservesInsertionOrderAfterRemove(t *testing.T) {
	c := newWidgets()
	c.Insert(widget{Name: "a"})
	c.Insert(widget{Name: "b"})
	c.Insert(widget{Name: "c"})

	c.Remove(2)

	listed := c.List()
	require.Len(t, listed, 2)
	assert.Equal(t, int64(1), listed[0].ID)
	assert.Equal(t, int64(3), listed[1].ID)

	_, ok := c.Get(2)
	assert.False(t, ok)
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := newWidgets()
	c.Insert(widget{Name: "a"})

	c.Remove(99)
	c.Remove(1)
	c.Remove(1)

	assert.Equal(t, 0, c.Len())
}

func TestNextIDReusesIDAfterDeletingMaximum(t *testing.T) {
	c := newWidgets()
	c.Insert(widget{Name: "a"})
	c.Insert(widget{Name: "b"})
	c.Insert(widget{Name: "c"})

	// Deleting the record with the highest id frees that id for the next
	// insert. This is the documented id policy, not a bug.
	c.Remove(3)
	got := c.Insert(widget{Name: "d"})
	assert.Equal(t, int64(3), got.ID)
}

func TestNextIDSkipsGapsBelowMaximum(t *testing.T) {
	c := newWidgets()
	c.Insert(widget{Name: "a"})
	c.Insert(widget{Name: "b"})
	c.Insert(widget{Name: "c"})

	c.Remove(2)
	got := c.Insert(widget{Name: "d"})
	assert.Equal(t, int64(4), got.ID)
}

func TestReplaceMissingIDFails(t *testing.T) {
	c := newWidgets()
	_, ok := c.Replace(1, widget{Name: "a"})
	assert.False(t, ok)
}

func TestReplaceKeepsID(t *testing.T) {
	c := newWidgets()
	c.Insert(widget{Name: "a"})

	got, ok := c.Replace(1, widget{ID: 42, Name: "renamed"})
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "renamed", got.Name)

	stored, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "renamed", stored.Name)
}
