package search

import (
	"testing"

	apperrors "degrees/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodes(states ...string) []Node {
	out := make([]Node, len(states))
	for i, s := range states {
		out[i] = Node{ID: i, State: s, Parent: noParent}
	}
	return out
}

func drain(t *testing.T, f Frontier) []string {
	t.Helper()
	var got []string
	for !f.Empty() {
		n, err := f.Remove()
		require.NoError(t, err)
		got = append(got, n.State)
	}
	return got
}

func TestStackFrontier_LIFO(t *testing.T) {
	f := NewStackFrontier()
	for _, n := range nodes("a", "b", "c") {
		f.Add(n)
	}
	assert.Equal(t, 3, f.Len())
	assert.True(t, f.ContainsState("b"))
	assert.False(t, f.ContainsState("z"))

	assert.Equal(t, []string{"c", "b", "a"}, drain(t, f))
	assert.False(t, f.ContainsState("b"))
}

func TestQueueFrontier_FIFO(t *testing.T) {
	f := NewQueueFrontier()
	for _, n := range nodes("a", "b", "c") {
		f.Add(n)
	}

	first, err := f.Remove()
	require.NoError(t, err)
	assert.Equal(t, "a", first.State)
	assert.False(t, f.ContainsState("a"))

	f.Add(Node{State: "d"})
	assert.Equal(t, []string{"b", "c", "d"}, drain(t, f))
}

func TestQueueFrontier_CompactsConsumedPrefix(t *testing.T) {
	f := NewQueueFrontier()
	var want []string
	for i := 0; i < 500; i++ {
		state := string(rune('A' + i%26))
		f.Add(Node{ID: i, State: state})
		if i >= 200 {
			want = append(want, state)
		}
	}
	for i := 0; i < 200; i++ {
		_, err := f.Remove()
		require.NoError(t, err)
	}
	assert.Equal(t, 300, f.Len())
	assert.Equal(t, want, drain(t, f))
}

func TestFrontier_RemoveEmpty(t *testing.T) {
	for _, f := range []Frontier{NewStackFrontier(), NewQueueFrontier()} {
		assert.True(t, f.Empty())
		_, err := f.Remove()
		assert.ErrorIs(t, err, apperrors.ErrEmptyFrontier)
	}
}

func TestFrontier_DuplicateStatesCounted(t *testing.T) {
	for _, f := range []Frontier{NewStackFrontier(), NewQueueFrontier()} {
		f.Add(Node{State: "x"})
		f.Add(Node{State: "x"})
		_, err := f.Remove()
		require.NoError(t, err)
		assert.True(t, f.ContainsState("x"), "%T lost a state still held", f)
		_, err = f.Remove()
		require.NoError(t, err)
		assert.False(t, f.ContainsState("x"))
	}
}

func TestParseDiscipline(t *testing.T) {
	d, err := ParseDiscipline("breadth")
	require.NoError(t, err)
	assert.Equal(t, Breadth, d)

	d, err = ParseDiscipline("  Depth ")
	require.NoError(t, err)
	assert.Equal(t, Depth, d)

	_, err = ParseDiscipline("astar")
	var invalid *apperrors.ErrInvalidDiscipline
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "astar", invalid.Value)
	assert.Contains(t, err.Error(), "'breadth' or 'depth'")

	_, err = Discipline("greedy").NewFrontier()
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeSearch))
}

func TestTree_PathTo(t *testing.T) {
	var tr tree
	root := tr.root("a")
	b := tr.add("b", root.ID, "m1")
	c := tr.add("c", b.ID, "m2")
	tr.add("x", root.ID, "m9")

	assert.Empty(t, tr.pathTo(root))
	assert.Equal(t, []Step{{"m1", "b"}, {"m2", "c"}}, tr.pathTo(c))
}
