package search

import (
	"testing"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellNode(row, col, f int) *Node {
	return &Node{State: maze.Cell{Row: row, Col: col}, F: f}
}

func drain(t *testing.T, f Frontier) []maze.Cell {
	t.Helper()
	var out []maze.Cell
	for !f.Empty() {
		n, err := f.Remove()
		require.NoError(t, err)
		out = append(out, n.State)
	}
	return out
}

func TestStackFrontier(t *testing.T) {
	s := NewStackFrontier()
	assert.True(t, s.Empty())

	s.Add(cellNode(0, 0, 0))
	s.Add(cellNode(0, 1, 0))
	s.Add(cellNode(0, 2, 0))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.ContainsState(maze.Cell{Row: 0, Col: 1}))
	assert.False(t, s.ContainsState(maze.Cell{Row: 5, Col: 5}))

	assert.Equal(t, []maze.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}, drain(t, s))
	assert.False(t, s.ContainsState(maze.Cell{Row: 0, Col: 1}))

	_, err := s.Remove()
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}

func TestQueueFrontier(t *testing.T) {
	q := NewQueueFrontier()

	_, err := q.Remove()
	assert.ErrorIs(t, err, ErrEmptyFrontier)

	for col := 0; col < 10; col++ {
		q.Add(cellNode(0, col, 0))
	}
	first, err := q.Remove()
	require.NoError(t, err)
	assert.Equal(t, maze.Cell{Row: 0, Col: 0}, first.State)
	assert.False(t, q.ContainsState(first.State))
	assert.True(t, q.ContainsState(maze.Cell{Row: 0, Col: 9}))

	q.Add(cellNode(1, 0, 0))
	rest := drain(t, q)
	require.Len(t, rest, 10)
	assert.Equal(t, maze.Cell{Row: 0, Col: 1}, rest[0])
	assert.Equal(t, maze.Cell{Row: 1, Col: 0}, rest[9])
	assert.Equal(t, 0, q.Len())
}

func TestPriorityFrontier(t *testing.T) {
	t.Run("lowest f first", func(t *testing.T) {
		p := NewPriorityFrontier()
		p.Add(cellNode(0, 0, 7))
		p.Add(cellNode(0, 1, 3))
		p.Add(cellNode(0, 2, 5))

		assert.True(t, p.ContainsState(maze.Cell{Row: 0, Col: 2}))
		assert.Equal(t, []maze.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 0}}, drain(t, p))
	})

	t.Run("ties leave in insertion order", func(t *testing.T) {
		p := NewPriorityFrontier()
		for col := 0; col < 6; col++ {
			p.Add(cellNode(0, col, 4))
		}
		p.Add(cellNode(1, 0, 2))

		assert.Equal(t, []maze.Cell{
			{Row: 1, Col: 0},
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5},
		}, drain(t, p))
	})

	t.Run("improve re-parents a waiting node", func(t *testing.T) {
		p := NewPriorityFrontier()
		p.Add(&Node{State: maze.Cell{Row: 0, Col: 0}, G: 5, H: 1, F: 6})
		p.Add(&Node{State: maze.Cell{Row: 0, Col: 1}, G: 2, H: 2, F: 4})

		cheaper := &Node{State: maze.Cell{Row: 0, Col: 0}, G: 2, H: 1, F: 3}
		assert.True(t, p.Improve(cheaper))
		assert.False(t, p.Improve(&Node{State: maze.Cell{Row: 0, Col: 0}, G: 4, H: 1, F: 5}))
		assert.False(t, p.Improve(&Node{State: maze.Cell{Row: 9, Col: 9}, G: 0}))

		n, err := p.Remove()
		require.NoError(t, err)
		assert.Same(t, cheaper, n)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewPriorityFrontier().Remove()
		assert.ErrorIs(t, err, ErrEmptyFrontier)
	})
}

func TestStrategyFrontier(t *testing.T) {
	assert.IsType(t, &StackFrontier{}, DepthFirst.NewFrontier())
	assert.IsType(t, &QueueFrontier{}, BreadthFirst.NewFrontier())
	assert.IsType(t, &PriorityFrontier{}, AStar.NewFrontier())
}
