package search

import (
	"errors"

	"github.com/beka-birhanu/vinom-solver/maze"
)

var (
	ErrEmptyFrontier = errors.New("empty frontier")
)

// Frontier holds discovered nodes that are waiting to be expanded.
type Frontier interface {
	// Add pushes a node into the frontier.
	Add(node *Node)

	// Remove pops the next node according to the frontier discipline.
	// Returns ErrEmptyFrontier when nothing is left.
	Remove() (*Node, error)

	// ContainsState reports whether a node for the cell is waiting.
	ContainsState(cell maze.Cell) bool

	// Empty reports whether the frontier has no nodes.
	Empty() bool

	// Len returns the number of waiting nodes.
	Len() int
}

var (
	_ Frontier = &StackFrontier{}
	_ Frontier = &QueueFrontier{}
	_ Frontier = &PriorityFrontier{}
)

// membership counts the waiting nodes per cell.
type membership map[maze.Cell]int

func (m membership) add(c maze.Cell) {
	m[c]++
}

func (m membership) remove(c maze.Cell) {
	if m[c] <= 1 {
		delete(m, c)
		return
	}
	m[c]--
}

func (m membership) contains(c maze.Cell) bool {
	return m[c] > 0
}

// StackFrontier removes the most recently added node first.
type StackFrontier struct {
	nodes   []*Node
	members membership
}

// NewStackFrontier creates an empty LIFO frontier.
func NewStackFrontier() *StackFrontier {
	return &StackFrontier{members: make(membership)}
}

func (s *StackFrontier) Add(node *Node) {
	s.nodes = append(s.nodes, node)
	s.members.add(node.State)
}

func (s *StackFrontier) Remove() (*Node, error) {
	if s.Empty() {
		return nil, ErrEmptyFrontier
	}
	last := len(s.nodes) - 1
	node := s.nodes[last]
	s.nodes[last] = nil
	s.nodes = s.nodes[:last]
	s.members.remove(node.State)
	return node, nil
}

func (s *StackFrontier) ContainsState(cell maze.Cell) bool { return s.members.contains(cell) }
func (s *StackFrontier) Empty() bool                       { return len(s.nodes) == 0 }
func (s *StackFrontier) Len() int                          { return len(s.nodes) }

// QueueFrontier removes the earliest added node first.
type QueueFrontier struct {
	nodes   []*Node
	head    int
	members membership
}

// NewQueueFrontier creates an empty FIFO frontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{members: make(membership)}
}

func (q *QueueFrontier) Add(node *Node) {
	q.nodes = append(q.nodes, node)
	q.members.add(node.State)
}

func (q *QueueFrontier) Remove() (*Node, error) {
	if q.Empty() {
		return nil, ErrEmptyFrontier
	}
	node := q.nodes[q.head]
	q.nodes[q.head] = nil
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > len(q.nodes)/2 {
		q.nodes = append(q.nodes[:0], q.nodes[q.head:]...)
		q.head = 0
	}

	q.members.remove(node.State)
	return node, nil
}

func (q *QueueFrontier) ContainsState(cell maze.Cell) bool { return q.members.contains(cell) }
func (q *QueueFrontier) Empty() bool                       { return q.Len() == 0 }
func (q *QueueFrontier) Len() int                          { return len(q.nodes) - q.head }
