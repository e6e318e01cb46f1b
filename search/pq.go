package search

import (
	"container/heap"

	"github.com/beka-birhanu/vinom-solver/maze"
)

type priorityItem struct {
	node         *Node
	sequence     uint64
	indexInQueue int
}

// priorityQueue orders items by F, then by insertion sequence.
type priorityQueue []*priorityItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].node.F != queue[j].node.F {
		return queue[i].node.F < queue[j].node.F
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*priorityItem)
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// PriorityFrontier removes the node with the lowest F first.
// Nodes with equal F leave in the order they were added.
type PriorityFrontier struct {
	queue    priorityQueue
	sequence uint64
	members  membership
	latest   map[maze.Cell]*priorityItem
}

// NewPriorityFrontier creates an empty min-F frontier.
func NewPriorityFrontier() *PriorityFrontier {
	p := &PriorityFrontier{
		queue:   make(priorityQueue, 0),
		members: make(membership),
		latest:  make(map[maze.Cell]*priorityItem),
	}
	heap.Init(&p.queue)
	return p
}

func (p *PriorityFrontier) Add(node *Node) {
	item := &priorityItem{node: node, sequence: p.sequence}
	heap.Push(&p.queue, item)
	p.sequence++
	p.members.add(node.State)
	p.latest[node.State] = item
}

func (p *PriorityFrontier) Remove() (*Node, error) {
	if p.Empty() {
		return nil, ErrEmptyFrontier
	}
	item := heap.Pop(&p.queue).(*priorityItem)
	p.members.remove(item.node.State)
	if p.latest[item.node.State] == item {
		delete(p.latest, item.node.State)
	}
	return item.node, nil
}

// Improve replaces the waiting node for node.State when node reaches it with a
// lower G. The replaced entry keeps its place among equal-F nodes.
// It reports whether the frontier changed.
func (p *PriorityFrontier) Improve(node *Node) bool {
	item, ok := p.latest[node.State]
	if !ok || node.G >= item.node.G {
		return false
	}
	item.node = node
	heap.Fix(&p.queue, item.indexInQueue)
	return true
}

func (p *PriorityFrontier) ContainsState(cell maze.Cell) bool { return p.members.contains(cell) }
func (p *PriorityFrontier) Empty() bool                       { return p.queue.Len() == 0 }
func (p *PriorityFrontier) Len() int                          { return p.queue.Len() }
