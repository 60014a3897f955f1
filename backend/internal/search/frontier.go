package search

import (
	apperrors "degrees/backend/pkg/errors"
)

// Frontier holds discovered nodes that have not been expanded yet.
// Implementations differ only in which node Remove hands back.
type Frontier interface {
	Add(n Node)
	// Remove returns apperrors.ErrEmptyFrontier when nothing is pending.
	Remove() (Node, error)
	ContainsState(state string) bool
	Empty() bool
	Len() int
}

// pending tracks the states currently held so ContainsState avoids a scan
type pending map[string]int

func (p pending) add(state string) {
	p[state]++
}

func (p pending) remove(state string) {
	if p[state] <= 1 {
		delete(p, state)
		return
	}
	p[state]--
}

// StackFrontier removes the most recently added node (depth-first)
type StackFrontier struct {
	nodes  []Node
	states pending
}

// NewStackFrontier creates an empty LIFO frontier
func NewStackFrontier() *StackFrontier {
	return &StackFrontier{states: make(pending)}
}

func (f *StackFrontier) Add(n Node) {
	f.nodes = append(f.nodes, n)
	f.states.add(n.State)
}

func (f *StackFrontier) Remove() (Node, error) {
	if f.Empty() {
		return Node{}, apperrors.ErrEmptyFrontier
	}
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes = f.nodes[:last]
	f.states.remove(n.State)
	return n, nil
}

func (f *StackFrontier) ContainsState(state string) bool {
	_, ok := f.states[state]
	return ok
}

func (f *StackFrontier) Empty() bool { return len(f.nodes) == 0 }

func (f *StackFrontier) Len() int { return len(f.nodes) }

// QueueFrontier removes the earliest added node still present (breadth-first)
type QueueFrontier struct {
	nodes  []Node
	head   int
	states pending
}

// NewQueueFrontier creates an empty FIFO frontier
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{states: make(pending)}
}

func (f *QueueFrontier) Add(n Node) {
	f.nodes = append(f.nodes, n)
	f.states.add(n.State)
}

func (f *QueueFrontier) Remove() (Node, error) {
	if f.Empty() {
		return Node{}, apperrors.ErrEmptyFrontier
	}
	n := f.nodes[f.head]
	f.nodes[f.head] = Node{}
	f.head++
	// Reclaim the consumed prefix once it dominates the backing array
	if f.head > 64 && f.head*2 > len(f.nodes) {
		f.nodes = append(f.nodes[:0:0], f.nodes[f.head:]...)
		f.head = 0
	}
	f.states.remove(n.State)
	return n, nil
}

func (f *QueueFrontier) ContainsState(state string) bool {
	_, ok := f.states[state]
	return ok
}

func (f *QueueFrontier) Empty() bool { return f.head >= len(f.nodes) }

func (f *QueueFrontier) Len() int { return len(f.nodes) - f.head }
