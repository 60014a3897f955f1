package search

// noParent marks the root of the search tree
const noParent = -1

// Node is one discovered state. Parent indexes into the owning tree, so the
// back-links form a tree rooted at the source and hold no pointers.
type Node struct {
	ID     int
	State  string // person id
	Parent int
	Action string // movie id linking to the parent, empty for the root
}

// tree is the arena holding every node created during one search.
// Nodes are appended and never modified.
type tree struct {
	nodes []Node
}

func (t *tree) root(state string) Node {
	return t.add(state, noParent, "")
}

func (t *tree) add(state string, parent int, action string) Node {
	n := Node{ID: len(t.nodes), State: state, Parent: parent, Action: action}
	t.nodes = append(t.nodes, n)
	return n
}

// pathTo walks parent links from n back to the root and returns the
// (action, state) steps in source-to-target order. The root contributes no step.
func (t *tree) pathTo(n Node) []Step {
	var steps []Step
	for n.Parent != noParent {
		steps = append(steps, Step{MovieID: n.Action, PersonID: n.State})
		n = t.nodes[n.Parent]
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
