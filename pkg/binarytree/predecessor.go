package binarytree

// predecessor returns the rightmost node of n's left subtree, reached through
// real right links only. n must have a left child.
//
// The returned node's link is either empty or already threaded to n; any other
// value means the tree is corrupted.
func (t *Tree[T]) predecessor(n NodeID) (NodeID, error) {
	p := t.nodes[n].left
	for steps := 0; t.nodes[p].right != NoNode; steps++ {
		if steps >= len(t.nodes) {
			return NoNode, invariantf("predecessor search from node %d does not terminate", n)
		}
		p = t.nodes[p].right
	}

	switch t.nodes[p].link {
	case NoNode, n:
		return p, nil
	default:
		return NoNode, invariantf("predecessor %d of node %d is threaded to %d", p, n, t.nodes[p].link)
	}
}

// next is the node the driver moves to after finishing with x: its right
// child, or the thread target when x is the predecessor of an open ancestor.
func (t *Tree[T]) next(x NodeID) NodeID {
	if r := t.nodes[x].right; r != NoNode {
		return r
	}
	return t.nodes[x].link
}
