package binarytree

// installThread points the empty link of predecessor p at n. The thread does
// not own n; n keeps its single parent.
func (t *Tree[T]) installThread(p, n NodeID) error {
	if t.nodes[p].right != NoNode {
		return invariantf("cannot thread node %d: it has right child %d", p, t.nodes[p].right)
	}
	if t.nodes[p].link != NoNode {
		return invariantf("cannot thread node %d: already threaded to %d", p, t.nodes[p].link)
	}
	t.nodes[p].link = n
	return nil
}

// removeThread clears the thread from p to n. Each install is matched by
// exactly one removal.
func (t *Tree[T]) removeThread(p, n NodeID) error {
	if t.nodes[p].link != n {
		return invariantf("cannot unthread node %d: threaded to %d, not %d", p, t.nodes[p].link, n)
	}
	t.nodes[p].link = NoNode
	return nil
}
