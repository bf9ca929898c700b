package binarytree

// The spine of a left subtree is the chain start -> ... -> end of real right
// links, where start is the left child of an unthreaded node and end is its
// predecessor. Post-order emits the spine bottom-up, so the chain is walked
// from end back to start through the link slots, then the links are cleared.
// Real child links are never rewritten.

// reverseChain points the link of every spine node at the node above it in
// the chain. It returns the number of links written.
func (t *Tree[T]) reverseChain(start, end NodeID) (int, error) {
	written := 0
	prev := NoNode
	x := start
	for {
		t.nodes[x].link = prev
		if prev != NoNode {
			written++
		}
		if x == end {
			return written, nil
		}
		prev, x = x, t.nodes[x].right
		if x == NoNode {
			t.restoreChain(prev)
			return 0, invariantf("node %d is not on the right spine below %d", end, start)
		}
	}
}

// walkChain visits the reversed spine from its old end up to its old start.
func (t *Tree[T]) walkChain(end NodeID, visit func(T) error) error {
	for x := end; x != NoNode; x = t.nodes[x].link {
		if err := visit(t.nodes[x].value); err != nil {
			return err
		}
	}
	return nil
}

// restoreChain clears the links written by reverseChain, starting from the
// old end of the spine.
func (t *Tree[T]) restoreChain(end NodeID) {
	for x := end; x != NoNode; {
		up := t.nodes[x].link
		t.nodes[x].link = NoNode
		x = up
	}
}
