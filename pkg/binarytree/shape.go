package binarytree

import (
	"fmt"
	"strings"

	"github.com/mholzen/postorder/pkg/collections"
)

// String renders the shape of the tree in pre-order: a leaf is its value, an
// inner node is value(left,right) with "-" for an absent child. An empty tree
// renders as "-".
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.writeShape(&b, t.root)
	return b.String()
}

func (t *Tree[T]) writeShape(b *strings.Builder, id NodeID) {
	if id == NoNode {
		b.WriteString("-")
		return
	}
	n := t.nodes[id]
	fmt.Fprint(b, n.value)
	if n.left == NoNode && n.right == NoNode {
		return
	}
	b.WriteString("(")
	t.writeShape(b, n.left)
	b.WriteString(",")
	t.writeShape(b, n.right)
	b.WriteString(")")
}

// Equal reports whether a and b have the same shape and the same values at
// the same positions. Node ids are not compared.
func Equal[T comparable](a, b *Tree[T]) bool {
	var pending collections.Stack[[2]NodeID]
	pending.Push([2]NodeID{a.root, b.root})
	for {
		pair, ok := pending.Pop()
		if !ok {
			return true
		}
		x, y := pair[0], pair[1]
		if x == NoNode || y == NoNode {
			if x != y {
				return false
			}
			continue
		}
		nx, ny := a.nodes[x], b.nodes[y]
		if nx.value != ny.value {
			return false
		}
		pending.Push([2]NodeID{nx.left, ny.left}, [2]NodeID{nx.right, ny.right})
	}
}

// CheckInvariants verifies the steady state: no link is set, every child
// points back at its parent, and the root has no parent.
func (t *Tree[T]) CheckInvariants() error {
	s := t.nodes[sentinel]
	if s.left != NoNode || s.right != NoNode || s.link != NoNode {
		return invariantf("sentinel is attached")
	}
	for i := 1; i < len(t.nodes); i++ {
		id := NodeID(i)
		n := t.nodes[id]
		if n.link != NoNode {
			return invariantf("node %d has a live link to %d", id, n.link)
		}
		for _, c := range [2]NodeID{n.left, n.right} {
			if c == NoNode {
				continue
			}
			if !t.Contains(c) {
				return invariantf("node %d has unknown child %d", id, c)
			}
			if t.nodes[c].parent != id {
				return invariantf("node %d lists child %d whose parent is %d", id, c, t.nodes[c].parent)
			}
		}
	}
	if t.root != NoNode && t.nodes[t.root].parent != NoNode {
		return invariantf("root %d has parent %d", t.root, t.nodes[t.root].parent)
	}
	return nil
}
