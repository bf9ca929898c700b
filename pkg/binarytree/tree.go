// Package binarytree holds an arena-backed binary tree and a post-order
// traversal that runs in constant auxiliary memory.
//
// Nodes live in a slice and are addressed by stable NodeIDs. Each node has two
// owned child slots (left, right) and one non-owning navigation slot (link)
// that only the traversal writes. Outside of a traversal every link is empty.
package binarytree

import (
	"fmt"
	"sync/atomic"
)

// NodeID addresses a node in a Tree. IDs stay valid for the life of the tree.
type NodeID int32

// NoNode marks an absent child, an absent root, or an empty link.
const NoNode NodeID = -1

// sentinel is the reserved slot 0 of every arena. It stands in as the parent
// of the root while a traversal runs and is never handed to callers.
const sentinel NodeID = 0

type node[T any] struct {
	value  T
	left   NodeID
	right  NodeID
	parent NodeID
	link   NodeID
}

func newNode[T any](value T) node[T] {
	return node[T]{value: value, left: NoNode, right: NoNode, parent: NoNode, link: NoNode}
}

// Tree is a rooted binary tree. A Tree must not be copied after first use.
//
// A traversal needs exclusive access to the tree's links. Calls that change
// links (SetRoot, SetLeft, SetRight) and a second traversal fail with
// ErrTraversalInProgress while a traversal runs. Add is always allowed since a
// new node is not attached to anything.
type Tree[T any] struct {
	nodes []node[T]
	root  NodeID
	busy  atomic.Bool
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	var zero T
	return &Tree[T]{
		nodes: []node[T]{newNode(zero)},
		root:  NoNode,
	}
}

// Len returns the number of nodes added to the tree, attached or not.
func (t *Tree[T]) Len() int {
	return len(t.nodes) - 1
}

// Root returns the root node, or NoNode for an empty tree.
func (t *Tree[T]) Root() NodeID {
	return t.root
}

// IsEmpty reports whether the tree has no root.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == NoNode
}

// Contains reports whether id names a node of this tree.
func (t *Tree[T]) Contains(id NodeID) bool {
	return id > sentinel && int(id) < len(t.nodes)
}

// Value returns the payload of id, or the zero value for an unknown id.
func (t *Tree[T]) Value(id NodeID) T {
	if !t.Contains(id) {
		var zero T
		return zero
	}
	return t.nodes[id].value
}

// Left returns the left child of id, or NoNode.
func (t *Tree[T]) Left(id NodeID) NodeID {
	if !t.Contains(id) {
		return NoNode
	}
	return t.nodes[id].left
}

// Right returns the right child of id, or NoNode. Threads are never reported
// as children.
func (t *Tree[T]) Right(id NodeID) NodeID {
	if !t.Contains(id) {
		return NoNode
	}
	return t.nodes[id].right
}

// Parent returns the parent of id, or NoNode for the root and detached nodes.
func (t *Tree[T]) Parent(id NodeID) NodeID {
	if !t.Contains(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Add creates a detached node holding value and returns its id.
func (t *Tree[T]) Add(value T) NodeID {
	t.nodes = append(t.nodes, newNode(value))
	return NodeID(len(t.nodes) - 1)
}

// SetRoot makes id the root. id must have no parent. NoNode empties the tree
// without discarding any node.
func (t *Tree[T]) SetRoot(id NodeID) error {
	if t.busy.Load() {
		return ErrTraversalInProgress
	}
	if id == NoNode {
		t.root = NoNode
		return nil
	}
	if !t.Contains(id) {
		return fmt.Errorf("cannot set root: %w: %d", ErrUnknownNode, id)
	}
	if t.nodes[id].parent != NoNode {
		return fmt.Errorf("cannot set root: %w: node %d is a child of %d", ErrOwnership, id, t.nodes[id].parent)
	}
	t.root = id
	return nil
}

// SetLeft attaches child as the left child of parent.
func (t *Tree[T]) SetLeft(parent, child NodeID) error {
	return t.attach(parent, child, true)
}

// SetRight attaches child as the right child of parent.
func (t *Tree[T]) SetRight(parent, child NodeID) error {
	return t.attach(parent, child, false)
}

func (t *Tree[T]) attach(parent, child NodeID, left bool) error {
	if t.busy.Load() {
		return ErrTraversalInProgress
	}
	if !t.Contains(parent) {
		return fmt.Errorf("cannot attach: %w: parent %d", ErrUnknownNode, parent)
	}
	if !t.Contains(child) {
		return fmt.Errorf("cannot attach: %w: child %d", ErrUnknownNode, child)
	}

	slot := &t.nodes[parent].right
	side := "right"
	if left {
		slot = &t.nodes[parent].left
		side = "left"
	}
	if *slot != NoNode {
		return fmt.Errorf("cannot attach: %w: %s slot of %d already holds %d", ErrOwnership, side, parent, *slot)
	}
	if t.nodes[child].parent != NoNode {
		return fmt.Errorf("cannot attach: %w: node %d already has parent %d", ErrOwnership, child, t.nodes[child].parent)
	}
	if child == t.root {
		return fmt.Errorf("cannot attach: %w: node %d is the root", ErrOwnership, child)
	}
	if child == parent {
		return fmt.Errorf("cannot attach: %w: node %d to itself", ErrOwnership, child)
	}
	// Only a node with children can be an ancestor of parent, so attaching a
	// leaf (every top-down build) skips the walk.
	if t.nodes[child].left != NoNode || t.nodes[child].right != NoNode {
		for a := parent; a != NoNode; a = t.nodes[a].parent {
			if a == child {
				return fmt.Errorf("cannot attach: %w: node %d is an ancestor of %d", ErrOwnership, child, parent)
			}
		}
	}

	*slot = child
	t.nodes[child].parent = parent
	return nil
}

// Clone returns a deep copy of the tree. Node ids are preserved.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{
		nodes: make([]node[T], len(t.nodes)),
		root:  t.root,
	}
	copy(c.nodes, t.nodes)
	return c
}
