// Package markdown renders trees and value lists as Markdown lists.
package markdown

import (
	"fmt"
	"strings"

	"github.com/mholzen/postorder/pkg/binarytree"
	"github.com/mholzen/postorder/pkg/collections"
)

// Slot is the position a node occupies under its parent.
type Slot int

const (
	SlotRoot Slot = iota
	SlotLeft
	SlotRight
)

// Absent marks a missing child whose sibling is present.
const Absent = "(none)"

type NestedListGenerator struct {
	Prefix func(Slot) string
}

type nestedEntry struct {
	id    binarytree.NodeID
	slot  Slot
	depth int
}

// GenerateNestedList renders tree as an indented list in pre-order, left child
// before right. Leaves have no sub-list; a node with one child lists the
// missing one as Absent so the two slots stay distinguishable.
func GenerateNestedList[T any](tree *binarytree.Tree[T], generator NestedListGenerator) string {
	if tree.IsEmpty() {
		return ""
	}

	var lines []string
	stack := collections.Stack[nestedEntry]{}
	stack.Push(nestedEntry{id: tree.Root(), slot: SlotRoot})
	for !stack.IsEmpty() {
		e, _ := stack.Pop()
		line := strings.Repeat("  ", e.depth) + generator.Prefix(e.slot)
		if e.id == binarytree.NoNode {
			lines = append(lines, line+Absent)
			continue
		}
		lines = append(lines, line+fmt.Sprint(tree.Value(e.id)))

		left, right := tree.Left(e.id), tree.Right(e.id)
		if left == binarytree.NoNode && right == binarytree.NoNode {
			continue
		}
		stack.Push(
			nestedEntry{id: right, slot: SlotRight, depth: e.depth + 1},
			nestedEntry{id: left, slot: SlotLeft, depth: e.depth + 1},
		)
	}
	return strings.Join(lines, "\n")
}

func GenerateNestedUL[T any](tree *binarytree.Tree[T]) string {
	return GenerateNestedList(tree, NestedListGenerator{Prefix: func(Slot) string { return "- " }})
}

// GenerateNestedOL numbers left children 1 and right children 2.
func GenerateNestedOL[T any](tree *binarytree.Tree[T]) string {
	return GenerateNestedList(tree, NestedListGenerator{Prefix: func(slot Slot) string {
		if slot == SlotRight {
			return "2. "
		}
		return "1. "
	}})
}
