package binarytree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

type testShape struct {
	val         int
	left, right *testShape
}

func leaf(v int) *testShape {
	return &testShape{val: v}
}

func inner(v int, left, right *testShape) *testShape {
	return &testShape{val: v, left: left, right: right}
}

func buildTree(t *testing.T, s *testShape) *Tree[int] {
	t.Helper()
	tree := New[int]()
	if s != nil {
		root := addShape(t, tree, s)
		require.NoError(t, tree.SetRoot(root))
	}
	return tree
}

func addShape(t *testing.T, tree *Tree[int], s *testShape) NodeID {
	id := tree.Add(s.val)
	if s.left != nil {
		require.NoError(t, tree.SetLeft(id, addShape(t, tree, s.left)))
	}
	if s.right != nil {
		require.NoError(t, tree.SetRight(id, addShape(t, tree, s.right)))
	}
	return id
}

// scenarioTree is 1:[2:[4:[8,-], 5:[9, 10:[11,12]]], 3:[6,7]].
func scenarioTree(t *testing.T) *Tree[int] {
	return buildTree(t, inner(1,
		inner(2,
			inner(4, leaf(8), nil),
			inner(5, leaf(9), inner(10, leaf(11), leaf(12)))),
		inner(3, leaf(6), leaf(7))))
}

var scenarioPostorder = []int{8, 4, 11, 9, 12, 10, 5, 2, 6, 7, 3, 1}

// chainTree builds a path of n nodes, valued 1 at the top, hanging left or right.
// It builds bottom-up so each attach is constant time.
func chainTree(t *testing.T, n int, left bool) *Tree[int] {
	tree := New[int]()
	below := NoNode
	for v := n; v >= 1; v-- {
		id := tree.Add(v)
		if below != NoNode {
			if left {
				require.NoError(t, tree.SetLeft(id, below))
			} else {
				require.NoError(t, tree.SetRight(id, below))
			}
		}
		below = id
	}
	require.NoError(t, tree.SetRoot(below))
	return tree
}

// randomTree builds a tree of n nodes with a random shape. Values are 1..n.
func randomTree(t *testing.T, rng *rand.Rand, n int) *Tree[int] {
	tree := New[int]()
	next := 0
	var grow func(size int) NodeID
	grow = func(size int) NodeID {
		if size == 0 {
			return NoNode
		}
		next++
		id := tree.Add(next)
		leftSize := rng.IntN(size)
		if l := grow(leftSize); l != NoNode {
			require.NoError(t, tree.SetLeft(id, l))
		}
		if r := grow(size - 1 - leftSize); r != NoNode {
			require.NoError(t, tree.SetRight(id, r))
		}
		return id
	}
	if root := grow(n); root != NoNode {
		require.NoError(t, tree.SetRoot(root))
	}
	return tree
}

// recursivePostorder is the reference order.
func recursivePostorder[T any](tree *Tree[T]) []T {
	var out []T
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if id == NoNode {
			return
		}
		walk(tree.Left(id))
		walk(tree.Right(id))
		out = append(out, tree.Value(id))
	}
	walk(tree.Root())
	return out
}

func collect(t *testing.T, tree *Tree[int]) []int {
	t.Helper()
	values := []int{}
	require.NoError(t, tree.TraversePostorder(func(v int) error {
		values = append(values, v)
		return nil
	}))
	return values
}

func requireRestored(t *testing.T, before, after *Tree[int]) {
	t.Helper()
	require.NoError(t, after.CheckInvariants())
	require.True(t, Equal(before, after), "shape changed: before %s, after %s", before, after)
	require.Equal(t, before.String(), after.String())
	require.False(t, after.busy.Load(), "traversal flag still held")
}
