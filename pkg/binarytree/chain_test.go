package binarytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredecessor(t *testing.T) {
	tree := scenarioTree(t)
	id := func(v int) NodeID { return findValue(t, tree, v) }

	tests := []struct {
		of, expected int
	}{
		{of: 1, expected: 12},
		{of: 2, expected: 4},
		{of: 4, expected: 8},
		{of: 5, expected: 9},
		{of: 10, expected: 11},
		{of: 3, expected: 6},
	}
	for _, tt := range tests {
		p, err := tree.predecessor(id(tt.of))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, tree.Value(p), "predecessor of %d", tt.of)
	}
}

func TestPredecessor_StopsAtOwnThread(t *testing.T) {
	tree := scenarioTree(t)
	one, twelve := findValue(t, tree, 1), findValue(t, tree, 12)

	require.NoError(t, tree.installThread(twelve, one))
	p, err := tree.predecessor(one)
	require.NoError(t, err)
	assert.Equal(t, twelve, p)
	assert.Equal(t, one, tree.next(twelve), "a threaded predecessor leads back to its ancestor")

	require.NoError(t, tree.removeThread(twelve, one))
	assert.Equal(t, NoNode, tree.next(twelve))
	assert.NoError(t, tree.CheckInvariants())
}

func TestThread_InstallAndRemoveChecks(t *testing.T) {
	tree := scenarioTree(t)
	one, five, twelve := findValue(t, tree, 1), findValue(t, tree, 5), findValue(t, tree, 12)

	assert.ErrorIs(t, tree.installThread(five, one), ErrStructuralInvariant, "node with a right child")
	assert.ErrorIs(t, tree.removeThread(twelve, one), ErrStructuralInvariant, "nothing installed")

	require.NoError(t, tree.installThread(twelve, one))
	assert.ErrorIs(t, tree.installThread(twelve, five), ErrStructuralInvariant, "second install")
	assert.ErrorIs(t, tree.removeThread(twelve, five), ErrStructuralInvariant, "wrong target")
	require.NoError(t, tree.removeThread(twelve, one))
}

func TestChain_ReverseWalkRestore(t *testing.T) {
	tree := scenarioTree(t)
	before := tree.Clone()
	two, twelve := findValue(t, tree, 2), findValue(t, tree, 12)

	written, err := tree.reverseChain(two, twelve)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	var walked []int
	require.NoError(t, tree.walkChain(twelve, func(v int) error {
		walked = append(walked, v)
		return nil
	}))
	assert.Equal(t, []int{12, 10, 5, 2}, walked)

	tree.restoreChain(twelve)
	requireRestored(t, before, tree)
}

func TestChain_SingleNode(t *testing.T) {
	tree := scenarioTree(t)
	eight := findValue(t, tree, 8)

	written, err := tree.reverseChain(eight, eight)
	require.NoError(t, err)
	assert.Equal(t, 0, written)

	var walked []int
	require.NoError(t, tree.walkChain(eight, func(v int) error {
		walked = append(walked, v)
		return nil
	}))
	assert.Equal(t, []int{8}, walked)
	tree.restoreChain(eight)
	assert.NoError(t, tree.CheckInvariants())
}

func TestChain_UnreachableEndIsRestored(t *testing.T) {
	tree := scenarioTree(t)
	before := tree.Clone()

	_, err := tree.reverseChain(findValue(t, tree, 2), findValue(t, tree, 9))
	assert.ErrorIs(t, err, ErrStructuralInvariant)
	requireRestored(t, before, tree)
}
