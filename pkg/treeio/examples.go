package treeio

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mholzen/postorder/pkg/binarytree"
)

// DefaultExampleSize is the node count used for sized examples when none is
// given.
const DefaultExampleSize = 8

// Example describes a named tree used for demonstrations.
type Example struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Sized       bool   `json:"sized"`
	build       func(size int) *binarytree.Tree[string]
}

var examples = map[string]Example{
	"scenario": {
		Name:        "scenario",
		Description: "twelve nodes: 1:[2:[4:[8,-], 5:[9, 10:[11,12]]], 3:[6,7]]",
		build: func(int) *binarytree.Tree[string] {
			return mustParseLevelOrder("[1,2,3,4,5,6,7,8,null,9,10,null,null,null,null,null,null,null,null,11,12]")
		},
	},
	"left-chain": {
		Name:        "left-chain",
		Description: "a path where every node is a left child",
		Sized:       true,
		build:       func(size int) *binarytree.Tree[string] { return chain(size, true) },
	},
	"right-chain": {
		Name:        "right-chain",
		Description: "a path where every node is a right child",
		Sized:       true,
		build:       func(size int) *binarytree.Tree[string] { return chain(size, false) },
	},
	"zigzag": {
		Name:        "zigzag",
		Description: "a path alternating left and right children",
		Sized:       true,
		build:       zigzag,
	},
	"complete": {
		Name:        "complete",
		Description: "a complete tree filled level by level",
		Sized:       true,
		build:       complete,
	},
}

// ExampleNames lists the available examples in name order.
func ExampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Examples lists the available examples in name order.
func Examples() []Example {
	result := make([]Example, 0, len(examples))
	for _, name := range ExampleNames() {
		result = append(result, examples[name])
	}
	return result
}

// BuildExample returns a fresh copy of the named example. size is ignored
// for fixed examples; a size below 1 selects DefaultExampleSize.
func BuildExample(name string, size int) (*binarytree.Tree[string], error) {
	example, ok := examples[name]
	if !ok {
		return nil, fmt.Errorf("unknown example: %s", name)
	}
	if size < 1 {
		size = DefaultExampleSize
	}
	return example.build(size), nil
}

func mustParseLevelOrder(s string) *binarytree.Tree[string] {
	tree, err := ParseLevelOrder(s)
	if err != nil {
		panic(err)
	}
	return tree
}

// chain builds bottom-up so every attach is to a parentless node.
func chain(size int, left bool) *binarytree.Tree[string] {
	return path(size, func(int) bool { return left })
}

func zigzag(size int) *binarytree.Tree[string] {
	return path(size, func(depth int) bool { return depth%2 == 0 })
}

// path builds values 1..size from the top down; leftAt reports whether the
// node at depth+1 hangs left of the node at depth.
func path(size int, leftAt func(depth int) bool) *binarytree.Tree[string] {
	tree := binarytree.New[string]()
	below := binarytree.NoNode
	for v := size; v >= 1; v-- {
		id := tree.Add(strconv.Itoa(v))
		if below != binarytree.NoNode {
			attach := tree.SetRight
			if leftAt(v - 1) {
				attach = tree.SetLeft
			}
			if err := attach(id, below); err != nil {
				panic(err)
			}
		}
		below = id
	}
	if err := tree.SetRoot(below); err != nil {
		panic(err)
	}
	return tree
}

func complete(size int) *binarytree.Tree[string] {
	tree := binarytree.New[string]()
	ids := make([]binarytree.NodeID, size)
	for i := range ids {
		ids[i] = tree.Add(strconv.Itoa(i + 1))
	}
	for i := size - 1; i >= 1; i-- {
		parent := ids[(i-1)/2]
		attach := tree.SetRight
		if i%2 == 1 {
			attach = tree.SetLeft
		}
		if err := attach(parent, ids[i]); err != nil {
			panic(err)
		}
	}
	if err := tree.SetRoot(ids[0]); err != nil {
		panic(err)
	}
	return tree
}
