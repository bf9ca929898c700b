// Package treeio reads and writes binary trees as text: LeetCode-style level
// order ("[1,2,3,null,4]") and nested JSON objects.
package treeio

import (
	"fmt"
	"strings"

	"github.com/mholzen/postorder/pkg/binarytree"
)

const nullToken = "null"

func isNullToken(token string) bool {
	switch strings.ToLower(token) {
	case "null", "nil", "none", "-", "#":
		return true
	}
	return false
}

// ParseLevelOrder parses a breadth-first listing of a tree. Children are
// listed left then right for every present node; trailing nulls may be
// omitted. "null", "nil", "none", "-" and "#" mark an absent node.
func ParseLevelOrder(s string) (*binarytree.Tree[string], error) {
	tokens, err := levelTokens(s)
	if err != nil {
		return nil, err
	}

	tree := binarytree.New[string]()
	if len(tokens) == 0 || isNullToken(tokens[0]) {
		if len(tokens) > 1 {
			return nil, fmt.Errorf("cannot parse level order: %d values after an absent root", len(tokens)-1)
		}
		return tree, nil
	}

	root := tree.Add(tokens[0])
	if err := tree.SetRoot(root); err != nil {
		return nil, err
	}

	queue := []binarytree.NodeID{root}
	i := 1
	for len(queue) > 0 && i < len(tokens) {
		parent := queue[0]
		queue = queue[1:]

		for _, attach := range []func(binarytree.NodeID, binarytree.NodeID) error{tree.SetLeft, tree.SetRight} {
			if i >= len(tokens) {
				break
			}
			token := tokens[i]
			i++
			if isNullToken(token) {
				continue
			}
			child := tree.Add(token)
			if err := attach(parent, child); err != nil {
				return nil, fmt.Errorf("cannot attach %q: %w", token, err)
			}
			queue = append(queue, child)
		}
	}
	if i < len(tokens) {
		return nil, fmt.Errorf("cannot parse level order: %d values have no parent", len(tokens)-i)
	}
	return tree, nil
}

func levelTokens(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "root"); ok {
		if rest, ok = strings.CutPrefix(strings.TrimSpace(rest), "="); ok {
			s = strings.TrimSpace(rest)
		}
	}
	if strings.HasPrefix(s, "[") != strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("cannot parse level order: unbalanced brackets in %q", s)
	}
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	raw := strings.Split(s, ",")
	tokens := make([]string, 0, len(raw))
	for n, v := range raw {
		token := strings.Trim(strings.TrimSpace(v), `"`)
		if token == "" {
			return nil, fmt.Errorf("cannot parse level order: empty value at position %d", n+1)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// FormatLevelOrder renders tree in the form read by ParseLevelOrder, without
// trailing nulls.
func FormatLevelOrder[T any](tree *binarytree.Tree[T]) string {
	if tree.IsEmpty() {
		return "[]"
	}

	var tokens []string
	queue := []binarytree.NodeID{tree.Root()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == binarytree.NoNode {
			tokens = append(tokens, nullToken)
			continue
		}
		tokens = append(tokens, fmt.Sprint(tree.Value(id)))
		queue = append(queue, tree.Left(id), tree.Right(id))
	}

	last := len(tokens)
	for last > 0 && tokens[last-1] == nullToken {
		last--
	}
	return "[" + strings.Join(tokens[:last], ",") + "]"
}
