package treeio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mholzen/postorder/pkg/binarytree"
)

// JSONNode is the nested JSON form of a tree:
//
//	{"value": 1, "left": {"value": 2}, "right": null}
type JSONNode struct {
	Value any       `json:"value"`
	Left  *JSONNode `json:"left,omitempty"`
	Right *JSONNode `json:"right,omitempty"`
}

// ParseJSON reads a nested JSON tree. Values are kept as their JSON text for
// numbers and as-is for strings; "null" is an empty tree.
func ParseJSON(data []byte) (*binarytree.Tree[string], error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	decoder.DisallowUnknownFields()

	var root *JSONNode
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("cannot parse JSON tree: %w", err)
	}

	tree := binarytree.New[string]()
	if root == nil {
		return tree, nil
	}
	id, err := addJSONNode(tree, root)
	if err != nil {
		return nil, err
	}
	if err := tree.SetRoot(id); err != nil {
		return nil, err
	}
	return tree, nil
}

func addJSONNode(tree *binarytree.Tree[string], n *JSONNode) (binarytree.NodeID, error) {
	value, err := jsonValueText(n.Value)
	if err != nil {
		return binarytree.NoNode, err
	}
	id := tree.Add(value)
	if n.Left != nil {
		left, err := addJSONNode(tree, n.Left)
		if err != nil {
			return binarytree.NoNode, err
		}
		if err := tree.SetLeft(id, left); err != nil {
			return binarytree.NoNode, err
		}
	}
	if n.Right != nil {
		right, err := addJSONNode(tree, n.Right)
		if err != nil {
			return binarytree.NoNode, err
		}
		if err := tree.SetRight(id, right); err != nil {
			return binarytree.NoNode, err
		}
	}
	return id, nil
}

func jsonValueText(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", fmt.Errorf("cannot parse JSON tree: node without a value")
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("cannot parse JSON tree: value %v is not a scalar", v)
	}
}

// ToJSONNode converts tree into its nested JSON form. An empty tree is nil.
func ToJSONNode[T any](tree *binarytree.Tree[T]) *JSONNode {
	return toJSONNode(tree, tree.Root())
}

func toJSONNode[T any](tree *binarytree.Tree[T], id binarytree.NodeID) *JSONNode {
	if id == binarytree.NoNode {
		return nil
	}
	return &JSONNode{
		Value: tree.Value(id),
		Left:  toJSONNode(tree, tree.Left(id)),
		Right: toJSONNode(tree, tree.Right(id)),
	}
}

// FormatNestedJSON renders tree as indented nested JSON.
func FormatNestedJSON[T any](tree *binarytree.Tree[T]) (string, error) {
	data, err := json.MarshalIndent(ToJSONNode(tree), "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot format JSON tree: %w", err)
	}
	return string(data), nil
}

// Format names a textual tree encoding.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatLevel Format = "level"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name. The empty string means FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatLevel, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("input format must be 'auto', 'level', or 'json'")
	}
}

// DetectFormat guesses the encoding of input: an object is JSON, anything else
// is level order.
func DetectFormat(input string) Format {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "{") || s == nullToken {
		return FormatJSON
	}
	return FormatLevel
}

// Parse reads input in the given format, detecting it for FormatAuto.
func Parse(input string, format Format) (*binarytree.Tree[string], error) {
	if format == FormatAuto || format == "" {
		format = DetectFormat(input)
	}
	switch format {
	case FormatLevel:
		return ParseLevelOrder(input)
	case FormatJSON:
		return ParseJSON([]byte(input))
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}
