package treeio

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mholzen/postorder/pkg/binarytree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLevelOrder = "[1,2,3,4,5,6,7,8,null,9,10,null,null,null,null,null,null,null,null,11,12]"

var scenarioPostorder = []string{"8", "4", "11", "9", "12", "10", "5", "2", "6", "7", "3", "1"}

func TestParseLevelOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		shape string
	}{
		{name: "empty brackets", input: "[]", shape: "-"},
		{name: "blank", input: "  ", shape: "-"},
		{name: "null root", input: "[null]", shape: "-"},
		{name: "single", input: "[1]", shape: "1"},
		{name: "leetcode prefix", input: "root = [1,null,2,3]", shape: "1(-,2(3,-))"},
		{name: "no brackets", input: "1, 2, 3", shape: "1(2,3)"},
		{name: "alternate nulls", input: "[a,#,b,-,c,nil,d]", shape: "a(-,b(-,c(-,d)))"},
		{name: "quoted values", input: `["x","y"]`, shape: "x(y,-)"},
		{name: "scenario", input: scenarioLevelOrder, shape: "1(2(4(8,-),5(9,10(11,12))),3(6,7))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := ParseLevelOrder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, tree.String())
			assert.NoError(t, tree.CheckInvariants())
		})
	}
}

func TestParseLevelOrder_DeepLeftChainIsLinear(t *testing.T) {
	const n = 100000
	tokens := make([]string, 0, 2*n)
	tokens = append(tokens, "1")
	for v := 2; v <= n; v++ {
		tokens = append(tokens, strconv.Itoa(v), "null")
	}
	input := "[" + strings.Join(tokens, ",") + "]"

	start := time.Now()
	tree, err := ParseLevelOrder(input)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, n, tree.Len())

	values, err := tree.Values()
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(n), values[0])
	assert.Equal(t, "1", values[n-1])
}

func TestParseLevelOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unbalanced", input: "[1,2", message: "unbalanced"},
		{name: "empty value", input: "[1,,2]", message: "empty value at position 2"},
		{name: "values after null root", input: "[null,1]", message: "after an absent root"},
		{name: "orphans", input: "[1,null,null,2]", message: "have no parent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelOrder(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFormatLevelOrder_RoundTrip(t *testing.T) {
	for _, input := range []string{"[]", "[1]", "[1,null,2,3]", scenarioLevelOrder} {
		tree, err := ParseLevelOrder(input)
		require.NoError(t, err)
		assert.Equal(t, input, FormatLevelOrder(tree))
	}
}

func TestParseJSON(t *testing.T) {
	input := `{
		"value": 1,
		"left": {"value": 2, "left": {"value": 4.5}},
		"right": {"value": "three", "right": {"value": true}}
	}`

	tree, err := ParseJSON([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "1(2(4.5,-),three(-,true))", tree.String())

	values, err := tree.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"4.5", "2", "true", "three", "1"}, values)
}

func TestParseJSON_Null(t *testing.T) {
	tree, err := ParseJSON([]byte("null"))
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "syntax", input: `{"value": 1`, message: "cannot parse JSON tree"},
		{name: "unknown field", input: `{"value": 1, "middle": {"value": 2}}`, message: "unknown field"},
		{name: "missing value", input: `{"left": {"value": 2}}`, message: "node without a value"},
		{name: "object value", input: `{"value": {"a": 1}}`, message: "not a scalar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFormatNestedJSON_RoundTrip(t *testing.T) {
	tree, err := ParseLevelOrder(scenarioLevelOrder)
	require.NoError(t, err)

	text, err := FormatNestedJSON(tree)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "{"))

	parsed, err := ParseJSON([]byte(text))
	require.NoError(t, err)
	assert.True(t, binarytree.Equal(tree, parsed))
}

func TestParse_DetectsFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat(` {"value": 1}`))
	assert.Equal(t, FormatJSON, DetectFormat("null"))
	assert.Equal(t, FormatLevel, DetectFormat("[1,2]"))
	assert.Equal(t, FormatLevel, DetectFormat("[null]"))

	tree, err := Parse(`{"value": 7}`, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "7", tree.String())

	_, err = Parse("[1]", FormatJSON)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for input, expected := range map[string]Format{"": FormatAuto, "AUTO": FormatAuto, " level ": FormatLevel, "json": FormatJSON} {
		f, err := ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, expected, f)
	}
	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}

func TestBuildExample(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		shape    string
		expected []string
	}{
		{name: "scenario", size: 100, expected: scenarioPostorder},
		{name: "left-chain", size: 3, shape: "1(2(3,-),-)", expected: []string{"3", "2", "1"}},
		{name: "right-chain", size: 3, shape: "1(-,2(-,3))", expected: []string{"3", "2", "1"}},
		{name: "zigzag", size: 4, shape: "1(2(-,3(4,-)),-)", expected: []string{"4", "3", "2", "1"}},
		{name: "complete", size: 6, shape: "1(2(4,5),3(6,-))", expected: []string{"4", "5", "2", "6", "3", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := BuildExample(tt.name, tt.size)
			require.NoError(t, err)
			if tt.shape != "" {
				assert.Equal(t, tt.shape, tree.String())
			}
			values, err := tree.Values()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestBuildExample_DefaultsAndUnknown(t *testing.T) {
	tree, err := BuildExample("complete", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultExampleSize, tree.Len())

	_, err = BuildExample("bushy", 3)
	assert.ErrorContains(t, err, "unknown example")

	assert.Equal(t, []string{"complete", "left-chain", "right-chain", "scenario", "zigzag"}, ExampleNames())
	assert.Len(t, Examples(), 5)
}
