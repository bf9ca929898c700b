package reports

import (
	"testing"

	"github.com/mholzen/postorder/pkg/binarytree"
	"github.com/mholzen/postorder/pkg/treeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBuildPostorderReport_Scenario(t *testing.T) {
	tree, err := treeio.BuildExample("scenario", 0)
	require.NoError(t, err)

	report, err := BuildPostorderReport(tree, Options{Verify: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"8", "4", "11", "9", "12", "10", "5", "2", "6", "7", "3", "1"}, report.Values)
	assert.Equal(t, "1(2(4(8,-),5(9,10(11,12))),3(6,7))", report.Shape)
	assert.Equal(t, 12, report.Stats.Visits)
	assert.True(t, report.Verified)
	assert.True(t, report.Restored)
}

func TestBuildPostorderReport_Empty(t *testing.T) {
	report, err := BuildPostorderReport(binarytree.New[string](), Options{Verify: true})
	require.NoError(t, err)
	assert.Empty(t, report.Values)
	assert.NotNil(t, report.Values)
	assert.Equal(t, "-", report.Shape)
	assert.True(t, report.Restored)
}

func TestBuildPostorderReport_MaxNodes(t *testing.T) {
	tree, err := treeio.BuildExample("complete", 10)
	require.NoError(t, err)

	_, err = BuildPostorderReport(tree, Options{MaxNodes: 9})
	assert.ErrorIs(t, err, ErrTooLarge)

	report, err := BuildPostorderReport(tree, Options{MaxNodes: 10})
	require.NoError(t, err)
	assert.Len(t, report.Values, 10)
	assert.False(t, report.Verified)
}

func TestSummary_GroupsDigits(t *testing.T) {
	report := &PostorderReport{
		Stats:    binarytree.Stats{Visits: 1234567, Threads: 1000, PeakThreads: 3, ChainLinks: 12},
		Verified: true,
		Restored: true,
	}

	assert.Equal(t,
		"1,234,567 nodes visited, 1,000 threads installed (peak 3 live), 12 chain links reversed, tree restored",
		report.Summary(language.English))
	assert.Contains(t, report.Summary(language.German), "1.234.567 nodes visited")
}

func TestParseLanguage(t *testing.T) {
	tag, err := ParseLanguage("")
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)

	tag, err = ParseLanguage("de-CH")
	require.NoError(t, err)
	assert.Equal(t, "de-CH", tag.String())

	_, err = ParseLanguage("not a language")
	assert.Error(t, err)
}
