package reports

import (
	"errors"
	"fmt"

	"github.com/mholzen/postorder/pkg/binarytree"
)

// ErrTooLarge is returned when a tree exceeds Options.MaxNodes.
var ErrTooLarge = errors.New("tree too large")

// Options controls how a PostorderReport is built.
type Options struct {
	// Verify clones the tree first and checks that the traversal left it
	// unchanged.
	Verify bool

	// MaxNodes rejects larger trees. Zero means no limit.
	MaxNodes int
}

// PostorderReport is the outcome of one post-order traversal.
type PostorderReport struct {
	Shape    string           `json:"shape"`
	Values   []string         `json:"values"`
	Stats    binarytree.Stats `json:"stats"`
	Verified bool             `json:"verified"`
	Restored bool             `json:"restored,omitempty"`
}

// BuildPostorderReport traverses tree and records its values and counters.
func BuildPostorderReport(tree *binarytree.Tree[string], opts Options) (*PostorderReport, error) {
	if opts.MaxNodes > 0 && tree.Len() > opts.MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit is %d", ErrTooLarge, tree.Len(), opts.MaxNodes)
	}

	report := &PostorderReport{
		Shape:  tree.String(),
		Values: make([]string, 0, tree.Len()),
	}

	var before *binarytree.Tree[string]
	if opts.Verify {
		before = tree.Clone()
	}

	stats, err := tree.TraversePostorderStats(func(v string) error {
		report.Values = append(report.Values, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot traverse tree: %w", err)
	}
	report.Stats = stats

	if opts.Verify {
		report.Verified = true
		if err := tree.CheckInvariants(); err != nil {
			return nil, fmt.Errorf("tree not restored: %w", err)
		}
		if !binarytree.Equal(before, tree) {
			return nil, fmt.Errorf("tree not restored: shape changed from %s to %s", before, tree)
		}
		report.Restored = true
	}
	return report, nil
}
