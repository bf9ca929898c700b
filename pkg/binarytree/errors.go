package binarytree

import (
	"errors"
	"fmt"
)

var (
	// ErrTraversalInProgress is returned when a traversal or a link change is
	// attempted while another traversal holds the tree.
	ErrTraversalInProgress = errors.New("traversal in progress")

	// ErrStructuralInvariant signals a corrupted tree or a traversal bug. It is
	// never retried.
	ErrStructuralInvariant = errors.New("structural invariant violated")

	ErrOwnership   = errors.New("ownership violation")
	ErrUnknownNode = errors.New("unknown node")

	// errStop ends a traversal early without reporting a failure.
	errStop = errors.New("stop")
)

// VisitError reports a visitor failure together with the value being visited.
// The tree has been restored by the time a VisitError is returned.
type VisitError[T any] struct {
	Value T
	Err   error
}

func (e *VisitError[T]) Error() string {
	return fmt.Sprintf("cannot visit %v: %v", e.Value, e.Err)
}

func (e *VisitError[T]) Unwrap() error {
	return e.Err
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructuralInvariant, fmt.Sprintf(format, args...))
}
