package binarytree

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// Visitor receives node values in post-order. Returning an error stops the
// visits; the tree is restored before the error reaches the caller.
type Visitor[T any] func(T) error

// Stats describes the work done by one traversal.
type Stats struct {
	Visits      int `json:"visits"`
	Threads     int `json:"threads"`
	PeakThreads int `json:"peak_threads"`
	ChainLinks  int `json:"chain_links"`
}

// TraversePostorder calls visit once per node, left subtree then right
// subtree then node, without recursion and without a stack. Links are
// borrowed during the call and the tree is structurally identical on return,
// including when visit fails or panics.
//
// The caller must not read or change the tree from another goroutine while
// the traversal runs. A nil visit only walks the tree.
func (t *Tree[T]) TraversePostorder(visit Visitor[T]) error {
	_, err := t.TraversePostorderStats(visit)
	return err
}

// TraversePostorderStats is TraversePostorder and also reports Stats.
func (t *Tree[T]) TraversePostorderStats(visit Visitor[T]) (Stats, error) {
	if !t.busy.CompareAndSwap(false, true) {
		return Stats{}, ErrTraversalInProgress
	}
	defer t.busy.Store(false)

	if t.root == NoNode {
		return Stats{}, nil
	}

	t.nodes[sentinel].left = t.root
	defer func() {
		t.nodes[sentinel].left = NoNode
	}()

	slog.Debug("post-order traversal started", "nodes", t.Len())
	w := &walker[T]{tree: t, visit: visit, cur: sentinel}
	err := w.run()
	if errors.Is(err, ErrStructuralInvariant) {
		slog.Debug("post-order traversal aborted", "error", err)
	} else {
		slog.Debug("post-order traversal finished", "visits", w.stats.Visits, "threads", w.stats.Threads, "peak_threads", w.stats.PeakThreads)
	}
	return w.stats, err
}

// Postorder returns the values in post-order as a sequence. Breaking out of
// the loop restores the tree before the loop statement completes. A traversal
// error is yielded once, with the zero value, as the last pair.
func (t *Tree[T]) Postorder() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		err := t.TraversePostorder(func(v T) error {
			if !yield(v, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			var zero T
			yield(zero, err)
		}
	}
}

// Values returns all values in post-order.
func (t *Tree[T]) Values() ([]T, error) {
	values := make([]T, 0, t.Len())
	err := t.TraversePostorder(func(v T) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// walker is the traversal state: the current node and whether visits are
// still delivered. Once draining, the walk continues only to take down the
// remaining threads.
type walker[T any] struct {
	tree     *Tree[T]
	visit    Visitor[T]
	cur      NodeID
	live     int
	draining bool
	stats    Stats
}

// run drains the tree when the visitor leaves the loop abnormally, by panic
// or by runtime.Goexit, then lets the panic or Goexit continue.
func (w *walker[T]) run() (err error) {
	finished := false
	defer func() {
		if finished {
			return
		}
		r := recover()
		w.draining = true
		if err := w.loop(); err != nil {
			slog.Error("cannot restore tree after visitor exited", "error", err)
		}
		if r != nil {
			panic(r)
		}
	}()
	err = w.loop()
	finished = true
	return err
}

func (w *walker[T]) loop() error {
	var failure error
	for w.cur != NoNode {
		err := w.step()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrStructuralInvariant) {
			return w.combine(failure, err)
		}
		failure = err
		w.draining = true
	}
	if w.live != 0 {
		return w.combine(failure, invariantf("%d threads left after traversal", w.live))
	}
	return failure
}

// combine keeps the error that started a drain when the drain itself fails.
func (w *walker[T]) combine(failure, err error) error {
	if failure == nil {
		return err
	}
	return multierror.Append(failure, err)
}

func (w *walker[T]) step() error {
	t := w.tree
	cur := w.cur
	left := t.nodes[cur].left
	if left == NoNode {
		w.cur = t.next(cur)
		return nil
	}

	p, err := t.predecessor(cur)
	if err != nil {
		return err
	}

	if t.nodes[p].link == NoNode {
		if err := t.installThread(p, cur); err != nil {
			return err
		}
		w.live++
		w.stats.Threads++
		w.stats.PeakThreads = max(w.stats.PeakThreads, w.live)
		w.cur = left
		return nil
	}

	if err := t.removeThread(p, cur); err != nil {
		return err
	}
	w.live--
	w.cur = t.next(cur)
	if w.draining {
		return nil
	}
	return w.emit(left, p)
}

// emit visits the spine from start to end bottom-up. The chain is restored
// on every exit path.
func (w *walker[T]) emit(start, end NodeID) error {
	t := w.tree
	written, err := t.reverseChain(start, end)
	if err != nil {
		return err
	}
	defer t.restoreChain(end)
	w.stats.ChainLinks += written

	return t.walkChain(end, func(v T) error {
		if w.visit != nil {
			if err := w.visit(v); err != nil {
				return &VisitError[T]{Value: v, Err: err}
			}
		}
		w.stats.Visits++
		return nil
	})
}
