// Package matching reconciles two clusterings of the same signature
// universe. It divides the global problem into independent subproblems,
// solves each with the assignment solver, and aggregates the buckets into a
// single result reporting which clusters were matched, which are new, and
// which were removed.
package matching

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/CERNDocumentServer/cds-beard/pkg/logging"
	"github.com/CERNDocumentServer/cds-beard/pkg/partition"
	"github.com/CERNDocumentServer/cds-beard/pkg/solver"
	"github.com/CERNDocumentServer/cds-beard/pkg/subproblems"
)

// Matcher reconciles a before-clustering with an after-clustering.
type Matcher[B comparable, A comparable, I comparable] interface {
	// Match classifies every cluster of both partitions as matched, new,
	// or removed. The inputs are never mutated.
	Match(ctx context.Context, before map[B][]I, after map[A][]I) (*Result[B, A], error)
}

// matcher is the default implementation of Matcher.
type matcher[B comparable, A comparable, I comparable] struct {
	workers int
	logger  *zerolog.Logger
}

// New creates a new Matcher with options.
func New[B comparable, A comparable, I comparable](opts ...Option) (Matcher[B, A, I], error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &matcher[B, A, I]{
		workers: options.workers,
		logger:  options.logger,
	}, nil
}

// Match is a convenience wrapper running a single matching with defaults.
func Match[B comparable, A comparable, I comparable](
	ctx context.Context,
	before map[B][]I,
	after map[A][]I,
) (*Result[B, A], error) {
	m, err := New[B, A, I]()
	if err != nil {
		return nil, err
	}
	return m.Match(ctx, before, after)
}

// Match implements Matcher.
func (m *matcher[B, A, I]) Match(ctx context.Context, before map[B][]I, after map[A][]I) (*Result[B, A], error) {
	logger := m.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	result := &Result[B, A]{}
	result.Metadata.StartTime = time.Now()

	// Normalizing into sets copies the inputs; nothing downstream touches
	// the caller's maps.
	pb := partition.FromLists(before)
	pa := partition.FromLists(after)

	subs := slices.Collect(subproblems.Divide(pb, pa))
	logger.Debug().
		Int("before_clusters", len(pb)).
		Int("after_clusters", len(pa)).
		Int("subproblems", len(subs)).
		Msg("Divided matching problem")

	outcomes, err := m.solveAll(ctx, subs)
	if err != nil {
		return nil, err
	}

	for _, out := range outcomes {
		result.Matched = append(result.Matched, out.Matched...)
		result.New = append(result.New, out.New...)
		result.Removed = append(result.Removed, out.Removed...)
	}
	sortBuckets(result)

	items := pb.Items()
	for item := range pa.Items() {
		items.Add(item)
	}
	result.Metadata.EndTime = time.Now()
	result.Metadata.Duration = result.Metadata.EndTime.Sub(result.Metadata.StartTime)
	result.Metadata.Subproblems = len(subs)
	result.Metadata.Stats = Statistics{
		BeforeClusters: len(pb),
		AfterClusters:  len(pa),
		Items:          items.Len(),
	}

	logger.Info().
		Int("matched", len(result.Matched)).
		Int("new", len(result.New)).
		Int("removed", len(result.Removed)).
		Dur("duration", result.Metadata.Duration).
		Msg("Matching completed")

	return result, nil
}

// solveAll runs the solver over every subproblem, in order or across a
// bounded worker pool. A single solver failure fails the whole run; no
// partial assignment is ever reported.
func (m *matcher[B, A, I]) solveAll(
	ctx context.Context,
	subs []subproblems.Subproblem[B, A, I],
) ([]*solver.Outcome[B, A], error) {
	outcomes := make([]*solver.Outcome[B, A], len(subs))

	if m.workers <= 1 || len(subs) <= 1 {
		for i, sub := range subs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out, err := solver.Solve(sub)
			if err != nil {
				return nil, err
			}
			outcomes[i] = out
		}
		return outcomes, nil
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for range min(m.workers, len(subs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				out, err := solver.Solve(subs[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				outcomes[i] = out
			}
		}()
	}

	for i := range subs {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return outcomes, nil
}

// sortBuckets orders the result buckets canonically so the same input always
// produces the same output sequence regardless of map iteration order.
func sortBuckets[B comparable, A comparable](result *Result[B, A]) {
	slices.SortFunc(result.Matched, func(a, b solver.Pair[B, A]) int {
		ra, rb := partition.KeyRank(a.Before), partition.KeyRank(b.Before)
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		default:
			return 0
		}
	})
	partition.SortKeys(result.New)
	partition.SortKeys(result.Removed)
}
