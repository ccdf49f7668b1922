// Package beard reconciles two clusterings of the same set of author
// signatures, the state before and after re-running the disambiguation
// pipeline, and reports how clusters evolved: which before-cluster
// continues as which after-cluster, which after-clusters are newly formed,
// and which before-clusters disappeared.
//
// The heavy lifting lives in the pkg subpackages: pkg/subproblems divides
// the global problem into independent connected components, pkg/solver
// classifies the clusters of one component through a linear assignment
// problem, and pkg/matching orchestrates the run. This package is a thin
// facade over them.
//
//	result, err := beard.Match(ctx,
//	    map[string][]string{"2108556": {"sig_a", "sig_b"}},
//	    map[string][]string{"cluster_0": {"sig_a", "sig_b"}},
//	)
package beard

import (
	"context"

	"github.com/CERNDocumentServer/cds-beard/pkg/matching"
)

// Match reconciles the before and after partitions. Cluster keys are
// compared with Go equality, so keys of different dynamic types never
// collide even when they print the same. The inputs are never mutated.
func Match[B comparable, A comparable, I comparable](
	ctx context.Context,
	before map[B][]I,
	after map[A][]I,
	opts ...matching.Option,
) (*matching.Result[B, A], error) {
	m, err := matching.New[B, A, I](opts...)
	if err != nil {
		return nil, err
	}
	return m.Match(ctx, before, after)
}
