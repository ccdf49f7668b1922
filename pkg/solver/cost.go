package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/CERNDocumentServer/cds-beard/pkg/partition"
	"github.com/CERNDocumentServer/cds-beard/pkg/subproblems"
)

// costMatrix builds the assignment cost matrix for one subproblem. Rows are
// the real before-clusters followed by one virtual "appear" cluster per
// after-cluster; columns are the after-clusters, both in the subproblem's
// key order.
//
// The cost of pairing clusters b and a is
//
//	-|b ∩ a| - 1/(|after| * (1 + |b Δ a|))
//
// The intersection term dominates: one extra shared item always beats any
// tie-break. The second term is strictly smaller than 1/|after| and only
// discriminates between candidates with equal overlap, preferring the pair
// with the smaller symmetric difference. It divides by the after-side
// cluster count only; the asymmetry is part of the contract.
//
// A virtual row has no overlap with anything, so assigning after-cluster a
// to it costs -1/(|after| * (1 + |a|)): the price of declaring a new.
func costMatrix[B comparable, A comparable, I comparable](sub subproblems.Subproblem[B, A, I]) *mat.Dense {
	na := len(sub.AfterKeys)
	rows := len(sub.BeforeKeys) + na

	cost := mat.NewDense(rows, na, nil)
	for j, afterKey := range sub.AfterKeys {
		afterCluster := sub.After[afterKey]
		for i, beforeKey := range sub.BeforeKeys {
			cost.Set(i, j, pairCost(sub.Before[beforeKey], afterCluster, na))
		}
		// Every virtual row prices column j the same: no overlap, only the
		// tie-break term.
		virtual := pairCost(nil, afterCluster, na)
		for v := 0; v < na; v++ {
			cost.Set(len(sub.BeforeKeys)+v, j, virtual)
		}
	}
	return cost
}

// pairCost computes the matching cost between one before-cluster (nil for a
// virtual empty cluster) and one after-cluster.
func pairCost[I comparable](before, after partition.Set[I], afterCount int) float64 {
	intersection := before.IntersectionLen(after)
	symmetricDiff := before.SymmetricDifferenceLen(after)
	return -float64(intersection) - 1.0/(float64(afterCount)*(1.0+float64(symmetricDiff)))
}
