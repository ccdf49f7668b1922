// Package subproblems divides a global cluster-matching problem into
// independent connected components so the assignment solver only ever runs
// on small inputs.
//
// A before-cluster and an after-cluster are adjacent when their item sets
// intersect. A connected component of this bipartite relation contains every
// cluster that could possibly be matched to another one in it, so components
// can be solved in isolation without changing the global result.
package subproblems

import (
	"iter"

	"github.com/CERNDocumentServer/cds-beard/internal/unionfind"
	"github.com/CERNDocumentServer/cds-beard/pkg/partition"
)

// Subproblem is the restriction of the matching problem to one connected
// component. Either side may be empty: a cluster sharing no item with the
// opposite partition forms a singleton subproblem.
//
// BeforeKeys and AfterKeys hold the component's cluster keys in canonical
// order. The solver builds its cost and constraint matrices from these
// slices and decodes the solution against them, so row/column indices stay
// aligned across one run.
type Subproblem[B comparable, A comparable, I comparable] struct {
	Before partition.Partition[B, I]
	After  partition.Partition[A, I]

	BeforeKeys []B
	AfterKeys  []A
}

// Divide splits the two partitions into subproblems, one per connected
// component. Every before-key and after-key appears in exactly one
// subproblem, and the union of all subproblem items equals the union of the
// input items.
//
// The returned sequence is finite, deterministic, and safe to iterate more
// than once. The input partitions are not mutated; subproblems share the
// input item sets.
func Divide[B comparable, A comparable, I comparable](
	before partition.Partition[B, I],
	after partition.Partition[A, I],
) iter.Seq[Subproblem[B, A, I]] {
	return func(yield func(Subproblem[B, A, I]) bool) {
		beforeKeys := before.Keys()
		afterKeys := after.Keys()

		// One node per cluster: before clusters first, then after clusters.
		nb := len(beforeKeys)
		uf := unionfind.New(nb + len(afterKeys))

		// Clusters sharing an item end up in the same set.
		itemOwner := make(map[I]int)
		link := func(node int, items partition.Set[I]) {
			for item := range items {
				if owner, seen := itemOwner[item]; seen {
					uf.Union(owner, node)
				} else {
					itemOwner[item] = node
				}
			}
		}
		for i, key := range beforeKeys {
			link(i, before[key])
		}
		for j, key := range afterKeys {
			link(nb+j, after[key])
		}

		// Group clusters by component root, components ordered by their
		// first cluster in canonical key order.
		componentOf := make(map[int]int)
		var components []*Subproblem[B, A, I]
		componentFor := func(node int) *Subproblem[B, A, I] {
			root := uf.Find(node)
			idx, ok := componentOf[root]
			if !ok {
				idx = len(components)
				componentOf[root] = idx
				components = append(components, &Subproblem[B, A, I]{
					Before: make(partition.Partition[B, I]),
					After:  make(partition.Partition[A, I]),
				})
			}
			return components[idx]
		}
		for i, key := range beforeKeys {
			sub := componentFor(i)
			sub.Before[key] = before[key]
			sub.BeforeKeys = append(sub.BeforeKeys, key)
		}
		for j, key := range afterKeys {
			sub := componentFor(nb + j)
			sub.After[key] = after[key]
			sub.AfterKeys = append(sub.AfterKeys, key)
		}

		for _, sub := range components {
			if !yield(*sub) {
				return
			}
		}
	}
}
