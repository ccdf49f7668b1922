// Package partition defines the data model shared by the matching pipeline:
// item sets, partitions (cluster key to item set mappings), and the canonical
// key ordering used to keep runs reproducible.
//
// Cluster keys are compared with Go equality, which is type-sensitive: with
// a key type of `any`, the numeric key 1 and the textual key "1" name two
// distinct clusters even though they print the same. This is a load-bearing
// invariant of the matching contract.
package partition

import (
	"fmt"
	"sort"
)

// Set is a set of item identifiers.
type Set[I comparable] map[I]struct{}

// NewSet creates a set from the given items. Duplicates collapse.
func NewSet[I comparable](items ...I) Set[I] {
	s := make(Set[I], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts an item into the set.
func (s Set[I]) Add(item I) {
	s[item] = struct{}{}
}

// Contains reports whether the item is in the set.
func (s Set[I]) Contains(item I) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set.
func (s Set[I]) Len() int {
	return len(s)
}

// Clone returns a copy of the set.
func (s Set[I]) Clone() Set[I] {
	clone := make(Set[I], len(s))
	for item := range s {
		clone[item] = struct{}{}
	}
	return clone
}

// IntersectionLen returns the number of items present in both sets.
func (s Set[I]) IntersectionLen(other Set[I]) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for item := range small {
		if large.Contains(item) {
			count++
		}
	}
	return count
}

// SymmetricDifferenceLen returns the number of items present in exactly one
// of the two sets.
func (s Set[I]) SymmetricDifferenceLen(other Set[I]) int {
	return len(s) + len(other) - 2*s.IntersectionLen(other)
}

// Partition maps cluster keys to sets of item identifiers. It represents one
// clustering state of the signature universe.
type Partition[K comparable, I comparable] map[K]Set[I]

// FromLists builds a partition from raw item collections. Duplicate items
// within one cluster collapse; empty collections yield empty sets.
func FromLists[K comparable, I comparable](clusters map[K][]I) Partition[K, I] {
	p := make(Partition[K, I], len(clusters))
	for key, items := range clusters {
		p[key] = NewSet(items...)
	}
	return p
}

// Keys returns the cluster keys in canonical order.
func (p Partition[K, I]) Keys() []K {
	keys := make([]K, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	SortKeys(keys)
	return keys
}

// Items returns the union of all clusters' item sets.
func (p Partition[K, I]) Items() Set[I] {
	union := make(Set[I])
	for _, cluster := range p {
		for item := range cluster {
			union.Add(item)
		}
	}
	return union
}

// Lists renders the partition back into raw item collections, one slice per
// cluster. Item order within a slice is unspecified.
func (p Partition[K, I]) Lists() map[K][]I {
	lists := make(map[K][]I, len(p))
	for key, cluster := range p {
		items := make([]I, 0, len(cluster))
		for item := range cluster {
			items = append(items, item)
		}
		lists[key] = items
	}
	return lists
}

// Clone returns a deep copy of the partition.
func (p Partition[K, I]) Clone() Partition[K, I] {
	clone := make(Partition[K, I], len(p))
	for key, cluster := range p {
		clone[key] = cluster.Clone()
	}
	return clone
}

// SortKeys orders keys canonically: by dynamic type name first, then by
// printed value. Map iteration order is randomized per run, so every place
// that needs a reproducible cluster order sorts through here. The order
// itself carries no meaning beyond determinism.
func SortKeys[K comparable](keys []K) {
	ranks := make([]string, len(keys))
	for i, key := range keys {
		ranks[i] = KeyRank(key)
	}
	sort.Sort(&byRank[K]{keys: keys, ranks: ranks})
}

// KeyRank renders a key as its canonical sort string. Two keys of different
// dynamic types never compare equal, matching key equality semantics.
func KeyRank(key any) string {
	return fmt.Sprintf("%T\x00%v", key, key)
}

type byRank[K comparable] struct {
	keys  []K
	ranks []string
}

func (b *byRank[K]) Len() int           { return len(b.keys) }
func (b *byRank[K]) Less(i, j int) bool { return b.ranks[i] < b.ranks[j] }
func (b *byRank[K]) Swap(i, j int) {
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
	b.ranks[i], b.ranks[j] = b.ranks[j], b.ranks[i]
}
