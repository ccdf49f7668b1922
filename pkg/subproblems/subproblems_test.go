package subproblems_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CERNDocumentServer/cds-beard/pkg/partition"
	"github.com/CERNDocumentServer/cds-beard/pkg/subproblems"
)

func divide[B, A, I comparable](before map[B][]I, after map[A][]I) []subproblems.Subproblem[B, A, I] {
	return slices.Collect(subproblems.Divide(
		partition.FromLists(before),
		partition.FromLists(after),
	))
}

func TestSplitting(t *testing.T) {
	before := map[int][]string{
		1: {"A", "B", "C"},
		2: {"D", "E"},
		3: {"F"},
		4: {"G"},
		5: {"H"},
	}
	after := map[int][]string{
		6:  {"A", "B"},
		7:  {"C", "D"},
		8:  {"E", "F"},
		9:  {"G"},
		10: {"I"},
	}

	subs := divide(before, after)
	require.Len(t, subs, 4)

	// Clusters 1-3 and 6-8 are chained through shared items C, D, E and F.
	assert.Equal(t, []int{1, 2, 3}, subs[0].BeforeKeys)
	assert.Equal(t, []int{6, 7, 8}, subs[0].AfterKeys)

	assert.Equal(t, []int{4}, subs[1].BeforeKeys)
	assert.Equal(t, []int{9}, subs[1].AfterKeys)

	// Clusters with no shared item are singleton subproblems.
	assert.Equal(t, []int{5}, subs[2].BeforeKeys)
	assert.Empty(t, subs[2].AfterKeys)

	assert.Empty(t, subs[3].BeforeKeys)
	assert.Equal(t, []int{10}, subs[3].AfterKeys)
}

func TestEmptyValue(t *testing.T) {
	before := map[int][]string{
		1: {"A", "B", "C"},
		2: {},
	}
	after := map[int][]string{
		3: {"A", "B"},
		4: {"C", "D"},
	}

	subs := divide(before, after)
	require.Len(t, subs, 2)

	assert.Equal(t, []int{1}, subs[0].BeforeKeys)
	assert.Equal(t, []int{3, 4}, subs[0].AfterKeys)

	// An empty cluster shares nothing, so it stands alone.
	assert.Equal(t, []int{2}, subs[1].BeforeKeys)
	assert.Empty(t, subs[1].AfterKeys)
	assert.Equal(t, 0, subs[1].Before[2].Len())
}

func TestEveryKeyAppearsExactlyOnce(t *testing.T) {
	before := map[string][]int{
		"p1": {1, 2, 3},
		"p2": {4},
		"p3": {},
		"p4": {5, 6},
	}
	after := map[string][]int{
		"q1": {2, 4},
		"q2": {6},
		"q3": {7},
	}

	subs := divide(before, after)

	var beforeSeen, afterSeen []string
	for _, sub := range subs {
		beforeSeen = append(beforeSeen, sub.BeforeKeys...)
		afterSeen = append(afterSeen, sub.AfterKeys...)
	}
	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "p4"}, beforeSeen)
	assert.ElementsMatch(t, []string{"q1", "q2", "q3"}, afterSeen)
}

func TestItemUnionIsPreserved(t *testing.T) {
	before := partition.FromLists(map[int][]string{1: {"A", "B"}, 2: {"C"}})
	after := partition.FromLists(map[int][]string{3: {"B", "D"}})

	union := make(partition.Set[string])
	for sub := range subproblems.Divide(before, after) {
		for item := range sub.Before.Items() {
			union.Add(item)
		}
		for item := range sub.After.Items() {
			union.Add(item)
		}
	}

	assert.Equal(t, 4, union.Len())
	for _, item := range []string{"A", "B", "C", "D"} {
		assert.True(t, union.Contains(item))
	}
}

func TestTypeSensitiveKeysStaySeparate(t *testing.T) {
	// The numeric key 1 and the textual key "1" are distinct clusters.
	before := partition.FromLists(map[any][]string{1: {"A"}, "1": {"B"}})
	after := partition.FromLists(map[any][]string{2: {"A"}})

	subs := slices.Collect(subproblems.Divide(before, after))
	require.Len(t, subs, 2)

	assert.Equal(t, []any{1}, subs[0].BeforeKeys)
	assert.Equal(t, []any{2}, subs[0].AfterKeys)
	assert.Equal(t, []any{"1"}, subs[1].BeforeKeys)
	assert.Empty(t, subs[1].AfterKeys)
}

func TestDivideIsRestartable(t *testing.T) {
	before := partition.FromLists(map[int][]string{1: {"A"}, 2: {"B"}})
	after := partition.FromLists(map[int][]string{3: {"A"}, 4: {"C"}})

	seq := subproblems.Divide(before, after)
	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].BeforeKeys, second[i].BeforeKeys)
		assert.Equal(t, first[i].AfterKeys, second[i].AfterKeys)
	}
}

func TestDivideEarlyStop(t *testing.T) {
	before := partition.FromLists(map[int][]string{1: {"A"}, 2: {"B"}})
	after := partition.FromLists(map[int][]string{})

	count := 0
	for range subproblems.Divide(before, after) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
