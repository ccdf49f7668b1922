package beard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	beard "github.com/CERNDocumentServer/cds-beard"
	"github.com/CERNDocumentServer/cds-beard/pkg/matching"
	"github.com/CERNDocumentServer/cds-beard/pkg/solver"
)

func TestMatchFacade(t *testing.T) {
	result, err := beard.Match(context.Background(),
		map[string][]string{"2108556": {"sig_a", "sig_b"}},
		map[string][]string{"cluster_0": {"sig_a", "sig_b"}, "cluster_1": {"sig_c"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []solver.Pair[string, string]{
		{Before: "2108556", After: "cluster_0"},
	}, result.Matched)
	assert.Equal(t, []string{"cluster_1"}, result.New)
	assert.Empty(t, result.Removed)
}

func TestMatchFacadeOptions(t *testing.T) {
	_, err := beard.Match(context.Background(),
		map[int][]int{},
		map[int][]int{},
		matching.WithWorkers(0),
	)
	assert.Error(t, err)
}
