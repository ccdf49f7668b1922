package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingletons(t *testing.T) {
	uf := New(3)

	assert.False(t, uf.Connected(0, 1))
	assert.Equal(t, 2, uf.Find(2))
}

func TestUnion(t *testing.T) {
	uf := New(5)

	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(1, 2))
	assert.False(t, uf.Union(0, 2)) // already joined

	assert.True(t, uf.Connected(0, 2))
	assert.False(t, uf.Connected(0, 3))
}

func TestTransitiveComponents(t *testing.T) {
	uf := New(6)
	uf.Union(0, 3)
	uf.Union(1, 3)
	uf.Union(4, 5)

	assert.True(t, uf.Connected(0, 1))
	assert.True(t, uf.Connected(4, 5))
	assert.False(t, uf.Connected(1, 4))
	assert.Equal(t, uf.Find(0), uf.Find(3))
}
