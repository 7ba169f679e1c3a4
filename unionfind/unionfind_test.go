package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadmap/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	uf := unionfind.New(4)
	assert.Equal(t, 4, uf.Len())
	assert.Equal(t, 4, uf.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, uf.Find(i), "every index starts as its own root")
	}

	empty := unionfind.New(-3)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Count())
}

func TestUnion_TieAttachesQUnderP(t *testing.T) {
	uf := unionfind.New(2)
	uf.Union(0, 1)
	assert.Equal(t, 0, uf.Find(1), "rank tie: q's root goes under p's root")
	assert.Equal(t, 0, uf.Find(0))

	uf = unionfind.New(2)
	uf.Union(1, 0)
	assert.Equal(t, 1, uf.Find(0))
}

func TestUnion_SmallerRankGoesUnder(t *testing.T) {
	uf := unionfind.New(3)
	uf.Union(0, 1) // root 0, rank 1
	uf.Union(2, 0) // rank(2)=0 < rank(0)=1 → 2 under 0
	assert.Equal(t, 0, uf.Find(2))

	uf = unionfind.New(3)
	uf.Union(1, 2) // root 1, rank 1
	uf.Union(1, 0) // rank(1)=1 > rank(0)=0 → 0 under 1
	assert.Equal(t, 1, uf.Find(0))
}

func TestUnion_NoOpOnSameSet(t *testing.T) {
	uf := unionfind.New(3)
	uf.Union(0, 1)
	assert.Equal(t, 2, uf.Count())
	uf.Union(1, 0)
	assert.Equal(t, 2, uf.Count(), "union inside one set must not change the count")
	assert.True(t, uf.Connected(0, 1))
	assert.False(t, uf.Connected(0, 2))
}

func TestFind_LongChain(t *testing.T) {
	const n = 100000
	uf := unionfind.New(n)
	// Pair-wise unions merge every index into one set.
	for step := 1; step < n; step *= 2 {
		for i := 0; i+step < n; i += 2 * step {
			uf.Union(i, i+step)
		}
	}
	assert.Equal(t, 1, uf.Count())
	root := uf.Find(n - 1)
	for _, p := range []int{0, 1, n / 2, n - 1} {
		assert.Equal(t, root, uf.Find(p))
	}
}
