// Package unionfind implements a disjoint-set forest over the dense index
// space [0, n), with union by rank and path compression.
//
// It backs the spanning-subgraph builder in package kruskal, where each
// location is assigned one index.
//
// Complexity: Find and Union run in O(α(n)) amortized time, where α is the
// inverse Ackermann function. Memory: O(n).
package unionfind

// UnionFind partitions [0, n) into disjoint sets.
// The zero value is an empty structure; use New to size it.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// New returns a UnionFind with n singleton sets {0}, {1}, …, {n-1}.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the representative of the set containing p.
//
// Two passes: walk to the root, then walk again re-pointing every visited
// node directly at it. Iterative, so deep chains cannot exhaust the stack.
// Panics if p is outside [0, n).
func (uf *UnionFind) Find(p int) int {
	root := p
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	for p != root {
		next := uf.parent[p]
		uf.parent[p] = root
		p = next
	}

	return root
}

// Union merges the sets containing p and q.
//
// No-op when they already share a root. Otherwise the root with strictly
// smaller rank is attached under the other; on a tie q's root goes under
// p's root and that root's rank grows by one.
func (uf *UnionFind) Union(p, q int) {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return
	}

	switch {
	case uf.rank[rootP] < uf.rank[rootQ]:
		uf.parent[rootP] = rootQ
	case uf.rank[rootP] > uf.rank[rootQ]:
		uf.parent[rootQ] = rootP
	default:
		uf.parent[rootQ] = rootP
		uf.rank[rootP]++
	}
	uf.count--
}

// Connected reports whether p and q belong to the same set.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Len returns n, the size of the index space.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
