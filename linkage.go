package pharmkit

import "math"

// CompleteLinkage performs agglomerative hierarchical clustering with
// complete linkage (the distance between two clusters is the maximum
// pairwise distance between their members) over a condensed distance
// vector, as produced by Condensed, for n observations.
//
// The result is a dendrogram in scipy linkage format: each row is
// [left, right, distance, mergedSize], with merged cluster IDs starting at
// n and incrementing per row. Returns nil for n < 2.
//
// Ties are broken toward the lowest cluster-ID pair, so the output is
// deterministic for a given input.
func CompleteLinkage(condensed []float64, n int) [][4]float64 {
	if n < 2 {
		return nil
	}

	// Inter-cluster distance table indexed by dendrogram cluster ID
	// (leaves 0..n-1, merged clusters n..2n-2). Complete linkage admits the
	// Lance-Williams update d(new, k) = max(d(i, k), d(j, k)), so each merge
	// costs O(n) after the pair search.
	total := 2*n - 1
	dist := make([][]float64, total)
	for i := range dist {
		dist[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := condensed[condensedIndex(n, i, j)]
			dist[i][j] = v
			dist[j][i] = v
		}
	}

	active := make([]bool, total)
	size := make([]int, total)
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
	}

	rows := make([][4]float64, 0, n-1)
	next := n

	for step := 0; step < n-1; step++ {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < next; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < next; j++ {
				if active[j] && dist[i][j] < best {
					bi, bj, best = i, j, dist[i][j]
				}
			}
		}

		size[next] = size[bi] + size[bj]
		rows = append(rows, [4]float64{float64(bi), float64(bj), best, float64(size[next])})

		for k := 0; k < next; k++ {
			if active[k] && k != bi && k != bj {
				d := math.Max(dist[bi][k], dist[bj][k])
				dist[next][k] = d
				dist[k][next] = d
			}
		}
		active[bi] = false
		active[bj] = false
		active[next] = true
		next++
	}

	return rows
}

// CutTree flattens a dendrogram at a distance threshold: two points share a
// cluster exactly when they are connected by merges at or below the
// threshold. Cluster IDs are dense, 1-based, and assigned in order of first
// appearance by point index. Unique within the group only.
func CutTree(linkage [][4]float64, n int, threshold float64) []int {
	uf := newUnionFind(2*n - 1)
	for k, row := range linkage {
		// Complete-linkage merge heights are monotone non-decreasing, so
		// sub-threshold merges never reference a supra-threshold cluster.
		if row[2] <= threshold {
			uf.union(int(row[0]), n+k)
			uf.union(int(row[1]), n+k)
		}
	}

	labels := make([]int, n)
	byRoot := make(map[int]int, n)
	next := 1
	for i := 0; i < n; i++ {
		root := uf.find(i)
		id, ok := byRoot[root]
		if !ok {
			id = next
			byRoot[root] = id
			next++
		}
		labels[i] = id
	}
	return labels
}

// LeafOrder returns the dendrogram's leaf ordering: point indices in the
// left-to-right order a dendrogram plot would draw them. Used to permute
// heatmap rows/columns so same-cluster points sit adjacent.
func LeafOrder(linkage [][4]float64, n int) []int {
	order := make([]int, 0, n)
	if len(linkage) == 0 {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order
	}

	var expand func(id int)
	expand = func(id int) {
		if id < n {
			order = append(order, id)
			return
		}
		row := linkage[id-n]
		expand(int(row[0]))
		expand(int(row[1]))
	}
	expand(n + len(linkage) - 1)
	return order
}

// unionFind is a disjoint-set structure with path compression and union by
// rank, sized to hold both leaves and merged dendrogram clusters.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(size int) *unionFind {
	parent := make([]int, size)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, size)}
}

func (uf *unionFind) find(x int) int {
	if uf.parent[x] != x {
		uf.parent[x] = uf.find(uf.parent[x])
	}
	return uf.parent[x]
}

func (uf *unionFind) union(x, y int) {
	xr := uf.find(x)
	yr := uf.find(y)
	if xr == yr {
		return
	}
	switch {
	case uf.rank[xr] < uf.rank[yr]:
		uf.parent[xr] = yr
	case uf.rank[xr] > uf.rank[yr]:
		uf.parent[yr] = xr
	default:
		uf.parent[yr] = xr
		uf.rank[xr]++
	}
}
