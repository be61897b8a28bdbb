package pharmkit

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix computes the full pairwise Euclidean distance matrix over
// the points' 3D coordinates. The result is symmetric with a zero diagonal.
// DistanceMatrix panics if points is empty.
func DistanceMatrix(points []Point) *mat.SymDense {
	n := len(points)
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, floats.Distance(points[i].coords(), points[j].coords(), 2))
		}
	}
	return d
}

// Condensed returns the strict upper triangle of d in row-major order, the
// compact pairwise-distance form consumed by CompleteLinkage. A matrix of
// dimension n yields n*(n-1)/2 entries.
func Condensed(d *mat.SymDense) []float64 {
	n := d.SymmetricDim()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, d.At(i, j))
		}
	}
	return out
}

// condensedIndex maps a pair (i, j) with i < j to its offset in the
// condensed form of an n-dimensional matrix.
func condensedIndex(n, i, j int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// maxDistance returns the largest pairwise distance in d, or 0 when the
// matrix has fewer than two points.
func maxDistance(d *mat.SymDense) float64 {
	if d.SymmetricDim() < 2 {
		return 0
	}
	return floats.Max(Condensed(d))
}

// neighborCounts returns, for each point, the number of points whose
// distance to it is at most radius. The zero self-distance always
// qualifies, so every count is >= 1.
func neighborCounts(d *mat.SymDense, radius float64) []int {
	n := d.SymmetricDim()
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d.At(i, j) <= radius {
				counts[i]++
			}
		}
	}
	return counts
}
