package pharmkit

import (
	"math"
	"testing"
)

func TestDistanceMatrix(t *testing.T) {
	points := []Point{
		{Name: Hydrophobic, X: 0, Y: 0, Z: 0},
		{Name: Hydrophobic, X: 3, Y: 4, Z: 0},
		{Name: Hydrophobic, X: 0, Y: 0, Z: 2},
	}
	d := DistanceMatrix(points)

	if n := d.SymmetricDim(); n != 3 {
		t.Fatalf("dimension: got %d, want 3", n)
	}
	for i := 0; i < 3; i++ {
		if v := d.At(i, i); v != 0 {
			t.Errorf("diagonal[%d]: got %f, want 0", i, v)
		}
	}
	if v := d.At(0, 1); v != 5 {
		t.Errorf("d(0,1): got %f, want 5", v)
	}
	if v := d.At(1, 0); v != 5 {
		t.Errorf("d(1,0): got %f, want 5 (symmetry)", v)
	}
	if v := d.At(0, 2); v != 2 {
		t.Errorf("d(0,2): got %f, want 2", v)
	}
}

func TestCondensed(t *testing.T) {
	points := []Point{
		{Name: Hydrophobic, X: 0},
		{Name: Hydrophobic, X: 1},
		{Name: Hydrophobic, X: 3},
		{Name: Hydrophobic, X: 6},
	}
	d := DistanceMatrix(points)
	c := Condensed(d)

	if len(c) != 6 {
		t.Fatalf("condensed length: got %d, want 6", len(c))
	}
	// Row-major upper triangle: (0,1) (0,2) (0,3) (1,2) (1,3) (2,3).
	want := []float64{1, 3, 6, 2, 5, 3}
	for i, w := range want {
		if c[i] != w {
			t.Errorf("condensed[%d]: got %f, want %f", i, c[i], w)
		}
	}
}

func TestCondensedIndex(t *testing.T) {
	n := 5
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if got := condensedIndex(n, i, j); got != k {
				t.Errorf("condensedIndex(%d, %d, %d): got %d, want %d", n, i, j, got, k)
			}
			k++
		}
	}
}

func TestMaxDistance(t *testing.T) {
	points := []Point{
		{Name: Hydrophobic, X: 0},
		{Name: Hydrophobic, X: 1},
		{Name: Hydrophobic, X: 10},
	}
	if got := maxDistance(DistanceMatrix(points)); got != 10 {
		t.Errorf("maxDistance: got %f, want 10", got)
	}
}

func TestMaxDistanceDegenerate(t *testing.T) {
	one := []Point{{Name: Hydrophobic, X: 7}}
	if got := maxDistance(DistanceMatrix(one)); got != 0 {
		t.Errorf("single point: got %f, want 0", got)
	}
}

func TestNeighborCountsIncludesSelf(t *testing.T) {
	// One isolated point: the zero self-distance still counts.
	points := []Point{
		{Name: Hydrophobic, X: 0},
		{Name: Hydrophobic, X: 100},
		{Name: Hydrophobic, X: 200},
	}
	counts := neighborCounts(DistanceMatrix(points), 1.5)
	for i, c := range counts {
		if c != 1 {
			t.Errorf("counts[%d]: got %d, want 1", i, c)
		}
	}
}

func TestNeighborCountsThresholdInclusive(t *testing.T) {
	points := []Point{
		{Name: Hydrophobic, X: 0},
		{Name: Hydrophobic, X: 1.5}, // exactly at the radius
		{Name: Hydrophobic, X: 3.1}, // 1.6 from the middle point
	}
	counts := neighborCounts(DistanceMatrix(points), 1.5)
	want := []int{2, 2, 1}
	for i, w := range want {
		if counts[i] != w {
			t.Errorf("counts[%d]: got %d, want %d", i, counts[i], w)
		}
	}
}

func TestDistanceMatrixFiniteOnRealisticInput(t *testing.T) {
	rng := newTestRNG(7)
	points := make([]Point, 30)
	for i := range points {
		points[i] = Point{Name: Aromatic, X: rng.Float64() * 20, Y: rng.Float64() * 20, Z: rng.Float64() * 20}
	}
	d := DistanceMatrix(points)
	for i := 0; i < 30; i++ {
		for j := 0; j < 30; j++ {
			if v := d.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("d(%d,%d) is not finite: %f", i, j, v)
			}
		}
	}
}
