package pharmkit

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// distanceGrid adapts a distance matrix to plotter.GridXYZ, with rows and
// columns permuted into dendrogram leaf order so same-cluster points render
// as contiguous blocks.
type distanceGrid struct {
	m    *mat.SymDense
	perm []int
}

func (g distanceGrid) Dims() (c, r int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g distanceGrid) X(c int) float64 { return float64(c) }
func (g distanceGrid) Y(r int) float64 { return float64(r) }

func (g distanceGrid) Z(c, r int) float64 {
	return g.m.At(g.perm[r], g.perm[c])
}

// WriteHeatmap renders a feature-type group's distance matrix as a PNG
// heatmap, rows and columns ordered by the dendrogram's leaves.
func WriteHeatmap(path string, d *mat.SymDense, linkage [][4]float64) error {
	n := d.SymmetricDim()
	grid := distanceGrid{m: d, perm: LeafOrder(linkage, n)}

	p := plot.New()
	p.Title.Text = "Pairwise distance"
	p.X.Label.Text = "point"
	p.Y.Label.Text = "point"
	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	// 10x10 inch canvas at 300 DPI.
	canvas := vgimg.NewWith(vgimg.UseWH(10*vg.Inch, 10*vg.Inch), vgimg.UseDPI(300))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pharmkit: create heatmap %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("pharmkit: write heatmap %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pharmkit: close heatmap %s: %w", path, err)
	}
	return nil
}
