package pharmkit

import (
	"fmt"
	"math"
	"sort"
)

// Feature type labels emitted by pharmit.
const (
	Hydrophobic         = "Hydrophobic"
	HydrogenAcceptor    = "HydrogenAcceptor"
	HydrogenDonor       = "HydrogenDonor"
	Aromatic            = "Aromatic"
	NegativeIon         = "NegativeIon"
	PositiveIon         = "PositiveIon"
	InclusionSphere     = "InclusionSphere"
	OtherFeature        = "Other"
	PhenylalanineAnalog = "PhenylalanineAnalog"
	LeuValAnalog        = "LeuValAnalog"
)

// featureColors is the canonical display color per feature type. Colors are
// presentation only; they play no role in clustering.
var featureColors = map[string]string{
	Hydrophobic:         "green",
	HydrogenAcceptor:    "orange",
	HydrogenDonor:       "white",
	Aromatic:            "purple",
	NegativeIon:         "red",
	PositiveIon:         "navy",
	InclusionSphere:     "gray",
	OtherFeature:        "yellow",
	PhenylalanineAnalog: "pink",
	LeuValAnalog:        "pink",
}

// ColorFor returns the canonical display color for a feature type label,
// or the empty string for unknown labels.
func ColorFor(name string) string {
	return featureColors[name]
}

// Vector is a direction associated with directional feature types
// (hydrogen donors and acceptors). It is carried through untouched by the
// consensus computation.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Point is a single pharmacophoric feature point: one row of the input table.
type Point struct {
	// Name is the feature type label. Never empty.
	Name string `json:"name"`

	// X, Y, Z are coordinates in the receptor/ligand complex frame.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// Radius is the type-dependent nominal radius assigned by pharmit.
	Radius float64 `json:"radius"`

	// Color is the display color, derived from Name via ColorFor.
	Color string `json:"color,omitempty"`

	// Enabled marks whether the point participates in pharmit queries.
	// Used only by visualization and re-serialization.
	Enabled bool `json:"enabled,omitempty"`

	// SVector is the optional direction vector of donor/acceptor features.
	SVector *Vector `json:"svector,omitempty"`
}

// coords returns the point's coordinates as a 3-vector.
func (p Point) coords() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// validatePoint checks the input invariants: non-empty name, finite coordinates.
func validatePoint(p Point) error {
	if p.Name == "" {
		return fmt.Errorf("pharmkit: point at (%g, %g, %g) has empty feature name", p.X, p.Y, p.Z)
	}
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("pharmkit: point %q has non-finite coordinate", p.Name)
		}
	}
	return nil
}

// validatePoints validates every point in the table.
func validatePoints(points []Point) error {
	for i, p := range points {
		if err := validatePoint(p); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// groupByType partitions a point table by feature type label, preserving
// the input order within each group.
func groupByType(points []Point) map[string][]Point {
	groups := make(map[string][]Point)
	for _, p := range points {
		groups[p.Name] = append(groups[p.Name], p)
	}
	return groups
}

// typeNames returns the distinct feature type labels present in the table,
// in lexicographic order.
func typeNames(points []Point) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, p := range points {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}
