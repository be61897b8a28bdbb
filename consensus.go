package pharmkit

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// Config controls consensus computation.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// HDist is the dendrogram cut threshold, expressed as a fraction of the
	// group's maximum pairwise distance: clusters merge only up to
	// HDist * max(D). Must be > 0. Default: 0.17.
	HDist float64

	// ProximityRadius is the fixed radius (in coordinate units) used to
	// count a point's near neighbors for its weight. Must be > 0.
	// Default: 1.5.
	ProximityRadius float64

	// SaveDiagnostics writes per-type artifacts into OutFolder: a PyMOL
	// script of the clustered points (<type>_clusters.pml) and a
	// distance-matrix heatmap (<type>_clusters.png). Default: false.
	SaveDiagnostics bool

	// OutFolder receives diagnostic artifacts. Default: ".".
	OutFolder string
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		HDist:           0.17,
		ProximityRadius: 1.5,
		OutFolder:       ".",
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.HDist <= 0 {
		return fmt.Errorf("pharmkit: HDist must be > 0, got %f", cfg.HDist)
	}
	if cfg.ProximityRadius <= 0 {
		return fmt.Errorf("pharmkit: ProximityRadius must be > 0, got %f", cfg.ProximityRadius)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.HDist == 0 {
		cfg.HDist = 0.17
	}
	if cfg.ProximityRadius == 0 {
		cfg.ProximityRadius = 1.5
	}
	if cfg.OutFolder == "" {
		cfg.OutFolder = "."
	}
}

// TypeArtifacts tags one feature type's clustering byproducts: the pairwise
// distance matrix and the dendrogram built from it. Neither is mutated
// after creation.
type TypeArtifacts struct {
	TypeName string
	Matrix   *mat.SymDense
	Linkage  [][4]float64
}

// Result contains the output of a consensus computation.
type Result struct {
	// Consensus is the consensus table, ordered by feature type
	// (lexicographic) then cluster ID. Index is 1-based and contiguous.
	Consensus []ConsensusPoint

	// Artifacts holds each clustered type's distance matrix and dendrogram,
	// in the same type order as Consensus.
	Artifacts []TypeArtifacts

	// Skipped lists feature types with two or fewer points. They contribute
	// no consensus rows.
	Skipped []string
}

// Compute builds the consensus pharmacophore for the given point table.
//
// Points are grouped by feature type; each group with more than two points
// is clustered (ClusterGroup) and every cluster reduced to one consensus
// row (ReduceCluster). Smaller groups are recorded in Result.Skipped.
// When cfg.SaveDiagnostics is set, per-type artifacts are written into
// cfg.OutFolder; a write failure aborts the whole computation.
//
// Compute is pure apart from optional diagnostics: it never mutates its
// input and is safe to call concurrently on distinct tables (use distinct
// OutFolders when diagnostics are enabled).
func Compute(points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	groups := groupByType(points)
	result := &Result{}
	index := 1

	for _, name := range typeNames(points) {
		group := groups[name]
		if len(group) < minClusterable {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		clustering, err := ClusterGroup(group, cfg.HDist, cfg.ProximityRadius)
		if err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, TypeArtifacts{
			TypeName: name,
			Matrix:   clustering.Matrix,
			Linkage:  clustering.Linkage,
		})

		if cfg.SaveDiagnostics {
			if err := writeDiagnostics(name, clustering, cfg.OutFolder); err != nil {
				return nil, err
			}
		}

		for _, id := range clusterIDs(clustering.Points) {
			row, err := ReduceCluster(clusterMembers(clustering.Points, id))
			if err != nil {
				return nil, err
			}
			row.Index = index
			index++
			result.Consensus = append(result.Consensus, row)
		}
	}

	return result, nil
}

// writeDiagnostics writes one feature type's inspection artifacts: a PyMOL
// script of the clustered points grouped by cluster, and a heatmap of the
// distance matrix in dendrogram leaf order.
func writeDiagnostics(name string, clustering *Clustering, folder string) error {
	pml := filepath.Join(folder, name+"_clusters.pml")
	if err := SaveClusterScript(pml, clustering.Points); err != nil {
		return err
	}
	png := filepath.Join(folder, name+"_clusters.png")
	return WriteHeatmap(png, clustering.Matrix, clustering.Linkage)
}
