// Package pharmkit computes consensus pharmacophores.
//
// A pharmacophore model, as produced by the external pharmit tool, is a set
// of type-labeled 3D feature points (hydrophobic patches, hydrogen donors
// and acceptors, charged centers, ...). pharmkit reduces such a point set to
// a consensus: points of the same feature type are clustered with
// complete-linkage hierarchical clustering, and each cluster is collapsed to
// a single representative sphere (density-weighted centroid, effective
// radius, weight, balance).
//
// Basic usage:
//
//	doc, err := pharmkit.ReadDocumentFile("pharmacophore.json")
//	cfg := pharmkit.DefaultConfig()
//	result, err := pharmkit.Compute(doc.Points, cfg)
//	// result.Consensus is the consensus table (one row per type+cluster)
//	// result.Artifacts holds the per-type distance matrix and dendrogram
//
// The package also wraps pharmit invocation ([Runner]), pharmit-compatible
// JSON parsing and serialization, and PyMOL script export for inspection of
// both raw and consensus models.
package pharmkit
