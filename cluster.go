package pharmkit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// minClusterable is the smallest feature-type group that can be clustered.
// Groups of two or fewer points carry too little spatial structure for a
// consensus and are skipped by Compute.
const minClusterable = 3

// ClusteredPoint is a pharmacophoric point annotated by the per-type
// clusterer.
type ClusteredPoint struct {
	Point

	// Cluster is the 1-based cluster ID, dense and unique within the
	// type group only.
	Cluster int

	// Weight counts the group's points within the proximity radius of this
	// point. The point itself always qualifies, so Weight >= 1.
	Weight int

	// Balance is Weight normalized by the group's total weight (L1).
	// Balances within a group sum to 1.
	Balance float64
}

// Clustering is the output of the per-type clusterer: the group's points
// annotated with cluster assignments, plus the distance matrix and
// dendrogram they were derived from.
type Clustering struct {
	Points  []ClusteredPoint
	Matrix  *mat.SymDense
	Linkage [][4]float64
}

// ClusterGroup clusters one feature-type group.
//
// All points must share one feature type label and the group must have at
// least three points; smaller groups are the caller's policy decision (see
// Compute, which skips them). The dendrogram is cut at hDist times the
// group's maximum pairwise distance, so a group of identical points
// degenerates to a single cluster.
func ClusterGroup(points []Point, hDist, proximityRadius float64) (*Clustering, error) {
	if len(points) < minClusterable {
		return nil, fmt.Errorf("pharmkit: group has %d points, need at least %d to cluster", len(points), minClusterable)
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	name := points[0].Name
	for _, p := range points {
		if p.Name != name {
			return nil, fmt.Errorf("pharmkit: mixed feature types in group: %q and %q", name, p.Name)
		}
	}

	d := DistanceMatrix(points)
	linkage := CompleteLinkage(Condensed(d), len(points))
	labels := CutTree(linkage, len(points), hDist*maxDistance(d))

	weights := neighborCounts(d, proximityRadius)
	total := 0
	for _, w := range weights {
		total += w
	}

	clustered := make([]ClusteredPoint, len(points))
	for i, p := range points {
		clustered[i] = ClusteredPoint{
			Point:   p,
			Cluster: labels[i],
			Weight:  weights[i],
			Balance: float64(weights[i]) / float64(total),
		}
	}

	return &Clustering{Points: clustered, Matrix: d, Linkage: linkage}, nil
}

// clusterIDs returns the distinct cluster IDs present, ascending.
func clusterIDs(points []ClusteredPoint) []int {
	maxID := 0
	for _, p := range points {
		if p.Cluster > maxID {
			maxID = p.Cluster
		}
	}
	// IDs are dense 1..k, so a presence scan suffices.
	ids := make([]int, 0, maxID)
	for id := 1; id <= maxID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// clusterMembers returns the points assigned to the given cluster ID, in
// input order.
func clusterMembers(points []ClusteredPoint, id int) []ClusteredPoint {
	members := make([]ClusteredPoint, 0)
	for _, p := range points {
		if p.Cluster == id {
			members = append(members, p)
		}
	}
	return members
}
