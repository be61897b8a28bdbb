package pharmkit

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Radius floors applied after geometric reduction. Hydrophobic regions are
// modeled as broader tolerance spheres than polar or charged features.
const (
	hydrophobicRadiusFloor = 1.0
	defaultRadiusFloor     = 0.5
)

// ConsensusPoint is one row of the consensus table: the representative
// sphere for one (feature type, cluster) pair.
type ConsensusPoint struct {
	// Index is the row's 1-based position in the consensus table.
	Index int `json:"index"`

	// Name is the feature type label inherited from the group.
	Name string `json:"name"`

	// Cluster is the per-type cluster ID. Not globally unique.
	Cluster int `json:"cluster"`

	// X, Y, Z is the weight-weighted centroid of the cluster's members.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// Radius is half the distance from the centroid to its farthest member,
	// floor-clamped by feature type.
	Radius float64 `json:"radius"`

	// Color is inherited from the first member.
	Color string `json:"color"`

	// Weight is the number of points merged into the cluster.
	Weight int `json:"weight"`

	// Balance is the mean of the members' balances.
	Balance float64 `json:"balance"`
}

// ReduceCluster collapses the members of one (feature type, cluster) pair
// into a single consensus point. The centroid uses the members' weights
// (unnormalized neighbor counts, not balances) as averaging weights. A
// single-member cluster reduces to that point's coordinates with the raw
// radius 0, which the type floor then lifts.
func ReduceCluster(members []ClusteredPoint) (ConsensusPoint, error) {
	if len(members) == 0 {
		return ConsensusPoint{}, errors.New("pharmkit: cannot reduce an empty cluster")
	}

	xs := make([]float64, len(members))
	ys := make([]float64, len(members))
	zs := make([]float64, len(members))
	ws := make([]float64, len(members))
	balances := make([]float64, len(members))
	for i, m := range members {
		xs[i] = m.X
		ys[i] = m.Y
		zs[i] = m.Z
		ws[i] = float64(m.Weight)
		balances[i] = m.Balance
	}

	centroid := []float64{
		stat.Mean(xs, ws),
		stat.Mean(ys, ws),
		stat.Mean(zs, ws),
	}

	// Effective radius: half the centroid-to-farthest-member distance,
	// approximating the sphere that encloses the members around their
	// mass center.
	var farthest float64
	for _, m := range members {
		if d := floats.Distance(centroid, m.coords(), 2); d > farthest {
			farthest = d
		}
	}
	radius := farthest / 2

	floor := defaultRadiusFloor
	if members[0].Name == Hydrophobic {
		floor = hydrophobicRadiusFloor
	}
	if radius < floor {
		radius = floor
	}

	return ConsensusPoint{
		Name:    members[0].Name,
		Cluster: members[0].Cluster,
		X:       centroid[0],
		Y:       centroid[1],
		Z:       centroid[2],
		Radius:  radius,
		Color:   members[0].Color,
		Weight:  len(members),
		Balance: stat.Mean(balances, nil),
	}, nil
}
