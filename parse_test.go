package pharmkit

import (
	"bytes"
	"strings"
	"testing"
)

const sampleModel = `{
  "points": [
    {"name": "Hydrophobic", "x": 1.0, "y": 2.0, "z": 3.0, "radius": 1.0, "enabled": true},
    {"name": "HydrogenDonor", "x": -1.5, "y": 0.25, "z": 2.0, "radius": 0.5,
     "svector": {"x": 0.0, "y": 1.0, "z": 0.0}},
    {"name": "Aromatic", "x": 4.0, "y": 4.0, "z": 4.0, "radius": 1.1}
  ],
  "ligand": "ligand mol data",
  "receptor": "receptor mol data"
}`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleModel))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Points) != 3 {
		t.Fatalf("points: got %d, want 3", len(doc.Points))
	}
	if doc.Ligand != "ligand mol data" {
		t.Errorf("ligand: got %q", doc.Ligand)
	}
	if doc.Receptor != "receptor mol data" {
		t.Errorf("receptor: got %q", doc.Receptor)
	}

	p := doc.Points[0]
	if p.Name != Hydrophobic || p.X != 1 || p.Y != 2 || p.Z != 3 || p.Radius != 1 {
		t.Errorf("point 0: got %+v", p)
	}
	if !p.Enabled {
		t.Error("point 0: enabled flag not carried through")
	}

	// Colors come from the canonical table, not the input.
	if p.Color != "green" {
		t.Errorf("point 0 color: got %q, want green", p.Color)
	}
	if doc.Points[1].Color != "white" {
		t.Errorf("point 1 color: got %q, want white", doc.Points[1].Color)
	}

	sv := doc.Points[1].SVector
	if sv == nil || sv.Y != 1 {
		t.Errorf("point 1 svector: got %+v, want direction (0, 1, 0)", sv)
	}
	if doc.Points[0].SVector != nil {
		t.Error("point 0: unexpected svector")
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{"points": [`},
		{"empty feature name", `{"points": [{"name": "", "x": 1, "y": 2, "z": 3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDocument(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestWritePointsJSONRoundTrip(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleModel))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePointsJSON(&buf, doc.Points); err != nil {
		t.Fatalf("write: %v", err)
	}

	again, err := ParseDocument(&buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(again.Points) != len(doc.Points) {
		t.Fatalf("points after round trip: got %d, want %d", len(again.Points), len(doc.Points))
	}
	for i := range doc.Points {
		a, b := doc.Points[i], again.Points[i]
		if a.Name != b.Name || a.X != b.X || a.Y != b.Y || a.Z != b.Z || a.Radius != b.Radius {
			t.Errorf("point %d changed: %+v != %+v", i, a, b)
		}
	}
}

func TestWriteConsensusJSON(t *testing.T) {
	rows := []ConsensusPoint{
		{Index: 1, Name: Hydrophobic, Cluster: 1, X: 0.05, Radius: 1.0, Color: "green", Weight: 2, Balance: 0.25},
	}
	var buf bytes.Buffer
	if err := WriteConsensusJSON(&buf, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"points"`, `"name": "Hydrophobic"`, `"cluster": 1`, `"weight": 2`, `"balance": 0.25`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{Hydrophobic, "green"},
		{HydrogenAcceptor, "orange"},
		{HydrogenDonor, "white"},
		{Aromatic, "purple"},
		{NegativeIon, "red"},
		{PositiveIon, "navy"},
		{InclusionSphere, "gray"},
		{OtherFeature, "yellow"},
		{PhenylalanineAnalog, "pink"},
		{LeuValAnalog, "pink"},
		{"NoSuchFeature", ""},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.name); got != tt.want {
			t.Errorf("ColorFor(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}
}
