package pharmkit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is a parsed pharmit pharmacophore model: the feature point table
// plus the structures the model was generated from.
type Document struct {
	Points   []Point `json:"points"`
	Ligand   string  `json:"ligand,omitempty"`
	Receptor string  `json:"receptor,omitempty"`
}

// ParseDocument decodes a pharmit JSON model from r. Each point receives
// its canonical display color from the feature type table; points are
// validated against the input invariants (non-empty name, finite
// coordinates).
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("pharmkit: decode pharmacophore json: %w", err)
	}
	if err := validatePoints(doc.Points); err != nil {
		return nil, err
	}
	for i := range doc.Points {
		doc.Points[i].Color = ColorFor(doc.Points[i].Name)
	}
	return doc, nil
}

// ReadDocumentFile reads and parses a pharmit JSON model from disk.
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pharmkit: open pharmacophore json: %w", err)
	}
	defer f.Close()
	return ParseDocument(f)
}

// WritePointsJSON writes a point table as a pharmit-compatible
// {"points": [...]} document.
func WritePointsJSON(w io.Writer, points []Point) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Points: points}); err != nil {
		return fmt.Errorf("pharmkit: encode points: %w", err)
	}
	return nil
}

// WriteConsensusJSON writes a consensus table as a {"points": [...]}
// document carrying the consensus columns (cluster, weight, balance).
func WriteConsensusJSON(w io.Writer, rows []ConsensusPoint) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Points []ConsensusPoint `json:"points"`
	}{Points: rows}); err != nil {
		return fmt.Errorf("pharmkit: encode consensus: %w", err)
	}
	return nil
}

// SavePointsJSON writes a point table to a file, see WritePointsJSON.
func SavePointsJSON(path string, points []Point) error {
	return saveTo(path, func(f *os.File) error { return WritePointsJSON(f, points) })
}

// SaveConsensusJSON writes a consensus table to a file, see WriteConsensusJSON.
func SaveConsensusJSON(path string, rows []ConsensusPoint) error {
	return saveTo(path, func(f *os.File) error { return WriteConsensusJSON(f, rows) })
}

// saveTo creates path, runs write against it, and surfaces both write and
// close errors.
func saveTo(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pharmkit: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pharmkit: close %s: %w", path, err)
	}
	return nil
}
