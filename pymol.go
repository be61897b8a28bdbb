package pharmkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// The PyMOL exporters emit .pml command scripts rather than binary .pse
// sessions: a session file can only be produced by PyMOL itself, so each
// script ends with a save command that writes the .pse when replayed
// (pymol -cq file.pml).

// pseudoatom emits one PyMOL pseudoatom command. object groups atoms into a
// named PyMOL object; b and q carry weight and balance when hasBQ is set.
func pseudoatom(w io.Writer, object, resn string, resi int, label string, vdw float64, color string, b, q float64, hasBQ bool, x, y, z float64) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pseudoatom %s, resn=%s, resi=%d, chain=P, elem=PS, label=%q, vdw=%.3f",
		object, resn, resi, label, vdw)
	if color != "" {
		fmt.Fprintf(&sb, ", color=%s", color)
	}
	if hasBQ {
		fmt.Fprintf(&sb, ", b=%.0f, q=%.6f", b, q)
	}
	fmt.Fprintf(&sb, ", pos=[%.3f, %.3f, %.3f]\n", x, y, z)
	_, err := io.WriteString(w, sb.String())
	return err
}

// scriptFooter emits the commands shared by every export: sphere rendering,
// centering, and the session save.
func scriptFooter(w io.Writer, sessionName string) error {
	_, err := fmt.Fprintf(w, "show spheres\ncenter all\nsave %s, format=pse\n", sessionName)
	return err
}

// WritePointScript writes a PyMOL script rendering raw pharmacophore
// points, one object per feature type, saving the session as sessionName.
func WritePointScript(w io.Writer, points []Point, sessionName string) error {
	for i, p := range points {
		if err := pseudoatom(w, p.Name, p.Name, i+1, p.Name, p.Radius, p.Color, 0, 0, false, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return scriptFooter(w, sessionName)
}

// WriteClusterScript writes a PyMOL script rendering a clustered type
// group: one object per cluster ID, labeled by cluster, with weight and
// balance in the b and q columns, grouped under the feature type name.
func WriteClusterScript(w io.Writer, points []ClusteredPoint, sessionName string) error {
	for i, p := range points {
		object := fmt.Sprintf("%d", p.Cluster)
		label := fmt.Sprintf("%d", p.Cluster)
		if err := pseudoatom(w, object, p.Name, i+1, label, p.Radius, p.Color, float64(p.Weight), p.Balance, true, p.X, p.Y, p.Z); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "group %s, *\n", p.Name); err != nil {
			return err
		}
	}
	return scriptFooter(w, sessionName)
}

// WriteConsensusScript writes a PyMOL script rendering a consensus table:
// one object per feature type, all grouped under "Consensus".
func WriteConsensusScript(w io.Writer, rows []ConsensusPoint, sessionName string) error {
	for _, r := range rows {
		if err := pseudoatom(w, r.Name, r.Name, r.Index, r.Name, r.Radius, r.Color, float64(r.Weight), r.Balance, true, r.X, r.Y, r.Z); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "group Consensus, *\n"); err != nil {
			return err
		}
	}
	return scriptFooter(w, sessionName)
}

// SaveClusterScript writes a cluster script to path. The session name is
// derived from path by swapping the extension for .pse.
func SaveClusterScript(path string, points []ClusteredPoint) error {
	return saveTo(path, func(f *os.File) error {
		return WriteClusterScript(f, points, sessionName(path))
	})
}

// SaveConsensusScript writes a consensus script to path, see SaveClusterScript.
func SaveConsensusScript(path string, rows []ConsensusPoint) error {
	return saveTo(path, func(f *os.File) error {
		return WriteConsensusScript(f, rows, sessionName(path))
	})
}

// SavePointScript writes a raw-point script to path, see SaveClusterScript.
func SavePointScript(path string, points []Point) error {
	return saveTo(path, func(f *os.File) error {
		return WritePointScript(f, points, sessionName(path))
	})
}

// sessionName maps a script path to its session file name: the base name
// with a .pse extension. The save is relative so the session lands next to
// wherever the script is replayed.
func sessionName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pse"
}
