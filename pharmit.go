package pharmkit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Runner invokes the external pharmit executable to generate pharmacophore
// models. pharmit is treated as a black box: it is given structure file
// paths and produces a model file; Runner never inspects the structures
// itself.
//
// The zero value runs "pharmitserver" from PATH with the "pharma"
// subcommand and JSON output.
type Runner struct {
	// Bin is the pharmit executable. Default: "pharmitserver".
	Bin string

	// Subcommand is passed to pharmit via -cmd. Default: "pharma".
	Subcommand string

	// Format is the output file format, "json" or "xml". Default: "json".
	Format string

	// Logger, when non-nil, records each invocation.
	Logger *zap.Logger
}

func (r Runner) bin() string {
	if r.Bin == "" {
		return "pharmitserver"
	}
	return r.Bin
}

func (r Runner) subcommand() string {
	if r.Subcommand == "" {
		return "pharma"
	}
	return r.Subcommand
}

func (r Runner) format() string {
	if r.Format == "" {
		return "json"
	}
	return r.Format
}

// GenerateComplex generates a pharmacophore model from the interaction
// between a ligand and a receptor. receptor is a PDB file, ligand an SDF or
// MOL2 file, and out the output base name; the model is written to
// out.<format>, whose path is returned.
//
// The call blocks until pharmit exits; cancel via ctx.
func (r Runner) GenerateComplex(ctx context.Context, receptor, ligand, out string) (string, error) {
	if receptor == "" {
		return "", fmt.Errorf("pharmkit: receptor path is empty")
	}
	if ligand == "" {
		return "", fmt.Errorf("pharmkit: ligand path is empty")
	}
	outFile := out + "." + r.format()
	return outFile, r.run(ctx, r.complexArgs(receptor, ligand, outFile))
}

// GenerateMolecule generates a pharmacophore model from a lone molecule's
// features. See GenerateComplex for file conventions.
func (r Runner) GenerateMolecule(ctx context.Context, ligand, out string) (string, error) {
	if ligand == "" {
		return "", fmt.Errorf("pharmkit: ligand path is empty")
	}
	outFile := out + "." + r.format()
	return outFile, r.run(ctx, r.moleculeArgs(ligand, outFile))
}

func (r Runner) complexArgs(receptor, ligand, outFile string) []string {
	return []string{"-cmd", r.subcommand(), "-receptor", receptor, "-in", ligand, "-out", outFile}
}

func (r Runner) moleculeArgs(ligand, outFile string) []string {
	return []string{"-cmd", r.subcommand(), "-in", ligand, "-out", outFile}
}

func (r Runner) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, r.bin(), args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if r.Logger != nil {
		r.Logger.Info("running pharmit",
			zap.String("bin", r.bin()),
			zap.Strings("args", args))
	}

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("pharmkit: pharmit failed: %w: %s", err, stderr.String())
		}
		return fmt.Errorf("pharmkit: pharmit failed: %w", err)
	}
	return nil
}
