package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pharmkit/pharmkit"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		receptor string
		ligand   string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run pharmit to generate a pharmacophore model",
		Long: "Generates a pharmacophore model by invoking the pharmit executable.\n" +
			"With --receptor, the model describes the ligand/receptor interaction;\n" +
			"without it, the model is built from the molecule's own features.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pharmkit.Runner{
				Bin:        a.cfg.Pharmit.Bin,
				Subcommand: a.cfg.Pharmit.Subcommand,
				Format:     a.cfg.Pharmit.Format,
				Logger:     a.log,
			}

			var (
				outFile string
				err     error
			)
			if receptor != "" {
				outFile, err = runner.GenerateComplex(cmd.Context(), receptor, ligand, out)
			} else {
				outFile, err = runner.GenerateMolecule(cmd.Context(), ligand, out)
			}
			if err != nil {
				return err
			}

			a.log.Info("pharmacophore model written", zap.String("file", outFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&receptor, "receptor", "", "receptor structure (PDB); omit for molecule-only models")
	cmd.Flags().StringVar(&ligand, "ligand", "", "ligand structure (SDF or MOL2)")
	cmd.Flags().StringVar(&out, "out", "pharmacophore", "output base name")
	cobra.CheckErr(cmd.MarkFlagRequired("ligand"))
	return cmd
}
