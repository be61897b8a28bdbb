package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pharmkit/pharmkit"
)

func newConsensusCommand(a *app) *cobra.Command {
	var (
		outFolder   string
		diagnostics bool
		hDist       float64
		proximity   float64
	)

	cmd := &cobra.Command{
		Use:   "consensus <model.json>",
		Short: "Compute the consensus pharmacophore of a model",
		Long: "Clusters same-type feature points of a pharmit JSON model and reduces\n" +
			"each cluster to one representative sphere. Writes consensus.json and\n" +
			"consensus.pml into the output folder; with --diagnostics, also writes\n" +
			"per-type cluster scripts and distance heatmaps.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := pharmkit.ReadDocumentFile(args[0])
			if err != nil {
				return err
			}

			cfg := pharmkit.Config{
				HDist:           a.cfg.Consensus.HDist,
				ProximityRadius: a.cfg.Consensus.ProximityRadius,
				SaveDiagnostics: a.cfg.Output.Diagnostics || diagnostics,
				OutFolder:       a.cfg.Output.Folder,
			}
			if cmd.Flags().Changed("hdist") {
				cfg.HDist = hDist
			}
			if cmd.Flags().Changed("proximity-radius") {
				cfg.ProximityRadius = proximity
			}
			if cmd.Flags().Changed("out-folder") {
				cfg.OutFolder = outFolder
			}

			result, err := pharmkit.Compute(doc.Points, cfg)
			if err != nil {
				return err
			}
			for _, name := range result.Skipped {
				a.log.Warn("feature type skipped: needs more than two points",
					zap.String("type", name))
			}

			jsonPath := filepath.Join(cfg.OutFolder, "consensus.json")
			if err := pharmkit.SaveConsensusJSON(jsonPath, result.Consensus); err != nil {
				return err
			}
			pmlPath := filepath.Join(cfg.OutFolder, "consensus.pml")
			if err := pharmkit.SaveConsensusScript(pmlPath, result.Consensus); err != nil {
				return err
			}

			a.log.Info("consensus computed",
				zap.Int("input_points", len(doc.Points)),
				zap.Int("consensus_rows", len(result.Consensus)),
				zap.Int("types_clustered", len(result.Artifacts)),
				zap.String("json", jsonPath),
				zap.String("pymol", pmlPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&outFolder, "out-folder", ".", "folder for results and diagnostics")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "write per-type cluster scripts and heatmaps")
	cmd.Flags().Float64Var(&hDist, "hdist", 0.17, "dendrogram cut, as a fraction of the max pairwise distance")
	cmd.Flags().Float64Var(&proximity, "proximity-radius", 1.5, "neighbor-count radius for point weights")
	return cmd
}
