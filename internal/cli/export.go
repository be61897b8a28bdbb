package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pharmkit/pharmkit"
)

func newExportCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <model.json>",
		Short: "Export a model's feature points as a PyMOL script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := pharmkit.ReadDocumentFile(args[0])
			if err != nil {
				return err
			}
			if err := pharmkit.SavePointScript(out, doc.Points); err != nil {
				return err
			}
			a.log.Info("PyMOL script written",
				zap.Int("points", len(doc.Points)),
				zap.String("file", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "pharmacophore.pml", "output script path")
	return cmd
}
