package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/fixtures"
	"github.com/mesh-intelligence/prototypes/internal/paths"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [dir]",
		Short: "Write the fixtures as JSONL files",
		Long: "Write every loaded collection as <collection>.jsonl into dir. The\n" +
			"default dir is the platform data directory, which --data-dir can then\n" +
			"point at to edit and reload the fixtures.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			} else {
				d, err := paths.DefaultDataDir()
				if err != nil {
					return systemErr(fmt.Errorf("resolving export dir: %w", err))
				}
				dir = d
			}
			fx, err := a.loadFixtures()
			if err != nil {
				return err
			}
			written, err := fixtures.Export(fx, dir)
			if err != nil {
				return systemErr(err)
			}
			a.logger.Info("fixtures_exported", "dir", dir, "files", len(written))
			return writeOutput(cmd.OutOrStdout(), a.cfg.Format, written)
		},
	}
}
