package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/sqlite"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the Go queries against the SQLite mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := a.loadFixtures()
			if err != nil {
				return err
			}
			mirror, err := sqlite.Open(fx)
			if err != nil {
				return systemErr(err)
			}
			defer mirror.Close()

			report, err := mirror.Verify(cmd.Context(), fx)
			if err != nil {
				return systemErr(err)
			}
			a.logger.Info("verify_done",
				"checked", len(report.Checked),
				"skipped", len(report.Skipped),
				"mismatches", len(report.Mismatches))
			if err := writeOutput(cmd.OutOrStdout(), a.cfg.Format, report); err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%d checks: %w", len(report.Mismatches), errVerifyMismatch)
			}
			return nil
		},
	}
}
