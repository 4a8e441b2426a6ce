package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/fixtures"
	"github.com/mesh-intelligence/prototypes/internal/metrics"
	"github.com/mesh-intelligence/prototypes/internal/queries"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Run every read-only query once and print Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := a.loadFixtures()
			if err != nil {
				return err
			}
			rec := metrics.NewRecorder()
			rec.ObserveFixtures(fixtures.Counts(fx))

			catalog := queries.NewCatalog()
			catalog.AddObserver(rec)
			catalog.AddObserver(queries.NewLoggingObserver(a.logger))
			all, err := catalog.Queries("")
			if err != nil {
				return err
			}
			for _, q := range all {
				if q.Mutates {
					continue
				}
				if _, err := catalog.Run(fx, q.Dataset, q.Name); err != nil {
					if errors.Is(err, types.ErrFixtureMissing) {
						a.logger.Warn("query_skipped", "query", q.ID(), "error", err)
						continue
					}
					return err
				}
			}
			return rec.WriteText(cmd.OutOrStdout())
		},
	}
}
