package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/queries"
)

func newRunCmd(a *app) *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "run <dataset> <query>",
		Short: "Run a query and print its result",
		Long: "Run a query against one fixture context and print the result.\n" +
			"With --times the query runs repeatedly against the same context, so\n" +
			"mutating queries compound and the last result is printed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return fmt.Errorf("--times must be at least 1, got %d", times)
			}
			catalog := queries.NewCatalog()
			if _, err := catalog.Lookup(args[0], args[1]); err != nil {
				return err
			}
			fx, err := a.loadFixtures()
			if err != nil {
				return err
			}
			catalog.AddObserver(queries.NewLoggingObserver(a.logger))

			var result any
			for range times {
				result, err = catalog.Run(fx, args[0], args[1])
				if err != nil {
					return err
				}
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Format, result)
		},
	}
	cmd.Flags().IntVar(&times, "times", 1, "number of runs against the same fixtures")
	return cmd
}
