package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/queries"
)

type queryInfo struct {
	ID      string `json:"id"`
	Dataset string `json:"dataset"`
	Query   string `json:"query"`
	Mutates bool   `json:"mutates"`
}

func newQueriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "queries [dataset]",
		Short: "List registered queries, optionally for one dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset := ""
			if len(args) == 1 {
				dataset = args[0]
			}
			qs, err := queries.NewCatalog().Queries(dataset)
			if err != nil {
				return err
			}
			out := make([]queryInfo, 0, len(qs))
			for _, q := range qs {
				out = append(out, queryInfo{ID: q.ID(), Dataset: q.Dataset, Query: q.Name, Mutates: q.Mutates})
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Format, out)
		},
	}
}
