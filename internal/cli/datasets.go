package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/fixtures"
	"github.com/mesh-intelligence/prototypes/internal/queries"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

type collectionInfo struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
	Loaded  bool   `json:"loaded"`
}

type datasetInfo struct {
	Name        string           `json:"name"`
	Queries     int              `json:"queries"`
	Collections []collectionInfo `json:"collections"`
}

func newDatasetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List datasets with their collections and record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := a.loadFixtures()
			if err != nil {
				return err
			}
			counts := fixtures.Counts(fx)
			catalog := queries.NewCatalog()

			out := make([]datasetInfo, 0, len(types.DatasetNames))
			for _, name := range catalog.Datasets() {
				qs, err := catalog.Queries(name)
				if err != nil {
					return err
				}
				info := datasetInfo{Name: name, Queries: len(qs), Collections: []collectionInfo{}}
				for _, c := range types.DatasetCollections[name] {
					n, loaded := counts[c]
					info.Collections = append(info.Collections, collectionInfo{Name: c, Records: n, Loaded: loaded})
				}
				out = append(out, info)
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Format, out)
		},
	}
}
