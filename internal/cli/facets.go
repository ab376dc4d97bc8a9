package cli

import (
	"cmp"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

func newFacetsCmd(s *session) *cobra.Command {
	var byCount bool

	cmd := &cobra.Command{
		Use:   "facets <dataset> <key>",
		Short: "Count the distinct values of a field",
		Long: `Facets lists each distinct value of a field with the number of records
holding it, in first-seen order. The values are the ones accepted by
list --facet.

Example:
  tabview facets holdings sector
  tabview facets companies esg_rating --by-count`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := s.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			ds, err := openDataset(backend, args[0])
			if err != nil {
				return err
			}
			v, err := s.buildView(ds, ds.Columns(), listFlags{page: 1})
			if err != nil {
				return err
			}

			counts := v.Facets(args[1])
			if byCount {
				slices.SortStableFunc(counts, func(a, b types.FacetCount) int {
					return cmp.Compare(b.Count, a.Count)
				})
			}
			if s.flags.jsonMode {
				if counts == nil {
					counts = []types.FacetCount{}
				}
				return writeJSON(cmd.OutOrStdout(), counts)
			}
			return renderFacets(cmd.OutOrStdout(), args[1], counts)
		},
	}

	cmd.Flags().BoolVar(&byCount, "by-count", false, "order by descending count")
	return cmd
}
