package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// datasetInfo describes one dataset in `tabview datasets` output.
type datasetInfo struct {
	Name    string   `json:"name"`
	Records int      `json:"records"`
	Columns []string `json:"columns"`
}

func newDatasetsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List datasets with record counts and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := s.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			infos, err := describeDatasets(backend)
			if err != nil {
				return err
			}
			if s.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), infos)
			}
			return renderDatasets(cmd.OutOrStdout(), infos)
		},
	}
}

func describeDatasets(store types.Store) ([]datasetInfo, error) {
	names, err := store.Datasets()
	if err != nil {
		return nil, sysError("list datasets: %w", err)
	}

	infos := make([]datasetInfo, 0, len(names))
	for _, name := range names {
		ds, err := openDataset(store, name)
		if err != nil {
			return nil, err
		}
		records, err := ds.Fetch(nil)
		if err != nil {
			return nil, sysError("fetch %s: %w", name, err)
		}
		info := datasetInfo{Name: name, Records: len(records), Columns: []string{}}
		for _, c := range ds.Columns() {
			info.Columns = append(info.Columns, c.Key)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
