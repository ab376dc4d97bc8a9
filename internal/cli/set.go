package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

func newSetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set <dataset> <id> <json>",
		Short: "Create or replace a record",
		Long: `Set stores a JSON object as a record. Pass "" as the id to use the
object's own "id" field, or to generate one when it has none. The dataset
is created if it does not exist.

Example:
  tabview set holdings h13 '{"name":"Equinor","sector":"Energy","weight":2.4}'
  tabview set watchlist "" '{"name":"Ørsted"}'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := args[0], args[1]

			rec, err := parseRecord(args[2])
			if err != nil {
				return userError("%w", err)
			}

			backend, err := s.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			ds, err := backend.CreateDataset(name)
			if errors.Is(err, types.ErrInvalidName) {
				return userError("%w", err)
			}
			if err != nil {
				return sysError("open dataset: %w", err)
			}

			savedID, err := ds.Set(id, rec)
			if errors.Is(err, types.ErrInvalidData) {
				return userError("set record: %w", err)
			}
			if err != nil {
				return sysError("set record: %w", err)
			}

			saved, err := ds.Get(savedID)
			if err != nil {
				return sysError("get saved record: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), saved)
		},
	}
}
