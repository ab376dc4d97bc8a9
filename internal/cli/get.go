package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

func newGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <dataset> <id>",
		Short: "Print a record by ID as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := args[0], args[1]

			backend, err := s.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			ds, err := openDataset(backend, name)
			if err != nil {
				return err
			}
			rec, err := ds.Get(id)
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
				return userError("record %q not found in dataset %q", id, name)
			}
			if err != nil {
				return sysError("get record: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
}
