package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <dataset> <id>",
		Short: "Remove a record by ID",
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
			if err := ds.Delete(id); err != nil {
				if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
					return userError("record %q not found in dataset %q", id, name)
				}
				return sysError("delete record: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s/%s\n", name, id)
			return nil
		},
	}
}
