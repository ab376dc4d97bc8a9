package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize tabview storage",
		Long: `Create the configuration and data directories, then seed the standard
datasets (holdings, companies, reports) that do not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := s.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			created, err := backend.Seed()
			if err != nil {
				return sysError("seed datasets: %w", err)
			}
			dataDir, err := s.dataDir()
			if err != nil {
				return sysError("resolve data dir: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tabview initialized successfully")
			fmt.Fprintln(out, "  config:", s.configDir)
			fmt.Fprintln(out, "  data:  ", dataDir)
			for _, name := range created {
				fmt.Fprintln(out, "  seeded:", name)
			}
			return nil
		},
	}
}
