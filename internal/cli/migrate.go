package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd brings the schema up to date
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s schema up to date (%s)\n", okMark, e.cfg.Database.Driver)
			return nil
		},
	}
}
