package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade the database file to the current encoding",
	Long: `Read the database under every understood encoding, including legacy
delimiters and timestamp patterns, and rewrite it in the current one.
Running migrate on an already-current file is a no-op rewrite.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := rides.Migrate(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tr("Store migrated."))
	return nil
}
