package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "del <id>",
	Aliases: []string{"delete", "rm"},
	Short:   "Delete a ride",
	Long: `Delete the ride with the given id and rewrite the database file.
Ids are positions in the file, so every later ride's id shifts down by one;
run "velo rides" again before deleting another.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ride id %q", args[0])
	}

	if err := rides.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tr("Ride deleted."))
	return nil
}
