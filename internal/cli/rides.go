package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ridesCmd = &cobra.Command{
	Use:   "rides [year]... | rides all",
	Short: "Print rides",
	Long: `Print the rides in the database as a table. With no argument only the
current year is shown; pass one or more years, or "all".`,
	RunE: runRides,
}

func init() {
	rootCmd.AddCommand(ridesCmd)
}

func runRides(cmd *cobra.Command, args []string) error {
	filter, err := yearFilter(args)
	if err != nil {
		return err
	}

	list, err := rides.Load(cmd.Context(), filter)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), noRidesMessage(filter))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderRidesTable(list))
	return nil
}
