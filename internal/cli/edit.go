package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/loicseguin/velolog/internal/domain"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the fields of an existing ride",
	Long: `Replace every field of the ride with the given id. Edits rewrite the
whole database file; ids of other rides are unchanged by an edit (unlike a
deletion).`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().Float64("distance", 0, "distance in kilometers")
	editCmd.Flags().String("duration", "", "duration (1.5, 1:30, 1h30, 1h)")
	editCmd.Flags().String("comment", "", "comment")
	editCmd.Flags().String("url", "", "itinerary URL")
	editCmd.Flags().String("date", "", "timestamp ("+domain.TimestampLayout+")")
	_ = editCmd.MarkFlagRequired("distance")
	_ = editCmd.MarkFlagRequired("duration")
	_ = editCmd.MarkFlagRequired("date")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ride id %q", args[0])
	}

	input, err := rideFromFlags(cmd)
	if err != nil {
		return err
	}

	if _, err := rides.Update(cmd.Context(), id, input); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tr("Ride updated."))
	return nil
}
