package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loicseguin/velolog/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats [year]... | stats all",
	Short: "Print statistics about rides",
	Long: `Print aggregate statistics for the rides in scope: total and mean
distance and duration, and the overall average speed. The year scope works
like the rides command.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	filter, err := yearFilter(args)
	if err != nil {
		return err
	}

	summary, err := rides.Stats(cmd.Context(), filter)
	if errors.Is(err, domain.ErrEmptySet) {
		fmt.Fprintln(cmd.OutOrStdout(), noRidesMessage(filter))
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %8.2f km\n", headerStyle.Render(tr("Total distance")+":"), summary.TotalDistance)
	fmt.Fprintf(out, "%s %8.2f h\n", headerStyle.Render(tr("Total duration")+":"), summary.TotalDuration)
	fmt.Fprintf(out, "%s %8.2f km\n", headerStyle.Render(tr("Mean distance")+":"), summary.MeanDistance)
	fmt.Fprintf(out, "%s %8.2f h\n", headerStyle.Render(tr("Mean duration")+":"), summary.MeanDuration)
	fmt.Fprintf(out, "%s %8s km/h\n", headerStyle.Render(tr("Average speed")+":"), formatSpeed(summary.AverageSpeed))
	return nil
}
