package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/loicseguin/velolog/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new ride",
	Long: `Add a ride to the database. The duration accepts a decimal number of
hours or an hours-and-minutes form:

  velo add --distance 20 --duration 1.5
  velo add --distance 20 --duration 1:30 --comment "Around the lake"
  velo add --distance 20 --duration 1h30 --url http://www.mymap.com/1234

The timestamp defaults to now; pass --date to backfill a ride.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Float64("distance", 0, "distance in kilometers")
	addCmd.Flags().String("duration", "", "duration (1.5, 1:30, 1h30, 1h)")
	addCmd.Flags().String("comment", "", "optional comment")
	addCmd.Flags().String("url", "", "optional itinerary URL")
	addCmd.Flags().String("date", "", "timestamp ("+domain.TimestampLayout+"), default now")
	_ = addCmd.MarkFlagRequired("distance")
	_ = addCmd.MarkFlagRequired("duration")
}

func runAdd(cmd *cobra.Command, args []string) error {
	input, err := rideFromFlags(cmd)
	if err != nil {
		return err
	}

	ride, err := rides.Add(cmd.Context(), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", tr("Ride added."), ride.ID)
	return nil
}

// rideFromFlags assembles a ride from the shared add/edit flag set, parsing
// the duration grammar and the optional date.
func rideFromFlags(cmd *cobra.Command) (domain.Ride, error) {
	distance, _ := cmd.Flags().GetFloat64("distance")
	durationStr, _ := cmd.Flags().GetString("duration")
	comment, _ := cmd.Flags().GetString("comment")
	url, _ := cmd.Flags().GetString("url")
	dateStr, _ := cmd.Flags().GetString("date")

	duration, err := domain.ParseDuration(durationStr)
	if err != nil {
		return domain.Ride{}, err
	}

	var ts time.Time
	if dateStr != "" {
		ts, err = time.Parse(domain.TimestampLayout, dateStr)
		if err != nil {
			return domain.Ride{}, fmt.Errorf("invalid date %q, want %s", dateStr, domain.TimestampLayout)
		}
	}

	return domain.Ride{
		Timestamp: ts,
		Distance:  distance,
		Duration:  duration,
		Comment:   comment,
		URL:       url,
	}, nil
}
