// Package cli implements the velo command line tool on top of the ride-log
// core. Commands only parse arguments and render output; every data
// operation goes through the service layer.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/loicseguin/velolog/internal/config"
	"github.com/loicseguin/velolog/internal/domain"
	"github.com/loicseguin/velolog/internal/i18n"
	"github.com/loicseguin/velolog/internal/service"
	"github.com/loicseguin/velolog/internal/store"
)

var (
	// fileFlag overrides the configured ride file path.
	fileFlag string

	// rides is the service every command runs against, wired once in
	// PersistentPreRunE.
	rides *service.RideService

	// tr localizes user-facing messages.
	tr i18n.Translator
)

var rootCmd = &cobra.Command{
	Use:   "velo",
	Short: "Maintain a simple database of bike rides",
	Long: `velo maintains a plain-text database of bike rides. For each ride the
distance and the duration are stored, along with an optional comment and an
optional itinerary URL. Rides can be listed, edited, summarized, and the
database file can be migrated from older encodings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if fileFlag != "" {
			cfg.RidesFile = fileFlag
		}
		rides = service.NewRideService(store.New(cfg.RidesFile, cfg.Delimiter))
		tr = i18n.FromEnv()
		return nil
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(storeFlags())
}

// storeFlags groups the flags shared by every command that touches the ride
// file, so tests can build the same flag set without the full command tree.
func storeFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("store", pflag.ContinueOnError)
	fs.StringVar(&fileFlag, "file", "",
		"path of the ride file (default ~/"+config.DefaultFileName+")")
	return fs
}

// yearFilter builds the filter from trailing year arguments: no argument
// means the current year, "all" means every year.
func yearFilter(args []string) (domain.YearFilter, error) {
	if len(args) == 0 {
		return domain.CurrentYear(), nil
	}
	var years []int
	for _, arg := range args {
		if arg == "all" {
			return domain.AllYears(), nil
		}
		y, err := strconv.Atoi(arg)
		if err != nil {
			return domain.YearFilter{}, fmt.Errorf("invalid year %q", arg)
		}
		years = append(years, y)
	}
	return domain.Years(years...), nil
}
