package cli

import (
	"fmt"
	"strconv"

	"github.com/cli/browser"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Open the itinerary URL of a ride in the browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().Bool("print", false, "print the URL instead of opening it")
}

func runView(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ride id %q", args[0])
	}

	url, err := rides.ViewURL(cmd.Context(), id)
	if err != nil {
		return err
	}

	if printOnly, _ := cmd.Flags().GetBool("print"); printOnly {
		fmt.Fprintln(cmd.OutOrStdout(), urlStyle.Render(url))
		return nil
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), tr("Opened %s")+"\n", url)
	return nil
}
