package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rechenquiz/rechenquiz/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = selfupdate.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "rechenquiz", version)

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}

		res, err := latestRelease(cmd.Context())
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if res != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s (%s)\nRun: rechenquiz update\n",
				res.LatestVersion, res.ReleaseURL)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Also check GitHub for a newer release")
}
