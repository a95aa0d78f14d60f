package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rechenquiz",
	Short: "Timed arithmetic quiz for the terminal",
	Long: `Rechenquiz: solve as many addition and subtraction problems as you can
before the clock runs out. Win by answering more questions correctly than wrong.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides RECHENQUIZ_CONFIG)")
	rootCmd.PersistentFlags().Int("duration", 0, "Session length in seconds (overrides config)")
	rootCmd.PersistentFlags().Int("retries", -1, "Extra tries per question (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to the log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
