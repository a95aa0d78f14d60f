package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/plain"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Play line by line on stdin/stdout",
	Long: `Play without the full-screen UI. Questions are printed one per line and
answers are read from standard input, so the game also works in dumb
terminals and pipes. After each round you are asked whether to play again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		return plain.Run(cmd.Context(), plain.Options{
			In:      cmd.InOrStdin(),
			Out:     cmd.OutOrStdout(),
			Session: d.session,
			Ticker:  countdown.New(d.cfg.TickInterval),
			Logger:  d.logger,
			Replay:  true,
		})
	},
}
