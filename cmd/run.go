package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rechenquiz/rechenquiz/internal/app"
	"github.com/rechenquiz/rechenquiz/internal/config"
	"github.com/rechenquiz/rechenquiz/internal/logging"
	"github.com/rechenquiz/rechenquiz/internal/problemgen"
	"github.com/rechenquiz/rechenquiz/internal/session"
)

// deps is everything a game front end needs.
type deps struct {
	cfg      *config.Config
	logger   *slog.Logger
	session  *session.Session
	closeLog func() error
}

func (d *deps) close() {
	_ = d.closeLog()
}

// buildDeps loads the configuration, applies command-line overrides and
// wires logger, generator and session.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Debug, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	gen, err := problemgen.NewRandom(cfg.Ranges, nil)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("question generator: %w", err)
	}

	logger.Debug("config loaded",
		"duration_secs", cfg.DurationSecs,
		"retries", cfg.Retries,
		"tick", cfg.TickInterval,
		"ranges", fmt.Sprintf("%s/%s/%s/%s", cfg.Ranges.Minuend, cfg.Ranges.Subtrahend, cfg.Ranges.Addend1, cfg.Ranges.Addend2),
	)

	return &deps{
		cfg:      cfg,
		logger:   logger,
		session:  session.New(gen, cfg.Session(), session.WithLogger(logger)),
		closeLog: closeLog,
	}, nil
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.DurationSecs, _ = flags.GetInt("duration")
	}
	if flags.Changed("retries") {
		cfg.Retries, _ = flags.GetInt("retries")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	opts := app.Options{
		Session:      d.session,
		TickInterval: d.cfg.TickInterval,
		Logger:       d.logger,
	}
	if d.cfg.CheckUpdates {
		opts.UpdateCheck = updateNotice
	}
	return app.Run(opts)
}
