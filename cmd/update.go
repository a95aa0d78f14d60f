package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rechenquiz/rechenquiz/internal/selfupdate"
)

const (
	checkTimeout  = 5 * time.Second
	updateTimeout = 2 * time.Minute
)

// newChecker is shared by every command that talks to GitHub releases.
func newChecker(timeout time.Duration) *selfupdate.Checker {
	return selfupdate.NewChecker(selfupdate.WithTimeout(timeout))
}

// latestRelease returns the newer release, or nil when this build is
// current or a development build.
func latestRelease(ctx context.Context) (*selfupdate.CheckResult, error) {
	if version == selfupdate.DevVersion {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	res, err := newChecker(checkTimeout).Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !res.UpdateAvailable {
		return nil, err
	}
	return res, nil
}

// updateNotice is handed to the start screen when update checks are on.
func updateNotice() (string, error) {
	res, err := latestRelease(context.Background())
	if err != nil || res == nil {
		return "", err
	}
	return res.LatestVersion, nil
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update rechenquiz to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		out := cmd.OutOrStdout()
		tag, err := newChecker(updateTimeout).Update(ctx, version, func(_ selfupdate.Stage, msg string) {
			fmt.Fprintln(out, msg)
		})

		switch {
		case err == nil:
			fmt.Fprintf(out, "rechenquiz %s installed.\n", tag)
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "This is a development build. Install a release build to use update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintf(out, "rechenquiz %s is the latest release.\n", version)
			return nil
		case errors.Is(err, os.ErrPermission):
			return fmt.Errorf("%w\n\nThe install directory is not writable. Try: sudo rechenquiz update", err)
		}
		return err
	},
}
