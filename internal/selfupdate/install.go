package selfupdate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Stage is a step of Update, reported through Progress.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageInstall  Stage = "install"
)

// Progress receives one message per stage. A nil Progress is allowed.
type Progress func(stage Stage, message string)

// Update replaces the running executable with the latest release and
// returns the installed tag.
func (c *Checker) Update(ctx context.Context, current string, progress Progress) (string, error) {
	if progress == nil {
		progress = func(Stage, string) {}
	}
	if current == DevVersion {
		return "", ErrDevBuild
	}

	progress(StageCheck, "Checking for a newer release...")
	res, err := c.Check(ctx, &CheckInput{Version: current})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !res.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	tag := res.LatestVersion

	a, err := assetFor(c.goos, c.goarch)
	if err != nil {
		return "", err
	}

	progress(StageDownload, fmt.Sprintf("Downloading %s (%s)...", tag, a.archive))
	archive, err := c.fetch(ctx, c.downloadURL(tag, a.archive), "")
	if err != nil {
		return "", fmt.Errorf("download archive: %w", err)
	}

	progress(StageVerify, "Verifying checksum...")
	listing, err := c.fetch(ctx, c.downloadURL(tag, checksumsFile), "")
	if err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(listing, a.archive)
	if err != nil {
		return "", err
	}
	if err := verifySHA256(archive, want); err != nil {
		return "", err
	}

	bin, err := a.unpack(archive)
	if err != nil {
		return "", err
	}

	target, err := c.execPath()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	progress(StageInstall, fmt.Sprintf("Installing %s to %s...", tag, target))
	if err := replaceExecutable(target, bin, c.goos == "windows"); err != nil {
		return "", fmt.Errorf("install: %w", err)
	}
	return tag, nil
}

// replaceExecutable writes data next to target and renames it over target,
// keeping target's permissions. Windows cannot overwrite a running
// executable, so there the old file is moved aside first.
func replaceExecutable(target string, data []byte, moveAside bool) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}

	if moveAside {
		old := target + ".old"
		_ = os.Remove(old)
		if err := os.Rename(target, old); err != nil {
			return err
		}
	}
	return os.Rename(tmpName, target)
}
