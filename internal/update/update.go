// Package update implements self-update support for the kalk binary using
// GitHub releases.
package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

const repoSlug = "rahmanda/kalk"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	// InstallBinary is a directly downloaded release binary.
	InstallBinary InstallMethod = iota
	// InstallHomebrew is a Homebrew-managed install; upgrades go through brew.
	InstallHomebrew
	// InstallGoInstall is a `go install` build; upgrades go through the toolchain.
	InstallGoInstall
)

// DetectInstallMethod inspects the executable path to guess the install method.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallBinary
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return InstallBinary
	}
	return detectFromPath(exe)
}

func detectFromPath(exe string) InstallMethod {
	if strings.Contains(exe, "/Cellar/") || strings.Contains(exe, "/homebrew/") || strings.Contains(exe, "/linuxbrew/") {
		return InstallHomebrew
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			gopath = filepath.Join(home, "go")
		}
	}
	if gopath != "" && strings.HasPrefix(exe, filepath.Join(gopath, "bin")+string(filepath.Separator)) {
		return InstallGoInstall
	}
	return InstallBinary
}

// Release describes an available release.
type Release struct {
	Version string
	URL     string
}

// CheckForUpdate returns the latest release and whether it is newer than the
// current version.
func CheckForUpdate(current string) (*Release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, false, fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return nil, false, fmt.Errorf("no release found for %s", repoSlug)
	}

	release := &Release{Version: latest.Version(), URL: latest.URL}
	if latest.LessOrEqual(strings.TrimPrefix(current, "v")) {
		return release, false, nil
	}
	return release, true, nil
}

// Update replaces the running binary with the latest release asset.
func Update(current string) error {
	ctx := context.Background()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}
	if latest.LessOrEqual(strings.TrimPrefix(current, "v")) {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to install release %s: %w", latest.Version(), err)
	}
	return nil
}
