package install

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// Service runs the bootstrap sequence: resolve paths, fetch the installer,
// register the bin directory with the user's shell and, for bash, run it.
type Service struct {
	Paths     ports.PathResolver
	Fetcher   ports.Fetcher
	Detector  ports.ShellDetector
	Installer ports.ProfileInstaller
	Advisor   ports.PlatformAdvisor
	Runner    ports.CommandRunner
	Logger    ports.Logger
	Out       io.Writer
}

// Run executes every step in order. The first failure stops the run; files
// written by earlier steps are left in place.
func (s *Service) Run(ctx context.Context, env domain.Environment, opts domain.Options) (domain.InstallResult, error) {
	var result domain.InstallResult
	fmt.Fprintln(s.Out, "Installing foundryup...")

	installPaths, err := s.Paths.Resolve(env)
	if err != nil {
		return result, err
	}
	result.Paths = installPaths
	if err := s.Paths.EnsureDirs(installPaths); err != nil {
		return result, err
	}
	s.Logger.Debug("resolved install paths", map[string]interface{}{
		"root":    installPaths.Root,
		"bin_dir": installPaths.BinDir,
		"man_dir": installPaths.ManDir,
	})

	fetched, err := s.Fetcher.Fetch(ctx, opts.URL, installPaths.BinaryPath)
	if err != nil {
		return result, err
	}
	result.Fetch = fetched
	s.Logger.Info("installed binary", map[string]interface{}{
		"path":  fetched.Path,
		"bytes": fetched.Bytes,
	})

	profile := s.Detector.Detect(env)
	result.Profile.Profile = profile
	if !profile.Supported() {
		return result, domain.UnsupportedShellError(installPaths.BinDir)
	}

	if opts.ModifyPath {
		update, err := s.Installer.Install(profile, installPaths.BinDir, env)
		if err != nil {
			return result, err
		}
		result.Profile = update
	} else {
		s.Logger.Info("skipping profile update", nil)
		result.Profile.Skipped = true
	}

	result.Warnings = s.Advisor.Check(env)
	for _, warning := range result.Warnings {
		fmt.Fprintf(s.Out, "\nwarning: %s\n", warning)
	}

	if profile.Shell() == domain.ShellBash && opts.RunInstaller {
		if err := s.invoke(ctx, env, installPaths.BinDir); err != nil {
			return result, err
		}
		result.Invoked = true
	}

	return result, nil
}

// invoke runs the installed binary with binDir appended to the in-memory PATH.
func (s *Service) invoke(ctx context.Context, env domain.Environment, binDir string) error {
	fmt.Fprintf(s.Out, "\nDetected your preferred shell is bash. Updating PATH and running '%s'...\n", domain.BinaryName)

	runEnv := env.With(domain.EnvPath, domain.PathListAppend(env.Get(domain.EnvPath), binDir))
	err := s.Runner.Run(ctx, domain.BinaryName, runEnv)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrExecutableNotFound):
		return domain.InvocationError(domain.BinaryName+" not found in PATH after updating it", nil)
	default:
		return domain.InvocationError("running "+domain.BinaryName, err)
	}
}
