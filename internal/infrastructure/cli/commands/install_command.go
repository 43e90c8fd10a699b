package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/foundryup-init/internal/app"
	"github.com/doeshing/foundryup-init/internal/domain"
)

// InstallFlags are the command-line overrides for a run.
type InstallFlags struct {
	URL          string
	NoModifyPath bool
	NoRun        bool
}

// Bind registers the flags on cmd.
func (f *InstallFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.URL, "url", "", "Download foundryup from this URL instead of "+domain.DefaultBinaryURL)
	cmd.Flags().BoolVar(&f.NoModifyPath, "no-modify-path", false, "Do not append the bin directory to your shell profile")
	cmd.Flags().BoolVar(&f.NoRun, "no-run", false, "Do not run foundryup after installing (bash only)")
}

// resolveOptions layers defaults, the config file and flags, in that order.
func (f *InstallFlags) resolveOptions(cfg domain.Config) domain.Options {
	opts := cfg.Apply(domain.DefaultOptions())
	if f.URL != "" {
		opts.URL = f.URL
	}
	if f.NoModifyPath {
		opts.ModifyPath = false
	}
	if f.NoRun {
		opts.RunInstaller = false
	}
	return opts
}

// RunInstall performs the bootstrap install and prints the summary.
func RunInstall(cmd *cobra.Command, container *app.Container, flags *InstallFlags) error {
	if container.InstallService == nil {
		return errors.New(ErrInstallServiceUnavailable)
	}

	ctx := cmd.Context()
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	opts := flags.resolveOptions(cfg)
	container.Logger.Debug("install options", map[string]interface{}{
		"url":           opts.URL,
		"modify_path":   opts.ModifyPath,
		"run_installer": opts.RunInstaller,
	})

	result, err := container.InstallService.Run(ctx, container.Env, opts)
	if err != nil {
		container.Logger.Debug("install failed", map[string]interface{}{"kind": domain.KindOf(err)})
		return err
	}

	displayInstallSummary(cmd.OutOrStdout(), result)
	return nil
}

// displayInstallSummary prints the closing instructions.
func displayInstallSummary(out io.Writer, result domain.InstallResult) {
	profile := result.Profile.Profile
	path, _ := profile.Path()

	fmt.Fprintln(out)
	if result.Profile.Skipped {
		fmt.Fprintf(out, "Installed %s to %s. Add %s to your PATH to use it.\n",
			domain.BinaryName, result.Paths.BinaryPath, result.Paths.BinDir)
		fmt.Fprintf(out, "Then, simply run '%s' to install Foundry.\n", domain.BinaryName)
		return
	}

	fmt.Fprintf(out, "Detected your preferred shell is %s and added %s to PATH.\n", profile.Shell(), domain.BinaryName)
	fmt.Fprintf(out, "Run 'source %s' or start a new terminal session to use %s.\n", path, domain.BinaryName)
	fmt.Fprintf(out, "Then, simply run '%s' to install Foundry.\n", domain.BinaryName)
}
