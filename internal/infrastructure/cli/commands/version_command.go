package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show foundryup-init version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
}

// displayVersionInformation prints the build metadata, naming the -X flag
// for any field the build left unset.
func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "foundryup-init version %s\n", version.Version)
	fmt.Fprintf(out, "Commit: %s\n", ldflagValue(version.Commit, "Commit"))
	fmt.Fprintf(out, "Built: %s\n", ldflagValue(version.BuildDate, "BuildDate"))
	fmt.Fprintf(out, "Installs: %s from %s\n", domain.BinaryName, domain.DefaultBinaryURL)
	fmt.Fprintf(out, "Go version: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return nil
}

func ldflagValue(value, name string) string {
	if value != "" {
		return value
	}
	return fmt.Sprintf("unknown (-X %s.%s)", version.Path, name)
}
