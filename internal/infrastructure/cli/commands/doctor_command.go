package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/foundryup-init/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(factory ContainerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check an existing foundryup installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, cmd.OutOrStdout(), factory)
		},
	}
}

// runDoctorDiagnostics runs installation diagnostics
func runDoctorDiagnostics(cmd *cobra.Command, out io.Writer, factory ContainerFactory) error {
	container, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	if container.DoctorService == nil {
		return errors.New(ErrDoctorServiceUnavailable)
	}

	report, err := container.DoctorService.Run(cmd.Context(), container.Env)

	// Display report even if there were errors
	displayDoctorReport(out, report)

	return diagnosticsError(report, err)
}

// diagnosticsError turns a failed run or any ERROR check into the exit error.
func diagnosticsError(report domain.HealthReport, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDiagnosticsFailed, err)
	}
	if report.Failed() {
		return errors.New(ErrDiagnosticsFailed)
	}
	return nil
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
