package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/version"
)

func TestResolveOptions(t *testing.T) {
	no := false
	tests := []struct {
		name  string
		flags InstallFlags
		cfg   domain.Config
		want  domain.Options
	}{
		{
			name: "defaults",
			want: domain.DefaultOptions(),
		},
		{
			name: "config overrides defaults",
			cfg:  domain.Config{URL: "https://cfg.example/foundryup", RunInstaller: &no},
			want: domain.Options{URL: "https://cfg.example/foundryup", ModifyPath: true, RunInstaller: false},
		},
		{
			name:  "flags override config",
			flags: InstallFlags{URL: "https://flag.example/foundryup", NoModifyPath: true},
			cfg:   domain.Config{URL: "https://cfg.example/foundryup"},
			want:  domain.Options{URL: "https://flag.example/foundryup", ModifyPath: false, RunInstaller: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.resolveOptions(tt.cfg))
		})
	}
}

func TestDisplayInstallSummary(t *testing.T) {
	var out bytes.Buffer
	displayInstallSummary(&out, domain.InstallResult{
		Profile: domain.ProfileUpdate{Profile: domain.NewShellProfile(domain.ShellZsh, "/tmp/h/.zshenv")},
	})
	assert.Equal(t, "\nDetected your preferred shell is zsh and added foundryup to PATH.\n"+
		"Run 'source /tmp/h/.zshenv' or start a new terminal session to use foundryup.\n"+
		"Then, simply run 'foundryup' to install Foundry.\n", out.String())
}

func TestDisplayDoctorReport(t *testing.T) {
	var out bytes.Buffer
	displayDoctorReport(&out, domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "Binary", Status: domain.HealthWarn, Details: "missing"},
	}})
	assert.Equal(t, "[WARN] Binary - missing\n", out.String())
}

func TestDiagnosticsError(t *testing.T) {
	warnOnly := domain.HealthReport{Checks: []domain.HealthCheck{{Name: "Binary", Status: domain.HealthWarn}}}
	assert.NoError(t, diagnosticsError(warnOnly, nil))

	failed := domain.HealthReport{Checks: []domain.HealthCheck{{Name: "Install root", Status: domain.HealthError}}}
	assert.EqualError(t, diagnosticsError(failed, nil), ErrDiagnosticsFailed)

	cause := errors.New("HOME environment variable not set")
	err := diagnosticsError(failed, cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), ErrDiagnosticsFailed)
}

func TestDisplayVersionInformation(t *testing.T) {
	origCommit, origBuilt := version.Commit, version.BuildDate
	t.Cleanup(func() { version.Commit, version.BuildDate = origCommit, origBuilt })

	version.Commit, version.BuildDate = "", "2026-10-01"
	var out bytes.Buffer
	require.NoError(t, displayVersionInformation(&out))

	assert.Contains(t, out.String(), "Commit: unknown (-X github.com/doeshing/foundryup-init/internal/version.Commit)\n")
	assert.Contains(t, out.String(), "Built: 2026-10-01\n")
	assert.Contains(t, out.String(), "Installs: foundryup from "+domain.DefaultBinaryURL+"\n")
}
