// Package ports defines the interfaces between the install workflow and the
// adapters that touch the network, the filesystem and child processes.
//
// The application layer depends only on these interfaces so the whole
// bootstrap sequence can be exercised against fakes:
//   - Fetcher: downloads the installer and writes it to disk
//   - CommandRunner: starts the installed binary
//   - ConfigProvider: reads the optional YAML file
//   - Logger: structured logging
package ports

import (
	"context"

	"github.com/doeshing/foundryup-init/internal/domain"
)

// ConfigProvider loads the optional configuration file.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Fetcher retrieves url and persists it at dest as an executable file.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dest string) (domain.FetchResult, error)
}

// CommandRunner runs a program by name, resolving it against the PATH of env.
type CommandRunner interface {
	Run(ctx context.Context, name string, env domain.Environment) error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// PathResolver computes and prepares the installation directories.
type PathResolver interface {
	Resolve(domain.Environment) (domain.InstallPaths, error)
	EnsureDirs(domain.InstallPaths) error
}

// ShellDetector chooses the profile file for the invoking shell.
type ShellDetector interface {
	Detect(domain.Environment) domain.ShellProfile
}

// ProfileInstaller persists the bin directory on the PATH of future shells.
type ProfileInstaller interface {
	Install(profile domain.ShellProfile, binDir string, env domain.Environment) (domain.ProfileUpdate, error)
	Status(profile domain.ShellProfile, binDir string) (bool, error)
}

// PlatformAdvisor reports non-fatal host issues.
type PlatformAdvisor interface {
	Check(domain.Environment) []string
}
