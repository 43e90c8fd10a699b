// Package version carries build metadata injected with -ldflags.
package version

// Path is the import path the -X flags target.
const Path = "github.com/doeshing/foundryup-init/internal/version"

// Set via -ldflags "-X github.com/doeshing/foundryup-init/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
