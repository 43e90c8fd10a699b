// Package paths resolves the installation directories from an environment snapshot.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// Resolve computes the install root and its bin and man directories.
// The root is FOUNDRY_DIR when set, otherwise <XDG_CONFIG_HOME or HOME>/.foundry.
func Resolve(env domain.Environment) (domain.InstallPaths, error) {
	base, ok := env.Lookup(domain.EnvXDGConfigHome)
	if !ok {
		base, ok = env.Lookup(domain.EnvHome)
	}
	if !ok {
		return domain.InstallPaths{}, domain.ConfigError("HOME environment variable not set", nil)
	}

	root := env.GetOr(domain.EnvFoundryDir, filepath.Join(base, domain.FoundryDirName))
	binDir := filepath.Join(root, "bin")
	return domain.InstallPaths{
		Root:       root,
		BinDir:     binDir,
		ManDir:     filepath.Join(root, "share", "man", "man1"),
		BinaryPath: filepath.Join(binDir, domain.BinaryName),
	}, nil
}

// EnsureDirs creates the bin and man directories. Existing directories are left alone.
func EnsureDirs(p domain.InstallPaths) error {
	for _, dir := range []string{p.BinDir, p.ManDir} {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Resolver exposes Resolve and EnsureDirs as a ports.PathResolver.
type Resolver struct{}

// Resolve implements ports.PathResolver.
func (Resolver) Resolve(env domain.Environment) (domain.InstallPaths, error) {
	return Resolve(env)
}

// EnsureDirs implements ports.PathResolver.
func (Resolver) EnsureDirs(p domain.InstallPaths) error {
	return EnsureDirs(p)
}

var _ ports.PathResolver = Resolver{}
