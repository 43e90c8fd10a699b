package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// Installer registers the bin directory on the PATH of future shells.
type Installer struct {
	logger ports.Logger
}

// NewInstaller builds a PATH installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install appends the PATH line for binDir to the profile, unless binDir is
// already on the PATH in env. Nothing is written in that case.
func (i *Installer) Install(profile domain.ShellProfile, binDir string, env domain.Environment) (domain.ProfileUpdate, error) {
	path, ok := profile.Path()
	if !ok {
		return domain.ProfileUpdate{}, domain.UnsupportedShellError(binDir)
	}

	update := domain.ProfileUpdate{
		Profile: profile,
		Line:    PathLine(profile.Shell(), binDir),
	}
	if domain.PathListContains(env.Get(domain.EnvPath), binDir) {
		i.logger.Debug("bin dir already on PATH, profile left untouched", map[string]interface{}{
			"bin_dir": binDir,
			"profile": path,
		})
		update.AlreadyOnPath = true
		return update, nil
	}

	if err := appendLine(path, update.Line); err != nil {
		return update, domain.ProfileWriteError(path, err)
	}
	i.logger.Info("appended PATH entry", map[string]interface{}{
		"profile": path,
		"line":    update.Line,
	})
	update.Appended = true
	return update, nil
}

// Status reports whether the profile already contains the PATH line for binDir.
func (i *Installer) Status(profile domain.ShellProfile, binDir string) (bool, error) {
	path, ok := profile.Path()
	if !ok {
		return false, errors.New("unsupported shell")
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	line := PathLine(profile.Shell(), binDir)
	for _, existing := range strings.Split(string(contents), "\n") {
		if strings.TrimSpace(existing) == line {
			return true, nil
		}
	}
	return false, nil
}

// PathLine is the profile line that puts binDir on PATH for shell.
func PathLine(shell domain.ShellName, binDir string) string {
	if shell == domain.ShellFish {
		return fmt.Sprintf("fish_add_path -a %s", binDir)
	}
	return fmt.Sprintf("export PATH=\"$PATH:%s\"", binDir)
}

func appendLine(path string, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.ProfileFilePermissions)
	if err != nil {
		return err
	}
	if _, err := f.WriteString("\n" + line + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var _ ports.ProfileInstaller = (*Installer)(nil)
