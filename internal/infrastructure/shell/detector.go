package shell

import (
	"path/filepath"
	"strings"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// Matching is by suffix and "bash" ends in "ash", so ash is checked last.
var detectionOrder = []domain.ShellName{
	domain.ShellZsh,
	domain.ShellBash,
	domain.ShellFish,
	domain.ShellAsh,
}

// ParseShellName classifies a SHELL value by suffix.
// Handles both simple names and full paths (e.g., "/bin/zsh" -> "zsh").
func ParseShellName(value string) domain.ShellName {
	value = strings.TrimSpace(value)
	for _, name := range detectionOrder {
		if strings.HasSuffix(value, string(name)) {
			return name
		}
	}
	return domain.ShellUnsupported
}

// Detect selects the profile file for the shell named by SHELL in env. A
// profile is never built relative to the working directory: without HOME
// (or ZDOTDIR for zsh) the result is unsupported.
func Detect(env domain.Environment) domain.ShellProfile {
	home := env.Get(domain.EnvHome)
	shell := ParseShellName(env.Get(domain.EnvShell))

	dir := home
	if shell == domain.ShellZsh {
		dir = env.GetOr(domain.EnvZDotDir, home)
	}
	if dir == "" {
		return domain.UnsupportedProfile()
	}

	switch shell {
	case domain.ShellZsh:
		return domain.NewShellProfile(domain.ShellZsh, filepath.Join(dir, ".zshenv"))
	case domain.ShellBash:
		return domain.NewShellProfile(domain.ShellBash, filepath.Join(dir, ".bashrc"))
	case domain.ShellFish:
		return domain.NewShellProfile(domain.ShellFish, filepath.Join(dir, ".config", "fish", "config.fish"))
	case domain.ShellAsh:
		return domain.NewShellProfile(domain.ShellAsh, filepath.Join(dir, ".profile"))
	default:
		return domain.UnsupportedProfile()
	}
}

// Detector exposes Detect as a ports.ShellDetector.
type Detector struct{}

// Detect implements ports.ShellDetector.
func (Detector) Detect(env domain.Environment) domain.ShellProfile {
	return Detect(env)
}

var _ ports.ShellDetector = Detector{}
