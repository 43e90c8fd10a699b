// Package platform holds host checks that only produce advisories.
package platform

import (
	"runtime"
	"strings"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/pkg/filesystem"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// LibUSBWarning is printed on macOS when neither Homebrew libusb location exists.
const LibUSBWarning = "libusb not found. You may need to install it manually on MacOS via Homebrew (brew install libusb)."

// Advisor inspects the host for missing optional dependencies.
type Advisor struct {
	GOOS   string
	Exists func(path string) bool
}

// NewAdvisor builds an advisor for the running host.
func NewAdvisor() *Advisor {
	return &Advisor{GOOS: runtime.GOOS, Exists: filesystem.Exists}
}

// IsDarwin reports whether OSTYPE or the build target names macOS.
func (a *Advisor) IsDarwin(env domain.Environment) bool {
	return strings.HasPrefix(env.Get(domain.EnvOSType), "darwin") || a.GOOS == "darwin"
}

// Check returns advisory warnings. It never fails.
func (a *Advisor) Check(env domain.Environment) []string {
	if !a.IsDarwin(env) {
		return nil
	}
	for _, path := range domain.LibUSBPaths {
		if a.Exists(path) {
			return nil
		}
	}
	return []string{LibUSBWarning}
}

var _ ports.PlatformAdvisor = (*Advisor)(nil)
