package doctor

import (
	"context"
	"fmt"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// Service inspects an installation without changing anything.
type Service struct {
	Paths     ports.PathResolver
	Detector  ports.ShellDetector
	Installer ports.ProfileInstaller
	Advisor   ports.PlatformAdvisor
	// IsExecutable reports whether a path is an executable regular file.
	IsExecutable func(path string) bool
}

// Run executes checks and returns a report. The error is non-nil only when
// the install root itself cannot be resolved.
func (s *Service) Run(_ context.Context, env domain.Environment) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	installPaths, err := s.Paths.Resolve(env)
	if err != nil {
		checks = append(checks, fail("Install root", err.Error()))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Install root", installPaths.Root))

	if s.IsExecutable(installPaths.BinaryPath) {
		checks = append(checks, ok("Binary", installPaths.BinaryPath))
	} else {
		checks = append(checks, warn("Binary", fmt.Sprintf("%s missing or not executable", installPaths.BinaryPath)))
	}

	if domain.PathListContains(env.Get(domain.EnvPath), installPaths.BinDir) {
		checks = append(checks, ok("PATH", fmt.Sprintf("%s on PATH", installPaths.BinDir)))
	} else {
		checks = append(checks, warn("PATH", fmt.Sprintf("%s not on PATH of this shell", installPaths.BinDir)))
	}

	checks = append(checks, s.profileChecks(env, installPaths.BinDir)...)

	warnings := s.Advisor.Check(env)
	if len(warnings) == 0 {
		checks = append(checks, ok("Platform", "no advisories"))
	}
	for _, w := range warnings {
		checks = append(checks, warn("Platform", w))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) profileChecks(env domain.Environment, binDir string) []domain.HealthCheck {
	profile := s.Detector.Detect(env)
	path, supported := profile.Path()
	if !supported {
		shellValue := env.Get(domain.EnvShell)
		if shellValue == "" {
			shellValue = "SHELL unset"
		}
		return []domain.HealthCheck{warn("Shell", fmt.Sprintf("unsupported (%s), add %s to PATH manually", shellValue, binDir))}
	}

	checks := []domain.HealthCheck{ok("Shell", fmt.Sprintf("%s, profile %s", profile.Shell(), path))}
	present, err := s.Installer.Status(profile, binDir)
	switch {
	case err != nil:
		checks = append(checks, warn("Profile entry", err.Error()))
	case present:
		checks = append(checks, ok("Profile entry", "PATH line present"))
	default:
		checks = append(checks, warn("Profile entry", fmt.Sprintf("PATH line missing from %s", path)))
	}
	return checks
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
