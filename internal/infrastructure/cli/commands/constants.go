package commands

import (
	"context"

	"github.com/doeshing/foundryup-init/internal/app"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(ctx context.Context) (*app.Container, error)

// Error messages
const (
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrInstallServiceUnavailable = "install service unavailable"
	ErrDiagnosticsFailed         = "diagnostics completed with errors"
)
