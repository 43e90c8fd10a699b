package app

import (
	"context"
	"io"
	"os"

	"github.com/doeshing/foundryup-init/internal/application/doctor"
	"github.com/doeshing/foundryup-init/internal/application/install"
	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/infrastructure/config"
	"github.com/doeshing/foundryup-init/internal/infrastructure/executor"
	"github.com/doeshing/foundryup-init/internal/infrastructure/fetch"
	"github.com/doeshing/foundryup-init/internal/infrastructure/paths"
	"github.com/doeshing/foundryup-init/internal/infrastructure/platform"
	"github.com/doeshing/foundryup-init/internal/infrastructure/shell"
	"github.com/doeshing/foundryup-init/internal/pkg/filesystem"
	"github.com/doeshing/foundryup-init/internal/pkg/logger"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// Streams are the standard streams handed to services and child processes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process stdio.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// WithDefaults fills unset streams from the process stdio.
func (s Streams) WithDefaults() Streams {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	return s
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Env            domain.Environment
	Logger         ports.Logger
	ConfigProvider ports.ConfigProvider
	InstallService *install.Service
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph for one run.
func BuildContainer(_ context.Context, env domain.Environment, configPath string, verbosity int, streams Streams) (*Container, error) {
	log := logger.New(streams.Err, verbosity)

	if configPath == "" {
		configPath = env.Get(domain.EnvConfig)
	}
	cfgLoader := config.NewFileLoader(configPath, env.Get(domain.EnvHome))

	resolver := paths.Resolver{}
	detector := shell.Detector{}
	profileInstaller := shell.NewInstaller(log)
	advisor := platform.NewAdvisor()

	installService := &install.Service{
		Paths:     resolver,
		Fetcher:   fetch.NewHTTPFetcher(nil, log),
		Detector:  detector,
		Installer: profileInstaller,
		Advisor:   advisor,
		Runner:    executor.NewLocalExecutor(streams.In, streams.Out, streams.Err, log),
		Logger:    log,
		Out:       streams.Out,
	}

	doctorService := &doctor.Service{
		Paths:        resolver,
		Detector:     detector,
		Installer:    profileInstaller,
		Advisor:      advisor,
		IsExecutable: filesystem.IsExecutable,
	}

	return &Container{
		Env:            env,
		Logger:         log,
		ConfigProvider: cfgLoader,
		InstallService: installService,
		DoctorService:  doctorService,
	}, nil
}
