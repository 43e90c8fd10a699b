package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/foundryup-init/internal/app"
	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := domain.NewEnvironment(os.Environ())
	opts := cli.Options{
		Verbose: debugVerbosity(env),
		Env:     env,
		Streams: app.DefaultStreams(),
	}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func debugVerbosity(env domain.Environment) int {
	value := env.Get(domain.EnvDebug)
	if strings.EqualFold(value, "1") || strings.EqualFold(value, "true") {
		return 2
	}
	return 0
}
