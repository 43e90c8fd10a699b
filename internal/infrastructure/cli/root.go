package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/foundryup-init/internal/app"
	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	// Verbose is the minimum verbosity; -v flags add to it.
	Verbose int
	Env     domain.Environment
	Streams app.Streams
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// performs the install.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	var (
		configPath   string
		verbose      int
		installFlags commands.InstallFlags
	)

	streams := opts.Streams.WithDefaults()

	var container *app.Container
	factory := func(ctx context.Context) (*app.Container, error) {
		if container != nil {
			return container, nil
		}
		level := verbose
		if opts.Verbose > level {
			level = opts.Verbose
		}
		built, err := app.BuildContainer(ctx, opts.Env, configPath, level, streams)
		if err != nil {
			return nil, err
		}
		container = built
		return container, nil
	}

	root := &cobra.Command{
		Use:   "foundryup-init",
		Short: "Install foundryup and add it to your PATH",
		Long: `foundryup-init downloads foundryup into $FOUNDRY_DIR/bin
(default: $XDG_CONFIG_HOME/.foundry or $HOME/.foundry), adds that
directory to your shell profile, and for bash runs foundryup right away.

Supported shells: zsh, bash, fish, ash.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			return commands.RunInstall(cmd, container, &installFlags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	root.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (repeatable)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $"+domain.EnvConfig+")")
	installFlags.Bind(root)

	root.AddCommand(commands.NewDoctorCommand(factory))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
