package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/trackmeet/internal/config"
	"github.com/mmynk/trackmeet/pkg/logging"
)

func main() {
	if err := rootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootCommand builds the trackmeet CLI. Running it without a subcommand
// starts the server.
func rootCommand() *cobra.Command {
	v := config.New()
	var (
		configFile string
		cfg        *config.Config
	)

	root := &cobra.Command{
		Use:           "trackmeet",
		Short:         "School track and field meet server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v, configFile)
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml or $HOME/.trackmeet/config.yaml)")
	root.PersistentFlags().String("db", "", "path to the SQLite database")
	root.PersistentFlags().Int("port", 0, "HTTP listen port")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	bindFlag(v, root, "db.path", "db")
	bindFlag(v, root, "server.port", "port")
	bindFlag(v, root, "log.level", "log-level")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the Connect server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), cfg)
			},
		},
		backupCommand(func() *config.Config { return cfg }),
		restoreCommand(func() *config.Config { return cfg }),
	)
	return root
}

// bindFlag binds a persistent flag into viper. Flags only override the
// config file and environment when set on the command line.
func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}
