package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/STBoyden/hatsim/internal/logging"
)

// app carries what the subcommands share once flags are parsed.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	a.v.SetEnvPrefix("HATSIM")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "hatsim",
		Short: "Estimate draw probabilities for a hat of colored balls",
		Long: `hatsim puts labelled balls in a hat, draws some of them at random without
replacement, and estimates how likely a draw is to contain at least a given
number of balls of each label.

Every flag can also be set through the environment, e.g. HATSIM_TRIALS=5000.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			logger, err := logging.NewLogger(a.v.GetString("log-level"), a.v.GetString("log-format"), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (json, console)")

	rootCmd.AddCommand(
		newRunCmd(a),
		newExactCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}
