// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/cactuskit/cactus/config"
	"github.com/cactuskit/cactus/internal/logger"
)

type rootFlags struct {
	logLevel   string
	logJSON    bool
	configPath string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cactus",
		Short:         "Cactus previews a catalog of Gio components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:  flags.logLevel,
				JSON:   flags.logJSON,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON lines")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Gallery configuration file (YAML or TOML)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newSnapshotCmd(flags))

	return cmd
}

// loadConfig returns the configuration named by --config, or the
// default configuration.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	f.log.Debug("config loaded", "path", f.configPath)
	return cfg, nil
}
