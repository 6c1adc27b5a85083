package main

import (
	"github.com/spf13/cobra"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/config"
	"github.com/agora-protocol/dashboard/internal/domain"
)

// app carries state shared by every subcommand once settings are read.
type app struct {
	configPath string
	settings   *config.Settings
	logger     calculation.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: calculation.NopLogger{}}
	root := &cobra.Command{
		Use:          "agora",
		Short:        "AGORA governance dashboard",
		Long:         `Renders the AGORA governance dashboard from a snapshot file or the built-in example data, as a report or over a read-only HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.ReadSettings(a.configPath)
			if err != nil {
				return err
			}
			a.settings = s
			a.logger = calculation.NewStdLogger(s.Debug)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (yaml, json or toml)")
	root.PersistentFlags().String("snapshot", "", "snapshot YAML file (default: built-in example data)")

	root.AddCommand(newShowCmd(a), newServeCmd(a), newExampleCmd(a), newFormatsCmd())
	return root
}

// loadSnapshot reads the snapshot named by --snapshot, falling back to settings.
func (a *app) loadSnapshot(cmd *cobra.Command) (*domain.Dashboard, error) {
	path := a.settings.Snapshot
	if f := cmd.Flags().Lookup("snapshot"); f != nil && f.Changed {
		path = f.Value.String()
	}
	snap, err := config.NewSnapshotParser().Load(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		a.logger.Debugf("using built-in example snapshot")
	} else {
		a.logger.Debugf("loaded snapshot %s", path)
	}
	return snap, nil
}
