package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/config"
)

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write the built-in example snapshot as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := config.NewSnapshotParser()
			snap := sp.CreateExampleSnapshot(calculation.Now())
			if out != "" {
				if err := sp.SaveToFile(snap, out); err != nil {
					return err
				}
				a.logger.Infof("example snapshot written to %s", out)
				return nil
			}
			b, err := yaml.Marshal(snap)
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write (default: stdout)")
	return cmd
}
