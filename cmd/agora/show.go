package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/output"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the dashboard",
		Long:  `Renders the dashboard in the chosen format to stdout, to --out, or as timestamped files in --dir. Format "all" (with --dir) writes the verbose console report and the detailed CSV.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.settings.Format = format
			}
			if cmd.Flags().Changed("out") {
				a.settings.OutFile = out
			}

			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			engine := calculation.NewViewEngine()
			engine.SetLogger(a.logger)
			view, err := engine.BuildView(snap, calculation.Now())
			if err != nil {
				return err
			}

			if dir != "" {
				paths, err := output.GenerateReport(view, a.settings.Format, dir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}

			b, f, err := output.Render(view, a.settings.Format)
			if err != nil {
				return err
			}
			if a.settings.OutFile == "" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(a.settings.OutFile, b, 0644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", a.settings.OutFile, err)
			}
			a.logger.Infof("wrote %s report to %s", f.Name(), a.settings.OutFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (see 'agora formats')")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&dir, "dir", "", "write timestamped report files into this directory")
	return cmd
}
