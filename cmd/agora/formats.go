package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agora-protocol/dashboard/internal/output"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintf(w, "with --dir: %s\n", output.AllFormats)
			return nil
		},
	}
}
