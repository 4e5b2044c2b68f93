package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alif-lang/als/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show als build fingerprints",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", version.Name, version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
