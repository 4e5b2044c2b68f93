// Command als is the Alif Language Server: a JSON-RPC LSP core served over
// stdio or a loopback TCP socket, grounded on the teacher's cmd/surge
// cobra CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alif-lang/als/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "als [--stdio | --socket PORT] [--log-file FILE] [--log-level LEVEL] [--config FILE]",
	Short:   "Alif Language Server",
	Long:    `als is the concurrent JSON-RPC runtime for the Alif language server: framed transport, a priority thread pool, and Arabic-aware completion.`,
	Args:    cobra.NoArgs,
	RunE:    runServe,
	Version: version.ServerInfoVersion,
}

func main() {
	rootCmd.PersistentFlags().Bool("stdio", true, "serve over stdin/stdout (default)")
	rootCmd.PersistentFlags().Int("socket", 0, "serve over 127.0.0.1:PORT instead of stdio")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file in addition to the console")
	rootCmd.PersistentFlags().String("log-level", "info", "trace|debug|info|warn|error|critical|off")
	rootCmd.PersistentFlags().String("config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize log output (auto|on|off)")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal, used to resolve
// --color auto.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
