// Clickme is an editor for clickjacking demonstrations.
//
// A demonstration is a sequence of steps. Each step frames a target page at
// its own size and overlays at most one decoy control (a plain button, a
// captcha checkbox or a captcha puzzle) and an optional script. The editor
// persists the sequence, renders it as a standalone HTML page, and exports
// the stored settings as JSON.
//
// Usage:
//
//	clickme [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'clickme --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags, applied over the preferences file and CLICKME_* environment
var (
	backendFlag  string
	dataDirFlag  string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "clickme",
	Short: "ClickMe clickjacking demonstration editor",
	Long: `Build clickjacking demonstrations step by step.

Each step frames a target page at its own size and overlays at most one
decoy control: a plain button, a captcha checkbox or a captcha puzzle.
Steps can also carry a script and a timeout before the sequence advances.

Settings are saved after every change. Use 'clickme render' to produce the
demonstration page and 'clickme export' to copy the stored settings.

If no command is specified, the interactive editor will launch automatically.`,
	Version: version.Version,
	Example: `  # Launch the editor
  clickme

  # Build a two-step demo from the command line
  clickme set url https://target.example
  clickme step add
  clickme control assign 2 captcha-puzzle
  clickme render -o demo.html --menu`,
	RunE: runEdit,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Settings store backend (file, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the settings store")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); silent when unset")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String("clickme"))
	},
}
