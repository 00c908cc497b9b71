// Package cli provides the Cobra command structure for quire.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Commit string
	Date   string
}

// rootFlags holds the flags of the root command.
type rootFlags struct {
	configPath  string
	logFile     string
	logLevel    string
	noHighlight bool
	lineNumbers bool
	jobs        int
}

// NewRootCommand creates the root quire command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "quire [files...]",
		Short: "A small terminal text editor",
		Long: `quire edits text files in the terminal.

Every file named on the command line is opened in its own buffer; files that
do not exist yet start empty. JavaScript, Rust and Go are highlighted.

Keys:
  arrows             move
  ctrl+n / ctrl+p    next / previous buffer
  ctrl+w             close buffer
  ctrl+q             quit`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), flags, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"path to config file (default: $XDG_CONFIG_HOME/quire/config.yaml)")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "",
		"log level: debug, info, warn, error (default from config or $QUIRE_LOG)")
	rootCmd.Flags().BoolVar(&flags.noHighlight, "no-highlight", false, "disable syntax highlighting")
	rootCmd.Flags().BoolVarP(&flags.lineNumbers, "line-numbers", "n", false, "show line numbers")
	rootCmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "files to read concurrently (default: number of CPUs)")

	rootCmd.AddCommand(newConfigCommand(&flags.configPath))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
