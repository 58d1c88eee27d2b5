package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	// Config is loaded before any subcommand runs. Nil means no config file.
	Config *Config

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// NewRootCommand creates the root command for the myunit CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "myunit",
		Short: "myunit - minimal unit testing",
		Long: `A minimal unit-testing facility: assertions in plain functions,
grouped into named test groups, stopping at the first failure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadRootConfig(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+DefaultConfigFile+" if present)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// loadRootConfig loads the config file and applies it under the flags.
// A missing default config file is not an error; a missing explicit one is.
func loadRootConfig(opts *RootOptions, cmd *cobra.Command) error {
	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			opts.Config = &Config{}
			return nil
		}
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return commandErrorf("invalid config: %w", err)
	}
	opts.Config = cfg

	if cfg.Verbose && !cmd.Flags().Changed("verbose") {
		opts.Verbose = true
	}
	return nil
}

// Execute runs the CLI with args and returns the process exit status.
//
// Group failures have already been reported on stdout by the runner, so
// only other errors are printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if !alreadyReported(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return GetExitCode(err)
}
