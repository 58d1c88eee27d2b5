package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/myunit/internal/demo"
	"github.com/roach88/myunit/pkg/myunit"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Color string // "auto" | "on" | "off"
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [group...]",
		Short: "Run test groups",
		Long: `Run the registered test groups in suite order.

With group names, only those groups run, still in suite order. Without,
the groups listed in the config file run, or every group if none are
listed. The run stops at the first failing group.

Exit codes:
  0 - All groups passed
  1 - A group failed
  2 - Command error (unknown group, invalid config, etc.)

Examples:
  myunit run
  myunit run passing_tests
  myunit run --color on --verbose`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Color, "color", ColorAuto, "colorize output (auto|on|off)")

	return cmd
}

func runGroups(opts *RunOptions, names []string, cmd *cobra.Command) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	mode := opts.Color
	if !cmd.Flags().Changed("color") && cfg.Color != "" {
		mode = cfg.Color
	}
	if !isValidColorMode(mode) {
		return commandErrorf("invalid color mode %q: must be one of %v", mode, ValidColorModes)
	}

	if len(names) == 0 {
		names = cfg.Groups
	}
	groups, err := selectGroups(names)
	if err != nil {
		return err
	}

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}

	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler).With("run_id", runIDs.Generate())

	logger.Debug("starting run", "groups", len(groups), "color", mode)

	out := cmd.OutOrStdout()
	runner := myunit.NewRunner(out,
		myunit.WithLogger(logger),
		myunit.WithColor(colorEnabled(mode, out)),
	)
	if err := runner.Run(groups...); err != nil {
		var gf *myunit.GroupFailure
		if errors.As(err, &gf) {
			return groupFailed(gf)
		}
		return err
	}
	return nil
}

// selectGroups returns the suite's groups restricted to names, keeping
// suite order. No names selects every group.
func selectGroups(names []string) ([]myunit.Group, error) {
	all := demo.Groups()
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := demo.Lookup(name); !ok {
			return nil, commandErrorf("unknown group: %s", name)
		}
		want[name] = true
	}

	groups := make([]myunit.Group, 0, len(want))
	for _, g := range all {
		if want[g.Name] {
			groups = append(groups, g)
		}
	}
	return groups, nil
}
