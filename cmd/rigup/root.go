package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/dispatch"
	"github.com/rigup-dev/rigup/internal/installer"
	"github.com/rigup-dev/rigup/internal/menu"
	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/probe"
	"github.com/rigup-dev/rigup/internal/selection"
	"github.com/rigup-dev/rigup/internal/system"
	"github.com/rigup-dev/rigup/internal/terminal"
)

// Prerequisite tools every run needs before any component installer.
var prerequisiteTools = []string{"curl"}

// Test seams, following the function-variable convention used throughout.
var (
	newSystemFunc = func(stdout io.Writer, stderr io.Writer, logger *log.Logger) system.System {
		return system.NewRealSystem(stdout, stderr, logger)
	}
	isTerminalFunc     = terminal.IsInteractive
	configPathFunc     = config.DefaultPath
	stdinFunc          = func() io.Reader { return os.Stdin }
	newChecklistUIFunc = func() menu.UI { return menu.NewHuhUI() }
)

type rootOptions struct {
	all     bool
	apps    string
	strict  bool
	dryRun  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Stray positionals can be left behind by ignored unknown flags;
		// they are tolerated rather than fatal.
		Args: cobra.ArbitraryArgs,
		// Unrecognized flags are warned about and ignored, not fatal.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.all, "all", false, messages.RootFlagAll)
	cmd.Flags().StringVar(&opts.apps, "apps", "", messages.RootFlagApps)
	cmd.Flags().BoolVar(&opts.strict, "strict-platform", false, messages.RootFlagStrictPlatform)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, messages.RootFlagVerbose)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logger := log.New(stderr)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	sys := newSystemFunc(stdout, stderr, logger)
	if opts.dryRun {
		sys = &system.DryRun{System: sys, Out: stdout}
	}

	path, err := configPathFunc()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, sys)
	if err != nil {
		return err
	}

	strict := cfg.StrictPlatform
	if cmd.Flags().Changed("strict-platform") {
		strict = opts.strict
	}

	// Prerequisite and elevation checks are fatal; everything after them is
	// isolated per component.
	prober := &probe.Prober{Sys: sys, Out: stderr, Strict: strict}
	if err := prober.EnsureElevated(); err != nil {
		return err
	}
	if err := prober.CheckPlatform(); err != nil {
		return err
	}
	if err := prober.EnsureTools(prerequisiteTools...); err != nil {
		return err
	}

	inst := installer.New(sys, cfg, stdout)
	disp := &dispatch.Dispatcher{Actions: inst.Actions(), Out: stdout}

	var sel selection.Selection
	switch {
	case opts.all:
		sel = selection.Canonical()
	case opts.apps != "":
		sel = selection.Parse(opts.apps, stderr)
	case isTerminalFunc():
		sel, err = menu.RunChecklist(newChecklistUIFunc())
		if errors.Is(err, menu.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
	default:
		return runNumberedMenu(cfg, disp, stdout, stderr)
	}

	if len(sel) == 0 {
		_, _ = fmt.Fprintln(stdout, messages.RootNothingChosen)
		return nil
	}
	if err := cfg.ValidateSelected(sel); err != nil {
		return err
	}
	return finish(stdout, disp.Run(sel))
}

// runNumberedMenu drives the fallback front-end: one choice at a time,
// each dispatched through the same dispatcher as every other strategy.
func runNumberedMenu(cfg *config.Config, disp *dispatch.Dispatcher, stdout io.Writer, stderr io.Writer) error {
	iter := menu.NewChoiceIter(stdinFunc(), stdout)
	var outcomes []dispatch.Outcome
	for {
		id, ok := iter.Next()
		if !ok {
			break
		}
		one := selection.Selection{id}
		if err := cfg.ValidateSelected(one); err != nil {
			_, _ = fmt.Fprintln(stderr, color.YellowString("Warning: %v", err))
			continue
		}
		outcomes = append(outcomes, disp.Run(one)...)
	}
	return finish(stdout, outcomes)
}

// finish prints the per-component summary and applies the exit policy:
// any failed component makes the whole run exit non-zero.
func finish(out io.Writer, outcomes []dispatch.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(out, messages.SummaryHeader)
	for _, o := range outcomes {
		if o.Err != nil {
			_, _ = fmt.Fprint(out, color.RedString(messages.SummaryFailedFmt, o.ID, o.Err))
			continue
		}
		_, _ = fmt.Fprint(out, color.GreenString(messages.SummaryOKFmt, o.ID))
	}
	if n := dispatch.Failed(outcomes); n > 0 {
		return fmt.Errorf(messages.SummaryFailureFmt, n)
	}
	return nil
}

// warnUnknownFlags reports flags cobra's whitelist will silently ignore.
// Subcommand invocations validate their own flags and are skipped.
func warnUnknownFlags(cmd *cobra.Command, args []string, errOut io.Writer) {
	if target, _, err := cmd.Find(args); err == nil && target != cmd {
		return
	}
	flags := cmd.Flags()
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}
		if strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			if name == "help" || name == "version" || flags.Lookup(name) != nil {
				continue
			}
			_, _ = fmt.Fprintf(errOut, messages.RootUnknownFlagFmt, arg)
			continue
		}
		shorthand := strings.TrimPrefix(arg, "-")[:1]
		if shorthand == "h" || flags.ShorthandLookup(shorthand) != nil {
			continue
		}
		_, _ = fmt.Fprintf(errOut, messages.RootUnknownFlagFmt, arg)
	}
}
