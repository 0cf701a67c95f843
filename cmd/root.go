// Package cmd wires the rosterview CLI: flag parsing, config merging, and
// the hand-off to either the interactive TUI or the static renderer.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	rdebug "runtime/debug"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/rosterview/internal/filter"
	"github.com/oakwood-commons/rosterview/internal/roster"
	"github.com/oakwood-commons/rosterview/internal/ui"
	"github.com/oakwood-commons/rosterview/pkg/logger"
	"github.com/oakwood-commons/rosterview/pkg/settings"
)

// errNoRoster is returned when neither an argument nor piped stdin provides
// roster data.
var errNoRoster = errors.New("no roster input provided")

var (
	configFile  string
	themeName   string
	initialText string
	exprText    string
	sortOrder   string
	matcherName string
	noColor     bool
	interactive bool
	debug       bool

	rootCtx context.Context

	// Injection points for tests.
	stdout           io.Writer = os.Stdout
	stdoutIsTerminal           = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	stdinIsPiped     = func() bool { stat, _ := os.Stdin.Stat(); return (stat.Mode() & os.ModeCharDevice) == 0 }
	runProgram       = func(m tea.Model) error {
		p := tea.NewProgram(m)
		_, err := p.Run()
		return err
	}
)

var rootCmd = &cobra.Command{
	Use:   "rosterview [roster-file]",
	Short: "Browse a chat roster as a sectioned, searchable list",
	Long: "rosterview renders a directory of contacts and rooms as labeled sections\n" +
		"(favourites, people, rooms) with live search, the way a chat client's\n" +
		"sidebar does. Input is a YAML or JSON roster file, or piped stdin.",
	Example: "\n  rosterview roster.yaml -i\n" +
		"  rosterview roster.yaml --filter alice\n" +
		"  rosterview roster.yaml --expr '_.members > 50'\n" +
		"  cat roster.json | rosterview --sort activity\n",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       cliVersionString(),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		run := settings.NewRunParams()
		run.NoColor = noColor
		run.Interactive = interactive
		run.SortOrder = sortOrder
		if debug {
			run.MinLogLevel = -1
		}
		if len(args) == 1 {
			run.RosterPath = args[0]
		}
		rootCtx = settings.IntoContext(rootCtx, run)

		if debug {
			logFlags(cmd.Flags())
		}

		entries, err := loadRoster(run.RosterPath)
		if err != nil {
			if errors.Is(err, errNoRoster) {
				return cmd.Help()
			}
			return err
		}
		return runRoster(rootCtx, cmd.Flags(), entries, run)
	},
}

// logFlags records the effective flag values at startup, debug level only.
func logFlags(flags *pflag.FlagSet) {
	lgr := logger.FromContext(rootCtx)
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			lgr.V(1).Info("flag", "name", f.Name, "value", f.Value.String())
		}
	})
}

// loadRoster reads entries from the given path, or from piped stdin when no
// path was provided.
func loadRoster(path string) ([]roster.Entry, error) {
	if path != "" {
		return roster.LoadFile(path)
	}
	if !stdinIsPiped() {
		return nil, errNoRoster
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return roster.Parse(data)
}

// runRoster builds the section list from config and entries and hands it to
// the TUI or the static renderer.
func runRoster(ctx context.Context, flags *pflag.FlagSet, entries []roster.Entry, run *settings.Run) error {
	lgr := logger.FromContext(ctx)

	cfg, err := loadMergedConfig(configFile)
	if err != nil {
		return err
	}
	ui.SetCurrentTheme(ui.SelectTheme(cfg, themeName))

	cmp, err := resolveSort(flags, run.SortOrder, cfg)
	if err != nil {
		return err
	}
	matcher, err := resolveMatcher(flags, matcherName, cfg)
	if err != nil {
		return err
	}

	sections := ui.BuildSections(cfg, entries, cmp, matcher)
	lgr.V(1).Info("sections built", "entries", len(entries), "sections", len(sections.Sections()))

	evaluator, err := filter.NewEvaluator()
	if err != nil {
		return err
	}

	// A fixed --expr narrows the list before anything is shown.
	if exprText != "" {
		m, err := evaluator.Matcher(exprText)
		if err != nil {
			return err
		}
		sections.ApplyMatcher(m, exprText)
	} else if initialText != "" {
		sections.ApplyFilter(initialText)
	}

	if run.Interactive && stdoutIsTerminal() {
		model := ui.NewModel(sections, evaluator, lgr, run.NoColor)
		return runProgram(model)
	}

	width := 80
	if stdoutIsTerminal() {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	fmt.Fprint(stdout, ui.RenderStatic(sections, width, run.NoColor || !stdoutIsTerminal()))
	return nil
}

// resolveSort maps the flag/config sort name to a comparator. The config
// default applies only when the flag was left alone.
func resolveSort(flags *pflag.FlagSet, name string, cfg ui.AppConfig) (func(a, b roster.Entry) int, error) {
	if !flags.Changed("sort") && cfg.Defaults.Sort != "" {
		name = cfg.Defaults.Sort
	}
	switch name {
	case "", "name":
		return roster.ByName, nil
	case "activity":
		return roster.ByActivity, nil
	default:
		return nil, fmt.Errorf("unknown sort order %q (want name or activity)", name)
	}
}

// resolveMatcher maps the flag/config matcher name to a Matcher.
func resolveMatcher(flags *pflag.FlagSet, name string, cfg ui.AppConfig) (roster.Matcher, error) {
	if !flags.Changed("matcher") && cfg.Defaults.Matcher != "" {
		name = cfg.Defaults.Matcher
	}
	switch name {
	case "", "substring":
		return roster.SubstringMatch, nil
	case "fuzzy":
		return roster.FuzzyMatch, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q (want substring or fuzzy)", name)
	}
}

// cliVersionString builds a human-readable version string for --version.
func cliVersionString() string {
	version := settings.VersionInformation.BuildVersion
	goVersion := runtime.Version()
	if info, ok := rdebug.ReadBuildInfo(); ok && info.GoVersion != "" {
		goVersion = info.GoVersion
	}
	return fmt.Sprintf("%s %s (go %s)", settings.CliBinaryName, version, goVersion)
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to a config file (sections, themes)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme preset to use (dark, light, or configured)")
	rootCmd.Flags().StringVarP(&initialText, "filter", "f", "", "initial search text")
	rootCmd.Flags().StringVarP(&exprText, "expr", "e", "", "CEL filter expression over entries, e.g. '_.members > 50'")
	rootCmd.Flags().StringVar(&sortOrder, "sort", "name", "section sort order: name or activity")
	rootCmd.Flags().StringVar(&matcherName, "matcher", "substring", "search matcher: substring or fuzzy")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive roster browser")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
