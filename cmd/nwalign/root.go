package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/katalvlaran/nwalign/render"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app carries the flag values and the state resolved from them before any
// sub-command runs.
type app struct {
	configPath  string
	verbose     bool
	match       int
	mismatch    int
	gap         int
	maxPaths    int
	timeout     time.Duration
	parallelism int
	noColor     bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "nwalign",
		Short: "List every optimal global alignment of two sequences",
		Long: `nwalign fills the Needleman-Wunsch score matrix of two sequences and
prints the matrix, the optimal score and every alignment that reaches it.

Ties are never broken: when several moves give the same score, each one
leads to its own alignment.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.resolve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log pipeline stages to stderr")
	pf.IntVar(&a.match, "match", def.Scoring.Match, "score of two equal symbols")
	pf.IntVar(&a.mismatch, "mismatch", def.Scoring.Mismatch, "score of two different symbols")
	pf.IntVar(&a.gap, "gap", def.Scoring.Gap, "score of a symbol against a gap")
	pf.IntVar(&a.maxPaths, "max-paths", def.Limits.MaxPaths, "stop listing after this many alignments (0 = unlimited)")
	pf.DurationVar(&a.timeout, "timeout", def.Limits.Timeout, "abort the traceback after this long (0 = none)")
	pf.IntVar(&a.parallelism, "parallelism", def.Limits.Parallelism, "traceback workers")
	pf.BoolVar(&a.noColor, "no-color", false, "disable coloured headers")

	root.AddCommand(newAlignCmd(a), newFilesCmd(a), newCountCmd(a))

	return root
}

// resolve loads the configuration, applies explicitly set flags on top of it
// and builds the logger.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	// 1. File or defaults
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}

	// 2. Flags win over the file, but only when given
	flags := cmd.Flags()
	if flags.Changed("match") {
		cfg.Scoring.Match = a.match
	}
	if flags.Changed("mismatch") {
		cfg.Scoring.Mismatch = a.mismatch
	}
	if flags.Changed("gap") {
		cfg.Scoring.Gap = a.gap
	}
	if flags.Changed("max-paths") {
		cfg.Limits.MaxPaths = a.maxPaths
	}
	if flags.Changed("timeout") {
		cfg.Limits.Timeout = a.timeout
	}
	if flags.Changed("parallelism") {
		cfg.Limits.Parallelism = a.parallelism
	}
	if a.noColor {
		cfg.Output.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// 3. Logger
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration resolved",
		"config", a.configPath,
		"scoring", cfg.Scheme().String(),
		"max_paths", cfg.Limits.MaxPaths,
		"timeout", cfg.Limits.Timeout,
		"parallelism", cfg.Limits.Parallelism,
		"color", cfg.Output.Color,
	)

	return nil
}

// printer returns a render.Printer on w honouring output.color.
func (a *app) printer(w io.Writer) *render.Printer {
	switch a.cfg.Output.Color {
	case config.ColorNever:
		return render.NewPrinter(w, render.PlainStyle())
	case config.ColorAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)

		return render.NewPrinter(w, render.NewStyle(r))
	default:
		if !isTerminal(w) {
			return render.NewPrinter(w, render.PlainStyle())
		}

		return render.NewPrinter(w, render.NewStyle(lipgloss.NewRenderer(w)))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
