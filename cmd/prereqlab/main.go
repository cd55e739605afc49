package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"prereqlab/internal/app"
	"prereqlab/internal/catalog"
	"prereqlab/internal/state"
	"prereqlab/internal/viewport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	logPath   string
	journal   string
	debug     bool
	ascii     bool
	topic     string
	style     string
	motion    string
	cellWidth int
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "prereqlab",
		Short:         "Interactive ML prerequisites lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, &f)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.logPath, "log", "", "JSON log file (default: no logging)")
	pf.StringVar(&f.journal, "journal", "", "SQLite activity journal path")
	pf.BoolVar(&f.debug, "debug", false, "debug logging and layout info")
	pf.BoolVar(&f.ascii, "ascii", false, "ASCII-only rendering")
	pf.IntVar(&f.cellWidth, "cell-width", 0, "pixel width of one terminal cell (1-64)")
	root.Flags().StringVar(&f.topic, "topic", "", "topic id to open first")
	root.Flags().StringVar(&f.style, "style", "", "style variant: lab_dark|retro_terminal")
	root.Flags().StringVar(&f.motion, "motion", "", "motion level: full|reduced|off")

	root.AddCommand(newRunCmd(&f))
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newDemoCmd(&f))
	root.AddCommand(newJournalCmd(&f))
	return root
}

// loadConfig reads PREREQLAB_* variables and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, f *flags) (app.Config, error) {
	cfg, err := app.LoadConfig(nil)
	if err != nil {
		return app.Config{}, err
	}
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("log") {
		cfg.LogPath = f.logPath
	}
	if changed("journal") {
		cfg.JournalPath = f.journal
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	if changed("ascii") {
		cfg.ASCIIOnly = f.ascii
	}
	if changed("cell-width") {
		cfg.CellWidthPx = f.cellWidth
	}
	if changed("topic") {
		cfg.StartTopic = f.topic
	}
	if changed("style") {
		cfg.UI.StyleVariant = f.style
	}
	if changed("motion") {
		cfg.UI.MotionLevel = f.motion
	}
	if err := cfg.Validate(); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}

func newRunCmd(f *flags) *cobra.Command {
	run := &cobra.Command{
		Use:   "run",
		Short: "Start the lab TUI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, f)
		},
	}
	run.Flags().StringVar(&f.topic, "topic", "", "topic id to open first")
	run.Flags().StringVar(&f.style, "style", "", "style variant: lab_dark|retro_terminal")
	run.Flags().StringVar(&f.motion, "motion", "", "motion level: full|reduced|off")
	return run
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List sections and topics in navigation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Builtin()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%s)\n", cat.Title(), cat.Course())
			for _, sec := range cat.Sections() {
				_, _ = fmt.Fprintf(out, "\n%s %s [%s]\n", sec.Icon, sec.Label, sec.ID)
				for _, ref := range sec.Topics {
					t, _ := cat.Topic(ref.ID)
					_, _ = fmt.Fprintf(out, "  %2d  %-18s %s\n", t.Index, t.ID, t.Label)
				}
			}
			return nil
		},
	}
}

func newDemoCmd(f *flags) *cobra.Command {
	var cols, rows int
	demo := &cobra.Command{
		Use:   "demo <scenario>",
		Short: "Render one frame of a named scenario",
		Long:  "Render one frame of a named scenario: fresh, in_progress, continue, complete, mobile_drawer or tablet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			cfg.JournalPath = ""
			cfg.StartTopic = ""
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if cols <= 0 || rows <= 0 {
				src := viewport.NewTermSource(os.Stdout, 0)
				if src.IsTerminal() {
					w, h := src.Size()
					if cols <= 0 {
						cols = w
					}
					if rows <= 0 {
						rows = h
					}
				}
			}
			frame, err := a.RenderDemo(args[0], cols, rows)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), frame)
			return nil
		},
	}
	demo.Flags().IntVar(&cols, "cols", 0, "frame width in columns (default: terminal or scenario)")
	demo.Flags().IntVar(&rows, "rows", 0, "frame height in rows (default: terminal or scenario)")
	return demo
}

func newJournalCmd(f *flags) *cobra.Command {
	var limit int
	journal := &cobra.Command{
		Use:   "journal",
		Short: "Show recent activity from the journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.JournalPath) == "" {
				return fmt.Errorf("--journal is required")
			}
			store, err := state.NewSQLite(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := context.Background()
			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}
			sum, err := store.GetSummary(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "sessions=%d events=%d completions=%d topics=%d\n", sum.Sessions, sum.Events, sum.Completions, sum.TopicsCompleted)
			if last, err := store.GetLastSession(ctx); err != nil {
				return err
			} else if last != nil {
				_, _ = fmt.Fprintf(out, "last session %s (%s) started %s\n", last.SessionID, last.Course, humanize.Time(last.StartTS))
			}

			events, err := store.RecentEvents(ctx, limit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				_, _ = fmt.Fprintln(out, "no events")
				return nil
			}
			for _, ev := range events {
				subject := ev.TopicID
				if subject == "" {
					subject = ev.SectionID
				}
				_, _ = fmt.Fprintf(out, "%-14s\t%-24s\t%-18s\t%d%%\n", humanize.Time(ev.TS), ev.Kind, subject, ev.Percent)
			}
			return nil
		},
	}
	journal.Flags().IntVar(&limit, "limit", 20, "number of events to show")
	return journal
}
