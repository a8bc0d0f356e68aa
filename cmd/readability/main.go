// Package main provides the CLI entrypoint for readability.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/readability/internal/config"
	"github.com/verte-zerg/readability/internal/historyui"
	"github.com/verte-zerg/readability/internal/model"
	"github.com/verte-zerg/readability/internal/prompt"
	"github.com/verte-zerg/readability/internal/readability"
	"github.com/verte-zerg/readability/internal/report"
	"github.com/verte-zerg/readability/internal/store"
)

const (
	defaultPrompt       = "Text: "
	defaultHistory      = true
	defaultHistoryLimit = 500
	defaultTrendWindow  = 5
)

var (
	analyzeText         string
	analyzePrompt       string
	analyzeVerbose      bool
	analyzeNoHistory    bool
	analyzeHistoryLimit int

	historySince string
	historyLast  int
	historyGrade string
	historyTrend int
	historyTUI   bool

	stderr io.Writer = os.Stderr
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "readability",
		Short:         "Estimate the school grade level of a line of text",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}

	rootCmd.Flags().StringVar(&analyzeText, "text", "", "text to analyze instead of prompting")
	rootCmd.Flags().StringVar(&analyzePrompt, "prompt", defaultPrompt, "prompt shown before reading text")
	rootCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "print counts and the raw index to stderr")
	rootCmd.Flags().BoolVar(&analyzeNoHistory, "no-history", !defaultHistory, "do not record the analysis")
	rootCmd.Flags().IntVar(&analyzeHistoryLimit, "history-limit", defaultHistoryLimit, "number of analyses kept in history (0 keeps all)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "prompt", &analyzePrompt, fileCfg.Analyze.Prompt)
	applyIntConfig(cmd, "history-limit", &analyzeHistoryLimit, fileCfg.Analyze.HistoryLimit)
	if fileCfg.Analyze.History != nil && !cmd.Flags().Changed("no-history") {
		analyzeNoHistory = !*fileCfg.Analyze.History
	}

	cfg := model.Config{
		Prompt:       analyzePrompt,
		History:      !analyzeNoHistory,
		HistoryLimit: analyzeHistoryLimit,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	text := analyzeText
	if !cmd.Flags().Changed("text") {
		text, err = prompt.Read(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg.Prompt)
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
	}

	result := readability.Analyze(text)
	if !result.Computable {
		logErrln(readability.ErrNoWords.Error())
	}
	if analyzeVerbose {
		logStats(result)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Grade.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.History {
		if err := recordAnalysis(cfg, text, result); err != nil {
			logErrf("failed to record history: %v\n", err)
		}
	}
	return nil
}

func logStats(result readability.Result) {
	s := result.Stats
	logErrf("letters: %d\nwords: %d\nsentences: %d\n", s.Letters, s.Words, s.Sentences)
	raw, err := readability.RawIndex(s)
	if err != nil {
		logErrf("index: n/a (%v)\n", err)
		return
	}
	logErrf("index: %.4f (rounded %d)\n", raw, result.Index)
}

func recordAnalysis(cfg model.Config, text string, result readability.Result) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	analysis := model.Analysis{
		CreatedAt:  time.Now(),
		Text:       text,
		Letters:    result.Stats.Letters,
		Words:      result.Stats.Words,
		Sentences:  result.Stats.Sentences,
		Index:      result.Index,
		Grade:      result.Grade.String(),
		Computable: result.Computable,
	}
	if _, err := st.InsertAnalysis(ctx, analysis); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	if _, err := st.Prune(ctx, cfg.HistoryLimit); err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analyses",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N analyses")
	cmd.Flags().StringVar(&historyGrade, "grade", "", "grade filter (e.g. 7, 16+, before)")
	cmd.Flags().IntVar(&historyTrend, "trend", defaultTrendWindow, "moving average window for the index trend (0 or 1 plots raw indexes)")
	cmd.Flags().BoolVar(&historyTUI, "tui", false, "browse history interactively")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyTrend < 0 {
		return fmt.Errorf("--trend must be >= 0")
	}

	cfg := model.HistoryConfig{
		Since: sinceTime,
		Last:  historyLast,
		Trend: historyTrend,
	}
	if historyGrade != "" {
		grade, err := readability.ParseGrade(historyGrade)
		if err != nil {
			return fmt.Errorf("invalid --grade value: %w", err)
		}
		cfg.Grade = grade.String()
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	rep, err := report.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if historyTUI {
		program := tea.NewProgram(historyui.NewModel(rep), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	useColor := report.ShouldUseColor(out)
	if err := report.RenderSummary(out, rep, useColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.RenderHistory(out, rep.Analyses, useColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = cmd.InOrStdin()
	editCmd.Stdout = cmd.OutOrStdout()
	editCmd.Stderr = cmd.ErrOrStderr()
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# readability configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# prompt = %q        # Prompt shown before reading text
# history = %t         # Record analyses for "readability history"
# history-limit = %d    # Number of analyses kept (0 keeps all)
`,
		defaultPrompt,
		defaultHistory,
		defaultHistoryLimit,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("--history-limit must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
