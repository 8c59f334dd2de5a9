// Package main provides the CLI entrypoint for typeracer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/typeracer/internal/config"
	"github.com/verte-zerg/typeracer/internal/generator"
	"github.com/verte-zerg/typeracer/internal/libraryui"
	"github.com/verte-zerg/typeracer/internal/logging"
	"github.com/verte-zerg/typeracer/internal/model"
	"github.com/verte-zerg/typeracer/internal/phrases"
	"github.com/verte-zerg/typeracer/internal/report"
	"github.com/verte-zerg/typeracer/internal/scoring"
	"github.com/verte-zerg/typeracer/internal/session"
	"github.com/verte-zerg/typeracer/internal/stats"
	"github.com/verte-zerg/typeracer/internal/store"
	"github.com/verte-zerg/typeracer/internal/tui"
)

const (
	defaultDifficulty = "easy"
	defaultTickMs     = 100
)

var (
	playDifficulty  string
	playCustom      bool
	playOnlyCustom  bool
	playTickMs      int
	playMaxOvertype int
	playLogFile     string
	playDebug       bool

	scoreTarget  string
	scoreTyped   string
	scoreElapsed time.Duration
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typeracer",
		Short:         "Terminal typing-speed game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", defaultDifficulty, "starting difficulty (easy, intermediate, hard)")
	rootCmd.Flags().BoolVar(&playCustom, "custom", false, "include phrases from the custom library")
	rootCmd.Flags().BoolVar(&playOnlyCustom, "only-custom", false, "play only phrases from the custom library")
	rootCmd.Flags().IntVar(&playTickMs, "tick-ms", defaultTickMs, "timer refresh interval in milliseconds")
	rootCmd.Flags().IntVar(&playMaxOvertype, "max-overtype", session.DefaultMaxOvertype, "characters allowed past the end of a phrase")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", "", "write diagnostics to this file")
	rootCmd.Flags().BoolVar(&playDebug, "debug", false, "log at debug level")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newPhrasesCmd())
	rootCmd.AddCommand(newScoreCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &playDifficulty, fileCfg.Play.Difficulty)
	applyBoolConfig(cmd, "custom", &playCustom, fileCfg.Play.Custom)
	applyBoolConfig(cmd, "only-custom", &playOnlyCustom, fileCfg.Play.OnlyCustom)
	applyIntConfig(cmd, "tick-ms", &playTickMs, fileCfg.Play.TickMs)
	applyIntConfig(cmd, "max-overtype", &playMaxOvertype, fileCfg.Play.MaxOvertype)
	applyStringConfig(cmd, "log-file", &playLogFile, fileCfg.Play.LogFile)
	applyBoolConfig(cmd, "debug", &playDebug, fileCfg.Play.Debug)

	cfg := model.Config{
		Difficulty:  playDifficulty,
		Custom:      playCustom || playOnlyCustom,
		OnlyCustom:  playOnlyCustom,
		TickMs:      playTickMs,
		MaxOvertype: playMaxOvertype,
		LogFile:     playLogFile,
		Debug:       playDebug,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() {
		// Best-effort flush; syncing a file logger rarely fails.
		_ = logger.Sync()
	}()

	pools, err := loadPools(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	difficulty, _ := phrases.ParseDifficulty(cfg.Difficulty)
	if len(pools[difficulty]) == 0 {
		return fmt.Errorf("no %s phrases available; add some with: typeracer phrases add --difficulty %s \"...\"", difficulty, difficulty)
	}
	logger.Info("starting game",
		zap.String("difficulty", cfg.Difficulty),
		zap.Bool("custom", cfg.Custom),
		zap.Bool("only_custom", cfg.OnlyCustom),
	)

	m := tui.NewModel(cfg, pools, generator.New(), logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), m.Rounds()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func loadPools(ctx context.Context, cfg model.Config) (map[phrases.Difficulty][]string, error) {
	pools := map[phrases.Difficulty][]string{}
	if !cfg.OnlyCustom {
		for _, d := range phrases.All() {
			pools[d] = phrases.Builtin(d)
		}
	}
	if !cfg.Custom {
		return pools, nil
	}
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer closeStore(st)
	custom, err := st.ListPhrases(ctxOrBackground(ctx), "")
	if err != nil {
		return nil, fmt.Errorf("failed to load custom phrases: %w", err)
	}
	for _, p := range custom {
		d, err := phrases.ParseDifficulty(p.Difficulty)
		if err != nil {
			logErrf("skipping phrase %d: %v\n", p.ID, err)
			continue
		}
		pools[d] = append(pools[d], p.Text)
	}
	return pools, nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score typed text against a target phrase",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreTarget, "target", "", "target phrase")
	cmd.Flags().StringVar(&scoreTyped, "typed", "", "typed text")
	cmd.Flags().DurationVar(&scoreElapsed, "elapsed", 0, "elapsed time (e.g. 10s, 1m5s)")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	if scoreElapsed < 0 {
		return fmt.Errorf("--elapsed must be >= 0")
	}
	in := scoring.Input{Target: scoreTarget, Typed: scoreTyped, Elapsed: scoreElapsed}
	round := model.Round{
		Target:  in.Target,
		Typed:   scoring.TrimTyped(in.Typed),
		Elapsed: in.Elapsed,
		Result:  scoring.Score(in),
	}
	var presenter report.Presenter = report.TextPresenter{}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), presenter.Present(round)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List difficulty tiers and phrase counts",
		Args:  cobra.NoArgs,
		RunE:  runLevelsCmd,
	}
}

func runLevelsCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	counts, err := st.CountByDifficulty(ctxOrBackground(cmd.Context()))
	if err != nil {
		return fmt.Errorf("failed to count custom phrases: %w", err)
	}
	for _, d := range phrases.All() {
		line := fmt.Sprintf("%-12s built-in %2d  custom %d", d, len(phrases.Builtin(d)), counts[d.String()])
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newPhrasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "Manage the custom phrase library",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List custom phrases",
		Args:  cobra.NoArgs,
		RunE:  runPhrasesListCmd,
	}
	listCmd.Flags().String("difficulty", "", "difficulty filter")

	addCmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a custom phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPhrasesAddCmd,
	}
	addCmd.Flags().String("difficulty", defaultDifficulty, "difficulty of the phrase")

	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a custom phrase",
		Args:  cobra.ExactArgs(1),
		RunE:  runPhrasesRemoveCmd,
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import phrases from a file (one per line)",
		Args:  cobra.ExactArgs(1),
		RunE:  runPhrasesImportCmd,
	}
	importCmd.Flags().String("difficulty", defaultDifficulty, "difficulty of the imported phrases")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse and edit custom phrases interactively",
		Args:  cobra.NoArgs,
		RunE:  runPhrasesBrowseCmd,
	}
	browseCmd.Flags().String("difficulty", defaultDifficulty, "difficulty tab to open")

	cmd.AddCommand(listCmd, addCmd, removeCmd, importCmd, browseCmd)
	return cmd
}

func runPhrasesListCmd(cmd *cobra.Command, _ []string) error {
	filter := ""
	raw, err := cmd.Flags().GetString("difficulty")
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) != "" {
		d, err := phrases.ParseDifficulty(raw)
		if err != nil {
			return err
		}
		filter = d.String()
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	list, err := st.ListPhrases(ctxOrBackground(cmd.Context()), filter)
	if err != nil {
		return fmt.Errorf("failed to list phrases: %w", err)
	}
	if len(list) == 0 {
		logErrln("No custom phrases. Add one with: typeracer phrases add --difficulty easy \"...\"")
		return nil
	}
	for _, p := range list {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.ID, p.Difficulty, p.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runPhrasesAddCmd(cmd *cobra.Command, args []string) error {
	d, err := flagDifficulty(cmd)
	if err != nil {
		return err
	}
	text := phrases.Normalize(strings.Join(args, " "))
	if err := phrases.Validate(text); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	id, err := st.AddPhrase(ctxOrBackground(cmd.Context()), d.String(), text)
	if err != nil {
		if errors.Is(err, store.ErrDuplicatePhrase) {
			return fmt.Errorf("%s phrase already exists: %q", d, text)
		}
		return fmt.Errorf("failed to add phrase: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Added phrase %d (%s)\n", id, d); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runPhrasesRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid phrase id %q", args[0])
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.RemovePhrase(ctxOrBackground(cmd.Context()), id); err != nil {
		if errors.Is(err, store.ErrPhraseNotFound) {
			return fmt.Errorf("no phrase with id %d", id)
		}
		return fmt.Errorf("failed to remove phrase: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed phrase %d\n", id); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runPhrasesImportCmd(cmd *cobra.Command, args []string) error {
	d, err := flagDifficulty(cmd)
	if err != nil {
		return err
	}
	texts, err := phrases.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	added, err := st.ImportPhrases(ctxOrBackground(cmd.Context()), d.String(), texts)
	if err != nil {
		return fmt.Errorf("failed to import phrases: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d %s phrases\n", added, len(texts), d); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runPhrasesBrowseCmd(cmd *cobra.Command, _ []string) error {
	d, err := flagDifficulty(cmd)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	program := tea.NewProgram(libraryui.NewModel(st, d), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run phrase browser: %w", err)
	}
	return nil
}

func flagDifficulty(cmd *cobra.Command) (phrases.Difficulty, error) {
	raw, err := cmd.Flags().GetString("difficulty")
	if err != nil {
		return "", err
	}
	return phrases.ParseDifficulty(raw)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
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

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typeracer configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# difficulty = %q     # Starting difficulty: easy, intermediate, hard
# custom = false          # Include phrases from the custom library
# only-custom = false     # Play only custom phrases
# tick-ms = %d           # Timer refresh interval in milliseconds
# max-overtype = %d       # Characters allowed past the end of a phrase
# log-file = ""           # Write diagnostics to this file
# debug = false           # Log at debug level
`,
		defaultDifficulty,
		defaultTickMs,
		session.DefaultMaxOvertype,
	)
}

func validateConfig(cfg model.Config) error {
	if _, err := phrases.ParseDifficulty(cfg.Difficulty); err != nil {
		return fmt.Errorf("--difficulty: %w", err)
	}
	if cfg.TickMs < 10 || cfg.TickMs > 5000 {
		return fmt.Errorf("--tick-ms must be between 10 and 5000")
	}
	if cfg.MaxOvertype < 0 {
		return fmt.Errorf("--max-overtype must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
