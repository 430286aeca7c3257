// Package main provides the CLI entrypoint for katype.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/katype/internal/code"
	"github.com/verte-zerg/katype/internal/config"
	"github.com/verte-zerg/katype/internal/generator"
	"github.com/verte-zerg/katype/internal/model"
	"github.com/verte-zerg/katype/internal/publish"
	"github.com/verte-zerg/katype/internal/result"
	"github.com/verte-zerg/katype/internal/stats"
	"github.com/verte-zerg/katype/internal/statsui"
	"github.com/verte-zerg/katype/internal/store"
	"github.com/verte-zerg/katype/internal/tui"
	"github.com/verte-zerg/katype/internal/wordlist"
)

const (
	defaultAmount   = 15
	maxAmount       = 65535
	defaultLang     = "en"
	defaultWindow   = 10
	defaultPunctSet = ".,!?;:"
)

var (
	testAmount    int
	testLang      string
	testCode      string
	testReadyText string
	testTimeout   int
	testGenerate  string
	testJSON      bool
	testNoSave    bool
	testSeed      int64
	testCaps      float64
	testPunct     float64
	testPunctSet  string
	natsURL       string
	natsSubject   string

	statsLang   string
	statsSince  string
	statsLast   int
	statsWindow int
	statsPlain  bool

	errOut io.Writer = os.Stderr
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "katype",
		Short:         "A fast typing test from the terminal",
		Version:       "0.3.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&testAmount, "amount", "a", defaultAmount, "number of words in the test (max 65535)")
	flags.StringVarP(&testLang, "lang", "l", defaultLang, "language of the words (see: katype langs)")
	flags.StringVarP(&testCode, "code", "c", "", "run the test encoded in a share code; overrides other word options")
	flags.StringVarP(&testReadyText, "ready-text", "r", tui.DefaultReadyText, "warning shown before the text starts")
	flags.IntVarP(&testTimeout, "timeout", "t", 0, "end the test after this many seconds (0: no timeout)")
	flags.StringVarP(&testGenerate, "generate", "g", "", "print a share code for comma separated words and exit")
	flags.BoolVarP(&testJSON, "json", "j", false, "print results as JSON")
	flags.BoolVar(&testNoSave, "no-save", false, "do not record the result in history")
	flags.Int64Var(&testSeed, "seed", 0, "random seed for word selection (0: time based)")
	flags.Float64Var(&testCaps, "caps", 0, "probability of capitalized first letter (0-1)")
	flags.Float64Var(&testPunct, "punct", 0, "punctuation probability per word (0-1)")
	flags.StringVar(&testPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	flags.StringVar(&natsURL, "nats-url", "", "publish results to this NATS server")
	flags.StringVar(&natsSubject, "nats-subject", publish.DefaultSubject, "NATS subject for published results")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "amount", &testAmount, fileCfg.Test.Amount)
	applyConfig(cmd, "lang", &testLang, fileCfg.Test.Lang)
	applyConfig(cmd, "ready-text", &testReadyText, fileCfg.Test.ReadyText)
	applyConfig(cmd, "timeout", &testTimeout, fileCfg.Test.Timeout)
	applyConfig(cmd, "json", &testJSON, fileCfg.Test.JSON)
	applyConfig(cmd, "seed", &testSeed, fileCfg.Test.Seed)
	applyConfig(cmd, "caps", &testCaps, fileCfg.Test.CapsPct)
	applyConfig(cmd, "punct", &testPunct, fileCfg.Test.PunctPct)
	applyConfig(cmd, "punct-set", &testPunctSet, fileCfg.Test.PunctSet)
	applyConfig(cmd, "nats-url", &natsURL, fileCfg.Publish.NatsURL)
	applyConfig(cmd, "nats-subject", &natsSubject, fileCfg.Publish.Subject)
	if fileCfg.Test.Save != nil && !cmd.Flags().Changed("no-save") {
		testNoSave = !*fileCfg.Test.Save
	}

	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("generate") {
		c, err := code.FromList(testGenerate)
		if err != nil {
			return fmt.Errorf("failed to generate code: %w", err)
		}
		_, err = fmt.Fprintln(out, tui.RenderCode(c))
		return err
	}

	cfg := model.Config{
		Amount:    testAmount,
		Lang:      strings.ToLower(strings.TrimSpace(testLang)),
		Code:      strings.TrimSpace(testCode),
		ReadyText: testReadyText,
		Timeout:   time.Duration(testTimeout) * time.Second,
		JSON:      testJSON,
		Save:      !testNoSave,
		Seed:      testSeed,
		CapsPct:   testCaps,
		PunctPct:  testPunct,
		PunctSet:  testPunctSet,
	}
	if err := validateConfig(cfg, testTimeout); err != nil {
		return err
	}

	words, err := resolveWords(cfg)
	if err != nil {
		return err
	}
	shareCode, err := code.Encode(words)
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg, words)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	outcome := m.Outcome()
	switch {
	case outcome.TimedOut:
		_, err := fmt.Fprintln(out, tui.RenderTimeout())
		return err
	case !outcome.Completed():
		return nil
	}

	pubCfg := model.PublishConfig{NatsURL: natsURL, Subject: natsSubject}
	res, scoreErr := finishRun(cfg, pubCfg, config.DefaultDBPath(), words, outcome, shareCode)
	if scoreErr != nil && !errors.Is(scoreErr, result.ErrDurationTooShort) {
		return scoreErr
	}
	seconds := outcome.ElapsedSeconds()

	if cfg.JSON {
		if scoreErr != nil {
			return scoreErr
		}
		return writeJSON(out, res)
	}
	report := tui.Report{
		Words:   words,
		Typed:   outcome.Typed,
		Result:  res,
		Err:     scoreErr,
		Seconds: seconds,
		Lang:    cfg.Lang,
		Code:    shareCode,
	}
	width, _ := tui.TerminalSize()
	_, err = fmt.Fprintln(out, tui.RenderReport(report, width))
	return err
}

func resolveWords(cfg model.Config) ([]string, error) {
	if cfg.Code != "" {
		words, err := code.Decode(cfg.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve code: %w", err)
		}
		return words, nil
	}
	pool, err := wordlist.Resolve(cfg.Lang, config.DefaultWordListDir())
	if err != nil {
		if errors.Is(err, wordlist.ErrUnknownLanguage) {
			langs, lerr := wordlist.Languages(config.DefaultWordListDir())
			if lerr != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(langs, ", "))
		}
		return nil, err
	}
	gen := generator.New(cfg.Seed)
	return gen.Generate(pool, cfg.Amount, cfg.CapsPct, cfg.PunctPct, []rune(cfg.PunctSet)), nil
}

// finishRun scores a submitted test, then stores it at dbPath and publishes
// it. A run too short to measure is scored but neither stored nor published.
func finishRun(cfg model.Config, pubCfg model.PublishConfig, dbPath string, words []string, outcome tui.Outcome, shareCode string) (result.Result, error) {
	seconds := outcome.ElapsedSeconds()
	res, err := result.Calculate(words, outcome.Typed, seconds)
	if errors.Is(err, result.ErrDurationTooShort) {
		return res, err
	}
	if err != nil {
		return res, fmt.Errorf("failed to score test: %w", err)
	}
	run := model.Run{
		StartedAt:    outcome.StartedAt,
		EndedAt:      outcome.EndedAt,
		Lang:         cfg.Lang,
		Words:        len(words),
		TypedWords:   len(outcome.Typed),
		CorrectWords: result.CorrectWords(words, outcome.Typed),
		DurationS:    seconds,
		WPM:          res.WPM,
		Accuracy:     res.Accuracy,
		Consistency:  res.Consistency,
		Code:         shareCode,
	}
	recordRun(cfg, pubCfg, dbPath, &run)
	return res, nil
}

// recordRun only logs failures; a finished test is never lost to them.
func recordRun(cfg model.Config, pubCfg model.PublishConfig, dbPath string, run *model.Run) {
	if cfg.Save {
		st, err := store.Open(dbPath)
		if err != nil {
			logErrf("failed to open db: %v\n", err)
		} else {
			if _, err := st.InsertResult(context.Background(), run); err != nil {
				logErrf("failed to save result: %v\n", err)
			}
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}
	}
	if pubCfg.NatsURL == "" {
		return
	}
	if run.RunID == "" {
		run.RunID = store.NewRunID()
	}
	pub, err := publish.Connect(pubCfg)
	if err != nil {
		logErrf("%v\n", err)
		return
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logErrf("failed to close nats connection: %v\n", cerr)
		}
	}()
	if err := pub.Publish(*run); err != nil {
		logErrf("%v\n", err)
	}
}

func writeJSON(w io.Writer, res result.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("unable to convert result to json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := wordlist.Languages(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show result history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N results")
	cmd.Flags().IntVar(&statsWindow, "window", defaultWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := statsConfig()
	if err != nil {
		return err
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

	if statsPlain {
		report, err := stats.BuildReport(context.Background(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		out := cmd.OutOrStdout()
		if err := stats.RenderSummary(out, report.Runs); err != nil {
			return err
		}
		if err := stats.RenderTrends(out, report.Runs, cfg.Window); err != nil {
			return err
		}
		if len(report.Runs) == 0 {
			return nil
		}
		return stats.RenderHistory(out, report.Runs)
	}

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func statsConfig() (model.StatsConfig, error) {
	cfg := model.StatsConfig{
		Lang:   strings.ToLower(strings.TrimSpace(statsLang)),
		Last:   statsLast,
		Window: statsWindow,
	}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return cfg, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	if cfg.Last < 0 {
		return cfg, fmt.Errorf("--last must be >= 0")
	}
	if cfg.Window < 1 {
		return cfg, fmt.Errorf("--window must be >= 1")
	}
	return cfg, nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# katype configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# amount = %d             # Number of words (max %d)
# lang = %q             # Language code
# ready-text = %q   # Warning shown before the text starts
# timeout = 0             # Seconds before the test ends (0: none)
# json = false            # Print results as JSON
# save = true             # Record results in history
# seed = 0                # Random seed (0: time based)
# caps = 0.0              # Probability of capitalized first letter (0-1)
# punct = 0.0             # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set

[publish]
# nats-url = "nats://127.0.0.1:4222"
# nats-subject = %q
`,
		defaultAmount,
		maxAmount,
		defaultLang,
		tui.DefaultReadyText,
		defaultPunctSet,
		publish.DefaultSubject,
	)
}

func validateConfig(cfg model.Config, timeoutSeconds int) error {
	if cfg.Amount < 0 || cfg.Amount > maxAmount {
		return fmt.Errorf("--amount must be between 0 and %d", maxAmount)
	}
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if timeoutSeconds < 0 {
		return fmt.Errorf("--timeout must be >= 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(errOut, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
