// Package main provides the CLI entrypoint for passtui.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/passtui/internal/config"
	"github.com/verte-zerg/passtui/internal/export"
	"github.com/verte-zerg/passtui/internal/generator"
	"github.com/verte-zerg/passtui/internal/history"
	"github.com/verte-zerg/passtui/internal/model"
	"github.com/verte-zerg/passtui/internal/report"
	"github.com/verte-zerg/passtui/internal/strength"
	"github.com/verte-zerg/passtui/internal/tui"
)

const defaultLength = 12

var (
	historyPath string

	generateLength  int
	generateUpper   bool
	generateLower   bool
	generateDigits  bool
	generateSymbols bool
	generateNoSave  bool
	generateCopy    bool

	historyLast int

	exportOut string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passtui",
		Short:         "Terminal password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "history file path (default: XDG data dir)")
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&generateLength, "length", defaultLength, fmt.Sprintf("password length (%d-%d)", tui.MinLength, tui.MaxLength))
	cmd.Flags().BoolVar(&generateUpper, "upper", true, "include uppercase letters (A-Z)")
	cmd.Flags().BoolVar(&generateLower, "lower", true, "include lowercase letters (a-z)")
	cmd.Flags().BoolVar(&generateDigits, "digits", true, "include digits (0-9)")
	cmd.Flags().BoolVar(&generateSymbols, "symbols", true, "include symbols")
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts := mergedOptions(cmd, fileCfg)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal (try: passtui generate)")
	}

	st := openHistoryLenient(resolveHistoryPath(cmd, fileCfg))
	gen := generator.New()
	model := tui.NewModel(opts, st, gen)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password and record it",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	addGenerateFlags(cmd)
	cmd.Flags().BoolVar(&generateNoSave, "no-save", false, "skip recording to history")
	cmd.Flags().BoolVar(&generateCopy, "copy", false, "copy the password to the clipboard")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts := mergedOptions(cmd, fileCfg)
	if opts.Length < tui.MinLength || opts.Length > tui.MaxLength {
		return fmt.Errorf("--length must be between %d and %d", tui.MinLength, tui.MaxLength)
	}

	gen := generator.New()
	password, err := gen.Generate(opts)
	if err != nil {
		if errors.Is(err, generator.ErrNoCharClasses) {
			return fmt.Errorf("select at least one character class (--upper, --lower, --digits, --symbols)")
		}
		return fmt.Errorf("failed to generate password: %w", err)
	}
	label := strength.Classify(password)

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Strength: %s\n", label); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if generateCopy {
		if err := clipboard.WriteAll(password); err != nil {
			logErrf("failed to copy to clipboard: %v\n", err)
		}
	}

	if generateNoSave {
		return nil
	}
	// The password is already printed, so a failed history write is a
	// warning rather than a failure.
	st := openHistoryLenient(resolveHistoryPath(cmd, fileCfg))
	entry := model.Entry{
		Password:  password,
		Timestamp: time.Now().Format(model.TimestampLayout),
		Strength:  label,
	}
	if err := st.Append(entry); err != nil {
		logErrf("failed to save history: %v\n", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show generated password history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to the N most recent entries")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	path, err := historyPathFromFlags(cmd)
	if err != nil {
		return err
	}
	st, err := openHistoryStrict(path)
	if err != nil {
		return err
	}
	entries := st.Entries()
	if historyLast > 0 {
		entries = st.Recent(historyLast)
	}
	if err := report.RenderHistory(cmd.OutOrStdout(), entries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show history summary",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	path, err := historyPathFromFlags(cmd)
	if err != nil {
		return err
	}
	st, err := openHistoryStrict(path)
	if err != nil {
		return err
	}
	if err := report.RenderSummary(cmd.OutOrStdout(), st.Entries()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history to a CSV file",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportOut, "out", "", "destination CSV file")
	cobra.CheckErr(cmd.MarkFlagRequired("out"))
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	path, err := historyPathFromFlags(cmd)
	if err != nil {
		return err
	}
	st, err := openHistoryStrict(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(exportOut, st.Entries()); err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", st.Len(), exportOut); err != nil {
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

func mergedOptions(cmd *cobra.Command, fileCfg config.FileConfig) model.Options {
	applyIntConfig(cmd, "length", &generateLength, fileCfg.Generate.Length)
	applyBoolConfig(cmd, "upper", &generateUpper, fileCfg.Generate.Upper)
	applyBoolConfig(cmd, "lower", &generateLower, fileCfg.Generate.Lower)
	applyBoolConfig(cmd, "digits", &generateDigits, fileCfg.Generate.Digits)
	applyBoolConfig(cmd, "symbols", &generateSymbols, fileCfg.Generate.Symbols)

	return model.Options{
		Length:  generateLength,
		Upper:   generateUpper,
		Lower:   generateLower,
		Digits:  generateDigits,
		Symbols: generateSymbols,
	}
}

func resolveHistoryPath(cmd *cobra.Command, fileCfg config.FileConfig) string {
	path := historyPath
	applyStringConfig(cmd, "history", &path, fileCfg.History.Path)
	if path == "" {
		path = config.DefaultHistoryPath()
	}
	return path
}

// openHistoryLenient degrades an unreadable history to an empty store so
// the user can keep generating; the warning goes to stderr.
func openHistoryLenient(path string) *history.Store {
	st, err := history.Load(path)
	if err != nil {
		logErrf("failed to load history: %v; starting with empty history\n", err)
		return history.New(path)
	}
	return st
}

// openHistoryStrict surfaces a broken history file instead of reporting
// an empty history as fact.
func openHistoryStrict(path string) (*history.Store, error) {
	return history.Load(path)
}

func historyPathFromFlags(cmd *cobra.Command) (string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return resolveHistoryPath(cmd, fileCfg), nil
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
	return fmt.Sprintf(`# passtui configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# length = %d       # Password length (%d-%d)
# upper = true      # Include uppercase letters (A-Z)
# lower = true      # Include lowercase letters (a-z)
# digits = true     # Include digits (0-9)
# symbols = true    # Include symbols (%s)

[history]
# path = ""         # History file (default: $XDG_DATA_HOME/passtui/history.json)
`,
		defaultLength,
		tui.MinLength,
		tui.MaxLength,
		model.SymbolSet,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
