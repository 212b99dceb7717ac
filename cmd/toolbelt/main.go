// Package main provides the CLI entrypoint for toolbelt.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkraev/toolbelt/internal/config"
	"github.com/mkraev/toolbelt/internal/password"
	"github.com/mkraev/toolbelt/internal/store"
	"github.com/mkraev/toolbelt/internal/tools/uuidgen"
	"github.com/mkraev/toolbelt/internal/tui"
)

const defaultHistoryLast = 20

var (
	passwordLength          int
	passwordCount           int
	passwordUppercase       bool
	passwordLowercase       bool
	passwordNumbers         bool
	passwordSymbols         bool
	passwordAvoidSimilar    bool
	passwordAllowDuplicates bool
	passwordAvoidSequential bool

	uuidVersion int
	uuidCount   int

	historyTool string
	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "toolbelt",
		Short:         "TUI toolkit for everyday data manipulation",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newUUIDCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use the subcommands for scripted output")
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	pwCfg := passwordConfigFromFile(fileCfg.Password)
	if err := password.Validate(pwCfg); err != nil {
		return fmt.Errorf("invalid password defaults in config: %w", err)
	}

	exportDir := config.DefaultExportDir()
	if fileCfg.Export.Dir != nil && *fileCfg.Export.Dir != "" {
		exportDir = *fileCfg.Export.Dir
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

	model := tui.NewModel(st, pwCfg, exportDir)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newPasswordCmd() *cobra.Command {
	defaults := password.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate passwords without the TUI",
		Args:  cobra.NoArgs,
		RunE:  runPasswordCmd,
	}
	cmd.Flags().IntVar(&passwordLength, "length", defaults.Length, "password length")
	cmd.Flags().IntVar(&passwordCount, "count", defaults.Count, "number of passwords")
	cmd.Flags().BoolVar(&passwordUppercase, "upper", defaults.Uppercase, "include uppercase letters")
	cmd.Flags().BoolVar(&passwordLowercase, "lower", defaults.Lowercase, "include lowercase letters")
	cmd.Flags().BoolVar(&passwordNumbers, "numbers", defaults.Numbers, "include digits")
	cmd.Flags().BoolVar(&passwordSymbols, "symbols", defaults.Symbols, "include symbols")
	cmd.Flags().BoolVar(&passwordAvoidSimilar, "avoid-similar", defaults.AvoidSimilar, "exclude visually similar characters")
	cmd.Flags().BoolVar(&passwordAllowDuplicates, "allow-duplicates", defaults.AllowDuplicates, "allow repeated characters")
	cmd.Flags().BoolVar(&passwordAvoidSequential, "avoid-sequential", defaults.AvoidSequential, "reject sequential runs")
	return cmd
}

func runPasswordCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "length", &passwordLength, fileCfg.Password.Length)
	applyIntConfig(cmd, "count", &passwordCount, fileCfg.Password.Count)
	applyBoolConfig(cmd, "upper", &passwordUppercase, fileCfg.Password.Uppercase)
	applyBoolConfig(cmd, "lower", &passwordLowercase, fileCfg.Password.Lowercase)
	applyBoolConfig(cmd, "numbers", &passwordNumbers, fileCfg.Password.Numbers)
	applyBoolConfig(cmd, "symbols", &passwordSymbols, fileCfg.Password.Symbols)
	applyBoolConfig(cmd, "avoid-similar", &passwordAvoidSimilar, fileCfg.Password.AvoidSimilar)
	applyBoolConfig(cmd, "allow-duplicates", &passwordAllowDuplicates, fileCfg.Password.AllowDuplicates)
	applyBoolConfig(cmd, "avoid-sequential", &passwordAvoidSequential, fileCfg.Password.AvoidSequential)

	cfg := password.Config{
		Length:          passwordLength,
		Count:           passwordCount,
		Uppercase:       passwordUppercase,
		Lowercase:       passwordLowercase,
		Numbers:         passwordNumbers,
		Symbols:         passwordSymbols,
		AvoidSimilar:    passwordAvoidSimilar,
		AllowDuplicates: passwordAllowDuplicates,
		AvoidSequential: passwordAvoidSequential,
	}
	passwords, err := password.Generate(cfg)
	if err != nil {
		return err
	}
	for _, pw := range passwords {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), pw); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newUUIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate UUIDs without the TUI",
		Args:  cobra.NoArgs,
		RunE:  runUUIDCmd,
	}
	cmd.Flags().IntVar(&uuidVersion, "version", 4, "UUID version (4 or 7)")
	cmd.Flags().IntVar(&uuidCount, "count", 1, "number of UUIDs")
	return cmd
}

func runUUIDCmd(cmd *cobra.Command, _ []string) error {
	if uuidCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	var ids []string
	switch uuidVersion {
	case 4:
		ids = uuidgen.V4(uuidCount)
	case 7:
		var err error
		ids, err = uuidgen.V7(uuidCount)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported UUID version %d (use 4 or 7)", uuidVersion)
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent tool runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyTool, "tool", "", "filter by tool name")
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "limit to last N runs")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	events, err := st.ListEvents(context.Background(), historyTool, historyLast)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(events) == 0 {
		logErrln("no history yet")
		return nil
	}
	for _, event := range events {
		line := fmt.Sprintf("%s  %-12s %s", event.CreatedAt.Local().Format(time.DateTime), event.Tool, event.Detail)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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

func passwordConfigFromFile(fileCfg config.PasswordConfig) password.Config {
	cfg := password.DefaultConfig()
	if fileCfg.Length != nil {
		cfg.Length = *fileCfg.Length
	}
	if fileCfg.Count != nil {
		cfg.Count = *fileCfg.Count
	}
	if fileCfg.Uppercase != nil {
		cfg.Uppercase = *fileCfg.Uppercase
	}
	if fileCfg.Lowercase != nil {
		cfg.Lowercase = *fileCfg.Lowercase
	}
	if fileCfg.Numbers != nil {
		cfg.Numbers = *fileCfg.Numbers
	}
	if fileCfg.Symbols != nil {
		cfg.Symbols = *fileCfg.Symbols
	}
	if fileCfg.AvoidSimilar != nil {
		cfg.AvoidSimilar = *fileCfg.AvoidSimilar
	}
	if fileCfg.AllowDuplicates != nil {
		cfg.AllowDuplicates = *fileCfg.AllowDuplicates
	}
	if fileCfg.AvoidSequential != nil {
		cfg.AvoidSequential = *fileCfg.AvoidSequential
	}
	return cfg
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
	defaults := password.DefaultConfig()
	return fmt.Sprintf(`# toolbelt configuration
# Uncomment a value to enable it. CLI flags override config values.

[password]
# length = %d             # Password length (%d-%d)
# count = %d               # Passwords per batch (%d-%d)
# uppercase = %t         # Include uppercase letters
# lowercase = %t         # Include lowercase letters
# numbers = %t           # Include digits
# symbols = %t           # Include symbols
# avoid-similar = false   # Exclude visually similar characters (I, l, 1, O, 0)
# allow-duplicates = %t  # Allow repeated characters
# avoid-sequential = false # Reject sequential runs like abc or 321

[export]
# dir = "export"          # Directory for exported files
`,
		defaults.Length, password.MinLength, password.MaxLength,
		defaults.Count, password.MinCount, password.MaxCount,
		defaults.Uppercase,
		defaults.Lowercase,
		defaults.Numbers,
		defaults.Symbols,
		defaults.AllowDuplicates,
	)
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
