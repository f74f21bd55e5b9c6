package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/config"
	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  dulcinea config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive(bufio.NewReader(os.Stdin), a.out, config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(reader *bufio.Reader, w io.Writer, configPath string) error {
	_, _ = fmt.Fprintf(w, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		_, _ = fmt.Fprintln(w, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Created %s\n\n", configPath)
	}

	printConfig(w, cfg)

	if !promptYesNo(reader, w, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Calendar.WeekStart = promptWeekStart(reader, w, cfg.Calendar.WeekStart)
	cfg.Calendar.MaxSlots = promptInt(reader, w, "Bars per week row (0: as many as fit)", cfg.Calendar.MaxSlots)
	cfg.Calendar.DefaultCategory = promptCategory(reader, w, cfg.Calendar.DefaultCategory)
	cfg.Filter.WithinWeeks = promptInt(reader, w, "Only show tasks starting within N weeks (0: off)", cfg.Filter.WithinWeeks)
	cfg.Storage.DBPath = promptValue(reader, w, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, w, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(w, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(w, formatHeader("Current configuration:"))
	_, _ = fmt.Fprintln(w, "──────────────────────")
	_, _ = fmt.Fprintln(w, cfg.String())
}

func promptYesNo(reader *bufio.Reader, w io.Writer, question string) bool {
	_, _ = fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(w, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptInt asks until it gets a non-negative number. EOF keeps current.
func promptInt(reader *bufio.Reader, w io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, w, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n >= 0 {
			return n
		}
		_, _ = fmt.Fprintf(w, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptWeekStart(reader *bufio.Reader, w io.Writer, current string) string {
	for {
		value := strings.ToLower(promptValue(reader, w, "Week starts on (sunday, monday)", current))
		if ws, err := dateutil.ParseWeekday(value); err == nil && (ws == time.Sunday || ws == time.Monday) {
			return value
		}
		_, _ = fmt.Fprintf(w, "  Invalid week start %q. Use sunday or monday\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptCategory(reader *bufio.Reader, w io.Writer, current string) string {
	names := make([]string, 0, len(task.Categories()))
	for _, c := range task.Categories() {
		names = append(names, string(c))
	}
	options := strings.Join(names, ", ")
	label := fmt.Sprintf("Default category (%s)", options)
	for {
		value := promptValue(reader, w, label, current)
		if c, err := task.ParseCategory(value); err == nil {
			return string(c)
		}
		_, _ = fmt.Fprintf(w, "  Invalid category %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, w io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, w, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		_, _ = fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
