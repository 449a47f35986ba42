package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/repstreak/internal/cli/formatter"
	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trackerHuhTheme returns a huh theme built from the formatter palette.
func trackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// categoryOptions lists the manual categories in menu order, followed by
// the General fallback the numbered console assigns to any other choice.
func categoryOptions() []huh.Option[domain.Category] {
	opts := make([]huh.Option[domain.Category], 0, len(domain.ManualCategories)+1)
	for i, c := range domain.ManualCategories {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", i+1, c), c))
	}
	return append(opts, huh.NewOption("Other ("+string(domain.CategoryGeneral)+")", domain.CategoryGeneral))
}

// manualSessionForm collects a category and a duration in minutes.
func manualSessionForm(category *domain.Category, minutes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Category]().
				Title("Session Type").
				Options(categoryOptions()...).
				Value(category),
		),
		huh.NewGroup(
			wholeNumberInput("Duration (minutes)", "30", minutes),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// timedSessionForm collects the countdown length in seconds.
func timedSessionForm(seconds *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			wholeNumberInput("Duration (seconds)", "60", seconds),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

func resetConfirmForm(confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all data?").
				Description("Every recorded session is discarded and the streak starts over.").
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// wholeNumberInput accepts any integer; range checks happen after submit so
// zero or negative values cancel the session instead of blocking the form.
func wholeNumberInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateWholeNumber)
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validateWholeNumber requires an integer, mirroring the console re-prompt.
func validateWholeNumber(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
