package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// emberHuhTheme returns a custom huh theme using the formatter palette.
func emberHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorOrange).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorOrange).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// checkInFormValues holds the string-typed form state before conversion.
type checkInFormValues struct {
	Sleep    string
	Stress   string
	Workload string
	Mood     string
	Notes    string
}

// checkInForm builds the interactive daily check-in form.
func checkInForm(v *checkInFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hours of sleep (0-12)").
				Placeholder("7.5").
				Value(&v.Sleep).
				Validate(validateSleepHours),
			huh.NewInput().
				Title("Stress level (1-10)").
				Placeholder("5").
				Value(&v.Stress).
				Validate(validateLevel),
			huh.NewInput().
				Title("Workload (1-10)").
				Placeholder("5").
				Value(&v.Workload).
				Validate(validateLevel),
			huh.NewInput().
				Title("Mood (1-10)").
				Placeholder("5").
				Value(&v.Mood).
				Validate(validateLevel),
			huh.NewText().
				Title("Notes (optional)").
				CharLimit(domain.MaxNotesLen).
				Value(&v.Notes),
		),
	).WithTheme(emberHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation prompt.
func confirmForm(title string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	).WithTheme(emberHuhTheme()).WithShowHelp(false)
}

// contactFormValues holds the add-contact form state.
type contactFormValues struct {
	Name  string
	Phone string
	Email string
}

func contactForm(v *contactFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Phone (optional)").
				Value(&v.Phone),
			huh.NewInput().
				Title("Email (optional)").
				Value(&v.Email),
		),
	).WithTheme(emberHuhTheme()).WithShowHelp(false)
}

// validateSleepHours accepts a number between 0 and 12.
func validateSleepHours(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 12 {
		return fmt.Errorf("enter hours between 0 and 12")
	}
	return nil
}

// validateLevel accepts an integer between 1 and 10.
func validateLevel(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 10 {
		return fmt.Errorf("enter a number between 1 and 10")
	}
	return nil
}

// parseFloatOr parses s as a float, returning fallback on failure. Used after
// huh validation has already ensured the string is valid.
func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

// parseIntOr parses s as an integer, returning fallback on failure.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
