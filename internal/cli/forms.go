package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// neuroblockHuhTheme returns a custom huh theme using the Gruvbox palette.
func neuroblockHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

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

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promptDuration asks for a session length with common presets plus a
// custom entry.
func promptDuration(defaultMin int) (int, error) {
	const custom = -1
	choice := defaultMin

	presets := []int{15, 25, 50, 90}
	options := make([]huh.Option[int], 0, len(presets)+1)
	for _, p := range presets {
		options = append(options, huh.NewOption(formatter.FormatMinutes(p), p))
	}
	options = append(options, huh.NewOption("Custom...", custom))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How long?").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(neuroblockHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return 0, err
	}
	if choice != custom {
		return choice, nil
	}

	var raw string
	input := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes").
				Placeholder(strconv.Itoa(defaultMin)).
				Value(&raw).
				Validate(validateMinutes),
		),
	).WithTheme(neuroblockHuhTheme()).WithShowHelp(false)

	if err := input.Run(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(raw) == "" {
		return defaultMin, nil
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

func validateMinutes(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number of minutes")
	}
	if n < 5 || n > 480 {
		return fmt.Errorf("between 5 and 480 minutes")
	}
	return nil
}

// promptSchedule collects a new focus schedule interactively.
func promptSchedule(defaults *domain.FocusSchedule) error {
	var (
		label    = defaults.Label
		days     []time.Weekday
		startRaw = formatter.MinuteOfDay(defaults.StartMinute)
		minRaw   = strconv.Itoa(defaults.DurationMin)
	)

	dayOptions := make([]huh.Option[time.Weekday], 0, 7)
	for day := time.Monday; day <= time.Saturday; day++ {
		dayOptions = append(dayOptions, huh.NewOption(day.String(), day))
	}
	dayOptions = append(dayOptions, huh.NewOption(time.Sunday.String(), time.Sunday))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Placeholder("Morning deep work").
				Value(&label),
			huh.NewMultiSelect[time.Weekday]().
				Title("Days").
				Options(dayOptions...).
				Value(&days),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&startRaw).
				Validate(func(s string) error {
					_, err := parseClockTime(s)
					return err
				}),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&minRaw).
				Validate(validateMinutes),
		),
	).WithTheme(neuroblockHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startMinute, err := parseClockTime(startRaw)
	if err != nil {
		return err
	}
	durationMin, err := strconv.Atoi(strings.TrimSpace(minRaw))
	if err != nil {
		return fmt.Errorf("invalid duration %q", minRaw)
	}

	defaults.Label = label
	defaults.StartMinute = startMinute
	defaults.DurationMin = durationMin
	defaults.Days = 0
	for _, d := range days {
		defaults.Days = defaults.Days.With(d)
	}
	return nil
}
