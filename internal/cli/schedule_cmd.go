package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/schedule"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage recurring focus schedules",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleEnableCmd(app, true),
		newScheduleEnableCmd(app, false),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

// daysValue is a pflag.Value that parses weekday lists like "mon,wed,fri".
type daysValue struct {
	days *domain.Weekdays
}

var _ pflag.Value = (*daysValue)(nil)

func (v *daysValue) String() string {
	if v.days == nil {
		return ""
	}
	return formatter.WeekdaysLabel(*v.days)
}

func (v *daysValue) Set(s string) error {
	days, err := parseDays(s)
	if err != nil {
		return err
	}
	*v.days = days
	return nil
}

func (v *daysValue) Type() string { return "days" }

func newScheduleAddCmd(app *App) *cobra.Command {
	var label, atFlag string
	var minutes int
	days := domain.WeekdaysAll
	daysFlag := &daysValue{days: &days}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring focus schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched := &domain.FocusSchedule{
				Label:       label,
				Days:        days,
				StartMinute: 9 * 60,
				DurationMin: app.DefaultDurationMin,
				Enabled:     true,
			}

			if label == "" && app.interactive() {
				if err := promptSchedule(sched); err != nil {
					return err
				}
			} else {
				if atFlag != "" {
					startMinute, err := parseClockTime(atFlag)
					if err != nil {
						return err
					}
					sched.StartMinute = startMinute
				}
				if minutes > 0 {
					sched.DurationMin = minutes
				}
			}

			if err := app.Schedules.Create(context.Background(), sched); err != nil {
				return err
			}
			fmt.Printf("Added schedule %q: %s at %s for %s\n",
				sched.Label,
				formatter.WeekdaysLabel(sched.Days),
				formatter.MinuteOfDay(sched.StartMinute),
				formatter.FormatMinutes(sched.DurationMin),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Schedule label")
	cmd.Flags().Var(daysFlag, "days", "Comma-separated weekdays (mon,tue,... or 'all')")
	cmd.Flags().StringVar(&atFlag, "at", "", "Start time as HH:MM")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session length in minutes")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List focus schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.List(context.Background(), !all)
			if err != nil {
				return err
			}

			if len(schedules) == 0 {
				fmt.Println("No schedules configured.")
				return nil
			}

			now := time.Now()
			headers := []string{"ID", "LABEL", "DAYS", "AT", "LENGTH", "STATE", "NEXT"}
			rows := make([][]string, 0, len(schedules))
			for _, s := range schedules {
				next := formatter.Dim("--")
				if at, ok := schedule.NextOccurrence(s, now); ok {
					next = at.Format("Mon 15:04")
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Label,
					formatter.WeekdaysLabel(s.Days),
					formatter.MinuteOfDay(s.StartMinute),
					formatter.FormatMinutes(s.DurationMin),
					formatter.EnabledPill(s.Enabled),
					next,
				})
			}

			fmt.Print(formatter.RenderBox("Schedules", formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include disabled schedules")

	return cmd
}

func newScheduleEnableCmd(app *App, enable bool) *cobra.Command {
	use, short := "enable ID", "Enable a schedule"
	if !enable {
		use, short = "disable ID", "Disable a schedule"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.SetEnabled(context.Background(), args[0], enable); err != nil {
				return err
			}
			state := "enabled"
			if !enable {
				state = "disabled"
			}
			fmt.Printf("Schedule %s %s\n", args[0], state)
			return nil
		},
	}
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed schedule %s\n", args[0])
			return nil
		},
	}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

// parseDays parses a comma-separated weekday list like "mon,wed,fri".
// The keyword "all" selects every day.
func parseDays(s string) (domain.Weekdays, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return domain.WeekdaysAll, nil
	}

	var days domain.Weekdays
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) > 3 {
			name = name[:3]
		}
		day, ok := weekdayNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown weekday %q (use mon,tue,wed,thu,fri,sat,sun)", part)
		}
		days = days.With(day)
	}
	if days == 0 {
		return 0, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

// parseClockTime parses "HH:MM" into minutes after midnight.
func parseClockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}
