package formatter

import (
	"fmt"
	"strings"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/service"
)

// RenderStatsSummary renders the aggregate stats view.
func RenderStatsSummary(s *service.StatsSummary) string {
	rows := [][]string{
		statsRow("Today", s.Today),
		statsRow("Last 7 days", s.Last7Days),
		statsRow("All time", s.AllTime),
	}
	table := RenderTable([]string{"PERIOD", "SESSIONS", "COMPLETED", "FOCUS TIME", "AVG", "RATE"}, rows)

	streak := Dim("No active streak")
	if s.StreakDays > 0 {
		unit := "days"
		if s.StreakDays == 1 {
			unit = "day"
		}
		streak = StyleHeader.Render(fmt.Sprintf("🔥 %d %s streak", s.StreakDays, unit))
	}

	return RenderBox("Focus stats", table+"\n"+streak)
}

func statsRow(label string, p service.PeriodStats) []string {
	rate := "--"
	avg := "--"
	if p.Sessions > 0 {
		rate = fmt.Sprintf("%.0f%%", p.CompletionRate()*100)
		avg = FormatSeconds(p.AvgFocusSeconds())
	}
	return []string{
		StyleFg.Render(label),
		fmt.Sprintf("%d", p.Sessions),
		fmt.Sprintf("%d", p.Completed),
		FormatSeconds(p.FocusSeconds),
		avg,
		rate,
	}
}

// RenderDaily renders per-day focus bars, scaled against the busiest day.
func RenderDaily(days []service.DayStats) string {
	if len(days) == 0 {
		return RenderBox("Daily focus", Dim("No finished sessions yet."))
	}

	max := 0
	for _, d := range days {
		if d.FocusSeconds > max {
			max = d.FocusSeconds
		}
	}

	var b strings.Builder
	for i, d := range days {
		frac := 0.0
		if max > 0 {
			frac = float64(d.FocusSeconds) / float64(max)
		}
		b.WriteString(fmt.Sprintf("%s  %s %s",
			StyleFg.Render(d.Date.Format("Mon Jan 02")),
			RenderProgress(frac, 20),
			Dim(FormatSeconds(d.FocusSeconds)),
		))
		if i < len(days)-1 {
			b.WriteString("\n")
		}
	}
	return RenderBox("Daily focus", b.String())
}
