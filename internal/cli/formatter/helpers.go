package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatSeconds converts raw seconds into human-friendly format, rounding
// down to whole minutes above one minute.
func FormatSeconds(sec int) string {
	if sec < 60 {
		if sec < 0 {
			sec = 0
		}
		return fmt.Sprintf("%ds", sec)
	}
	return FormatMinutes(sec / 60)
}

// FormatClock renders remaining seconds as mm:ss, or h:mm:ss above an hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// StopReasonPill returns a colored indicator for how a session ended.
func StopReasonPill(reason domain.StopReason) string {
	switch reason {
	case domain.StopExpired:
		return StyleGreen.Render("✔ Completed")
	case domain.StopExplicit:
		return StyleYellow.Render("○ Stopped")
	default:
		return StyleBlue.Render("● Running")
	}
}

// BlockKindBadge returns a styled label for a blocklist entry kind.
func BlockKindBadge(kind domain.BlockKind) string {
	switch kind {
	case domain.BlockApp:
		return StylePurple.Render("APP")
	case domain.BlockSite:
		return StyleBlue.Render("SITE")
	default:
		return StyleDim.Render(strings.ToUpper(string(kind)))
	}
}

// WeekdaysLabel renders a weekday mask like "Mon,Wed,Fri", or "Every day".
func WeekdaysLabel(days domain.Weekdays) string {
	if days == domain.WeekdaysAll {
		return "Every day"
	}
	var parts []string
	for day := time.Sunday; day <= time.Saturday; day++ {
		if days.Has(day) {
			parts = append(parts, day.String()[:3])
		}
	}
	if len(parts) == 0 {
		return StyleDim.Render("--")
	}
	return strings.Join(parts, ",")
}

// MinuteOfDay renders minutes after midnight as a 24h clock time.
func MinuteOfDay(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// EnabledPill returns a colored on/off indicator.
func EnabledPill(enabled bool) string {
	if enabled {
		return StyleGreen.Render("● On")
	}
	return StyleDim.Render("○ Off")
}
