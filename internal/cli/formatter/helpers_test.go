package formatter

import (
	"testing"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "59:59", FormatClock(3599))
	assert.Equal(t, "1:00:00", FormatClock(3600))
	assert.Equal(t, "8:00:00", FormatClock(28800))
	assert.Equal(t, "00:00", FormatClock(-5), "negative clamps to zero")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "25m", FormatMinutes(25))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0s", FormatSeconds(-1))
	assert.Equal(t, "45s", FormatSeconds(45))
	assert.Equal(t, "25m", FormatSeconds(1500))
	assert.Equal(t, "2h 5m", FormatSeconds(7500))
}

func TestWeekdaysLabel(t *testing.T) {
	assert.Equal(t, "Every day", WeekdaysLabel(domain.WeekdaysAll))

	mwf := domain.Weekdays(0).With(time.Monday).With(time.Wednesday).With(time.Friday)
	assert.Equal(t, "Mon,Wed,Fri", WeekdaysLabel(mwf))
}

func TestMinuteOfDay(t *testing.T) {
	assert.Equal(t, "00:00", MinuteOfDay(0))
	assert.Equal(t, "09:30", MinuteOfDay(9*60+30))
	assert.Equal(t, "23:59", MinuteOfDay(1439))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"A", "LONG HEADER"},
		[][]string{{"x", "y"}, {"wide cell", "z"}},
	)
	lines := splitLines(out)
	assert.Len(t, lines, 4, "header, separator, two rows")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
