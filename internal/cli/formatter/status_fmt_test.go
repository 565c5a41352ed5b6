package formatter

import (
	"testing"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus_Idle(t *testing.T) {
	out := RenderStatus(countdown.Snapshot{})
	assert.Contains(t, out, "No focus session running")
	assert.Contains(t, out, "neuroblock start")
}

func TestRenderStatus_Active(t *testing.T) {
	out := RenderStatus(countdown.Snapshot{
		Active:           true,
		RemainingSeconds: 1200,
		TotalSeconds:     1500,
	})
	assert.Contains(t, out, "20:00")
	assert.Contains(t, out, "25m")
	assert.Contains(t, out, "Focusing")
}

func TestRenderStatsSummary(t *testing.T) {
	out := RenderStatsSummary(&service.StatsSummary{
		Today:      service.PeriodStats{Sessions: 2, Completed: 1, FocusSeconds: 2100},
		Last7Days:  service.PeriodStats{Sessions: 5, Completed: 3, FocusSeconds: 6900},
		AllTime:    service.PeriodStats{Sessions: 6, Completed: 4, FocusSeconds: 8400},
		StreakDays: 3,
	})
	assert.Contains(t, out, "3 days streak")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "Last 7 days")
}

func TestRenderStatsSummary_NoStreak(t *testing.T) {
	out := RenderStatsSummary(&service.StatsSummary{})
	assert.Contains(t, out, "No active streak")
	assert.Contains(t, out, "--")
}
