package formatter

import (
	"fmt"
	"strings"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
)

// RenderStatus renders the countdown state for the status command.
func RenderStatus(snap countdown.Snapshot) string {
	if !snap.Active {
		return RenderBox("Focus", StyleDim.Render("No focus session running.")+"\n\n"+
			Dim("Start one with: neuroblock start [minutes]"))
	}

	var b strings.Builder
	b.WriteString(StyleGreen.Render("● Focusing") + "\n\n")
	b.WriteString(Bold(FormatClock(snap.RemainingSeconds)) + Dim(" remaining") + "\n")
	b.WriteString(RenderProgress(snap.ProgressRatio(), 28) + "\n")
	b.WriteString(Dim(fmt.Sprintf("of %s planned", FormatSeconds(snap.TotalSeconds))))
	return RenderBox("Focus", b.String())
}
