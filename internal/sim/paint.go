package sim

import (
	"fmt"
	"image/color"

	"outbreak/internal/arena"
)

var borderColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

const (
	historyChartHeight = 80.0
	historyChartTop    = -arena.HalfHeight - historyChartHeight - 8
)

// paintHistory renders the PercentInfected series as a strip of thin bars
// above the arena; the other History series are not drawn. It uses bars since GraphicsContext exposes no line-drawing primitive beyond
// rectangles. Pixel-level chart styling is outside the core's concern.
func paintHistory(gc GraphicsContext, h *History) {
	n := len(h.PercentInfected)
	if n == 0 {
		return
	}
	barWidth := 2 * arena.HalfWidth / float64(n)

	for i := 0; i < n; i++ {
		x := -arena.HalfWidth + float64(i)*barWidth
		infected := h.PercentInfected[i]
		if infected <= 0 {
			continue
		}
		barHeight := historyChartHeight * infected / 100
		gc.SetColor(ColorFor(Infected))
		gc.FillRect(x, historyChartTop+historyChartHeight-barHeight, barWidth, barHeight)
	}
}

func statsLine(t float64, s Stats) string {
	return fmt.Sprintf("t=%.1f alive=%d infected=%d non-infected=%d recovered=%d dead=%d",
		t, s.Alive, s.Infected, s.NonInfected, s.Recovered, s.Dead)
}
