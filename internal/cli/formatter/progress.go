package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/campus/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBandProgress renders a 0-100 percentage as a bar colored by its band,
// e.g. [███████░░░] 68.97%.
func RenderBandProgress(pct float64, band domain.Band, width int) string {
	return fmt.Sprintf("[%s] %s", BandColor(band).Render(bar(clampUnit(pct/100), width)), FormatPercent(pct))
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampUnit(pct float64) float64 {
	if pct < 0 || math.IsNaN(pct) {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
