package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a countdown's
// elapsed share: yellow while under way, green once complete.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	if pct >= 1 {
		style = StyleGreen
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
