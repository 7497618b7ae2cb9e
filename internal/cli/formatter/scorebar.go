package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/engine"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a burnout score like [███░░░░░░░] 32, colored by
// risk level.
func RenderScoreBar(score int, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := RiskStyle(engine.RiskLevelFor(score))
	return fmt.Sprintf("[%s] %3d", style.Render(bar), score)
}
