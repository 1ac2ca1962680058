package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a completion percentage (0-100) as [████░░░░]  45%.
func RenderProgress(pct float64, width int) string {
	pct = domain.ClampPercentage(pct)
	if width < 2 {
		width = 2
	}
	filled := min(int(pct/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", ProgressStyle(pct).Render(bar), pct)
}

const (
	fullStar  = "★"
	halfStar  = "⯪"
	emptyStar = "☆"
)

// RenderStars draws a 0-5 rating with half-star precision followed by the number.
func RenderStars(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	full := int(rating)
	half := rating-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	stars := strings.Repeat(fullStar, full)
	if half {
		stars += halfStar
	}
	return StyleYellow.Render(stars) + Dim(strings.Repeat(emptyStar, empty)) + fmt.Sprintf(" %.1f", rating)
}
