package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// HistoryDateLayout renders session dates, e.g. "Mar 05, 2026".
const HistoryDateLayout = "Jan 02, 2006"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into "1h 5m" form.
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

// FormatSeconds renders a countdown value as m:ss.
func FormatSeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// Plural returns "1 session" / "2 sessions".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// SessionLine renders a record as "<date> - <category> (<minutes> min)".
func SessionLine(rec domain.SessionRecord) string {
	return fmt.Sprintf("%s - %s (%d min)", rec.Date.Format(HistoryDateLayout), rec.Category, rec.DurationMinutes)
}
