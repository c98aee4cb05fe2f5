package puzzleio

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/nsudoku/internal/domain"
)

var (
	frameStyle = lipgloss.NewStyle().Faint(true)
	emptyStyle = lipgloss.NewStyle().Faint(true)
	valueStyle = lipgloss.NewStyle()
)

// Render returns a console rendering of the grid with block separators
// and "." for empty cells. Digits are right-aligned so 16×16 and 25×25
// boards line up.
func Render(g *domain.Grid) string {
	n := g.Size()
	b := g.Box()
	width := len(strconv.Itoa(n))

	var sb strings.Builder
	rule := frameStyle.Render(strings.Repeat("═", (width+1)*n+2*b+1))
	sb.WriteString(rule)
	sb.WriteByte('\n')
	for r := 0; r < n; r++ {
		sb.WriteString(frameStyle.Render("║"))
		for c := 0; c < n; c++ {
			sb.WriteByte(' ')
			if v := g.At(r, c); v == 0 {
				sb.WriteString(emptyStyle.Render(pad(".", width)))
			} else {
				sb.WriteString(valueStyle.Render(pad(strconv.Itoa(int(v)), width)))
			}
			if (c+1)%b == 0 {
				sb.WriteByte(' ')
				sb.WriteString(frameStyle.Render("║"))
			}
		}
		sb.WriteByte('\n')
		if (r+1)%b == 0 {
			sb.WriteString(rule)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
