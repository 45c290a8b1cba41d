package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/radsim/internal/analysis"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Theme  Theme
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Subtle lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title),
		Header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(t.Title),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
	}
}

func (s Styles) ratingColor(r analysis.Rating) lipgloss.Color {
	switch r {
	case analysis.RatingExcellent:
		return s.Theme.Excellent
	case analysis.RatingHot:
		return s.Theme.Hot
	default:
		return s.Theme.Neutral
	}
}

// Badge renders a rating in its color.
func (s Styles) Badge(r analysis.Rating) string {
	return lipgloss.NewStyle().
		Bold(r != analysis.RatingNeutral).
		Foreground(s.ratingColor(r)).
		Render(r.String())
}

// Table renders rows under headers inside a rounded border.
func (s Styles) Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(s.Theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		})
	return t.Render()
}

// Section renders a title line followed by body.
func (s Styles) Section(title, body string) string {
	return s.Title.Render(title) + "\n" + body
}

// Sparkline renders values as a one-line bar chart of at most width cells,
// colored low to high.
func (s Styles) Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	low := lipgloss.NewStyle().Foreground(s.Theme.Excellent)
	mid := lipgloss.NewStyle().Foreground(s.Theme.Neutral)
	high := lipgloss.NewStyle().Foreground(s.Theme.Hot)

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			sb.WriteString(high.Render(c))
		case norm > 0.3:
			sb.WriteString(mid.Render(c))
		default:
			sb.WriteString(low.Render(c))
		}
	}
	return sb.String()
}
