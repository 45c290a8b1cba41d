// Package export writes radsim curves to files outside the terminal.
package export

import (
	"fmt"
	"strings"
)

// Series is one polyline on an SVG chart.
type Series struct {
	X, Y   []float64
	Stroke string
}

// CurveToSVG draws one or more series on shared, padded axes. Series with
// fewer than two points or mismatched lengths are skipped; if none remain
// the result is empty.
func CurveToSVG(series []Series, width, height int) string {
	var drawn []Series
	for _, s := range series {
		if len(s.X) >= 2 && len(s.X) == len(s.Y) {
			drawn = append(drawn, s)
		}
	}
	if len(drawn) == 0 {
		return ""
	}

	minX, maxX := drawn[0].X[0], drawn[0].X[0]
	minY, maxY := drawn[0].Y[0], drawn[0].Y[0]
	for _, s := range drawn {
		for i := range s.X {
			minX = min(minX, s.X[i])
			maxX = max(maxX, s.X[i])
			minY = min(minY, s.Y[i])
			maxY = max(maxY, s.Y[i])
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, s := range drawn {
		stroke := s.Stroke
		if stroke == "" {
			stroke = "#00ffff"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i := range s.X {
			x := (s.X[i] - minX) / rangeX * float64(width)
			y := float64(height) - (s.Y[i]-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
