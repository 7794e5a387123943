// Package export renders stored trajectories as standalone SVG files.
package export

import (
	"fmt"
	"strings"
)

const svgMargin = 20.0

// Series is one named polyline in the plot.
type Series struct {
	Label  string
	Stroke string
	Values []float64
}

// TrajectorySVG plots one or more series against a shared time axis,
// typically the numeric trajectory and its analytic overlay. All
// series are scaled to the common value range.
func TrajectorySVG(times []float64, series []Series, width, height int) string {
	if len(times) < 2 || len(series) == 0 {
		return ""
	}

	minV, maxV := series[0].Values[0], series[0].Values[0]
	for _, s := range series {
		for _, v := range s.Values {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}
	rangeT := times[len(times)-1] - times[0]
	if rangeT == 0 {
		rangeT = 1
	}

	w := float64(width)
	h := float64(height)
	plotW := w - 2*svgMargin
	plotH := h - 2*svgMargin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Zero axis, when it is inside the value range.
	if minV < 0 && maxV > 0 {
		y0 := svgMargin + (maxV/rangeV)*plotH
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333344" stroke-width="1"/>
`, svgMargin, y0, w-svgMargin, y0))
	}

	for _, s := range series {
		n := len(s.Values)
		if n > len(times) {
			n = len(times)
		}
		if n < 2 {
			continue
		}
		var pts strings.Builder
		for i := 0; i < n; i++ {
			x := svgMargin + (times[i]-times[0])/rangeT*plotW
			y := svgMargin + (maxV-s.Values[i])/rangeV*plotH
			if i > 0 {
				pts.WriteByte(' ')
			}
			pts.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="%s"/>
`, s.Stroke, pts.String()))
	}

	// Legend in the top-left corner.
	for i, s := range series {
		y := svgMargin + float64(i)*14
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11">%s</text>
`, svgMargin+4, y, s.Stroke, s.Label))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
