// Package charts renders vital sign time series as inline SVG line charts for
// the patient statistics report.
package charts

import (
	"fmt"
	"strings"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// Renderer turns a time series into a chart document.
type Renderer interface {
	Render(title, unit string, series []domain.SeriesPoint) string
}

const (
	chartWidth   = 640
	chartHeight  = 320
	chartPadding = 48
)

// SVGLineRenderer renders a series as a polyline SVG with labeled axes.
type SVGLineRenderer struct{}

// NewSVGLineRenderer creates the default chart renderer.
func NewSVGLineRenderer() *SVGLineRenderer {
	return &SVGLineRenderer{}
}

// Render produces a self-contained SVG document. An empty series renders a
// placeholder chart stating that no data is available.
func (r *SVGLineRenderer) Render(title, unit string, series []domain.SeriesPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		chartWidth, chartHeight, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<text x="%d" y="24" font-size="16" font-family="sans-serif" fill="#333333">%s</text>`,
		chartPadding, escape(title))

	if len(series) == 0 {
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="14" font-family="sans-serif" fill="#999999">No data available</text>`,
			chartWidth/2-60, chartHeight/2)
		b.WriteString("</svg>")
		return b.String()
	}

	minV, maxV := seriesBounds(series)
	// Flat series still needs a visible vertical span.
	if maxV == minV {
		maxV = minV + 1
	}

	plotWidth := float64(chartWidth - 2*chartPadding)
	plotHeight := float64(chartHeight - 2*chartPadding)

	// Axes.
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#cccccc"/>`,
		chartPadding, chartHeight-chartPadding, chartWidth-chartPadding, chartHeight-chartPadding)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#cccccc"/>`,
		chartPadding, chartPadding, chartPadding, chartHeight-chartPadding)

	// Min and max labels on the value axis.
	fmt.Fprintf(&b, `<text x="4" y="%d" font-size="11" font-family="sans-serif" fill="#666666">%.1f %s</text>`,
		chartPadding+4, maxV, escape(unit))
	fmt.Fprintf(&b, `<text x="4" y="%d" font-size="11" font-family="sans-serif" fill="#666666">%.1f %s</text>`,
		chartHeight-chartPadding, minV, escape(unit))

	points := make([]string, 0, len(series))
	step := 0.0
	if len(series) > 1 {
		step = plotWidth / float64(len(series)-1)
	}
	for i, p := range series {
		x := float64(chartPadding) + step*float64(i)
		if len(series) == 1 {
			x = float64(chartWidth) / 2
		}
		y := float64(chartHeight-chartPadding) - (p.Value-minV)/(maxV-minV)*plotHeight
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))

		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="10" font-family="sans-serif" fill="#666666" text-anchor="middle">%s</text>`,
			x, chartHeight-chartPadding+16, escape(p.Label))
	}

	fmt.Fprintf(&b, `<polyline fill="none" stroke="#2b7de9" stroke-width="2" points="%s"/>`,
		strings.Join(points, " "))

	for _, pt := range points {
		xy := strings.SplitN(pt, ",", 2)
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="3" fill="#2b7de9"/>`, xy[0], xy[1])
	}

	b.WriteString("</svg>")
	return b.String()
}

func seriesBounds(series []domain.SeriesPoint) (float64, float64) {
	minV, maxV := series[0].Value, series[0].Value
	for _, p := range series[1:] {
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	return minV, maxV
}

func escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
