// Package chart renders the humidity sparkline, gauge and value with colors
// keyed to the moisture band of each reading.
package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/plantcare/internal/history"
	"github.com/luki/plantcare/internal/humidity"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// MoistureColor returns the color for a normalized percentage.
func MoistureColor(percent int) lipgloss.Color {
	switch humidity.Level(percent) {
	case "wet":
		return lipgloss.Color("39") // blue
	case "optimal":
		return lipgloss.Color("78") // soft green
	case "low":
		return lipgloss.Color("220") // yellow
	default:
		return lipgloss.Color("196") // red
	}
}

// RenderSparkline renders points on a fixed 0..100 scale, right aligned in
// width cells. A subtle pipe marks each minute boundary.
func RenderSparkline(points []history.Point, width int) string {
	if width <= 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	if len(points) == 0 {
		return dim.Render(strings.Repeat("╌", width))
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	var sb strings.Builder
	sb.WriteString(dim.Render(strings.Repeat("╌", width-len(points))))

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	for i, p := range points {
		if i > 0 && minuteTick(points[i-1], p) {
			sb.WriteString(tickStyle.Render("│"))
			continue
		}
		idx := p.Percent * 7 / 100
		if idx < 0 {
			idx = 0
		}
		if idx > 7 {
			idx = 7
		}
		style := lipgloss.NewStyle().Foreground(MoistureColor(p.Percent))
		sb.WriteString(style.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}

func minuteTick(prev, cur history.Point) bool {
	if prev.Time.IsZero() || cur.Time.IsZero() {
		return false
	}
	return !prev.Time.Truncate(time.Minute).Equal(cur.Time.Truncate(time.Minute))
}

// RenderTimeline renders HH:MM labels aligned with the minute ticks drawn by
// RenderSparkline for the same points and width.
func RenderTimeline(points []history.Point, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}
	padLen := width - len(points)

	line := []rune(strings.Repeat(" ", width))
	lastEnd := -1
	for i := 1; i < len(points); i++ {
		if !minuteTick(points[i-1], points[i]) {
			continue
		}
		label := points[i].Time.Format("15:04")
		start := padLen + i - 2
		if start < 0 {
			start = 0
		}
		end := start + len(label)
		if end > width || start <= lastEnd+1 {
			continue
		}
		copy(line[start:end], []rune(label))
		lastEnd = end
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Render(string(line))
}

// RenderGauge renders a horizontal 0..100 scale with the optimal band
// highlighted and a marker at percent. A negative percent draws no marker.
func RenderGauge(percent, width int) string {
	if width <= 0 {
		return ""
	}

	pos := func(v int) int {
		return (width - 1) * v / 100
	}
	lo, hi := pos(humidity.OptimalMin), pos(humidity.OptimalMax)
	cur := -1
	if percent >= 0 {
		cur = pos(min(percent, 100))
	}

	track := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	band := lipgloss.NewStyle().Foreground(lipgloss.Color("29"))

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == cur:
			style := lipgloss.NewStyle().Foreground(MoistureColor(percent)).Bold(true)
			sb.WriteString(style.Render("◆"))
		case i >= lo && i <= hi:
			sb.WriteString(band.Render("━"))
		default:
			sb.WriteString(track.Render("·"))
		}
	}
	return sb.String()
}

// RenderPercent renders a known percentage in its band color, or "--" dimmed
// when the value is unknown.
func RenderPercent(percent int, known bool) string {
	if !known {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("--")
	}
	return lipgloss.NewStyle().
		Foreground(MoistureColor(percent)).
		Bold(true).
		Render(fmt.Sprintf("%d", percent))
}
