package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/plantcare/internal/chart"
	"github.com/luki/plantcare/internal/humidity"
)

const optimalHint = "The optimal humidity level for your plant is generally between 50% to 70%."

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("22")
	colorTitleFg  = lipgloss.Color("120")
	colorBorder   = lipgloss.Color("29")
	colorAccent   = lipgloss.Color("35")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorButtonFg = lipgloss.Color("255")
	colorDisabled = lipgloss.Color("238")
)

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := m.width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	sections := []string{
		m.renderTitleBar(contentWidth),
		m.renderHumidityPanel(contentWidth),
		m.renderAction(contentWidth),
		lipgloss.NewStyle().
			Foreground(colorDim).
			Width(contentWidth).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render(optimalHint),
		m.renderFooter(contentWidth),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.height > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > m.height {
			content = strings.Join(lines[:m.height], "\n")
		}
	}
	return content
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("PLANT CARE")

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	statusParts := []string{
		dimS.Render(fmt.Sprintf("up %s", fmtDuration(time.Since(m.startTime)))),
	}
	if m.known {
		statusParts = append(statusParts, dimS.Render(m.reading.Time.Format("15:04:05")))
	}
	if m.opts.Source != "" {
		statusParts = append(statusParts, dimS.Render(m.opts.Source))
	}

	sep := dimS.Render(" │ ")
	right := strings.Join(statusParts, sep)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHumidityPanel(totalWidth int) string {
	innerWidth := totalWidth - 4
	chartWidth := innerWidth - 28
	if chartWidth < 15 {
		chartWidth = 15
	}
	if chartWidth > 120 {
		chartWidth = 120
	}

	labelS := lipgloss.NewStyle().Foreground(colorLabel)
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	headline := labelS.Render("Humidity Level: ") +
		chart.RenderPercent(m.reading.Percent, m.known) +
		labelS.Render("%")
	if m.known {
		level := humidity.Level(m.reading.Percent)
		headline += "  " + lipgloss.NewStyle().
			Foreground(chart.MoistureColor(m.reading.Percent)).
			Render(level)
	}

	marker := -1
	if m.known {
		marker = m.reading.Percent
	}
	gauge := dimS.Render("0 ") + chart.RenderGauge(marker, chartWidth) + dimS.Render(" 100")

	rows := []string{headline, "", gauge}

	if m.history.Len() > 0 {
		pts := m.history.LastN(chartWidth)
		frameL := lipgloss.NewStyle().Foreground(colorBorder).Render("▕")
		frameR := lipgloss.NewStyle().Foreground(colorBorder).Render("▏")
		spark := frameL + chart.RenderSparkline(pts, chartWidth) + frameR

		stats := dimS.Render(" avg") + valS.Render(fmt.Sprintf("%5.1f", m.history.Avg())) +
			dimS.Render(" lo") + valS.Render(fmt.Sprintf("%4d", m.history.Min)) +
			dimS.Render(" pk") + valS.Render(fmt.Sprintf("%4d", m.history.Peak))

		rows = append(rows, "", spark+stats)

		timeline := chart.RenderTimeline(pts, chartWidth)
		if strings.TrimSpace(timeline) != "" {
			rows = append(rows, " "+timeline)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderAction(width int) string {
	button := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 3)

	var rows []string
	if m.watering {
		rows = append(rows,
			button.
				Background(colorDisabled).
				Foreground(colorDim).
				Render(m.spinner.View()+" Water Plant"),
			lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				Render("Watering in Progress..."),
		)
	} else {
		rows = append(rows,
			button.
				Background(colorBorder).
				Foreground(colorButtonFg).
				Render("Water Plant"),
			"",
		)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 0, 0, 0).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	keyS := lipgloss.NewStyle().Foreground(colorLabel)

	keys := dimS.Render("w/enter") + keyS.Render(":water") +
		dimS.Render("  q") + keyS.Render(":quit")

	legend := ""
	for _, band := range []struct {
		percent int
		name    string
	}{{10, "dry"}, {40, "low"}, {60, "optimal"}, {90, "wet"}} {
		legend += lipgloss.NewStyle().Foreground(chart.MoistureColor(band.percent)).Render("██") +
			dimS.Render(" "+band.name+" ")
	}

	gap := width - lipgloss.Width(legend) - lipgloss.Width(keys) - 4
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(legend + strings.Repeat(" ", gap) + keys)
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
