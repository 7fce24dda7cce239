package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sitstand/internal/store"
)

// statsHistory is how many completed phases the chart shows.
const statsHistory = 12

type statsModel struct {
	store  *store.Store
	width  int
	height int

	totals  []store.PhaseTotal
	records []store.PhaseRecord

	chart barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		chart: barchart.New(40, 10),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.buildChart()
}

type statsDataMsg struct {
	totals  []store.PhaseTotal
	records []store.PhaseRecord
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		totals, err := m.store.PhaseTotals()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Stats error: %v", err), isError: true}
		}
		records, err := m.store.ListPhases(statsHistory)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Stats error: %v", err), isError: true}
		}
		return statsDataMsg{totals: totals, records: records}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	if msg, ok := msg.(statsDataMsg); ok {
		m.totals = msg.totals
		m.records = msg.records
		m.buildChart()
	}
	return m, nil
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if m.height > 30 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for i, r := range m.records {
		color := phaseColors[phaseSit]
		if r.Phase == phaseStand.String() {
			color = phaseColors[phaseStand]
		}
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%s%d", r.Phase[:2], i+1),
			Values: []barchart.BarValue{{
				Name:  r.Phase,
				Value: r.Actual.Minutes(),
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		})
	}
	if len(bars) == 0 {
		return
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	title := titleStyle.Render("Session")

	if len(m.records) == 0 {
		return lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			mutedStyle.Render("No phases completed yet"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		m.renderTotals(),
		"",
		m.chart.View(),
		mutedStyle.Render("minutes per phase, oldest first"),
	)
}

func (m statsModel) renderTotals() string {
	var rows []string
	for _, t := range m.totals {
		p := phaseSit
		if t.Phase == phaseStand.String() {
			p = phaseStand
		}
		dot := lipgloss.NewStyle().Foreground(phaseColors[p]).Render("●")
		rows = append(rows, fmt.Sprintf("%s %-6s %s  %s",
			dot, t.Phase, highlightStyle.Render(formatDuration(t.Total)),
			mutedStyle.Render(fmt.Sprintf("(%d)", t.Count)),
		))
	}
	return strings.Join(rows, "\n")
}
