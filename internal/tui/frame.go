package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderFrame draws a thick border of exactly width x height cells with
// title centered in the top edge and hint centered in the bottom edge.
func renderFrame(width, height int, title, hint, body string) string {
	if width < 2 || height < 2 {
		return ""
	}
	b := lipgloss.ThickBorder()
	innerW := width - 2
	innerH := height - 2

	top := edge(b.TopLeft, b.Top, b.TopRight, frameTitleStyle.Render(title), innerW)
	bottom := edge(b.BottomLeft, b.Bottom, b.BottomRight, frameHintStyle.Render(hint), innerW)

	placed := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body)
	lines := strings.Split(placed, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	left := borderStyle.Render(b.Left)
	right := borderStyle.Render(b.Right)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range lines {
		line = ansi.Truncate(line, innerW, "")
		if pad := innerW - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, left+line+right)
	}
	for len(rows) < height-1 {
		rows = append(rows, left+strings.Repeat(" ", innerW)+right)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// edge builds a horizontal border line with label centered in it. The label
// is dropped when it does not fit.
func edge(leftCorner, fill, rightCorner, label string, innerW int) string {
	labelW := ansi.StringWidth(label)
	if labelW > innerW {
		label = ""
		labelW = 0
	}
	gap := innerW - labelW
	l := gap / 2
	r := gap - l
	return borderStyle.Render(leftCorner+strings.Repeat(fill, l)) +
		label +
		borderStyle.Render(strings.Repeat(fill, r)+rightCorner)
}
