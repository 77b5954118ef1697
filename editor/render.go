package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ved/navigate"
)

// columnWidth is the cell width of one vertical column.
const columnWidth = 2

func (m *Model) renderContent() string {
	if m.cfg.Direction == navigate.Vertical {
		return m.renderVertical()
	}
	return m.renderHorizontal()
}

func (m *Model) renderHorizontal() string {
	curLine, curSlot, ok := m.cursorLine()
	showCursor := ok && m.focused
	sp := m.selectionSpan()

	rows := make([]string, 0, len(m.lay.lines))
	for i, vl := range m.lay.lines {
		var sb strings.Builder
		for s, c := range vl.Cells {
			cursor := showCursor && i == curLine && s == curSlot
			sb.WriteString(m.renderCell(c, vl.Para, sp, cursor, c.Text))
		}
		if showCursor && i == curLine && curSlot >= len(vl.Cells) {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderVertical draws each visual line as a column read top to bottom.
// The first column is rightmost.
func (m *Model) renderVertical() string {
	curLine, curSlot, ok := m.cursorLine()
	showCursor := ok && m.focused
	sp := m.selectionSpan()

	first := m.colOffset
	last := first + m.visibleColumns()
	if last > len(m.lay.lines) {
		last = len(m.lay.lines)
	}

	height := m.height
	if height <= 0 {
		for i := first; i < last; i++ {
			if n := len(m.lay.lines[i].Cells) + 1; n > height {
				height = n
			}
		}
	}

	blank := strings.Repeat(" ", columnWidth)
	rows := make([]string, 0, height)
	for r := 0; r < height; r++ {
		var sb strings.Builder
		for i := last - 1; i >= first; i-- {
			vl := m.lay.lines[i]
			cursor := showCursor && i == curLine && r == curSlot
			switch {
			case r < len(vl.Cells):
				c := vl.Cells[r]
				sb.WriteString(m.renderCell(c, vl.Para, sp, cursor, padCell(c)))
			case cursor:
				sb.WriteString(m.cfg.Style.Cursor.Render(blank))
			default:
				sb.WriteString(blank)
			}
		}
		row := sb.String()
		if m.width > 0 {
			row = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderCell(c cell, para int, sp caretSpan, cursor bool, text string) string {
	st := m.cfg.Style.forKind(c.Kind)
	if c.Addr && sp.selects(para, c.At) {
		st = m.cfg.Style.Selection.Inherit(st)
	}
	if cursor {
		st = m.cfg.Style.Cursor.Inherit(st)
	}
	return st.Render(text)
}

// padCell fills a cluster out to the column width.
func padCell(c cell) string {
	if c.Width >= columnWidth {
		return c.Text
	}
	return c.Text + strings.Repeat(" ", columnWidth-c.Width)
}
