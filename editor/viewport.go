package editor

import "github.com/iw2rmb/ved/navigate"

// visibleColumns is how many two-cell columns fit the width.
func (m *Model) visibleColumns() int {
	n := m.width / 2
	if n < 1 {
		n = 1
	}
	return n
}

// followCursor scrolls so the caret's visual line is on screen: rows for
// horizontal text, columns for vertical text.
func (m *Model) followCursor() {
	line, _, ok := m.cursorLine()
	if !ok {
		return
	}

	if m.cfg.Direction == navigate.Vertical {
		vis := m.visibleColumns()
		switch {
		case line < m.colOffset:
			m.colOffset = line
		case line >= m.colOffset+vis:
			m.colOffset = line - vis + 1
		}
		// Content depends on colOffset.
		m.viewport.SetContent(m.renderContent())
		return
	}

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
		return
	}
	if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}
