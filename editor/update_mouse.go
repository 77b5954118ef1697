package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ved/navigate"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		if m.cfg.Direction == navigate.Vertical {
			m.scrollColumns(msg.Button)
		} else {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	if !m.focused || m.doc == nil {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		m.settlePending()
		p, ok := m.screenToDocPoint(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		// Shift extends from the current selection anchor.
		m.doc.MoveTo(p, msg.Shift)
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		if p, ok := m.screenToDocPoint(x, y); ok {
			m.doc.MoveTo(p, true)
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

// scrollColumns shifts the visible vertical columns. Wheel down reads on,
// which moves left.
func (m *Model) scrollColumns(b tea.MouseButton) {
	next := m.colOffset
	switch b { //nolint:exhaustive
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
		next++
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
		next--
	}
	next = clampInt(next, 0, len(m.lay.lines)-m.visibleColumns())
	if next == m.colOffset {
		return
	}
	m.colOffset = next
	m.viewport.SetContent(m.renderContent())
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.width > 0 {
		x = clampInt(x, 0, m.width-1)
	}
	if m.height > 0 {
		y = clampInt(y, 0, m.height-1)
	}
	return x, y
}
