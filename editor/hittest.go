package editor

import (
	"github.com/iw2rmb/ved/document"
	"github.com/iw2rmb/ved/navigate"
)

// screenToDocPoint maps viewport-local mouse coordinates to a caret point.
//
// Coordinates are terminal cells relative to the visible content: (0,0) is
// its top-left cell. Horizontal text reads a row per visual line; vertical
// text reads a two-cell column per visual line, right to left, with y as the
// slot. Out of range coordinates clamp to the nearest line and slot. A click
// on a reading lands at the end of its body.
func (m *Model) screenToDocPoint(x, y int) (document.Point, bool) {
	if m.doc == nil || len(m.lay.lines) == 0 {
		return document.Point{}, false
	}

	var line, slot int
	if m.cfg.Direction == navigate.Vertical {
		line, slot = m.verticalHit(x, y)
	} else {
		line = clampInt(m.viewport.YOffset+y, 0, len(m.lay.lines)-1)
		slot = slotAtCell(m.lay.lines[line], x)
	}

	para, off := m.lay.offsetAt(line, slot)
	return m.doc.PointFromDisplayOffset(para, off, document.ConvertPolicy{ClampMode: document.OffsetClamp})
}

// verticalHit returns the visual line and slot under (x, y) in the
// right-aligned column block drawn by renderVertical.
func (m *Model) verticalHit(x, y int) (line, slot int) {
	first := m.colOffset
	last := first + m.visibleColumns()
	if last > len(m.lay.lines) {
		last = len(m.lay.lines)
	}
	if first >= last {
		first = clampInt(first, 0, len(m.lay.lines)-1)
		last = first + 1
	}

	width := m.width
	if width <= 0 {
		width = (last - first) * columnWidth
	}
	// Columns count from the right edge.
	k := 0
	if x < width {
		k = (width - 1 - x) / columnWidth
	}
	line = clampInt(first+k, first, last-1)
	slot = clampInt(y, 0, len(m.lay.lines[line].Cells))
	return line, slot
}

// slotAtCell returns the slot of the cell covering cell column x, or the
// slot past the last cell.
func slotAtCell(vl visualLine, x int) int {
	if x <= 0 {
		return 0
	}
	at := 0
	for s, c := range vl.Cells {
		if x < at+c.Width {
			return s
		}
		at += c.Width
	}
	return len(vl.Cells)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
