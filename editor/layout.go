package editor

import (
	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/document"
	"github.com/iw2rmb/ved/navigate"
	"github.com/iw2rmb/ved/ruby"
)

type cellKind uint8

const (
	cellText    cellKind = iota // plain text
	cellBody                    // ruby body
	cellMarkup                  // revealed delimiter
	cellReading                 // ruby reading, view only
	cellBracket                 // reading bracket, view only
)

// cell is one grapheme cluster on screen. At is the caret offset in front of
// the cell: a rune offset into the paragraph's display text. View only cells
// carry the offset of the addressable text they follow.
type cell struct {
	Text  string
	Kind  cellKind
	Width int
	Runes int
	At    int
	Addr  bool
}

// visualLine is one screen row (horizontal) or column (vertical) of a
// paragraph.
type visualLine struct {
	Para  int
	Cells []cell
	Start int // caret offset at the line start
	End   int // caret offset at the line end
	Last  bool
}

type layout struct {
	lines     []visualLine
	paraFirst []int // index of each paragraph's first line
}

type layoutParams struct {
	Policy    decorate.AppearPolicy
	Direction navigate.WritingDirection
	Capacity  int // cells per line for horizontal, rows per column for vertical; <= 0 disables wrapping
	Brackets  [2]string
}

// caretSpan is a selection or caret in caret offsets.
type caretSpan struct {
	StartPara, StartOff int
	EndPara, EndOff     int
	Active              bool
}

func (s caretSpan) forParagraph(para, n int) decorate.Selection {
	r := document.Range{
		Start: document.Point{Path: document.Path{Para: s.StartPara}, Offset: s.StartOff},
		End:   document.Point{Path: document.Path{Para: s.EndPara}, Offset: s.EndOff},
	}
	if !s.Active {
		return decorate.Selection{}
	}
	return decorate.SelectionForParagraph(r, para, n)
}

// selects reports whether the caret offset off in paragraph para lies inside
// a non-empty selection.
func (s caretSpan) selects(para, off int) bool {
	if !s.Active || (s.StartPara == s.EndPara && s.StartOff == s.EndOff) {
		return false
	}
	if para < s.StartPara || para > s.EndPara {
		return false
	}
	if para == s.StartPara && off < s.StartOff {
		return false
	}
	if para == s.EndPara && off >= s.EndOff {
		return false
	}
	return true
}

func buildLayout(doc *document.Document, p layoutParams, sel caretSpan) layout {
	var l layout
	for i := 0; i < doc.ParagraphCount(); i++ {
		para, _ := doc.Paragraph(i)
		var cells []cell
		if doc.Mode() == document.ModeFlat {
			text := para.DisplayText()
			cells = flatCells(text, p, sel.forParagraph(i, len([]rune(text))))
		} else {
			cells = structuredCells(para, p)
		}
		l.paraFirst = append(l.paraFirst, len(l.lines))
		l.lines = append(l.lines, wrapCells(i, cells, p)...)
	}
	return l
}

// flatCells lays out raw markup decorated by the live policy.
func flatCells(text string, p layoutParams, sel decorate.Selection) []cell {
	decs := decorate.Decorate(p.Policy, text, ruby.Parse(text), sel)
	var out []cell
	at := 0
	for _, piece := range decorate.Pieces(text, decs) {
		switch piece.Kind {
		case decorate.PieceReading:
			out = appendReading(out, piece.Text, at, p.Brackets)
		default:
			kind := cellText
			switch piece.Kind {
			case decorate.PieceBody:
				kind = cellBody
			case decorate.PieceMarkup:
				kind = cellMarkup
			}
			out = appendText(out, piece.Text, piece.Raw.Start, kind)
			at = piece.Raw.End
		}
	}
	return out
}

// structuredCells lays out plain text and ruby nodes.
func structuredCells(para document.Paragraph, p layoutParams) []cell {
	var out []cell
	at := 0
	for _, n := range para.Nodes {
		switch n := n.(type) {
		case document.PlainText:
			out = appendText(out, n.Text, at, cellText)
			at += len([]rune(n.Text))
		case document.Ruby:
			out = appendText(out, n.Body, at, cellBody)
			at += len([]rune(n.Body))
			out = appendReading(out, n.Reading, at, p.Brackets)
		}
	}
	return out
}

func appendText(out []cell, text string, at int, kind cellKind) []cell {
	for _, c := range splitClusters(text) {
		out = append(out, cell{Text: displayCluster(c.Text), Kind: kind, Width: c.Width, Runes: c.Runes, At: at + c.Off, Addr: true})
	}
	return out
}

func appendReading(out []cell, reading string, at int, brackets [2]string) []cell {
	if brackets[0] != "" {
		out = append(out, cell{Text: brackets[0], Kind: cellBracket, Width: graphemeCellWidth(brackets[0]), At: at})
	}
	for _, c := range splitClusters(reading) {
		out = append(out, cell{Text: displayCluster(c.Text), Kind: cellReading, Width: c.Width, At: at})
	}
	if brackets[1] != "" {
		out = append(out, cell{Text: brackets[1], Kind: cellBracket, Width: graphemeCellWidth(brackets[1]), At: at})
	}
	return out
}

// wrapCells breaks a paragraph into visual lines. Horizontal lines hold at
// most Capacity cells of width; vertical columns hold at most Capacity
// clusters.
func wrapCells(para int, cells []cell, p layoutParams) []visualLine {
	measure := func(c cell) int {
		if p.Direction == navigate.Vertical {
			return 1
		}
		return c.Width
	}

	var lines []visualLine
	cur := visualLine{Para: para}
	used := 0
	at := 0
	for _, c := range cells {
		w := measure(c)
		if p.Capacity > 0 && used > 0 && used+w > p.Capacity {
			cur.End = c.At
			lines = append(lines, cur)
			cur = visualLine{Para: para, Start: c.At}
			used = 0
		}
		cur.Cells = append(cur.Cells, c)
		used += w
		at = c.At + c.Runes
	}
	cur.End = at
	cur.Last = true
	lines = append(lines, cur)
	return lines
}

// linesOf returns the index range [first, end) of paragraph para's lines.
func (l layout) linesOf(para int) (int, int) {
	if para < 0 || para >= len(l.paraFirst) {
		return 0, 0
	}
	end := len(l.lines)
	if para+1 < len(l.paraFirst) {
		end = l.paraFirst[para+1]
	}
	return l.paraFirst[para], end
}

// locate returns the line and slot holding the caret at (para, off). A slot
// equal to the line's cell count is past the last cell.
func (l layout) locate(para, off int) (line, slot int, ok bool) {
	first, end := l.linesOf(para)
	if first >= end {
		return 0, 0, false
	}
	for i := first; i < end; i++ {
		for s, c := range l.lines[i].Cells {
			if c.Addr && c.At == off {
				return i, s, true
			}
		}
	}
	last := end - 1
	return last, len(l.lines[last].Cells), true
}

// offsetAt returns the caret offset for slot in line, clamping slot.
func (l layout) offsetAt(line, slot int) (para, off int) {
	vl := l.lines[line]
	if slot < len(vl.Cells) {
		return vl.Para, vl.Cells[slot].At
	}
	if vl.Last || len(vl.Cells) == 0 {
		return vl.Para, vl.End
	}
	return vl.Para, vl.Cells[len(vl.Cells)-1].At
}
