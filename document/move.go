package document

import "github.com/iw2rmb/ved/internal/grapheme"

type MoveUnit int

const (
	MoveCharacter MoveUnit = iota // one grapheme cluster
	MoveWord
	MoveParagraph
	MoveDoc
)

type MoveDir int

const (
	DirBackward MoveDir = iota
	DirForward
	DirStart // paragraph start (or doc start for MoveDoc)
	DirEnd   // paragraph end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (d *Document) Move(m Move) {
	d.moveCaret(d.moveCursor(d.cursor, m), m.Extend)
}

func (d *Document) moveCursor(p Point, m Move) Point {
	para, off := d.displayPos(p)
	switch m.Unit {
	case MoveCharacter:
		para, off = d.moveCharacter(para, off, m.Dir)
	case MoveWord:
		para, off = d.moveWord(para, off, m.Dir)
	case MoveParagraph:
		para, off = d.moveParagraph(para, off, m.Dir)
	case MoveDoc:
		para, off = d.moveDoc(para, off, m.Dir)
	default:
		return p
	}
	return d.locate(para, off)
}

func (d *Document) moveCharacter(para, off int, dir MoveDir) (int, int) {
	text := d.paras[para].DisplayText()
	n := runeLen(text)
	last := len(d.paras) - 1

	switch dir {
	case DirBackward:
		if off > 0 {
			return para, grapheme.Prev(text, off)
		}
		if para == 0 {
			return para, off
		}
		return para - 1, d.paras[para-1].DisplayLen()
	case DirForward:
		if off < n {
			return para, grapheme.Next(text, off)
		}
		if para == last {
			return para, off
		}
		return para + 1, 0
	case DirStart:
		return para, 0
	case DirEnd:
		return para, n
	default:
		return para, off
	}
}

// moveWord stays inside the paragraph: a paragraph edge is a hard boundary.
func (d *Document) moveWord(para, off int, dir MoveDir) (int, int) {
	text := d.paras[para].DisplayText()
	switch dir {
	case DirBackward:
		return para, grapheme.PrevWord(text, off)
	case DirForward:
		return para, grapheme.NextWord(text, off)
	case DirStart:
		return para, 0
	case DirEnd:
		return para, runeLen(text)
	default:
		return para, off
	}
}

// moveParagraph keeps the display offset, clamped to the target paragraph.
func (d *Document) moveParagraph(para, off int, dir MoveDir) (int, int) {
	switch dir {
	case DirBackward:
		if para == 0 {
			return para, off
		}
		return para - 1, minInt(off, d.paras[para-1].DisplayLen())
	case DirForward:
		if para == len(d.paras)-1 {
			return para, off
		}
		return para + 1, minInt(off, d.paras[para+1].DisplayLen())
	case DirStart:
		return para, 0
	case DirEnd:
		return para, d.paras[para].DisplayLen()
	default:
		return para, off
	}
}

func (d *Document) moveDoc(para, off int, dir MoveDir) (int, int) {
	last := len(d.paras) - 1
	switch dir {
	case DirStart, DirBackward:
		return 0, 0
	case DirEnd, DirForward:
		return last, d.paras[last].DisplayLen()
	default:
		return para, off
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
