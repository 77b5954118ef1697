// Package transform switches a document between flat markup and structured
// ruby nodes.
//
// Both directions build every new paragraph before touching the tree, then
// swap the results in as one batch. A failure leaves the tree unchanged.
package transform

import (
	"fmt"

	"github.com/iw2rmb/ved/bimap"
	"github.com/iw2rmb/ved/document"
)

// Tree is the part of a document the transform needs.
type Tree interface {
	Mode() document.Mode
	SetMode(m document.Mode) error
	ParagraphCount() int
	Nodes(i int) []document.Node
	ReplaceNodes(i int, nodes []document.Node) error
	Batch(fn func() error) error
}

// Caret is implemented by trees that carry a cursor and selection. The
// transform keeps them on the same displayed character.
type Caret interface {
	Cursor() document.Point
	SelectionRaw() (document.Range, bool)
	SetCursor(p document.Point)
	SetSelection(r document.Range)
}

// FormatParagraph parses raw markup into nodes: plain runs become PlainText,
// matches become Ruby.
func FormatParagraph(text string) []document.Node {
	return document.ParseMarkup(text)
}

// UnformatParagraph serializes nodes back to raw markup.
func UnformatParagraph(nodes []document.Node) (string, error) {
	return document.Paragraph{Nodes: nodes}.Markup()
}

// FormatBuffer converts every flat paragraph of t into ruby nodes. It does
// nothing when t is already structured.
func FormatBuffer(t Tree) error {
	if t.Mode() == document.ModeStructured {
		return nil
	}

	n := t.ParagraphCount()
	raws := make([]string, n)
	built := make([][]document.Node, n)
	for i := 0; i < n; i++ {
		raw, err := UnformatParagraph(t.Nodes(i))
		if err != nil {
			return fmt.Errorf("format paragraph %d: %w", i, err)
		}
		raws[i] = raw
		built[i] = FormatParagraph(raw)
	}

	return t.Batch(func() error {
		caret := captureCaret(t)
		if err := t.SetMode(document.ModeStructured); err != nil {
			return err
		}
		for i, nodes := range built {
			if err := t.ReplaceNodes(i, nodes); err != nil {
				return fmt.Errorf("format paragraph %d: %w", i, err)
			}
		}
		caret.restore(t, func(p document.Point) document.Point {
			para := document.Paragraph{Nodes: t.Nodes(p.Path.Para)}
			return PointToStructured(p, raws[p.Path.Para], para)
		})
		return nil
	})
}

// UnformatBuffer converts every structured paragraph of t back into a
// single raw markup leaf. It does nothing when t is already flat.
func UnformatBuffer(t Tree) error {
	if t.Mode() == document.ModeFlat {
		return nil
	}

	n := t.ParagraphCount()
	raws := make([]string, n)
	paras := make([]document.Paragraph, n)
	for i := 0; i < n; i++ {
		nodes := t.Nodes(i)
		raw, err := UnformatParagraph(nodes)
		if err != nil {
			return fmt.Errorf("unformat paragraph %d: %w", i, err)
		}
		raws[i] = raw
		paras[i] = document.Paragraph{Nodes: nodes}
	}

	return t.Batch(func() error {
		caret := captureCaret(t)
		for i, raw := range raws {
			if err := t.ReplaceNodes(i, []document.Node{document.PlainText{Text: raw}}); err != nil {
				return fmt.Errorf("unformat paragraph %d: %w", i, err)
			}
		}
		if err := t.SetMode(document.ModeFlat); err != nil {
			return err
		}
		caret.restore(t, func(p document.Point) document.Point {
			return PointToFlat(p, paras[p.Path.Para])
		})
		return nil
	})
}

// PointToStructured maps a flat-mode point, whose offset indexes raw, onto
// the structured paragraph built from raw.
func PointToStructured(p document.Point, raw string, para document.Paragraph) document.Point {
	bm := bimap.BuildFromText(raw, p.Path.Para)
	off := p.Offset
	if off > bm.PlainLen() {
		off = bm.PlainLen()
	}
	if off < 0 {
		off = 0
	}
	rich, _ := bm.ToRich(bimap.PlainPos{Offset: off})
	return para.Locate(p.Path.Para, rich.Offset)
}

// PointToFlat maps a structured-mode point in para onto the raw markup of
// para.
//
// A point in plain text right after a ruby stays after the ruby's closing
// delimiter rather than moving in front of its reading.
func PointToFlat(p document.Point, para document.Paragraph) document.Point {
	raw, _ := para.Markup()
	bm := bimap.BuildFromText(raw, p.Path.Para)
	plain, _ := bm.ToPlain(bimap.RichPos{Paragraph: p.Path.Para, Offset: para.DisplayOffset(p)})

	off := plain.Offset
	if start, ok := plainNodeRawStart(para, p.Path.Node); ok && off < start {
		off = start
	}
	return document.Point{Path: document.Path{Para: p.Path.Para}, Offset: off}
}

// plainNodeRawStart returns the raw offset at which node i begins, when node
// i is plain text.
func plainNodeRawStart(para document.Paragraph, i int) (int, bool) {
	if i < 0 || i >= len(para.Nodes) {
		return 0, false
	}
	if _, ok := para.Nodes[i].(document.PlainText); !ok {
		return 0, false
	}
	prefix, err := UnformatParagraph(para.Nodes[:i])
	if err != nil {
		return 0, false
	}
	return len([]rune(prefix)), true
}

type caretState struct {
	ok     bool
	cursor document.Point
	sel    document.Range
	hasSel bool
}

func captureCaret(t Tree) caretState {
	c, ok := t.(Caret)
	if !ok {
		return caretState{}
	}
	sel, hasSel := c.SelectionRaw()
	return caretState{ok: true, cursor: c.Cursor(), sel: sel, hasSel: hasSel}
}

func (s caretState) restore(t Tree, remap func(document.Point) document.Point) {
	if !s.ok {
		return
	}
	c := t.(Caret)
	if s.hasSel {
		c.SetSelection(document.Range{Start: remap(s.sel.Start), End: remap(s.sel.End)})
		return
	}
	c.SetCursor(remap(s.cursor))
}
