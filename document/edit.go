package document

import (
	"errors"
	"strings"

	"github.com/iw2rmb/ved/internal/grapheme"
	"github.com/iw2rmb/ved/ruby"
)

var (
	// ErrRubyBody reports text that cannot go into a ruby body because its
	// markup would no longer parse back to the same ruby.
	ErrRubyBody = errors.New("text not allowed in ruby body")

	// ErrRubyMarkup reports a structured edit after which the paragraph's
	// markup would parse to different rubies.
	ErrRubyMarkup = errors.New("edit changes how rubies parse")
)

// InsertText inserts s at the cursor, or replaces the active selection.
// Newlines split the paragraph.
func (d *Document) InsertText(s string) error {
	if s == "" {
		return d.DeleteSelection()
	}

	return d.Batch(func() error {
		if r, ok := d.Selection(); ok {
			if err := d.deleteRange(r); err != nil {
				return err
			}
		}
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if i > 0 {
				if err := d.splitAtCursor(); err != nil {
					return err
				}
			}
			if err := d.insertInline(line); err != nil {
				return err
			}
		}
		return nil
	})
}

// InsertNewline splits the current paragraph at the cursor.
func (d *Document) InsertNewline() error {
	return d.InsertText("\n")
}

// DeleteBackward applies backspace semantics. At the start of a paragraph
// it joins the paragraph onto the previous one.
func (d *Document) DeleteBackward() error {
	if _, ok := d.Selection(); ok {
		return d.DeleteSelection()
	}

	para, off := d.displayPos(d.cursor)
	if off > 0 {
		text := d.paras[para].DisplayText()
		start := grapheme.Prev(text, off)
		return d.deleteRange(Range{Start: d.locate(para, start), End: d.locate(para, off)})
	}
	if para == 0 {
		return nil
	}
	prevLen := d.paras[para-1].DisplayLen()
	return d.deleteRange(Range{Start: d.locate(para-1, prevLen), End: d.locate(para, 0)})
}

// DeleteForward applies delete-key semantics. At the end of a paragraph it
// joins the next paragraph onto this one.
func (d *Document) DeleteForward() error {
	if _, ok := d.Selection(); ok {
		return d.DeleteSelection()
	}

	para, off := d.displayPos(d.cursor)
	text := d.paras[para].DisplayText()
	if off < runeLen(text) {
		end := grapheme.Next(text, off)
		return d.deleteRange(Range{Start: d.locate(para, off), End: d.locate(para, end)})
	}
	if para == len(d.paras)-1 {
		return nil
	}
	return d.deleteRange(Range{Start: d.locate(para, off), End: d.locate(para+1, 0)})
}

// DeleteSelection removes the selected text and collapses the cursor to the
// selection start.
func (d *Document) DeleteSelection() error {
	r, ok := d.Selection()
	if !ok {
		return nil
	}
	return d.deleteRange(r)
}

// deleteRange removes display text in r, joining paragraphs when r spans
// several, and leaves the cursor at r.Start.
func (d *Document) deleteRange(r Range) error {
	return d.Batch(func() error {
		p1, o1 := d.displayPos(r.Start)
		p2, o2 := d.displayPos(r.End)
		if p1 > p2 || (p1 == p2 && o1 > o2) {
			p1, o1, p2, o2 = p2, o2, p1, o1
		}

		first := d.paras[p1].Nodes
		var merged []Node
		if p1 == p2 {
			merged = deleteDisplayRange(first, o1, o2)
		} else {
			left := deleteDisplayRange(first, o1, d.paras[p1].DisplayLen())
			right := deleteDisplayRange(d.paras[p2].Nodes, 0, o2)
			merged = append(append([]Node(nil), left...), right...)
		}
		nodes, err := normalizeNodes(d.mode, merged)
		if err != nil {
			return err
		}
		if err := d.checkMarkup(nodes); err != nil {
			return err
		}

		next := make([]Paragraph, 0, len(d.paras)-(p2-p1))
		next = append(next, d.paras[:p1]...)
		next = append(next, Paragraph{Nodes: nodes})
		next = append(next, d.paras[p2+1:]...)
		d.paras = next
		d.cursor = d.locate(p1, o1)
		d.sel = selectionState{}
		return nil
	})
}

// insertInline inserts text without newlines at the cursor.
func (d *Document) insertInline(s string) error {
	if s == "" {
		return nil
	}
	d.cursor = d.canonical(d.cursor)
	para, off := d.displayPos(d.cursor)
	nodes := append([]Node(nil), d.paras[para].Nodes...)
	i := d.cursor.Path.Node
	k := d.cursor.Offset

	switch n := nodes[i].(type) {
	case PlainText:
		n.Text = sliceRunes(n.Text, 0, k) + s + sliceRunes(n.Text, k, runeLen(n.Text))
		nodes[i] = n
	case Ruby:
		body := sliceRunes(n.Body, 0, k) + s + sliceRunes(n.Body, k, runeLen(n.Body))
		if !ruby.Reparses(body, n.Reading) {
			return ErrRubyBody
		}
		n.Body = body
		nodes[i] = n
	default:
		return unknownNode(n)
	}

	next, err := normalizeNodes(d.mode, nodes)
	if err != nil {
		return err
	}
	if err := d.checkMarkup(next); err != nil {
		return err
	}
	d.paras[para] = Paragraph{Nodes: next}
	d.cursor = d.locate(para, off+runeLen(s))
	d.sel = selectionState{}
	return nil
}

// splitAtCursor breaks the cursor's paragraph in two. A cut inside a ruby
// body moves to just after the ruby.
func (d *Document) splitAtCursor() error {
	para, off := d.displayPos(d.cursor)
	left, right := splitNodes(d.paras[para].Nodes, off)
	ln, _ := normalizeNodes(d.mode, left)
	rn, _ := normalizeNodes(d.mode, right)
	if err := d.checkMarkup(ln); err != nil {
		return err
	}
	if err := d.checkMarkup(rn); err != nil {
		return err
	}

	next := make([]Paragraph, 0, len(d.paras)+1)
	next = append(next, d.paras[:para]...)
	next = append(next, Paragraph{Nodes: ln}, Paragraph{Nodes: rn})
	next = append(next, d.paras[para+1:]...)
	d.paras = next
	d.cursor = d.locate(para+1, 0)
	d.sel = selectionState{}
	return nil
}

// checkMarkup refuses structured paragraphs whose markup would not parse
// back to the same nodes. Flat paragraphs are raw markup and always pass.
func (d *Document) checkMarkup(nodes []Node) error {
	if d.mode != ModeStructured || roundTrips(nodes) {
		return nil
	}
	return ErrRubyMarkup
}
