package document

import (
	"strings"

	"github.com/google/uuid"
)

type Options struct {
	HistoryLimit int // default: 1000

	// ID identifies the document in change records and logs. A random UUID is
	// assigned when empty.
	ID string
}

type selectionState struct {
	active bool
	anchor Point
	end    Point
}

// Document owns the paragraph tree, the caret and selection, undo history,
// and a version counter bumped by every effective mutation.
type Document struct {
	id      string
	mode    Mode
	paras   []Paragraph
	version uint64

	cursor Point
	sel    selectionState

	opt  Options
	hist historyState

	batch         *changeBuilder
	lastChange    Change
	hasLastChange bool
}

// New builds a flat-mode document: one paragraph per line of text.
func New(text string, opt Options) *Document {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.ID == "" {
		opt.ID = uuid.NewString()
	}
	return &Document{
		id:    opt.ID,
		mode:  ModeFlat,
		paras: splitParagraphs(text),
		opt:   opt,
	}
}

func (d *Document) ID() string { return d.id }

func (d *Document) Mode() Mode { return d.mode }

func (d *Document) Version() uint64 { return d.version }

func (d *Document) ParagraphCount() int { return len(d.paras) }

// Paragraph returns a copy of paragraph i.
func (d *Document) Paragraph(i int) (Paragraph, bool) {
	if i < 0 || i >= len(d.paras) {
		return Paragraph{}, false
	}
	return d.paras[i].clone(), true
}

// Nodes returns a copy of paragraph i's nodes, or nil when i is out of range.
func (d *Document) Nodes(i int) []Node {
	p, ok := d.Paragraph(i)
	if !ok {
		return nil
	}
	return p.Nodes
}

// Text serializes the document to markup, one line per paragraph.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, p := range d.paras {
		if i > 0 {
			sb.WriteByte('\n')
		}
		s, _ := p.Markup()
		sb.WriteString(s)
	}
	return sb.String()
}

func (d *Document) Cursor() Point { return d.cursor }

func (d *Document) SetCursor(p Point) {
	next := d.canonical(p)
	if next == d.cursor && !d.sel.active {
		return
	}
	d.cursor = next
	d.sel = selectionState{}
	d.version++
}

func (d *Document) Selection() (Range, bool) {
	if !d.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: d.sel.anchor, End: d.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection with its direction preserved: Start is
// the anchor and End follows the caret.
func (d *Document) SelectionRaw() (Range, bool) {
	if !d.sel.active || d.sel.anchor == d.sel.end {
		return Range{}, false
	}
	return Range{Start: d.sel.anchor, End: d.sel.end}, true
}

// SetSelection selects r and puts the caret at r.End.
func (d *Document) SetSelection(r Range) {
	anchor := d.canonical(r.Start)
	end := d.canonical(r.End)
	next := selectionState{active: true, anchor: anchor, end: end}
	if anchor == end {
		next = selectionState{}
	}
	if selectionStateEqual(d.sel, next) && d.cursor == end {
		return
	}
	d.sel = next
	d.cursor = end
	d.version++
}

func (d *Document) ClearSelection() {
	if !d.sel.active {
		return
	}
	d.sel = selectionState{}
	d.version++
}

// MoveTo puts the caret at p. With extend, the selection grows from its
// current anchor (or the old caret) to p.
func (d *Document) MoveTo(p Point, extend bool) {
	d.moveCaret(d.canonical(p), extend)
}

func (d *Document) moveCaret(next Point, extend bool) {
	prevCursor := d.cursor
	prevSel := d.sel

	nextSel := selectionState{}
	if extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && selectionStateEqual(prevSel, nextSel) {
		return
	}
	d.cursor = next
	d.sel = nextSel
	d.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

// clampPoint bounds p to an existing paragraph, node and offset.
func (d *Document) clampPoint(p Point) Point {
	if len(d.paras) == 0 {
		return Point{}
	}
	para := clampInt(p.Path.Para, 0, len(d.paras)-1)
	nodes := d.paras[para].Nodes
	if len(nodes) == 0 {
		return Point{Path: Path{Para: para}}
	}
	node := clampInt(p.Path.Node, 0, len(nodes)-1)
	off := clampInt(p.Offset, 0, displayLen(nodes[node]))
	return Point{Path: Path{Para: para, Node: node}, Offset: off}
}

// canonical clamps p and resolves node-boundary ambiguity the way Locate does.
func (d *Document) canonical(p Point) Point {
	p = d.clampPoint(p)
	if len(d.paras) == 0 {
		return p
	}
	para := d.paras[p.Path.Para]
	return para.Locate(p.Path.Para, para.DisplayOffset(p))
}

// displayPos returns the paragraph index and display offset of p.
func (d *Document) displayPos(p Point) (int, int) {
	p = d.clampPoint(p)
	if len(d.paras) == 0 {
		return 0, 0
	}
	return p.Path.Para, d.paras[p.Path.Para].DisplayOffset(p)
}

func (d *Document) locate(para, off int) Point {
	if para < 0 || para >= len(d.paras) {
		return d.clampPoint(Point{Path: Path{Para: para}})
	}
	return d.paras[para].Locate(para, off)
}

func (d *Document) clampSelection() {
	d.cursor = d.canonical(d.cursor)
	if !d.sel.active {
		return
	}
	anchor := d.canonical(d.sel.anchor)
	end := d.canonical(d.sel.end)
	if anchor == end {
		d.sel = selectionState{}
		return
	}
	d.sel = selectionState{active: true, anchor: anchor, end: end}
}

func splitParagraphs(text string) []Paragraph {
	lines := strings.Split(text, "\n")
	out := make([]Paragraph, 0, len(lines))
	for _, l := range lines {
		out = append(out, Paragraph{Nodes: []Node{PlainText{Text: l}}})
	}
	return out
}

func cloneParagraphs(in []Paragraph) []Paragraph {
	out := make([]Paragraph, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}
