package document

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/ved/ruby"
)

// Paragraph is an ordered sequence of inline nodes.
type Paragraph struct {
	Nodes []Node
}

func (p Paragraph) clone() Paragraph {
	return Paragraph{Nodes: append([]Node(nil), p.Nodes...)}
}

// DisplayText concatenates the displayed text of every node.
func (p Paragraph) DisplayText() string {
	var sb strings.Builder
	for _, n := range p.Nodes {
		s, _ := DisplayText(n)
		sb.WriteString(s)
	}
	return sb.String()
}

func (p Paragraph) DisplayLen() int {
	total := 0
	for _, n := range p.Nodes {
		total += displayLen(n)
	}
	return total
}

// Markup serializes the paragraph back to raw markup: plain text verbatim,
// rubies as |body(reading).
func (p Paragraph) Markup() (string, error) {
	var sb strings.Builder
	for i, n := range p.Nodes {
		switch n := n.(type) {
		case PlainText:
			sb.WriteString(n.Text)
		case Ruby:
			sb.WriteString(ruby.Markup(n.Body, n.Reading))
		default:
			return "", fmt.Errorf("node %d: %w", i, unknownNode(n))
		}
	}
	return sb.String(), nil
}

// nodeStart returns the display offset at which node i begins.
func (p Paragraph) nodeStart(i int) int {
	off := 0
	for j := 0; j < i && j < len(p.Nodes); j++ {
		off += displayLen(p.Nodes[j])
	}
	return off
}

// DisplayOffset converts a point inside this paragraph to a display offset.
// The node index and offset are clamped.
func (p Paragraph) DisplayOffset(pt Point) int {
	if len(p.Nodes) == 0 {
		return 0
	}
	i := clampInt(pt.Path.Node, 0, len(p.Nodes)-1)
	return p.nodeStart(i) + clampInt(pt.Offset, 0, displayLen(p.Nodes[i]))
}

// Locate converts a display offset to a point in paragraph para.
//
// At a boundary between two nodes the plain text side wins, so typing next to
// a ruby extends the surrounding text rather than the ruby body.
func (p Paragraph) Locate(para, off int) Point {
	if len(p.Nodes) == 0 {
		return Point{Path: Path{Para: para}}
	}
	off = clampInt(off, 0, p.DisplayLen())

	best := -1
	bestOff := 0
	start := 0
	for i, n := range p.Nodes {
		end := start + displayLen(n)
		if off >= start && off <= end {
			if best < 0 {
				best, bestOff = i, off-start
			}
			if _, plain := n.(PlainText); plain {
				best, bestOff = i, off-start
				break
			}
		}
		if start > off {
			break
		}
		start = end
	}
	if best < 0 {
		last := len(p.Nodes) - 1
		return Point{Path: Path{Para: para, Node: last}, Offset: displayLen(p.Nodes[last])}
	}
	return Point{Path: Path{Para: para, Node: best}, Offset: bestOff}
}

// normalizeNodes returns the canonical node sequence for mode.
//
// Flat: exactly one PlainText. Structured: PlainText (Ruby PlainText)*, with
// adjacent plain text merged and empty plain text kept only around rubies.
func normalizeNodes(mode Mode, nodes []Node) ([]Node, error) {
	var sb strings.Builder
	out := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		switch n := n.(type) {
		case PlainText:
			sb.WriteString(n.Text)
		case Ruby:
			if mode == ModeFlat {
				return nil, fmt.Errorf("node %d: %w: ruby in %s mode", i, ErrModeMismatch, mode)
			}
			out = append(out, PlainText{Text: sb.String()}, n)
			sb.Reset()
		default:
			return nil, fmt.Errorf("node %d: %w", i, unknownNode(n))
		}
	}
	out = append(out, PlainText{Text: sb.String()})
	return out, nil
}

// deleteDisplayRange removes display offsets [start, end) from nodes. A ruby
// whose whole non-empty body is removed disappears with its reading.
func deleteDisplayRange(nodes []Node, start, end int) []Node {
	if end <= start {
		return nodes
	}
	out := make([]Node, 0, len(nodes))
	at := 0
	for _, n := range nodes {
		text, err := DisplayText(n)
		if err != nil {
			out = append(out, n)
			continue
		}
		l := runeLen(text)
		ns, ne := at, at+l
		at = ne

		cutStart := clampInt(start, ns, ne)
		cutEnd := clampInt(end, ns, ne)
		if cutStart >= cutEnd {
			out = append(out, n)
			continue
		}
		if _, isRuby := n.(Ruby); isRuby && cutStart == ns && cutEnd == ne {
			continue
		}
		kept := sliceRunes(text, 0, cutStart-ns) + sliceRunes(text, cutEnd-ns, l)
		out = append(out, withDisplayText(n, kept))
	}
	return out
}

// splitNodes cuts nodes at display offset off. A cut strictly inside a ruby
// body moves to just after that ruby: a reading is never split.
func splitNodes(nodes []Node, off int) (left, right []Node) {
	at := 0
	for i, n := range nodes {
		text, _ := DisplayText(n)
		l := runeLen(text)
		if off > at+l || (off == at+l && i < len(nodes)-1) {
			left = append(left, n)
			at += l
			continue
		}
		k := off - at
		switch n := n.(type) {
		case Ruby:
			if k == 0 {
				right = append(right, n)
			} else {
				left = append(left, n)
			}
		default:
			left = append(left, withDisplayText(n, sliceRunes(text, 0, k)))
			right = append(right, withDisplayText(n, sliceRunes(text, k, l)))
		}
		right = append(right, nodes[i+1:]...)
		return left, right
	}
	return left, right
}

// ParseMarkup parses raw markup into structured nodes: plain runs become
// PlainText, matches become Ruby. The result is never empty.
func ParseMarkup(text string) []Node {
	formats := ruby.Formats(text, ruby.Parse(text))
	out := make([]Node, 0, len(formats))
	for _, f := range formats {
		switch f := f.(type) {
		case ruby.PlainRun:
			out = append(out, PlainText{Text: ruby.Substring(text, f.Text)})
		case ruby.Match:
			body, reading := f.Text(text)
			out = append(out, Ruby{Body: body, Reading: reading})
		}
	}
	if len(out) == 0 {
		out = append(out, PlainText{})
	}
	return out
}

// roundTrips reports whether nodes serialize to markup that parses back to
// the same structured paragraph.
func roundTrips(nodes []Node) bool {
	raw, err := Paragraph{Nodes: nodes}.Markup()
	if err != nil {
		return false
	}
	want, err := normalizeNodes(ModeStructured, nodes)
	if err != nil {
		return false
	}
	got, err := normalizeNodes(ModeStructured, ParseMarkup(raw))
	if err != nil {
		return false
	}
	return paragraphsEqual([]Paragraph{{Nodes: got}}, []Paragraph{{Nodes: want}})
}
