package decorate

import (
	"github.com/iw2rmb/ved/document"
	"github.com/iw2rmb/ved/ruby"
)

// Selection is the caret or selection clipped to one paragraph, in raw rune
// offsets. Inactive means the paragraph holds neither.
type Selection struct {
	Start  int
	End    int
	Active bool
}

func Caret(off int) Selection {
	return Selection{Start: off, End: off, Active: true}
}

func (s Selection) span() ruby.Span {
	if s.End < s.Start {
		return ruby.Span{Start: s.End, End: s.Start}
	}
	return ruby.Span{Start: s.Start, End: s.End}
}

// touches applies the caret rule: a collapsed caret on either edge of sp
// touches it, a non-empty selection must share a rune with it.
func (s Selection) touches(sp ruby.Span) bool {
	if !s.Active {
		return false
	}
	own := s.span()
	if own.IsEmpty() || sp.IsEmpty() {
		return own.Touches(sp)
	}
	return own.Intersects(sp)
}

// SelectionForParagraph clips a flat-mode document range to paragraph para
// whose raw text has paraLen runes.
func SelectionForParagraph(r document.Range, para, paraLen int) Selection {
	r = document.NormalizeRange(r)
	if para < r.Start.Path.Para || para > r.End.Path.Para {
		return Selection{}
	}
	s := Selection{Start: 0, End: paraLen, Active: true}
	if para == r.Start.Path.Para {
		s.Start = r.Start.Offset
	}
	if para == r.End.Path.Para {
		s.End = r.End.Offset
	}
	return s
}

// Decoration is the render decision for one match.
type Decoration struct {
	Match ruby.Match
	Rich  bool
}

// Decorate returns one decoration per match, in match order.
func Decorate(policy AppearPolicy, text string, matches []ruby.Match, sel Selection) []Decoration {
	out := make([]Decoration, len(matches))
	paragraphTouched := false
	if policy == ByParagraph {
		paragraphTouched = sel.touches(ruby.Span{Start: 0, End: len([]rune(text))})
	}
	for i, m := range matches {
		var rich bool
		switch policy {
		case ByParagraph:
			rich = !paragraphTouched
		case ByCharacter:
			rich = !sel.touches(m.Span())
		case Rich:
			rich = true
		default:
			rich = false
		}
		out[i] = Decoration{Match: m, Rich: rich}
	}
	return out
}

// Hidden returns the raw spans not shown as ordinary characters when dec
// renders as ruby: both delimiters, the separator and the reading.
func Hidden(dec Decoration) []ruby.Span {
	if !dec.Rich {
		return nil
	}
	m := dec.Match
	return []ruby.Span{m.DelimFront, m.SepMid, m.Reading, m.DelimEnd}
}
