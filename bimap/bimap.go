// Package bimap maps positions between a paragraph's raw markup text and its
// rich (rendered) form.
//
// A rich offset counts displayed runes only: plain text and ruby bodies.
// Delimiters and readings consume raw offsets without advancing it.
package bimap

import (
	"sort"

	"github.com/iw2rmb/ved/ruby"
)

// PlainPos is a rune offset into a paragraph's raw markup string.
type PlainPos struct {
	Offset int
}

// RichPos is a displayed-rune offset within one paragraph.
type RichPos struct {
	Paragraph int
	Offset    int
}

// entry maps one role segment of the raw text.
//
// Displayed entries advance the rich offset one-to-one; other entries pin
// every raw offset they cover to RichStart.
type entry struct {
	PlainStart int
	PlainEnd   int
	RichStart  int
	Displayed  bool
}

func (e entry) richEnd() int {
	if e.Displayed {
		return e.RichStart + e.PlainEnd - e.PlainStart
	}
	return e.RichStart
}

// BiMap is built for one paragraph's current text and must be rebuilt after
// any edit to it. It is never updated in place.
type BiMap struct {
	paragraph int
	plainLen  int
	richLen   int
	entries   []entry
}

// Build derives the map from parser output for text.
func Build(matches []ruby.Match, text string, paragraph int) *BiMap {
	segs := ruby.Segments(ruby.Formats(text, matches))

	bm := &BiMap{
		paragraph: paragraph,
		entries:   make([]entry, 0, len(segs)),
	}
	rich := 0
	for _, s := range segs {
		if s.Span.IsEmpty() {
			continue
		}
		bm.entries = append(bm.entries, entry{
			PlainStart: s.Span.Start,
			PlainEnd:   s.Span.End,
			RichStart:  rich,
			Displayed:  s.Displayed(),
		})
		if s.Displayed() {
			rich += s.Span.Len()
		}
		bm.plainLen = s.Span.End
	}
	bm.richLen = rich
	return bm
}

// BuildFromText parses text and builds its map.
func BuildFromText(text string, paragraph int) *BiMap {
	return Build(ruby.Parse(text), text, paragraph)
}

func (bm *BiMap) Paragraph() int { return bm.paragraph }

// PlainLen is the rune length of the raw text the map was built for.
func (bm *BiMap) PlainLen() int { return bm.plainLen }

// DisplayLen is the number of displayed runes.
func (bm *BiMap) DisplayLen() int { return bm.richLen }

// ToRich maps a raw offset to its rich position. The caret position at the
// end of the text is in range.
func (bm *BiMap) ToRich(p PlainPos) (RichPos, bool) {
	if p.Offset < 0 || p.Offset > bm.plainLen {
		return RichPos{}, false
	}
	if p.Offset == bm.plainLen {
		return RichPos{Paragraph: bm.paragraph, Offset: bm.richLen}, true
	}

	i := sort.Search(len(bm.entries), func(i int) bool {
		return bm.entries[i].PlainEnd > p.Offset
	})
	if i >= len(bm.entries) {
		return RichPos{}, false
	}
	e := bm.entries[i]
	off := e.RichStart
	if e.Displayed {
		off += p.Offset - e.PlainStart
	}
	return RichPos{Paragraph: bm.paragraph, Offset: off}, true
}

// ToPlain maps a rich position back to the smallest raw offset that maps to
// it.
func (bm *BiMap) ToPlain(r RichPos) (PlainPos, bool) {
	if r.Paragraph != bm.paragraph || r.Offset < 0 || r.Offset > bm.richLen {
		return PlainPos{}, false
	}

	// First entry whose rich range reaches r. Rich offsets never decrease
	// along the raw text, so that entry holds the smallest raw offset.
	i := sort.Search(len(bm.entries), func(i int) bool {
		e := bm.entries[i]
		if e.Displayed {
			return e.richEnd() > r.Offset
		}
		return e.RichStart >= r.Offset
	})
	if i >= len(bm.entries) {
		return PlainPos{Offset: bm.plainLen}, true
	}
	e := bm.entries[i]
	if e.Displayed {
		if r.Offset < e.RichStart {
			return PlainPos{}, false
		}
		return PlainPos{Offset: e.PlainStart + r.Offset - e.RichStart}, true
	}
	if e.RichStart != r.Offset {
		return PlainPos{}, false
	}
	return PlainPos{Offset: e.PlainStart}, true
}
