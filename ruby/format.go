package ruby

// Format is one tile of a parsed paragraph: either a PlainRun or a Match.
type Format interface {
	Span() Span
	Segments() []Segment
	isFormat()
}

// PlainRun is raw text with no annotation semantics.
type PlainRun struct {
	Text Span
}

func (p PlainRun) Span() Span { return p.Text }

func (p PlainRun) Segments() []Segment {
	return []Segment{{Span: p.Text, Role: RolePlain}}
}

func (PlainRun) isFormat() {}

// Match is one ruby occurrence. The five spans are contiguous and exactly
// tile [DelimFront.Start, DelimEnd.End).
type Match struct {
	DelimFront Span // |
	Body       Span
	SepMid     Span // (
	Reading    Span
	DelimEnd   Span // )
}

func (m Match) Span() Span {
	return Span{Start: m.DelimFront.Start, End: m.DelimEnd.End}
}

func (m Match) Segments() []Segment {
	return []Segment{
		{Span: m.DelimFront, Role: RoleDelimFront},
		{Span: m.Body, Role: RoleBody},
		{Span: m.SepMid, Role: RoleSepMid},
		{Span: m.Reading, Role: RoleReading},
		{Span: m.DelimEnd, Role: RoleDelimEnd},
	}
}

func (Match) isFormat() {}

// Text returns the body and reading substrings of m within text.
func (m Match) Text(text string) (body, reading string) {
	rs := []rune(text)
	return sliceRunes(rs, m.Body), sliceRunes(rs, m.Reading)
}

// Formats reconstructs the implicit plain runs around matches so the result
// tiles [0, rune length of text). Empty plain runs are omitted.
func Formats(text string, matches []Match) []Format {
	n := runeLen(text)
	out := make([]Format, 0, 2*len(matches)+1)
	at := 0
	for _, m := range matches {
		sp := m.Span()
		if sp.Start > at {
			out = append(out, PlainRun{Text: Span{Start: at, End: sp.Start}})
		}
		out = append(out, m)
		at = sp.End
	}
	if at < n {
		out = append(out, PlainRun{Text: Span{Start: at, End: n}})
	}
	return out
}

// Segments flattens formats into role-tagged segments in raw-text order.
// Empty sub-spans of a match are kept so callers see every role.
func Segments(formats []Format) []Segment {
	out := make([]Segment, 0, len(formats)*5)
	for _, f := range formats {
		out = append(out, f.Segments()...)
	}
	return out
}

// Substring returns the runes of text covered by s, clamped to text bounds.
func Substring(text string, s Span) string {
	return sliceRunes([]rune(text), s)
}

func sliceRunes(rs []rune, s Span) string {
	start := clampInt(s.Start, 0, len(rs))
	end := clampInt(s.End, start, len(rs))
	return string(rs[start:end])
}

func runeLen(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
