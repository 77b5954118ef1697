package ruby

import "strings"

const (
	DelimFront = '|'
	SepMid     = '('
	DelimEnd   = ')'
)

// Parse returns the ruby matches of text in ascending, non-overlapping order.
//
// The scan looks for the next '|', then the next '(' after it, then the next
// ')' after that. Scanning resumes at the matched ')', so a '|' inside a
// reading never opens a nested match. As soon as a '(' or ')' is missing the
// scan stops: the rest of the text is plain, even if a later occurrence would
// have matched on its own.
func Parse(text string) []Match {
	rs := []rune(text)

	var out []Match
	off := 0
	for {
		bar := indexRune(rs, DelimFront, off)
		if bar < 0 {
			break
		}
		l := indexRune(rs, SepMid, bar+1)
		if l < 0 {
			break
		}
		r := indexRune(rs, DelimEnd, l+1)
		if r < 0 {
			break
		}

		out = append(out, Match{
			DelimFront: Span{Start: bar, End: bar + 1},
			Body:       Span{Start: bar + 1, End: l},
			SepMid:     Span{Start: l, End: l + 1},
			Reading:    Span{Start: l + 1, End: r},
			DelimEnd:   Span{Start: r, End: r + 1},
		})
		off = r
	}
	return out
}

// Markup reconstructs the raw form of one annotation.
func Markup(body, reading string) string {
	var sb strings.Builder
	sb.Grow(len(body) + len(reading) + 3)
	sb.WriteRune(DelimFront)
	sb.WriteString(body)
	sb.WriteRune(SepMid)
	sb.WriteString(reading)
	sb.WriteRune(DelimEnd)
	return sb.String()
}

// Reparses reports whether Markup(body, reading) parses back to exactly one
// match with the same body and reading.
func Reparses(body, reading string) bool {
	return !strings.ContainsRune(body, SepMid) && !strings.ContainsRune(reading, DelimEnd)
}

func indexRune(rs []rune, r rune, from int) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
