// Package grapheme wraps uniseg for the rune-offset coordinates used by the
// document and layout code.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Boundaries returns the rune offsets at which clusters start, followed by
// the rune length of text. The result always begins with 0.
func Boundaries(text string) []int {
	out := []int{0}
	off := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the rune offset of the cluster boundary strictly before off,
// or 0.
func Prev(text string, off int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the rune offset of the cluster boundary strictly after off,
// or the rune length of text.
func Next(text string, off int) int {
	bounds := Boundaries(text)
	for _, b := range bounds {
		if b > off {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// PrevWord returns the rune offset of the start of the word before off.
// Whitespace runs are skipped, as in a terminal editor's word motion.
func PrevWord(text string, off int) int {
	starts := wordStarts(text)
	prev := 0
	for _, w := range starts {
		if w.start >= off {
			break
		}
		if !w.space {
			prev = w.start
		}
	}
	return prev
}

// NextWord returns the rune offset of the end of the word at or after off.
func NextWord(text string, off int) int {
	end := 0
	for _, w := range wordStarts(text) {
		end = w.end
		if w.end > off && !w.space {
			return w.end
		}
	}
	return end
}

type word struct {
	start, end int
	space      bool
}

func wordStarts(text string) []word {
	var out []word
	off := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var w string
		w, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(w))
		out = append(out, word{start: off, end: off + n, space: IsSpace(w)})
		off += n
	}
	return out
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
