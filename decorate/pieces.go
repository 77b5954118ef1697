package decorate

import "github.com/iw2rmb/ved/ruby"

type PieceKind uint8

const (
	PiecePlain   PieceKind = iota // plain text, editable
	PieceBody                     // ruby body, editable
	PieceReading                  // ruby reading, view only
	PieceMarkup                   // revealed delimiter
)

// Piece is a run of a flat paragraph as it renders. Raw locates it in the
// paragraph's raw text.
type Piece struct {
	Text string
	Kind PieceKind
	Raw  ruby.Span
}

// Pieces splits text into render runs under decs. Revealed matches yield
// their delimiters as PieceMarkup and their body and reading as PiecePlain,
// so every rune stays addressable. Rich matches yield PieceBody and a view
// only PieceReading.
func Pieces(text string, decs []Decoration) []Piece {
	matches := make([]ruby.Match, len(decs))
	rich := make(map[int]bool, len(decs))
	for i, d := range decs {
		matches[i] = d.Match
		rich[d.Match.DelimFront.Start] = d.Rich
	}

	var out []Piece
	add := func(sp ruby.Span, kind PieceKind) {
		if sp.IsEmpty() && kind != PieceBody {
			return
		}
		out = append(out, Piece{Text: ruby.Substring(text, sp), Kind: kind, Raw: sp})
	}
	for _, f := range ruby.Formats(text, matches) {
		switch f := f.(type) {
		case ruby.PlainRun:
			add(f.Text, PiecePlain)
		case ruby.Match:
			if rich[f.DelimFront.Start] {
				add(f.Body, PieceBody)
				add(f.Reading, PieceReading)
				continue
			}
			add(f.DelimFront, PieceMarkup)
			add(f.Body, PiecePlain)
			add(f.SepMid, PieceMarkup)
			add(f.Reading, PiecePlain)
			add(f.DelimEnd, PieceMarkup)
		}
	}
	return out
}
