package decorate

import (
	"errors"
	"testing"

	"github.com/iw2rmb/ved/document"
	"github.com/iw2rmb/ved/ruby"
)

func richFlags(decs []Decoration) []bool {
	out := make([]bool, len(decs))
	for i, d := range decs {
		out[i] = d.Rich
	}
	return out
}

func equalFlags(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecorate_ByCharacter(t *testing.T) {
	const text = "foo|(bar)baz"
	matches := ruby.Parse(text)
	if len(matches) != 1 {
		t.Fatalf("matches=%d, want 1", len(matches))
	}

	for off := 3; off < 9; off++ {
		decs := Decorate(ByCharacter, text, matches, Caret(off))
		if decs[0].Rich {
			t.Fatalf("caret at %d: match rendered as ruby, want raw", off)
		}
	}
	for _, off := range []int{0, 1, 2, 10, 11, 12} {
		decs := Decorate(ByCharacter, text, matches, Caret(off))
		if !decs[0].Rich {
			t.Fatalf("caret at %d: match rendered raw, want ruby", off)
		}
		body, reading := decs[0].Match.Text(text)
		if body != "" || reading != "bar" {
			t.Fatalf("body,reading=%q,%q, want %q,%q", body, reading, "", "bar")
		}
	}
}

func TestDecorate_ByCharacterPerMatch(t *testing.T) {
	const text = "|a(b)xx|c(d)"
	matches := ruby.Parse(text)
	decs := Decorate(ByCharacter, text, matches, Caret(1))
	if got, want := richFlags(decs), []bool{false, true}; !equalFlags(got, want) {
		t.Fatalf("rich=%v, want %v", got, want)
	}
}

func TestDecorate_CaretEdgeAndSelectionEdge(t *testing.T) {
	const text = "ab|c(d)ef"
	matches := ruby.Parse(text) // span [2,7)
	cases := []struct {
		name string
		sel  Selection
		rich bool
	}{
		{"caret on front edge", Caret(2), false},
		{"caret on end edge", Caret(7), false},
		{"caret before", Caret(1), true},
		{"selection ending at front edge", Selection{Start: 0, End: 2, Active: true}, true},
		{"selection overlapping", Selection{Start: 0, End: 3, Active: true}, false},
		{"reversed selection", Selection{Start: 9, End: 6, Active: true}, false},
		{"inactive", Selection{}, true},
	}
	for _, tc := range cases {
		decs := Decorate(ByCharacter, text, matches, tc.sel)
		if decs[0].Rich != tc.rich {
			t.Fatalf("%s: rich=%v, want %v", tc.name, decs[0].Rich, tc.rich)
		}
	}
}

func TestDecorate_ByParagraph(t *testing.T) {
	const text = "|a(b) middle |c(d)"
	matches := ruby.Parse(text)
	if len(matches) != 2 {
		t.Fatalf("matches=%d, want 2", len(matches))
	}

	decs := Decorate(ByParagraph, text, matches, Caret(1))
	if got, want := richFlags(decs), []bool{false, false}; !equalFlags(got, want) {
		t.Fatalf("touching one match: rich=%v, want %v", got, want)
	}
	decs = Decorate(ByParagraph, text, matches, Caret(8))
	if got, want := richFlags(decs), []bool{false, false}; !equalFlags(got, want) {
		t.Fatalf("caret between matches: rich=%v, want %v", got, want)
	}
	decs = Decorate(ByParagraph, text, matches, Selection{})
	if got, want := richFlags(decs), []bool{true, true}; !equalFlags(got, want) {
		t.Fatalf("no selection: rich=%v, want %v", got, want)
	}
}

func TestDecorate_PersistentPolicies(t *testing.T) {
	const text = "|a(b)"
	matches := ruby.Parse(text)
	if Decorate(ShowAll, text, matches, Selection{})[0].Rich {
		t.Fatalf("show-all must not decorate")
	}
	if !Decorate(Rich, text, matches, Caret(0))[0].Rich {
		t.Fatalf("rich must always decorate")
	}
}

func TestHidden(t *testing.T) {
	m := ruby.Parse("x|(y)z")[0]
	if got := Hidden(Decoration{Match: m}); got != nil {
		t.Fatalf("raw decoration hides %v", got)
	}
	got := Hidden(Decoration{Match: m, Rich: true})
	want := []ruby.Span{{Start: 1, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 4}, {Start: 4, End: 5}}
	if len(got) != len(want) {
		t.Fatalf("hidden=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hidden[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestSelectionForParagraph(t *testing.T) {
	p := func(para, off int) document.Point {
		return document.Point{Path: document.Path{Para: para}, Offset: off}
	}
	r := document.Range{Start: p(3, 4), End: p(1, 2)}
	cases := []struct {
		para int
		want Selection
	}{
		{0, Selection{}},
		{1, Selection{Start: 2, End: 10, Active: true}},
		{2, Selection{Start: 0, End: 10, Active: true}},
		{3, Selection{Start: 0, End: 4, Active: true}},
		{4, Selection{}},
	}
	for _, tc := range cases {
		if got := SelectionForParagraph(r, tc.para, 10); got != tc.want {
			t.Fatalf("para %d: got %+v, want %+v", tc.para, got, tc.want)
		}
	}
}

func TestPieces(t *testing.T) {
	const text = "a|b(c)d"
	matches := ruby.Parse(text)

	rich := Pieces(text, []Decoration{{Match: matches[0], Rich: true}})
	wantRich := []Piece{
		{Text: "a", Kind: PiecePlain, Raw: ruby.Span{Start: 0, End: 1}},
		{Text: "b", Kind: PieceBody, Raw: ruby.Span{Start: 2, End: 3}},
		{Text: "c", Kind: PieceReading, Raw: ruby.Span{Start: 4, End: 5}},
		{Text: "d", Kind: PiecePlain, Raw: ruby.Span{Start: 6, End: 7}},
	}
	if len(rich) != len(wantRich) {
		t.Fatalf("pieces=%+v, want %+v", rich, wantRich)
	}
	for i := range wantRich {
		if rich[i] != wantRich[i] {
			t.Fatalf("piece %d=%+v, want %+v", i, rich[i], wantRich[i])
		}
	}

	raw := Pieces(text, []Decoration{{Match: matches[0]}})
	var joined string
	for _, p := range raw {
		joined += p.Text
	}
	if joined != text {
		t.Fatalf("raw pieces join to %q, want %q", joined, text)
	}
	if raw[1].Kind != PieceMarkup || raw[1].Text != "|" {
		t.Fatalf("piece 1=%+v, want front delimiter markup", raw[1])
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []AppearPolicy{ByParagraph, ByCharacter, Rich, ShowAll} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePolicy(%q)=%v,%v", p.String(), got, err)
		}
	}
	if got, err := ParsePolicy(" Show-All "); err != nil || got != ShowAll {
		t.Fatalf("ParsePolicy mixed case=%v,%v", got, err)
	}
	if _, err := ParsePolicy("fancy"); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("err=%v, want %v", err, ErrUnknownPolicy)
	}
}

type recorder struct {
	calls []string
	err   error
}

func (r *recorder) Format() error {
	r.calls = append(r.calls, "format")
	return r.err
}

func (r *recorder) Unformat() error {
	r.calls = append(r.calls, "unformat")
	return r.err
}

func TestToggle(t *testing.T) {
	cases := []struct {
		from AppearPolicy
		to   AppearPolicy
		call string
	}{
		{Rich, ShowAll, "unformat"},
		{ShowAll, Rich, "format"},
		{ByParagraph, Rich, "format"},
		{ByCharacter, Rich, "format"},
	}
	for _, tc := range cases {
		r := &recorder{}
		got, err := Toggle(tc.from, r)
		if err != nil {
			t.Fatalf("%v: %v", tc.from, err)
		}
		if got != tc.to || len(r.calls) != 1 || r.calls[0] != tc.call {
			t.Fatalf("%v: got %v via %v, want %v via %s", tc.from, got, r.calls, tc.to, tc.call)
		}
	}
}

func TestToggle_ErrorKeepsPolicy(t *testing.T) {
	boom := errors.New("boom")
	got, err := Toggle(ShowAll, &recorder{err: boom})
	if !errors.Is(err, boom) || got != ShowAll {
		t.Fatalf("got %v,%v, want %v and %v", got, err, ShowAll, boom)
	}
}

func TestTransition(t *testing.T) {
	cases := []struct {
		from, to AppearPolicy
		calls    int
	}{
		{ByCharacter, ByParagraph, 0},
		{ByCharacter, ShowAll, 0},
		{ByCharacter, Rich, 1},
		{Rich, ByCharacter, 1},
		{Rich, Rich, 0},
	}
	for _, tc := range cases {
		r := &recorder{}
		got, err := Transition(tc.from, tc.to, r)
		if err != nil || got != tc.to || len(r.calls) != tc.calls {
			t.Fatalf("%v->%v: got %v,%v calls=%v", tc.from, tc.to, got, err, r.calls)
		}
	}
	if _, err := Transition(Rich, AppearPolicy(9), &recorder{}); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("err=%v, want %v", err, ErrUnknownPolicy)
	}
}

func TestToggle_DocumentRoundTrip(t *testing.T) {
	d := document.New("|漢(かん)字", document.Options{})
	r := ForTree(d)

	p, err := Toggle(ByCharacter, r)
	if err != nil || p != Rich || d.Mode() != document.ModeStructured {
		t.Fatalf("toggle on: %v,%v mode=%v", p, err, d.Mode())
	}
	p, err = Toggle(p, r)
	if err != nil || p != ShowAll || d.Mode() != document.ModeFlat {
		t.Fatalf("toggle off: %v,%v mode=%v", p, err, d.Mode())
	}
	if got, want := d.Text(), "|漢(かん)字"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
