package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/navigate"
)

func TestRender_Horizontal(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		policy decorate.AppearPolicy
		keys   []tea.KeyType
		want   string
	}{
		{name: "show all keeps markup", text: "a|漢(かん)", policy: decorate.ShowAll, want: "a|漢(かん)"},
		{name: "rich shows reading", text: "a|漢(かん)b", policy: decorate.Rich, want: "a漢《かん》b"},
		{name: "caret away from match", text: "|漢(かん)x", policy: decorate.ByCharacter, keys: []tea.KeyType{tea.KeyEnd}, want: "漢《かん》x "},
		{name: "caret touching match", text: "|漢(かん)x", policy: decorate.ByCharacter, want: "|漢(かん)x"},
		{name: "by paragraph reveals caret paragraph", text: "|漢(かん)\n|字(じ)", policy: decorate.ByParagraph, want: "|漢(かん)\n字《じ》"},
		{name: "empty paragraph shows caret", text: "", policy: decorate.ShowAll, want: " "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, Config{Text: tc.text, Policy: tc.policy})
			for _, k := range tc.keys {
				m, _ = m.Update(keyMsg(k))
			}
			if got := m.renderContent(); got != tc.want {
				t.Fatalf("render: got=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_BlurHidesTrailingCaret(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab"})
	m, _ = m.Update(keyMsg(tea.KeyEnd))
	if got, want := m.renderContent(), "ab "; got != want {
		t.Fatalf("focused: got=%q, want %q", got, want)
	}
	m = m.Blur()
	if got, want := m.renderContent(), "ab"; got != want {
		t.Fatalf("blurred: got=%q, want %q", got, want)
	}
}

func TestRender_HorizontalWraps(t *testing.T) {
	m := newTestModel(t, Config{Text: "abcdef", Policy: decorate.ShowAll})
	m = m.SetSize(4, 3)
	if got, want := m.renderContent(), "abc\ndef"; got != want {
		t.Fatalf("render: got=%q, want %q", got, want)
	}
}

func TestRender_VerticalFirstParagraphIsRightmost(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab\ncd", Direction: navigate.Vertical})
	m = m.SetSize(4, 3)

	want := strings.Join([]string{"c a ", "d b ", "    "}, "\n")
	if got := m.renderContent(); got != want {
		t.Fatalf("render: got=%q, want %q", got, want)
	}
}

func TestRender_VerticalRightAligns(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab", Direction: navigate.Vertical})
	m = m.SetSize(6, 3)

	want := strings.Join([]string{"    a ", "    b ", "      "}, "\n")
	if got := m.renderContent(); got != want {
		t.Fatalf("render: got=%q, want %q", got, want)
	}
}

func TestRender_VerticalReading(t *testing.T) {
	m := newTestModel(t, Config{Text: "|漢(かん)", Direction: navigate.Vertical, Policy: decorate.Rich})
	m = m.SetSize(2, 10)

	rows := strings.Split(m.renderContent(), "\n")
	want := []string{"漢", "《", "か", "ん", "》", "  "}
	for i, w := range want {
		if rows[i] != w {
			t.Fatalf("row %d: got=%q, want %q", i, rows[i], w)
		}
	}
}

func TestRender_VerticalFollowsCaretColumn(t *testing.T) {
	m := newTestModel(t, Config{Text: "a\nb\nc", Direction: navigate.Vertical})
	m = m.SetSize(2, 3)

	if got, want := strings.Split(m.renderContent(), "\n")[0], "a "; got != want {
		t.Fatalf("first row: got=%q, want %q", got, want)
	}

	m, _ = m.Update(keyMsg(tea.KeyDown))
	m, _ = m.Update(keyMsg(tea.KeyDown))
	if got, want := strings.Split(m.renderContent(), "\n")[0], "b "; got != want {
		t.Fatalf("first row after scroll: got=%q, want %q", got, want)
	}
}
