package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/navigate"
)

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s != Default() {
		t.Fatalf("settings: got=%+v, want %+v", s, Default())
	}
}

func TestParse_AllFields(t *testing.T) {
	data := []byte(`
direction: Vertical
policy: rich
frame_interval: 40ms
history_limit: -1
reading_brackets: ["(", ")"]
log:
  file: /tmp/ved.log
  verbosity: 2
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Settings{
		Direction:       navigate.Vertical,
		Policy:          decorate.Rich,
		FrameInterval:   40 * time.Millisecond,
		HistoryLimit:    -1,
		ReadingBrackets: [2]string{"(", ")"},
		Log:             LogSettings{File: "/tmp/ved.log", Verbosity: 2},
	}
	if s != want {
		t.Fatalf("settings: got=%+v, want %+v", s, want)
	}
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte("policy: by-character\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	want.Policy = decorate.ByCharacter
	if s != want {
		t.Fatalf("settings: got=%+v, want %+v", s, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "colour: red\n"},
		{name: "bad direction", data: "direction: diagonal\n"},
		{name: "bad policy", data: "policy: sometimes\n"},
		{name: "zero frame interval", data: "frame_interval: 0s\n"},
		{name: "one bracket", data: "reading_brackets: [\"[\"]\n"},
		{name: "not yaml", data: "direction: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err: got=%v, want %v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ved.yaml")
	if err := os.WriteFile(path, []byte("direction: vertical\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Direction != navigate.Vertical {
		t.Fatalf("direction: got=%v, want %v", s.Direction, navigate.Vertical)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err: got=%v, want %v", err, os.ErrNotExist)
	}
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in   string
		want navigate.WritingDirection
	}{
		{in: "horizontal", want: navigate.Horizontal},
		{in: " VERTICAL ", want: navigate.Vertical},
	}
	for _, tc := range cases {
		got, err := ParseDirection(tc.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDirection(%q): got=%v, want %v", tc.in, got, tc.want)
		}
	}
}
