// Package config loads the ved configuration file.
//
// The file is optional YAML. Missing keys keep their defaults; unknown keys
// are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/navigate"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultHistoryLimit  = 1000
)

// Settings is the resolved configuration.
type Settings struct {
	Direction       navigate.WritingDirection
	Policy          decorate.AppearPolicy
	FrameInterval   time.Duration
	HistoryLimit    int
	ReadingBrackets [2]string
	Log             LogSettings
}

type LogSettings struct {
	File      string
	Verbosity int
}

func Default() Settings {
	return Settings{
		Direction:       navigate.Horizontal,
		Policy:          decorate.ByParagraph,
		FrameInterval:   DefaultFrameInterval,
		HistoryLimit:    DefaultHistoryLimit,
		ReadingBrackets: [2]string{"《", "》"},
		Log:             LogSettings{Verbosity: 1},
	}
}

type fileLog struct {
	File      string `yaml:"file"`
	Verbosity *int   `yaml:"verbosity"`
}

type file struct {
	Direction       string         `yaml:"direction"`
	Policy          string         `yaml:"policy"`
	FrameInterval   *time.Duration `yaml:"frame_interval"`
	HistoryLimit    *int           `yaml:"history_limit"`
	ReadingBrackets []string       `yaml:"reading_brackets"`
	Log             fileLog        `yaml:"log"`
}

// Load reads and parses the file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML over the defaults. Empty input yields Default().
func Parse(data []byte) (Settings, error) {
	s := Default()

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if f.Direction != "" {
		d, err := ParseDirection(f.Direction)
		if err != nil {
			return Settings{}, err
		}
		s.Direction = d
	}
	if f.Policy != "" {
		p, err := decorate.ParsePolicy(f.Policy)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		s.Policy = p
	}
	if f.FrameInterval != nil {
		if *f.FrameInterval <= 0 {
			return Settings{}, fmt.Errorf("%w: frame_interval must be positive, got %s", ErrInvalidConfig, *f.FrameInterval)
		}
		s.FrameInterval = *f.FrameInterval
	}
	if f.HistoryLimit != nil {
		s.HistoryLimit = *f.HistoryLimit
	}
	if f.ReadingBrackets != nil {
		if len(f.ReadingBrackets) != 2 {
			return Settings{}, fmt.Errorf("%w: reading_brackets needs 2 entries, got %d", ErrInvalidConfig, len(f.ReadingBrackets))
		}
		s.ReadingBrackets = [2]string{f.ReadingBrackets[0], f.ReadingBrackets[1]}
	}
	s.Log.File = f.Log.File
	if f.Log.Verbosity != nil {
		s.Log.Verbosity = *f.Log.Verbosity
	}
	return s, nil
}

// ParseDirection accepts "horizontal" and "vertical", case-insensitively.
func ParseDirection(s string) (navigate.WritingDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return navigate.Horizontal, nil
	case "vertical":
		return navigate.Vertical, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, s)
	}
}
