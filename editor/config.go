package editor

import (
	"time"

	"github.com/tliron/commonlog"

	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/navigate"
)

const defaultFrameInterval = 16 * time.Millisecond

// Config configures the editor Model.
type Config struct {
	// Initial raw markup, one paragraph per line. CRLF and CR line breaks
	// are read as LF.
	Text string

	Direction navigate.WritingDirection

	// Policy is the initial appear policy. Rich formats the document at
	// construction.
	Policy decorate.AppearPolicy

	ReadOnly bool

	Style  Style
	KeyMap KeyMap

	// Forwarded to document.Options.
	HistoryLimit int

	// FrameInterval is the delay before a deferred vertical line move is
	// applied. Default: 16ms.
	FrameInterval time.Duration

	// ReadingBrackets surround a rendered reading. Default: 《 and 》.
	ReadingBrackets [2]string

	Clipboard Clipboard

	// OnChange is called after every effective document, caret or policy
	// change.
	OnChange func(ChangeEvent)

	// OnPolicyChange is called when the appear policy changes.
	OnPolicyChange func(from, to decorate.AppearPolicy)

	// Logger defaults to commonlog.GetLogger("ved.editor").
	Logger commonlog.Logger
}

// Clipboard backs the copy, cut and paste bindings. Failures are logged and
// the edit is skipped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (c Config) withDefaults() Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMapFor(c.Direction)
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = defaultFrameInterval
	}
	if c.ReadingBrackets == ([2]string{}) {
		c.ReadingBrackets = [2]string{"《", "》"}
	}
	if c.Logger == nil {
		c.Logger = commonlog.GetLogger("ved.editor")
	}
	return c
}
