package editor

import (
	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/document"
)

type ChangeEvent struct {
	DocumentID string
	Version    uint64
	Cursor     document.Point
	Selection  struct {
		Range  document.Range
		Active bool
	}

	Policy decorate.AppearPolicy
	Mode   document.Mode

	// Markup of the whole document; hosts diff if needed.
	Text string
}

func buildChangeEvent(d *document.Document, policy decorate.AppearPolicy) ChangeEvent {
	ev := ChangeEvent{
		DocumentID: d.ID(),
		Version:    d.Version(),
		Cursor:     d.Cursor(),
		Policy:     policy,
		Mode:       d.Mode(),
		Text:       d.Text(),
	}
	if r, ok := d.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
