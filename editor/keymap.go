package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/ved/navigate"
)

// KeyMap defines the editor key bindings. It implements help.KeyMap.
//
// Arrow bindings name physical keys; what they do depends on the writing
// direction, and so does their help text.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordBackward, WordForward                 key.Binding
	Home, End                                 key.Binding

	Backspace, Delete, Enter key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	// ToggleFormat switches between rich ruby and raw markup.
	ToggleFormat key.Binding
}

func DefaultKeyMap() KeyMap { return DefaultKeyMapFor(navigate.Horizontal) }

// DefaultKeyMapFor returns the default bindings with help text for dir.
func DefaultKeyMapFor(dir navigate.WritingDirection) KeyMap {
	arrows := [4]string{"back", "forward", "line up", "line down"}
	if dir == navigate.Vertical {
		arrows = [4]string{"next line", "previous line", "back", "forward"}
	}
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}

	return KeyMap{
		Left:  bind("←", arrows[0], "left"),
		Right: bind("→", arrows[1], "right"),
		Up:    bind("↑", arrows[2], "up"),
		Down:  bind("↓", arrows[3], "down"),

		ShiftLeft:  bind("shift+←", "select "+arrows[0], "shift+left"),
		ShiftRight: bind("shift+→", "select "+arrows[1], "shift+right"),
		ShiftUp:    bind("shift+↑", "select "+arrows[2], "shift+up"),
		ShiftDown:  bind("shift+↓", "select "+arrows[3], "shift+down"),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordBackward: bind("alt+←", "word back", "alt+left", "ctrl+left"),
		WordForward:  bind("alt+→", "word forward", "alt+right", "ctrl+right"),

		Home: bind("home", "paragraph start", "home", "ctrl+a"),
		End:  bind("end", "paragraph end", "end", "ctrl+e"),

		Backspace: bind("⌫", "delete back", "backspace", "ctrl+h"),
		Delete:    bind("del", "delete forward", "delete"),
		Enter:     bind("enter", "split paragraph", "enter"),

		Undo: bind("ctrl+z", "undo", "ctrl+z"),
		Redo: bind("ctrl+y", "redo", "ctrl+y", "ctrl+shift+z"),

		Copy:  bind("ctrl+c", "copy", "ctrl+c"),
		Cut:   bind("ctrl+x", "cut", "ctrl+x"),
		Paste: bind("ctrl+v", "paste", "ctrl+v"),

		// ctrl+/ arrives as ctrl+_ on most terminals.
		ToggleFormat: bind("ctrl+/", "toggle ruby", "ctrl+_", "ctrl+/"),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.ToggleFormat, k.Undo}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Home, k.End},
		{k.ShiftLeft, k.ShiftRight, k.ShiftUp, k.ShiftDown, k.WordBackward, k.WordForward},
		{k.Backspace, k.Delete, k.Enter, k.Undo, k.Redo},
		{k.Copy, k.Cut, k.Paste, k.ToggleFormat},
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.ToggleFormat.Keys()) == 0 && len(k.Enter.Keys()) == 0
}
