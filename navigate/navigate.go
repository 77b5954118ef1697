// Package navigate reinterprets arrow keys when text flows in vertical
// columns.
//
// In vertical writing, lines run top to bottom and columns flow right to
// left, so the horizontal arrows move along lines and the vertical arrows
// move by character.
package navigate

type WritingDirection uint8

const (
	Horizontal WritingDirection = iota
	Vertical
)

func (d WritingDirection) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

type Arrow uint8

const (
	ArrowOther Arrow = iota
	ArrowLeft
	ArrowRight
	ArrowUp
	ArrowDown
)

// Key is the part of a key event the remapper looks at.
type Key struct {
	Arrow Arrow
	Shift bool
}

type Alter uint8

const (
	AlterMove Alter = iota
	AlterExtend
)

func (a Alter) String() string {
	if a == AlterExtend {
		return "extend"
	}
	return "move"
}

type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

type Granularity uint8

const (
	Character Granularity = iota
	Line
)

func (g Granularity) String() string {
	if g == Line {
		return "line"
	}
	return "character"
}

// Modify is one caret or selection adjustment, in the shape of a host
// selection API's modify(alter, direction, granularity).
type Modify struct {
	Alter       Alter
	Direction   Direction
	Granularity Granularity
}

func (m Modify) String() string {
	return m.Alter.String() + " " + m.Direction.String() + " " + m.Granularity.String()
}

// Action is the remapper's decision for one key.
//
// When Handled is false the key gets its default handling. When Deferred is
// true the caller normalizes the document and applies Modify on the next
// frame; otherwise it applies Modify at once.
type Action struct {
	Handled  bool
	Deferred bool
	Modify   Modify
}

// Remap decides how key moves the caret under dir.
func Remap(dir WritingDirection, key Key) Action {
	if dir != Vertical {
		return Action{}
	}

	alter := AlterMove
	if key.Shift {
		alter = AlterExtend
	}
	switch key.Arrow {
	case ArrowLeft:
		return Action{Handled: true, Deferred: true, Modify: Modify{Alter: alter, Direction: Forward, Granularity: Line}}
	case ArrowRight:
		return Action{Handled: true, Deferred: true, Modify: Modify{Alter: alter, Direction: Backward, Granularity: Line}}
	case ArrowUp:
		return Action{Handled: true, Modify: Modify{Alter: alter, Direction: Backward, Granularity: Character}}
	case ArrowDown:
		return Action{Handled: true, Modify: Modify{Alter: alter, Direction: Forward, Granularity: Character}}
	default:
		return Action{}
	}
}
