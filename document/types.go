package document

// Mode is the representation every paragraph of a document is in.
type Mode uint8

const (
	ModeFlat Mode = iota
	ModeStructured
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// Path addresses a node: paragraph index, then node index in the paragraph.
// In flat mode Node is always 0.
type Path struct {
	Para int
	Node int
}

// Point is a caret position: a node and a rune offset into its displayed text.
type Point struct {
	Path   Path
	Offset int
}

// Range is a half-open selection in document order: [Start, End).
type Range struct {
	Start Point
	End   Point
}

// ComparePoint orders points by paragraph, node, then offset.
//
// Two points on either side of a node boundary compare unequal even though
// they denote the same caret slot; compare display offsets for that.
func ComparePoint(a, b Point) int {
	switch {
	case a.Path.Para != b.Path.Para:
		return cmpInt(a.Path.Para, b.Path.Para)
	case a.Path.Node != b.Path.Node:
		return cmpInt(a.Path.Node, b.Path.Node)
	default:
		return cmpInt(a.Offset, b.Offset)
	}
}

func NormalizeRange(r Range) Range {
	if ComparePoint(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
