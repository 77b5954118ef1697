package ruby

// Span is a half-open rune range [Start, End) within a paragraph's raw text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Contains reports whether off lies inside [Start, End).
func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

// Intersects reports whether s and o share at least one rune.
func (s Span) Intersects(o Span) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return false
	}
	return s.Start < o.End && o.Start < s.End
}

// Touches is the closed-interval variant of Intersects: spans that merely
// meet at an edge, and empty spans sitting on an edge, touch.
func (s Span) Touches(o Span) bool {
	return s.Start <= o.End && o.Start <= s.End
}

// Role tags a segment of raw text with its part in the markup.
type Role uint8

const (
	RolePlain Role = iota
	RoleDelimFront
	RoleBody
	RoleSepMid
	RoleReading
	RoleDelimEnd
)

func (r Role) String() string {
	switch r {
	case RolePlain:
		return "plain"
	case RoleDelimFront:
		return "delim-front"
	case RoleBody:
		return "body"
	case RoleSepMid:
		return "sep-mid"
	case RoleReading:
		return "reading"
	case RoleDelimEnd:
		return "delim-end"
	default:
		return "unknown"
	}
}

// Displayed reports whether runes with this role are shown verbatim once a
// match renders as ruby.
func (r Role) Displayed() bool {
	return r == RolePlain || r == RoleBody
}

// Segment is one role-tagged run of raw text.
type Segment struct {
	Span Span
	Role Role
}

func (s Segment) Displayed() bool { return s.Role.Displayed() }
