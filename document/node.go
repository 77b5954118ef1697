package document

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownNode reports a node that is neither PlainText nor Ruby.
	ErrUnknownNode = errors.New("unknown node type")

	// ErrModeMismatch reports a Ruby node offered to a flat-mode paragraph.
	ErrModeMismatch = errors.New("node not allowed in document mode")

	// ErrInvalidPath reports a paragraph or node index out of range.
	ErrInvalidPath = errors.New("path out of range")
)

// Node is one inline element of a paragraph. The set of implementations is
// closed: PlainText and Ruby.
type Node interface {
	node()
}

// PlainText is a run of text with no annotation.
type PlainText struct {
	Text string
}

// Ruby is an annotated run. Body is editable text; Reading is shown as an
// annotation and cannot be edited in place.
type Ruby struct {
	Body    string
	Reading string
}

func (PlainText) node() {}
func (Ruby) node()      {}

// DisplayText returns the addressable text of n.
func DisplayText(n Node) (string, error) {
	switch n := n.(type) {
	case PlainText:
		return n.Text, nil
	case Ruby:
		return n.Body, nil
	default:
		return "", unknownNode(n)
	}
}

func unknownNode(n Node) error {
	return fmt.Errorf("%w: %T", ErrUnknownNode, n)
}

func displayLen(n Node) int {
	s, err := DisplayText(n)
	if err != nil {
		return 0
	}
	return runeLen(s)
}

func withDisplayText(n Node, s string) Node {
	switch n := n.(type) {
	case PlainText:
		n.Text = s
		return n
	case Ruby:
		n.Body = s
		return n
	default:
		return n
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func sliceRunes(s string, start, end int) string {
	rs := []rune(s)
	start = clampInt(start, 0, len(rs))
	end = clampInt(end, start, len(rs))
	return string(rs[start:end])
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
