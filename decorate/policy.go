// Package decorate decides which ruby annotations render as formatted ruby
// and which stay raw editable markup.
//
// The appear policy is a plain value. The caller owns it and passes it into
// every call; nothing here keeps state between calls.
package decorate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/ved/transform"
)

var ErrUnknownPolicy = errors.New("unknown appear policy")

// AppearPolicy is the strategy governing when raw markup or formatted ruby is
// shown.
type AppearPolicy uint8

const (
	// ByParagraph reveals raw markup for every match in the paragraph holding
	// the caret or selection.
	ByParagraph AppearPolicy = iota
	// ByCharacter reveals raw markup only for the matches the caret or
	// selection touches.
	ByCharacter
	// Rich keeps the document structured: every annotation is a ruby node.
	Rich
	// ShowAll keeps the document flat and shows all markup raw.
	ShowAll
)

var policyNames = [...]string{
	ByParagraph: "by-paragraph",
	ByCharacter: "by-character",
	Rich:        "rich",
	ShowAll:     "show-all",
}

func (p AppearPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("AppearPolicy(%d)", uint8(p))
}

// ParsePolicy accepts the names printed by String, case-insensitively.
func ParsePolicy(s string) (AppearPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return AppearPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Persistent reports whether p pins the document to one representation
// until toggled.
func (p AppearPolicy) Persistent() bool { return p == Rich || p == ShowAll }

// Structured reports whether p requires the document in structured mode.
func (p AppearPolicy) Structured() bool { return p == Rich }

// Live reports whether p decorates flat text per render.
func (p AppearPolicy) Live() bool { return p == ByParagraph || p == ByCharacter }

// Restructurer converts the whole document between representations.
type Restructurer interface {
	Format() error
	Unformat() error
}

type treeRestructurer struct {
	t transform.Tree
}

// ForTree adapts t to Restructurer with FormatBuffer and UnformatBuffer.
func ForTree(t transform.Tree) Restructurer {
	return treeRestructurer{t: t}
}

func (r treeRestructurer) Format() error   { return transform.FormatBuffer(r.t) }
func (r treeRestructurer) Unformat() error { return transform.UnformatBuffer(r.t) }

// Toggle flips between the persistent policies: Rich unformats to ShowAll,
// anything else formats to Rich. On error the policy stays current.
func Toggle(current AppearPolicy, r Restructurer) (AppearPolicy, error) {
	if current == Rich {
		if err := r.Unformat(); err != nil {
			return current, fmt.Errorf("unformat: %w", err)
		}
		return ShowAll, nil
	}
	if err := r.Format(); err != nil {
		return current, fmt.Errorf("format: %w", err)
	}
	return Rich, nil
}

// Transition moves from current to next, formatting or unformatting only when
// the structural requirement changes.
func Transition(current, next AppearPolicy, r Restructurer) (AppearPolicy, error) {
	if int(next) >= len(policyNames) {
		return current, fmt.Errorf("%w: %d", ErrUnknownPolicy, next)
	}
	switch {
	case next.Structured() && !current.Structured():
		if err := r.Format(); err != nil {
			return current, fmt.Errorf("format: %w", err)
		}
	case !next.Structured() && current.Structured():
		if err := r.Unformat(); err != nil {
			return current, fmt.Errorf("unformat: %w", err)
		}
	}
	return next, nil
}
