// Package editor provides a Bubble Tea component for editing ruby-annotated
// text, horizontally or in vertical columns.
//
// The package is responsible for input handling, layout of ruby bodies and
// readings, appear policy switching, deferred vertical line moves, and host
// integration hooks (clipboard and change events).
package editor
