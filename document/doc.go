// Package document implements the paragraph/node tree edited by ved.
//
// A document is in one of two modes. In flat mode every paragraph is a single
// PlainText leaf holding raw markup. In structured mode a paragraph alternates
// PlainText and Ruby nodes.
//
// Offsets are 0-based rune indices into a node's displayed text: the text of
// a PlainText, or the body of a Ruby. A ruby's reading is never addressable.
package document
