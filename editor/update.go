package editor

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/document"
	"github.com/iw2rmb/ved/navigate"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case frameMsg:
		if mod, ok := m.sched.Fire(msg.gen); ok {
			m.applyModify(mod)
		}
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Also picks up mutations the host made outside the editor.
	m.sync()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.doc == nil {
		return m, nil
	}

	// A deferred move lands before the next key is handled.
	m.settlePending()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	if k, ok := m.arrowKey(msg); ok {
		return m.handleArrow(k)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.WordBackward):
		m.doc.Move(document.Move{Unit: document.MoveWord, Dir: document.DirBackward})
	case key.Matches(msg, km.WordForward):
		m.doc.Move(document.Move{Unit: document.MoveWord, Dir: document.DirForward})

	case key.Matches(msg, km.Home):
		m.doc.Move(document.Move{Unit: document.MoveParagraph, Dir: document.DirStart})
	case key.Matches(msg, km.End):
		m.doc.Move(document.Move{Unit: document.MoveParagraph, Dir: document.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.edit("delete", m.doc.DeleteBackward())
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.edit("delete", m.doc.DeleteForward())
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.edit("newline", m.doc.InsertNewline())
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly && m.doc.Undo() {
			m.syncPolicyToMode()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly && m.doc.Redo() {
			m.syncPolicyToMode()
		}

	case key.Matches(msg, km.ToggleFormat):
		m.toggle()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.insertText("\t")
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// arrowKey maps the arrow bindings onto the remapper's key.
func (m Model) arrowKey(msg tea.KeyMsg) (navigate.Key, bool) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		return navigate.Key{Arrow: navigate.ArrowLeft}, true
	case key.Matches(msg, km.Right):
		return navigate.Key{Arrow: navigate.ArrowRight}, true
	case key.Matches(msg, km.Up):
		return navigate.Key{Arrow: navigate.ArrowUp}, true
	case key.Matches(msg, km.Down):
		return navigate.Key{Arrow: navigate.ArrowDown}, true
	case key.Matches(msg, km.ShiftLeft):
		return navigate.Key{Arrow: navigate.ArrowLeft, Shift: true}, true
	case key.Matches(msg, km.ShiftRight):
		return navigate.Key{Arrow: navigate.ArrowRight, Shift: true}, true
	case key.Matches(msg, km.ShiftUp):
		return navigate.Key{Arrow: navigate.ArrowUp, Shift: true}, true
	case key.Matches(msg, km.ShiftDown):
		return navigate.Key{Arrow: navigate.ArrowDown, Shift: true}, true
	default:
		return navigate.Key{}, false
	}
}

func (m Model) handleArrow(k navigate.Key) (Model, tea.Cmd) {
	act := navigate.Remap(m.cfg.Direction, k)
	if !act.Handled {
		m.applyModify(horizontalModify(k))
		return m, nil
	}
	if !act.Deferred {
		m.applyModify(act.Modify)
		return m, nil
	}

	// The line move needs a settled tree: normalize now, move next frame.
	if err := m.doc.Normalize(); err != nil {
		m.log.Error("normalize before line move failed", "error", err.Error())
	}
	gen := m.sched.Schedule(act.Modify)
	m.log.Debug("line move deferred", "modify", act.Modify.String(), "generation", gen)
	return m, tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// horizontalModify is the default arrow handling for horizontal text.
func horizontalModify(k navigate.Key) navigate.Modify {
	mod := navigate.Modify{Granularity: navigate.Character}
	if k.Shift {
		mod.Alter = navigate.AlterExtend
	}
	switch k.Arrow {
	case navigate.ArrowLeft:
		mod.Direction = navigate.Backward
	case navigate.ArrowRight:
		mod.Direction = navigate.Forward
	case navigate.ArrowUp:
		mod.Direction = navigate.Backward
		mod.Granularity = navigate.Line
	case navigate.ArrowDown:
		mod.Direction = navigate.Forward
		mod.Granularity = navigate.Line
	}
	return mod
}

// settlePending applies a deferred move whose frame has not fired yet.
func (m *Model) settlePending() {
	if mod, ok := m.sched.Supersede(); ok {
		m.applyModify(mod)
	}
}

func (m *Model) applyModify(mod navigate.Modify) {
	extend := mod.Alter == navigate.AlterExtend
	if mod.Granularity == navigate.Line {
		m.moveVisualLine(mod.Direction, extend)
		return
	}
	dir := document.DirForward
	if mod.Direction == navigate.Backward {
		dir = document.DirBackward
	}
	m.doc.Move(document.Move{Unit: document.MoveCharacter, Dir: dir, Extend: extend})
}

// moveVisualLine moves the caret to the same slot of the neighboring visual
// line. Past the first or last line the caret stays put.
func (m *Model) moveVisualLine(dir navigate.Direction, extend bool) {
	m.relayout()
	line, slot, ok := m.cursorLine()
	if !ok {
		return
	}
	target := line + 1
	if dir == navigate.Backward {
		target = line - 1
	}
	if target < 0 || target >= len(m.lay.lines) {
		return
	}
	para, off := m.lay.offsetAt(target, slot)
	pt, ok := m.doc.PointFromDisplayOffset(para, off, document.ConvertPolicy{ClampMode: document.OffsetClamp})
	if !ok {
		return
	}
	m.doc.MoveTo(pt, extend)
}

func (m *Model) toggle() {
	next, err := decorate.Toggle(m.policy, decorate.ForTree(m.doc))
	if err != nil {
		m.log.Error("toggle ruby format failed", "policy", m.policy.String(), "error", err.Error())
		return
	}
	m.setPolicy(next)
}

func (m *Model) insertText(s string) {
	m.edit("insert", m.doc.InsertText(s))
}

// edit logs the outcome of a document edit. A refused edit leaves the
// document as it was.
func (m *Model) edit(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, document.ErrRubyBody), errors.Is(err, document.ErrRubyMarkup):
		m.log.Debug(op+" refused", "error", err.Error())
	default:
		m.log.Error(op+" failed", "error", err.Error())
	}
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Error("clipboard write failed", "error", err.Error())
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if _, ok := m.doc.Selection(); !ok {
		return
	}
	m.copySelection()
	m.edit("cut", m.doc.DeleteSelection())
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Error("clipboard read failed", "error", err.Error())
		return
	}
	if s == "" {
		return
	}
	m.insertText(normalizeNewlines(s))
}

// selectedText returns the displayed text of the selection, paragraphs joined
// by newlines.
func (m *Model) selectedText() string {
	r, ok := m.doc.Selection()
	if !ok {
		return ""
	}
	clamp := document.ConvertPolicy{ClampMode: document.OffsetClamp}
	sp, so, _ := m.doc.DisplayOffsetFromPoint(r.Start, clamp)
	ep, eo, _ := m.doc.DisplayOffsetFromPoint(r.End, clamp)

	var sb strings.Builder
	for i := sp; i <= ep; i++ {
		para, ok := m.doc.Paragraph(i)
		if !ok {
			break
		}
		rr := []rune(para.DisplayText())
		start, end := 0, len(rr)
		if i == sp {
			start = so
		}
		if i == ep {
			end = eo
		}
		if i > sp {
			sb.WriteByte('\n')
		}
		if start < end && end <= len(rr) {
			sb.WriteString(string(rr[start:end]))
		}
	}
	return sb.String()
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
