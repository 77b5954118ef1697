package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tliron/commonlog"

	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/document"
	"github.com/iw2rmb/ved/navigate"
)

// Model is a Bubble Tea component that renders and edits a ruby document.
type Model struct {
	cfg Config
	doc *document.Document
	log commonlog.Logger

	policy decorate.AppearPolicy
	// flatPolicy is restored when undo leaves structured mode.
	flatPolicy decorate.AppearPolicy

	focused bool

	width, height int
	viewport      viewport.Model
	colOffset     int // first visible column, counted from the right

	sched navigate.Scheduler
	lay   layout

	mouseDragging bool

	lastVersion uint64
	lastPolicy  decorate.AppearPolicy
}

// frameMsg fires a deferred line move scheduled under gen.
type frameMsg struct {
	gen uint64
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		doc:      document.New(normalizeNewlines(cfg.Text), document.Options{HistoryLimit: cfg.HistoryLimit}),
		log:      cfg.Logger,
		policy:   cfg.Policy,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.flatPolicy = decorate.ShowAll
	if m.policy.Live() {
		m.flatPolicy = m.policy
	}
	if m.policy.Structured() {
		if err := decorate.ForTree(m.doc).Format(); err != nil {
			m.log.Error("initial format failed", "error", err.Error())
			m.policy = decorate.ShowAll
		}
		m.doc.ResetHistory()
	}
	m.lastVersion = m.doc.Version()
	m.lastPolicy = m.policy
	m.rebuildContent()
	return m
}

func (m Model) Document() *document.Document { return m.doc }

func (m Model) Policy() decorate.AppearPolicy { return m.policy }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Direction() navigate.WritingDirection { return m.cfg.Direction }

// SetPolicy switches the appear policy, restructuring the document when the
// structured requirement changes. On error the model is unchanged.
func (m Model) SetPolicy(p decorate.AppearPolicy) (Model, error) {
	m.settlePending()
	next, err := decorate.Transition(m.policy, p, decorate.ForTree(m.doc))
	if err != nil {
		m.log.Error("policy transition failed", "from", m.policy.String(), "to", p.String(), "error", err.Error())
		m.sync()
		return m, err
	}
	m.setPolicy(next)
	m.sync()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

func (m *Model) setPolicy(next decorate.AppearPolicy) {
	if next == m.policy {
		return
	}
	prev := m.policy
	m.policy = next
	if next.Live() || next == decorate.ShowAll {
		m.flatPolicy = next
	}
	m.log.Info("appear policy changed", "from", prev.String(), "to", next.String())
	if m.cfg.OnPolicyChange != nil {
		m.cfg.OnPolicyChange(prev, next)
	}
}

// syncPolicyToMode realigns the policy after undo or redo crossed a mode
// change.
func (m *Model) syncPolicyToMode() {
	structured := m.doc.Mode() == document.ModeStructured
	switch {
	case structured && !m.policy.Structured():
		m.setPolicy(decorate.Rich)
	case !structured && m.policy.Structured():
		m.setPolicy(m.flatPolicy)
	}
}

// sync relays out after any change to the document or policy and reports it
// to the host.
func (m *Model) sync() {
	ver := m.doc.Version()
	if ver == m.lastVersion && m.policy == m.lastPolicy {
		return
	}
	m.lastVersion = ver
	m.lastPolicy = m.policy
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.doc, m.policy))
	}
}

func (m *Model) layoutParams() layoutParams {
	p := layoutParams{
		Policy:    m.policy,
		Direction: m.cfg.Direction,
		Brackets:  m.cfg.ReadingBrackets,
	}
	// One cell stays free for the caret past a full line.
	if m.cfg.Direction == navigate.Vertical {
		p.Capacity = m.height - 1
	} else {
		p.Capacity = m.width - 1
	}
	return p
}

// selectionSpan returns the caret or selection in display offsets.
func (m *Model) selectionSpan() caretSpan {
	clamp := document.ConvertPolicy{ClampMode: document.OffsetClamp}
	if r, ok := m.doc.Selection(); ok {
		sp, so, _ := m.doc.DisplayOffsetFromPoint(r.Start, clamp)
		ep, eo, _ := m.doc.DisplayOffsetFromPoint(r.End, clamp)
		return caretSpan{StartPara: sp, StartOff: so, EndPara: ep, EndOff: eo, Active: true}
	}
	para, off, _ := m.doc.DisplayOffsetFromPoint(m.doc.Cursor(), clamp)
	return caretSpan{StartPara: para, StartOff: off, EndPara: para, EndOff: off, Active: true}
}

func (m *Model) relayout() {
	m.lay = buildLayout(m.doc, m.layoutParams(), m.selectionSpan())
}

func (m *Model) rebuildContent() {
	m.relayout()
	m.viewport.SetContent(m.renderContent())
}

// cursorLine returns the visual line and slot of the caret.
func (m *Model) cursorLine() (line, slot int, ok bool) {
	para, off, _ := m.doc.DisplayOffsetFromPoint(m.doc.Cursor(), document.ConvertPolicy{ClampMode: document.OffsetClamp})
	return m.lay.locate(para, off)
}
