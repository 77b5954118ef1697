package document

type docSnapshot struct {
	mode   Mode
	paras  []Paragraph
	cursor Point
	sel    selectionState
}

type historyState struct {
	undo []docSnapshot
	redo []docSnapshot
}

func (d *Document) snapshot() docSnapshot {
	return docSnapshot{
		mode:   d.mode,
		paras:  cloneParagraphs(d.paras),
		cursor: d.cursor,
		sel:    d.sel,
	}
}

func (d *Document) restore(s docSnapshot) {
	d.mode = s.mode
	d.paras = cloneParagraphs(s.paras)
	d.cursor = s.cursor
	d.sel = s.sel
	d.clampSelection()
}

func (d *Document) recordUndo(prev docSnapshot) {
	limit := d.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	d.hist.undo = append(d.hist.undo, prev)
	if len(d.hist.undo) > limit {
		d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
	}
	d.hist.redo = nil
}

// ResetHistory drops every undo and redo step. Hosts call it after loading
// so the initial state is not undoable.
func (d *Document) ResetHistory() {
	d.hist = historyState{}
}

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo restores the state before the last content change, mode included.
func (d *Document) Undo() bool {
	if len(d.hist.undo) == 0 || d.batch != nil {
		return false
	}

	cur := d.snapshot()
	change := d.beginChange()

	i := len(d.hist.undo) - 1
	prev := d.hist.undo[i]
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, cur)

	d.restore(prev)
	d.version++
	d.commitChange(change, cur)
	return true
}

func (d *Document) Redo() bool {
	if len(d.hist.redo) == 0 || d.batch != nil {
		return false
	}

	cur := d.snapshot()
	change := d.beginChange()

	i := len(d.hist.redo) - 1
	next := d.hist.redo[i]
	d.hist.redo = d.hist.redo[:i]

	limit := d.opt.HistoryLimit
	if limit > 0 {
		d.hist.undo = append(d.hist.undo, cur)
		if len(d.hist.undo) > limit {
			d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
		}
	}

	d.restore(next)
	d.version++
	d.commitChange(change, cur)
	return true
}

func paragraphsEqual(a, b []Paragraph) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i].Nodes) != len(b[i].Nodes) {
			return false
		}
		for j := range a[i].Nodes {
			if a[i].Nodes[j] != b[i].Nodes[j] {
				return false
			}
		}
	}
	return true
}
