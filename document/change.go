package document

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit replaces paragraphs [Paragraph, Paragraph+len(Deleted)) with
// Inserted. Both sides hold paragraph markup.
type AppliedEdit struct {
	Paragraph int
	Deleted   []string
	Inserted  []string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	DocumentID      string
	VersionBefore   uint64
	VersionAfter    uint64
	ModeBefore      Mode
	ModeAfter       Mode
	CursorBefore    Point
	CursorAfter     Point
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// TextChanged reports whether any paragraph markup changed.
func (c Change) TextChanged() bool { return len(c.AppliedEdits) > 0 }

type changeBuilder struct {
	versionBefore   uint64
	modeBefore      Mode
	cursorBefore    Point
	selectionBefore SelectionState
}

// LastChange returns the most recent effective change.
func (d *Document) LastChange() (Change, bool) {
	if !d.hasLastChange {
		return Change{}, false
	}
	return cloneChange(d.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = make([]AppliedEdit, len(in.AppliedEdits))
	for i, e := range in.AppliedEdits {
		out.AppliedEdits[i] = AppliedEdit{
			Paragraph: e.Paragraph,
			Deleted:   append([]string(nil), e.Deleted...),
			Inserted:  append([]string(nil), e.Inserted...),
		}
	}
	return out
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (d *Document) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:   d.version,
		modeBefore:      d.mode,
		cursorBefore:    d.cursor,
		selectionBefore: selectionStateFromInternal(d.sel),
	}
}

func (d *Document) commitChange(cb changeBuilder, before docSnapshot) {
	if d.version == cb.versionBefore {
		return
	}
	d.lastChange = Change{
		DocumentID:      d.id,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    d.version,
		ModeBefore:      cb.modeBefore,
		ModeAfter:       d.mode,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     d.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(d.sel),
	}
	if e, ok := paragraphEdit(before.paras, d.paras); ok {
		d.lastChange.AppliedEdits = []AppliedEdit{e}
	}
	d.hasLastChange = true
}

// paragraphEdit trims the common leading and trailing paragraphs of before
// and after, comparing markup, and reports the replaced middle.
func paragraphEdit(before, after []Paragraph) (AppliedEdit, bool) {
	bm := markupLines(before)
	am := markupLines(after)

	lead := 0
	for lead < len(bm) && lead < len(am) && bm[lead] == am[lead] {
		lead++
	}
	trail := 0
	for trail < len(bm)-lead && trail < len(am)-lead && bm[len(bm)-1-trail] == am[len(am)-1-trail] {
		trail++
	}
	if lead == len(bm) && lead == len(am) {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		Paragraph: lead,
		Deleted:   append([]string(nil), bm[lead:len(bm)-trail]...),
		Inserted:  append([]string(nil), am[lead:len(am)-trail]...),
	}, true
}

func markupLines(paras []Paragraph) []string {
	out := make([]string, len(paras))
	for i, p := range paras {
		out[i], _ = p.Markup()
	}
	return out
}
