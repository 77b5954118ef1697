package document

import "fmt"

// Batch runs fn as one mutation: one version bump, one undo step, one
// change record. When fn fails the document is restored and the error is
// returned. Nested calls join the outer batch.
func (d *Document) Batch(fn func() error) error {
	if d.batch != nil {
		return fn()
	}

	prev := d.snapshot()
	cb := d.beginChange()
	d.batch = &cb
	err := fn()
	d.batch = nil
	if err != nil {
		d.restore(prev)
		return err
	}

	contentChanged := d.mode != prev.mode || !paragraphsEqual(prev.paras, d.paras)
	caretChanged := d.cursor != prev.cursor || !selectionStateEqual(prev.sel, d.sel)
	if !contentChanged && !caretChanged {
		return nil
	}
	if contentChanged || d.version == cb.versionBefore {
		d.version++
	}
	if contentChanged {
		d.recordUndo(prev)
	}
	d.commitChange(cb, prev)
	return nil
}

// SetMode switches the document representation. Leaving structured mode
// fails with ErrModeMismatch while any paragraph still holds a ruby.
func (d *Document) SetMode(m Mode) error {
	if m != ModeFlat && m != ModeStructured {
		return fmt.Errorf("%w: mode %d", ErrModeMismatch, m)
	}
	if m == d.mode {
		return nil
	}
	return d.Batch(func() error {
		next := make([]Paragraph, len(d.paras))
		for i, p := range d.paras {
			nodes, err := normalizeNodes(m, p.Nodes)
			if err != nil {
				return fmt.Errorf("paragraph %d: %w", i, err)
			}
			next[i] = Paragraph{Nodes: nodes}
		}
		d.mode = m
		d.paras = next
		d.clampSelection()
		return nil
	})
}

// ReplaceNodes swaps paragraph i's node sequence for nodes, normalized for
// the current mode. The swap is atomic: on error paragraph i is unchanged.
func (d *Document) ReplaceNodes(i int, nodes []Node) error {
	if i < 0 || i >= len(d.paras) {
		return fmt.Errorf("paragraph %d: %w", i, ErrInvalidPath)
	}
	next, err := normalizeNodes(d.mode, nodes)
	if err != nil {
		return fmt.Errorf("paragraph %d: %w", i, err)
	}
	return d.Batch(func() error {
		d.paras[i] = Paragraph{Nodes: next}
		d.clampSelection()
		return nil
	})
}

// InsertNode inserts n before the node at path. path.Node may equal the node
// count to append.
func (d *Document) InsertNode(path Path, n Node) error {
	if path.Para < 0 || path.Para >= len(d.paras) {
		return fmt.Errorf("paragraph %d: %w", path.Para, ErrInvalidPath)
	}
	nodes := d.paras[path.Para].Nodes
	if path.Node < 0 || path.Node > len(nodes) {
		return fmt.Errorf("node %d of paragraph %d: %w", path.Node, path.Para, ErrInvalidPath)
	}
	next := make([]Node, 0, len(nodes)+1)
	next = append(next, nodes[:path.Node]...)
	next = append(next, n)
	next = append(next, nodes[path.Node:]...)
	return d.ReplaceNodes(path.Para, next)
}

// RemoveNode removes the node at path. The paragraph is renormalized, so a
// removed ruby's neighbors merge.
func (d *Document) RemoveNode(path Path) error {
	if path.Para < 0 || path.Para >= len(d.paras) {
		return fmt.Errorf("paragraph %d: %w", path.Para, ErrInvalidPath)
	}
	nodes := d.paras[path.Para].Nodes
	if path.Node < 0 || path.Node >= len(nodes) {
		return fmt.Errorf("node %d of paragraph %d: %w", path.Node, path.Para, ErrInvalidPath)
	}
	next := make([]Node, 0, len(nodes)-1)
	next = append(next, nodes[:path.Node]...)
	next = append(next, nodes[path.Node+1:]...)
	return d.ReplaceNodes(path.Para, next)
}

// Normalize brings every paragraph into canonical form for the current mode
// and re-resolves the caret and selection.
func (d *Document) Normalize() error {
	return d.Batch(func() error {
		for i, p := range d.paras {
			nodes, err := normalizeNodes(d.mode, p.Nodes)
			if err != nil {
				return fmt.Errorf("paragraph %d: %w", i, err)
			}
			d.paras[i] = Paragraph{Nodes: nodes}
		}
		d.clampSelection()
		return nil
	})
}
