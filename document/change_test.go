package document

import "testing"

func TestLastChange_TextEdit(t *testing.T) {
	d := New("ab\ncd\nef", Options{ID: "doc"})
	d.SetCursor(pt(1, 0, 2))

	if err := d.InsertText("\nX"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	c, ok := d.LastChange()
	if !ok {
		t.Fatalf("missing change")
	}
	if c.DocumentID != "doc" {
		t.Fatalf("document id=%q, want %q", c.DocumentID, "doc")
	}
	if c.VersionAfter != c.VersionBefore+1 {
		t.Fatalf("versions %d -> %d", c.VersionBefore, c.VersionAfter)
	}
	if got, want := len(c.AppliedEdits), 1; got != want {
		t.Fatalf("edits=%d, want %d", got, want)
	}
	e := c.AppliedEdits[0]
	if e.Paragraph != 2 || len(e.Deleted) != 0 {
		t.Fatalf("edit=%+v", e)
	}
	if len(e.Inserted) != 1 || e.Inserted[0] != "X" {
		t.Fatalf("inserted=%q", e.Inserted)
	}
	if got, want := c.CursorAfter, pt(2, 0, 1); got != want {
		t.Fatalf("cursor after=%v, want %v", got, want)
	}
}

func TestLastChange_ModeOnly(t *testing.T) {
	d := New("a", Options{})
	if err := d.SetMode(ModeStructured); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	c, ok := d.LastChange()
	if !ok {
		t.Fatalf("missing change")
	}
	if c.ModeBefore != ModeFlat || c.ModeAfter != ModeStructured {
		t.Fatalf("modes %v -> %v", c.ModeBefore, c.ModeAfter)
	}
	if c.TextChanged() {
		t.Fatalf("mode switch must not report text edits")
	}
}

func TestLastChange_IsCopy(t *testing.T) {
	d := New("a", Options{})
	_ = d.InsertText("b")
	c, _ := d.LastChange()
	c.AppliedEdits[0].Inserted[0] = "mutated"
	again, _ := d.LastChange()
	if again.AppliedEdits[0].Inserted[0] == "mutated" {
		t.Fatalf("LastChange leaked internal state")
	}
}
