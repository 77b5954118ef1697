package navigate

import "testing"

func TestRemap_Vertical(t *testing.T) {
	cases := []struct {
		key  Key
		want Action
	}{
		{Key{Arrow: ArrowLeft}, Action{Handled: true, Deferred: true, Modify: Modify{AlterMove, Forward, Line}}},
		{Key{Arrow: ArrowRight}, Action{Handled: true, Deferred: true, Modify: Modify{AlterMove, Backward, Line}}},
		{Key{Arrow: ArrowLeft, Shift: true}, Action{Handled: true, Deferred: true, Modify: Modify{AlterExtend, Forward, Line}}},
		{Key{Arrow: ArrowRight, Shift: true}, Action{Handled: true, Deferred: true, Modify: Modify{AlterExtend, Backward, Line}}},
		{Key{Arrow: ArrowUp}, Action{Handled: true, Modify: Modify{AlterMove, Backward, Character}}},
		{Key{Arrow: ArrowDown}, Action{Handled: true, Modify: Modify{AlterMove, Forward, Character}}},
		{Key{Arrow: ArrowUp, Shift: true}, Action{Handled: true, Modify: Modify{AlterExtend, Backward, Character}}},
		{Key{Arrow: ArrowOther}, Action{}},
		{Key{Arrow: ArrowOther, Shift: true}, Action{}},
	}
	for _, tc := range cases {
		if got := Remap(Vertical, tc.key); got != tc.want {
			t.Fatalf("Remap(%+v)=%+v, want %+v", tc.key, got, tc.want)
		}
	}
}

func TestRemap_HorizontalFallsThrough(t *testing.T) {
	for _, a := range []Arrow{ArrowLeft, ArrowRight, ArrowUp, ArrowDown, ArrowOther} {
		for _, shift := range []bool{false, true} {
			if got := Remap(Horizontal, Key{Arrow: a, Shift: shift}); got.Handled {
				t.Fatalf("horizontal %v shift=%v handled: %+v", a, shift, got)
			}
		}
	}
}

func TestModify_String(t *testing.T) {
	if got, want := (Modify{AlterExtend, Backward, Line}).String(), "extend backward line"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScheduler_FireCurrent(t *testing.T) {
	var s Scheduler
	m := Modify{AlterMove, Forward, Line}
	gen := s.Schedule(m)
	if !s.Pending() {
		t.Fatalf("expected pending effect")
	}
	got, ok := s.Fire(gen)
	if !ok || got != m {
		t.Fatalf("Fire=%v,%v, want %v", got, ok, m)
	}
	if _, ok := s.Fire(gen); ok {
		t.Fatalf("effect fired twice")
	}
}

func TestScheduler_SupersedeSettlesAndStalesFrame(t *testing.T) {
	var s Scheduler
	first := Modify{AlterMove, Forward, Line}
	gen := s.Schedule(first)

	got, ok := s.Supersede()
	if !ok || got != first {
		t.Fatalf("Supersede=%v,%v, want %v", got, ok, first)
	}
	if _, ok := s.Fire(gen); ok {
		t.Fatalf("stale frame fired")
	}
	if _, ok := s.Supersede(); ok {
		t.Fatalf("nothing should be pending")
	}
}

func TestScheduler_RescheduleStalesOlderFrame(t *testing.T) {
	var s Scheduler
	old := s.Schedule(Modify{AlterMove, Forward, Line})
	second := Modify{AlterExtend, Backward, Line}
	cur := s.Schedule(second)

	if _, ok := s.Fire(old); ok {
		t.Fatalf("older frame fired")
	}
	got, ok := s.Fire(cur)
	if !ok || got != second {
		t.Fatalf("Fire=%v,%v, want %v", got, ok, second)
	}
}
