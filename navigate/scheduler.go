package navigate

// Scheduler holds at most one deferred Modify until its frame fires.
//
// Each Schedule returns a generation. A frame carrying an older generation
// is stale and fires nothing. A new keystroke calls Supersede first, which
// hands back the pending effect so the caller can settle it before handling
// the key.
//
// A Scheduler is used from one goroutine, the UI update loop.
type Scheduler struct {
	gen     uint64
	pending Modify
	has     bool
}

// Schedule replaces any pending effect with m and returns its generation.
func (s *Scheduler) Schedule(m Modify) uint64 {
	s.gen++
	s.pending = m
	s.has = true
	return s.gen
}

// Pending reports whether an effect is waiting for its frame.
func (s *Scheduler) Pending() bool { return s.has }

// Supersede takes the pending effect, if any. The frame scheduled for it
// will fire nothing.
func (s *Scheduler) Supersede() (Modify, bool) {
	if !s.has {
		return Modify{}, false
	}
	m := s.pending
	s.pending = Modify{}
	s.has = false
	return m, true
}

// Fire takes the pending effect when gen is the current generation.
func (s *Scheduler) Fire(gen uint64) (Modify, bool) {
	if !s.has || gen != s.gen {
		return Modify{}, false
	}
	return s.Supersede()
}
