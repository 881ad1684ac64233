package ime

import "testing"

// ToCodepoint always projects to one of three valid ranges — empty (0), a
// standalone compatibility jamo, or a complete syllable — no matter what
// sequence of keys produced the state.
func TestPropertyProjectionAlwaysValid(t *testing.T) {
	sequences := []string{
		"gks", "rrk", "rhk", "gksk", "ekfrk", "aaaa", "kkkk",
		"gagagaga", "ttttt", "rkrkrk",
	}
	for _, seq := range sequences {
		t.Run(seq, func(t *testing.T) {
			s := &State{}
			for i := 0; i < len(seq); i++ {
				s.ProcessKey2Bulsik(seq[i], false)
				cp := s.ToCodepoint()
				validProjection(t, cp)
			}
		})
	}
}

func validProjection(t *testing.T, cp rune) {
	t.Helper()
	switch {
	case cp == 0:
	case cp >= 0x3131 && cp <= 0x3163:
	case cp >= 0xAC00 && cp <= 0xD7A3:
	default:
		t.Errorf("ToCodepoint returned %U, outside empty/compat-jamo/syllable ranges", cp)
	}
}

// Every Backspace call that changes the state removes exactly one live
// slot, so the live-slot count strictly decreases until the buffer is
// empty, after which further backspaces are no-ops that keep projecting
// 0.
func TestPropertyBackspaceMonotonicallyShrinks(t *testing.T) {
	s := &State{}
	type2(s, "ekfr") // builds 닭: initial+medial+final(compound) all live

	count := func() int {
		n := 0
		if s.initial.live() {
			n++
		}
		if s.medial.live() {
			n++
		}
		if s.final.live() {
			n++
		}
		return n
	}

	prev := count()
	for !s.IsEmpty() {
		s.Backspace()
		cur := count()
		if cur >= prev {
			t.Fatalf("live slot count did not decrease: prev=%d cur=%d", prev, cur)
		}
		prev = cur
	}
	if cp := s.Backspace(); cp != 0 {
		t.Errorf("backspacing an empty state returned %c, want 0", cp)
	}
}

// Commit is idempotent — calling it again on an already-committed (now
// empty) state returns 0 and leaves the state empty.
func TestPropertyCommitIdempotent(t *testing.T) {
	s := &State{}
	type2(s, "gks")
	first := s.Commit()
	if first != '한' {
		t.Fatalf("first Commit() = %c, want 한", first)
	}
	if !s.IsEmpty() {
		t.Fatal("state should be empty after Commit")
	}
	second := s.Commit()
	if second != 0 {
		t.Errorf("second Commit() = %c, want 0", second)
	}
	if !s.IsEmpty() {
		t.Error("state should remain empty after a repeated Commit")
	}
}
