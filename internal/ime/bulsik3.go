package ime

import "github.com/hangulcore/ime/internal/layout"

// ProcessKey3Bulsik feeds one 3-Bulsik key event into the state (spec.md
// §4.4.4). Every key unambiguously names its jamo role (초성/중성/종성) or
// is a punctuation literal, so there is no consonant/vowel dispatch
// ambiguity. Compound vowels are formed only by absorbing a second key
// into the live medial, exactly as in 2-Bulsik; double consonants have
// keys of their own and can also be formed by absorption.
func (s *State) ProcessKey3Bulsik(ascii byte) Key3Result {
	value, kind, ok := layout.Bulsik3Key(ascii)
	if !ok {
		return Key3Result{Action: ActionNoChange}
	}
	switch kind {
	case layout.Key3Initial:
		return s.feedCho(value)
	case layout.Key3Medial:
		return s.feedJung(value)
	case layout.Key3Final:
		return s.feedJong(value)
	default:
		return s.feedLiteral(rune(value))
	}
}

// feedCho implements spec.md §4.4.4's 초성 handler.
func (s *State) feedCho(incoming int) Key3Result {
	if s.initial.live() && !s.medial.live() && !s.initial.flag {
		if compound, ok := tryDoubleInitial(s.initial.value, incoming); ok {
			s.initial = liveSlot(compound, true)
			return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
	}
	if !s.IsEmpty() {
		prev := s.ToCodepoint()
		s.Reset()
		s.initial = liveSlot(incoming, false)
		return Key3Result{Action: ActionEmitAndNew, PrevCP: prev, CurrentCP: s.ToCodepoint()}
	}
	s.initial = liveSlot(incoming, false)
	return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
}

// feedJung implements spec.md §4.4.4's 중성 handler. snapshot/wasEmpty are
// snapshotted before any mutation, since blocking an un-doublable medial
// discards its value the same way it does in the 2-Bulsik vowel handler
// (bulsik2.go's feedVowel).
func (s *State) feedJung(incoming int) Key3Result {
	wasEmpty := s.IsEmpty()
	snapshot := s.ToCodepoint()

	medialBlocked := false
	if s.medial.live() && !s.final.live() && !s.medial.flag {
		if compound, ok := tryDoubleMedial(s.medial.value, incoming); ok {
			s.medial = liveSlot(compound, true)
			return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
		s.medial = slot{state: slotBlocked}
		medialBlocked = true
	}

	initialLive := s.initial.live()
	medialLive := s.medial.live()
	finalLive := s.final.live()
	cond := (!initialLive || medialLive) && (!s.medial.flag || finalLive)

	if cond || medialBlocked {
		s.Reset()
		s.medial = liveSlot(incoming, false)
		if wasEmpty {
			return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
		return Key3Result{Action: ActionEmitAndNew, PrevCP: snapshot, CurrentCP: s.ToCodepoint()}
	}

	// Add medial to the existing initial in place.
	s.medial = liveSlot(incoming, false)
	return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
}

// feedJong implements spec.md §4.4.4's 종성 handler. A 종성 key extends an
// already-live initial+medial pair in place (no reset). Only when no such
// pair is active does it fall to the "emit current, start over" branch —
// the lone-종성 case spec.md §9's Design Notes calls out as a transient
// I3 exception: this implementation resolves it (SPEC_FULL.md §12) by
// committing the lone 종성 immediately rather than leaving it sitting in
// the state as an orphan final.
func (s *State) feedJong(incoming int) Key3Result {
	wasEmpty := s.IsEmpty()
	prev := s.ToCodepoint()

	if s.final.live() && !s.final.flag {
		if compound, ok := tryDoubleFinal(s.final.value, incoming); ok {
			s.final = liveSlot(compound, true)
			return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
		// Absorb failed; final is already live (part of a real syllable),
		// so the extend condition below is false regardless — no need to
		// block it, unlike feedJung's medial.
	}

	if s.initial.live() && s.medial.live() && s.final.state == slotEmpty {
		s.final = liveSlot(incoming, false)
		return Key3Result{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
	}

	s.Reset()
	s.final = liveSlot(incoming, false)
	lone := s.ToCodepoint()
	s.Reset()
	if wasEmpty {
		// Nothing preceded this key: the lone 종성 itself is the only
		// thing to commit, and nothing remains pending.
		return Key3Result{Action: ActionEmitAndNew, PrevCP: lone, CurrentCP: 0}
	}
	// Commit the previous syllable and the lone 종성 together; the state
	// is already empty, so nothing stays in composition.
	return Key3Result{Action: ActionLiteral, PrevCP: prev, LiteralCP: lone}
}

// feedLiteral implements spec.md §4.4.4's punctuation-key handler: commit
// whatever syllable is in progress, then emit cp as a standalone literal.
func (s *State) feedLiteral(cp rune) Key3Result {
	wasEmpty := s.IsEmpty()
	prev := s.ToCodepoint()
	if !wasEmpty {
		s.Reset()
	}
	return Key3Result{Action: ActionLiteral, PrevCP: prev, LiteralCP: cp}
}
