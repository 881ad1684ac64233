package ime

import "github.com/hangulcore/ime/internal/layout"

// ProcessKey2Bulsik feeds one 2-Bulsik key event into the state (spec.md
// §4.4.2, §4.4.3). ch is the raw ASCII letter key and shifted reports
// whether the shift modifier was held; layout.Bulsik2Key does the
// physical-key-to-Ohi-index translation. Non-letter keys return
// ActionNoChange.
func (s *State) ProcessKey2Bulsik(ch byte, shifted bool) KeyResult {
	ohi, kind, ok := layout.Bulsik2Key(ch, shifted)
	if !ok {
		return KeyResult{Action: ActionNoChange}
	}
	if kind == layout.TokenConsonant {
		return s.feedConsonant(ohi)
	}
	return s.feedVowel(ohi)
}

// feedConsonant implements the consonant handler of spec.md §4.4.2.
func (s *State) feedConsonant(incoming int) KeyResult {
	medialLive := s.medial.live()
	finalLive := s.final.live()
	initialLive := s.initial.live()

	// Step 1: try absorbing incoming as the second half of a double
	// final, only while the current syllable has a medial and an
	// unflagged final already in place.
	triedDoubleFinal := medialLive && finalLive && !s.final.flag
	if triedDoubleFinal {
		if compound, ok := tryDoubleFinal(s.final.value, incoming); ok {
			s.final = liveSlot(compound, true)
			return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
	}

	branch2 := !medialLive ||
		triedDoubleFinal ||
		(initialLive && (!finalLive || !s.final.flag) && (finalLive || canFollowAsInitial(incoming)))

	if branch2 {
		// Step 2a: try double initial (only with no medial/final yet).
		if !medialLive && !finalLive && initialLive {
			if compound, ok := tryDoubleInitial(s.initial.value, incoming); ok {
				s.initial = liveSlot(compound, true)
				return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
			}
		}
		// Step 2b: finalize the current syllable (if any) and start a
		// new one with incoming as its initial.
		wasEmpty := s.IsEmpty()
		prev := s.ToCodepoint()
		s.Reset()
		s.initial = liveSlot(incoming, false)
		if wasEmpty {
			return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
		return KeyResult{Action: ActionEmitAndNew, PrevCP: prev, CurrentCP: s.ToCodepoint()}
	}

	// Step 3: extend the current syllable.
	if !initialLive {
		s.initial = liveSlot(incoming, false)
	} else if !finalLive {
		s.final = liveSlot(incoming, false)
	}
	return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
}

// feedVowel implements the vowel handler of spec.md §4.4.3. snapshot/wasEmpty
// are snapshotted before any mutation: blocking an un-doublable medial
// (step 1) discards its value, so "emit current" in step 3 must use the
// syllable as it stood when this key arrived, not the already-blocked
// state.
func (s *State) feedVowel(incoming int) KeyResult {
	wasEmpty := s.IsEmpty()
	snapshot := s.ToCodepoint()

	medialLive := s.medial.live()
	finalLive := s.final.live()
	initialLive := s.initial.live()

	// Step 1: try double-medial absorption; only eligible with a live,
	// unflagged medial and no final yet.
	if medialLive && !finalLive && !s.medial.flag {
		if compound, ok := tryDoubleMedial(s.medial.value, incoming); ok {
			s.medial = liveSlot(compound, true)
			return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
		// Eligible but the pair didn't match: block the medial position
		// so step 3 below starts a fresh syllable instead of silently
		// overwriting an un-doublable vowel.
		s.medial = slot{state: slotBlocked}
		medialLive = false
	}

	// Step 2: a complete syllable (initial+medial+final all live)
	// splits: the final migrates to become the next syllable's initial,
	// or — if it's a double final — its base stays behind and its
	// second half migrates.
	if initialLive && medialLive && finalLive {
		prev, cur := s.splitOnVowel(incoming)
		return KeyResult{Action: ActionEmitAndNew, PrevCP: prev, CurrentCP: cur}
	}

	// Step 3: start a new syllable, or extend the current one.
	if !initialLive || medialLive || s.medial.state == slotBlocked {
		s.Reset()
		s.medial = liveSlot(incoming, false)
		if wasEmpty {
			return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
		}
		return KeyResult{Action: ActionEmitAndNew, PrevCP: snapshot, CurrentCP: s.ToCodepoint()}
	}

	s.medial = liveSlot(incoming, false)
	return KeyResult{Action: ActionReplace, CurrentCP: s.ToCodepoint()}
}

// splitOnVowel resolves spec.md §4.4.3 step 2: the current final leaves
// this syllable to become the next syllable's initial. If the final is a
// compound, only its second jamo migrates and its base stays as this
// syllable's final.
func (s *State) splitOnVowel(incoming int) (prev, cur rune) {
	if base, second, ok := splitDoubleFinal(s.final.value); ok {
		s.final = liveSlot(base, false)
		prev = s.ToCodepoint()
		s.Reset()
		s.initial = liveSlot(second, false)
		s.medial = liveSlot(incoming, false)
		return prev, s.ToCodepoint()
	}

	migrating := s.final.value
	s.final = slot{}
	prev = s.ToCodepoint()
	s.Reset()
	s.initial = liveSlot(migrating, false)
	s.medial = liveSlot(incoming, false)
	return prev, s.ToCodepoint()
}
