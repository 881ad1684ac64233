package ime

// Backspace removes one logical step from the composition buffer
// (spec.md §4.4.5): the rightmost non-empty slot (final, then medial,
// then initial) is cleared along with its flag, whether it held a single
// or a double-formed jamo — one Backspace always removes exactly one
// slot, never just half of a double jamo. It returns the resulting
// projection.
func (s *State) Backspace() rune {
	switch {
	case s.final.live():
		s.final = slot{}
	case s.medial.live():
		s.medial = slot{}
	case s.initial.live():
		s.initial = slot{}
	}
	return s.ToCodepoint()
}
