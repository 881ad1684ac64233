package codec

// Jamo holds the three decomposed components of a Hangul syllable.
// Final == 0 means the syllable has no trailing consonant.
type Jamo struct {
	Initial rune
	Medial  rune
	Final   rune
}

// IsSyllable reports whether cp is a precomposed Hangul syllable.
func IsSyllable(cp rune) bool {
	return cp >= SyllableLo && cp <= SyllableHi
}

// Decompose splits a Hangul syllable into its compatibility-jamo
// components via the composition identity. ok is false if cp is not a
// syllable.
func Decompose(cp rune) (jamo Jamo, ok bool) {
	if !IsSyllable(cp) {
		return Jamo{}, false
	}
	offset := int(cp) - SyllableLo
	initialIdx := offset / (numMedials * numFinals)
	rem := offset % (numMedials * numFinals)
	medialIdx := rem / numFinals
	finalIdx := rem % numFinals

	return Jamo{
		Initial: initialTable[initialIdx],
		Medial:  medialTable[medialIdx],
		Final:   finalTable[finalIdx],
	}, true
}

// Compose is the reverse of Decompose: given compatibility jamo (finalCP
// may be 0 meaning "no final"), returns the corresponding syllable. ok is
// false if any input is not a recognized jamo of the expected role.
func Compose(initialCP, medialCP, finalCP rune) (cp rune, ok bool) {
	initialIdx, ok := lookupInitial(initialCP)
	if !ok {
		return 0, false
	}
	medialIdx, ok := lookupMedial(medialCP)
	if !ok {
		return 0, false
	}
	finalIdx := 0
	if finalCP != 0 {
		finalIdx, ok = lookupFinal(finalCP)
		if !ok {
			return 0, false
		}
	}
	syllable := SyllableLo + initialIdx*numMedials*numFinals + medialIdx*numFinals + finalIdx
	return rune(syllable), true
}

// ComposeIdx composes a syllable directly from 0-based component indices
// (initial 0..18, medial 0..20, final 0..27 with 0 meaning no final),
// bypassing the compatibility-jamo round trip. Callers that already hold
// indices (such as the IME state machine's Ohi-to-codec conversion) use
// this instead of Compose to avoid an extra rune lookup.
func ComposeIdx(initialIdx, medialIdx, finalIdx int) (cp rune, ok bool) {
	if initialIdx < 0 || initialIdx >= numInitials {
		return 0, false
	}
	if medialIdx < 0 || medialIdx >= numMedials {
		return 0, false
	}
	if finalIdx < 0 || finalIdx >= numFinals {
		return 0, false
	}
	syllable := SyllableLo + initialIdx*numMedials*numFinals + medialIdx*numFinals + finalIdx
	return rune(syllable), true
}

func lookupInitial(cp rune) (int, bool) {
	if cp < JamoLo || cp > JamoHi {
		return 0, false
	}
	idx := reverseInitial[cp-JamoLo]
	return idx, idx != notFound
}

func lookupMedial(cp rune) (int, bool) {
	if cp < JamoLo || cp > JamoHi {
		return 0, false
	}
	idx := reverseMedial[cp-JamoLo]
	return idx, idx != notFound
}

func lookupFinal(cp rune) (int, bool) {
	if cp < JamoLo || cp > JamoHi {
		return 0, false
	}
	idx := reverseFinal[cp-JamoLo]
	return idx, idx != notFound
}

// HasFinal reports whether the syllable cp has a trailing consonant.
func HasFinal(cp rune) bool {
	jamo, ok := Decompose(cp)
	return ok && jamo.Final != 0
}

// GetInitial returns the initial consonant of cp, or (0, false) if cp is
// not a syllable.
func GetInitial(cp rune) (rune, bool) {
	jamo, ok := Decompose(cp)
	if !ok {
		return 0, false
	}
	return jamo.Initial, true
}

// GetMedial returns the medial vowel of cp, or (0, false) if cp is not a
// syllable.
func GetMedial(cp rune) (rune, bool) {
	jamo, ok := Decompose(cp)
	if !ok {
		return 0, false
	}
	return jamo.Medial, true
}

// GetFinal returns the final consonant of cp (0 if absent), or (0, false)
// if cp is not a syllable.
func GetFinal(cp rune) (rune, bool) {
	jamo, ok := Decompose(cp)
	if !ok {
		return 0, false
	}
	return jamo.Final, true
}

// IsJamo reports whether cp falls in the compatibility jamo block.
func IsJamo(cp rune) bool {
	return cp >= JamoLo && cp <= JamoHi
}

// IsConsonant reports whether cp is a compatibility-jamo consonant
// (recognized as an initial or a final).
func IsConsonant(cp rune) bool {
	if !IsJamo(cp) {
		return false
	}
	_, isInitial := lookupInitial(cp)
	if isInitial {
		return true
	}
	_, isFinal := lookupFinal(cp)
	return isFinal
}

// IsVowel reports whether cp is a compatibility-jamo vowel (a medial).
func IsVowel(cp rune) bool {
	_, ok := lookupMedial(cp)
	return ok
}

// IsDoubleConsonant reports whether cp is one of the five compound
// consonants (ㄲ ㄸ ㅃ ㅆ ㅉ).
func IsDoubleConsonant(cp rune) bool {
	return doubleConsonants[cp]
}

// IsDoubleVowel reports whether cp is one of the compound vowels
// (ㅘ ㅙ ㅚ ㅝ ㅞ ㅟ ㅢ).
func IsDoubleVowel(cp rune) bool {
	return doubleVowels[cp]
}
