package layout

// The reference IME algorithm indexes jamo slots with a sparse "Ohi"
// scheme: consonants share one index space (1..30, used partially as
// initials and partially/fully as finals) and vowels occupy a second,
// contiguous space (31..51). Both happen to satisfy
// ohi_index_to_single_jamo(i) = 0x3130 + i across the whole 1..51 range,
// since the compatibility jamo block starts at 0x3131 (spec.md §4.3).
const (
	maxOhiConsonant = 30
	minOhiVowel      = 31
	maxOhiVowel      = 51

	jamoBlockBase = 0x3130
)

// ohiInitialToIdx and ohiFinalToIdx are precomputed per spec.md §4.3 and
// §9 ("Layout data as const... never runtime-initialized"); -1 marks an
// Ohi consonant index that is not valid in that role.
var ohiInitialToIdx = [maxOhiConsonant + 1]int{
	-1, // 0 unused
	0,  // 1  ㄱ
	1,  // 2  ㄲ
	-1, // 3  ㄳ (final-only)
	2,  // 4  ㄴ
	-1, // 5  ㄵ (final-only)
	-1, // 6  ㄶ (final-only)
	3,  // 7  ㄷ
	4,  // 8  ㄸ
	5,  // 9  ㄹ
	-1, // 10 ㄺ (final-only)
	-1, // 11 ㄻ (final-only)
	-1, // 12 ㄼ (final-only)
	-1, // 13 ㄽ (final-only)
	-1, // 14 ㄾ (final-only)
	-1, // 15 ㄿ (final-only)
	-1, // 16 ㅀ (final-only)
	6,  // 17 ㅁ
	7,  // 18 ㅂ
	8,  // 19 ㅃ
	-1, // 20 ㅄ (final-only)
	9,  // 21 ㅅ
	10, // 22 ㅆ
	11, // 23 ㅇ
	12, // 24 ㅈ
	13, // 25 ㅉ
	14, // 26 ㅊ
	15, // 27 ㅋ
	16, // 28 ㅌ
	17, // 29 ㅍ
	18, // 30 ㅎ
}

var ohiFinalToIdx = [maxOhiConsonant + 1]int{
	0,  // 0 -> no final
	1,  // 1  ㄱ
	2,  // 2  ㄲ
	3,  // 3  ㄳ
	4,  // 4  ㄴ
	5,  // 5  ㄵ
	6,  // 6  ㄶ
	7,  // 7  ㄷ
	-1, // 8  ㄸ (initial-only)
	8,  // 9  ㄹ
	9,  // 10 ㄺ
	10, // 11 ㄻ
	11, // 12 ㄼ
	12, // 13 ㄽ
	13, // 14 ㄾ
	14, // 15 ㄿ
	15, // 16 ㅀ
	16, // 17 ㅁ
	17, // 18 ㅂ
	-1, // 19 ㅃ (initial-only)
	18, // 20 ㅄ
	19, // 21 ㅅ
	20, // 22 ㅆ
	21, // 23 ㅇ
	22, // 24 ㅈ
	-1, // 25 ㅉ (initial-only)
	23, // 26 ㅊ
	24, // 27 ㅋ
	25, // 28 ㅌ
	26, // 29 ㅍ
	27, // 30 ㅎ
}

// OhiInitialToIdx converts an Ohi consonant index to a 0..18 codec
// initial index. ok is false if ohi is not valid as an initial.
func OhiInitialToIdx(ohi int) (int, bool) {
	if ohi < 1 || ohi > maxOhiConsonant {
		return 0, false
	}
	idx := ohiInitialToIdx[ohi]
	return idx, idx != -1
}

// OhiFinalToIdx converts an Ohi consonant index (0 meaning "no final")
// to a 0..27 codec final index. ok is false if ohi is not valid as a
// final.
func OhiFinalToIdx(ohi int) (int, bool) {
	if ohi < 0 || ohi > maxOhiConsonant {
		return 0, false
	}
	idx := ohiFinalToIdx[ohi]
	return idx, idx != -1
}

// OhiMedialToIdx converts an Ohi vowel index (31..51) to a 0..20 codec
// medial index.
func OhiMedialToIdx(ohi int) (int, bool) {
	if ohi < minOhiVowel || ohi > maxOhiVowel {
		return 0, false
	}
	return ohi - minOhiVowel, true
}

// OhiIndexToSingleJamo returns the standalone compatibility-jamo code
// point for a partial IME state holding only this Ohi slot value.
func OhiIndexToSingleJamo(ohi int) rune {
	return rune(jamoBlockBase + ohi)
}

// IsValidOhiInitial reports whether ohi is one of the 19 Ohi values
// usable as a syllable initial.
func IsValidOhiInitial(ohi int) bool {
	_, ok := OhiInitialToIdx(ohi)
	return ok
}

// IsValidOhiFinal reports whether ohi is usable as a syllable final
// (0 — "no final" — counts as valid).
func IsValidOhiFinal(ohi int) bool {
	_, ok := OhiFinalToIdx(ohi)
	return ok
}
