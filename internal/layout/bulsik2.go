package layout

// TokenKind classifies a mapped key.
type TokenKind int

const (
	TokenNone TokenKind = iota
	TokenConsonant
	TokenVowel
)

// bulsik2Unshifted and bulsik2Shifted are the fixed 26-entry Ohi-index
// tables for the standard 2-Bulsik (Dubeolsik) layout, indexed by
// ascii_letter - 'a'. A value of 0 means "unmapped" (spec.md §4.3 —
// there is no Ohi index 0, so it doubles as the sentinel).
//
// Consonant keys live on q w e r t / a s d f g / z x c v; vowel keys on
// the remaining positions (y u i o p / h j k l / b n m). Shift only changes the five
// double-consonant keys (q w e r t) and the two y-vowel keys (o p) —
// this is the real physical Dubeolsik layout, not an invented one.
var bulsik2Unshifted = [26]int{
	17, // a -> ㅁ
	48, // b -> ㅠ
	26, // c -> ㅊ
	23, // d -> ㅇ
	7,  // e -> ㄷ
	9,  // f -> ㄹ
	30, // g -> ㅎ
	39, // h -> ㅗ
	33, // i -> ㅑ
	35, // j -> ㅓ
	31, // k -> ㅏ
	51, // l -> ㅣ
	49, // m -> ㅡ
	44, // n -> ㅜ
	32, // o -> ㅐ
	36, // p -> ㅔ
	18, // q -> ㅂ
	1,  // r -> ㄱ
	4,  // s -> ㄴ
	21, // t -> ㅅ
	37, // u -> ㅕ
	29, // v -> ㅍ
	24, // w -> ㅈ
	28, // x -> ㅌ
	43, // y -> ㅛ
	27, // z -> ㅋ
}

var bulsik2Shifted = [26]int{
	17, 48, 26, 23,
	8,  // E -> ㄸ
	9, 30, 39, 33, 35, 31, 51, 49, 44,
	34, // O -> ㅒ
	38, // P -> ㅖ
	19, // Q -> ㅃ
	2,  // R -> ㄲ
	4,
	22, // T -> ㅆ
	37, 29,
	25, // W -> ㅉ
	28, 43, 27,
}

// Bulsik2Key maps an ASCII letter key (with an optional shift state) to
// an Ohi index and its token kind. ok is false for non-letter keys
// (spec.md §4.3: "Non-letter keys return unmapped").
func Bulsik2Key(ch byte, shifted bool) (ohiIndex int, kind TokenKind, ok bool) {
	lower := ch
	if lower >= 'A' && lower <= 'Z' {
		lower = lower - 'A' + 'a'
	}
	if lower < 'a' || lower > 'z' {
		return 0, TokenNone, false
	}
	idx := int(lower - 'a')
	var ohi int
	if shifted {
		ohi = bulsik2Shifted[idx]
	} else {
		ohi = bulsik2Unshifted[idx]
	}
	if ohi == 0 {
		return 0, TokenNone, false
	}
	if ohi <= maxOhiConsonant {
		return ohi, TokenConsonant, true
	}
	return ohi, TokenVowel, true
}
