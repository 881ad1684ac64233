package bridge

import "github.com/hangulcore/ime/internal/codec"

// These re-export internal/codec's pure functions at the bridge boundary
// so a host only ever imports one package for both the stateless codec
// and the stateful session operations in session.go.

func IsHangulSyllable(cp rune) bool   { return codec.IsSyllable(cp) }
func HasFinal(cp rune) bool           { return codec.HasFinal(cp) }
func GetInitial(cp rune) (rune, bool) { return codec.GetInitial(cp) }
func GetMedial(cp rune) (rune, bool)  { return codec.GetMedial(cp) }
func GetFinal(cp rune) (rune, bool)   { return codec.GetFinal(cp) }
func Compose(initialCP, medialCP, finalCP rune) (rune, bool) {
	return codec.Compose(initialCP, medialCP, finalCP)
}
func Decompose(cp rune) (codec.Jamo, bool) { return codec.Decompose(cp) }
func IsJamo(cp rune) bool                  { return codec.IsJamo(cp) }
func IsConsonant(cp rune) bool             { return codec.IsConsonant(cp) }
func IsVowel(cp rune) bool                 { return codec.IsVowel(cp) }
func IsDoubleConsonant(cp rune) bool       { return codec.IsDoubleConsonant(cp) }
func IsDoubleVowel(cp rune) bool           { return codec.IsDoubleVowel(cp) }

// DecomposeString and ComposeString are stateless per SPEC_FULL.md §8 (no
// Handle parameter) and so allocate with a plain make(), same as
// internal/codec. A session's own arena backs the marshalling buffer for
// the session-scoped equivalents, DecomposeStringFor/ComposeStringFor in
// session.go.
func DecomposeString(b []byte) []rune   { return codec.DecomposeString(b) }
func ComposeString(runes []rune) []rune { return codec.ComposeString(runes) }

// DecomposeInto is the decompose_safe analogue: it writes a syllable's
// three jamo components into a caller-owned destination slice rather
// than allocating a Jamo, and reports false if dst has room for fewer
// than 3 runes or cp is not a syllable.
func DecomposeInto(cp rune, dst []rune) bool {
	if len(dst) < 3 {
		return false
	}
	jamo, ok := codec.Decompose(cp)
	if !ok {
		return false
	}
	dst[0] = jamo.Initial
	dst[1] = jamo.Medial
	dst[2] = jamo.Final
	return true
}
