package codec

// DecomposeString decomposes a UTF-8 byte stream into a sequence of code
// points, expanding each Hangul syllable into its 2 or 3 compatibility
// jamo (the final is omitted when absent) and passing every other code
// point through unchanged. It stops at the first invalid or incomplete
// byte (spec.md §4.2, §8 P7/P8).
func DecomposeString(utf8Bytes []byte) []rune {
	out := make([]rune, 0, len(utf8Bytes))
	pos := 0
	for pos < len(utf8Bytes) {
		cp, size := DecodeUTF8Char(utf8Bytes, pos, 4)
		if size == 0 {
			break
		}
		if jamo, ok := Decompose(cp); ok {
			out = append(out, jamo.Initial, jamo.Medial)
			if jamo.Final != 0 {
				out = append(out, jamo.Final)
			}
		} else {
			out = append(out, cp)
		}
		pos += size
	}
	return out
}

// ComposeString is the greedy, one-token-lookahead inverse of
// DecomposeString described in spec.md §4.2. It is an intentionally
// simple heuristic, not a full re-parser, and it is lossy even on
// DecomposeString output: a standalone consonant jamo that follows a
// syllable with no final is taken as that syllable's final, so the jamo
// of "가ㄱ" recompose to "각". It must not be "strengthened" per spec.md
// §9 Open Questions.
func ComposeString(cps []rune) []rune {
	out := make([]rune, 0, len(cps))
	i := 0
	n := len(cps)
	for i < n {
		c := cps[i]
		if !IsConsonant(c) || i+1 >= n || !IsVowel(cps[i+1]) {
			out = append(out, c)
			i++
			continue
		}

		vowel := cps[i+1]
		finalCP := rune(0)
		consumed := 2
		if i+2 < n && IsConsonant(cps[i+2]) && (i+3 >= n || !IsVowel(cps[i+3])) {
			finalCP = cps[i+2]
			consumed = 3
		}

		if syllable, ok := Compose(c, vowel, finalCP); ok {
			out = append(out, syllable)
			i += consumed
		} else {
			out = append(out, c)
			i++
		}
	}
	return out
}
