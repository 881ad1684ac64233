package codec

// DecodeUTF8Char decodes one UTF-8 code point starting at bytes[start],
// reading no further than bytes[start:start+maxLen]. It validates every
// continuation byte against the 10xxxxxx pattern; on any structural
// failure or premature EOF it returns (0, 0), signalling "stop" to the
// caller (spec.md §4.1, §8 P8).
//
// This does not use unicode/utf8.DecodeRune: that decoder substitutes
// utf8.RuneError and advances by 1 on a bad sequence, where spec.md
// requires a hard stop with a zero-length result so stream decomposition
// terminates cleanly instead of skipping forward.
func DecodeUTF8Char(bytes []byte, start, maxLen int) (cp rune, size int) {
	if start < 0 || start >= len(bytes) || maxLen <= 0 {
		return 0, 0
	}
	end := start + maxLen
	if end > len(bytes) {
		end = len(bytes)
	}
	avail := end - start
	if avail <= 0 {
		return 0, 0
	}

	lead := bytes[start]
	switch {
	case lead&0x80 == 0: // 0xxxxxxx
		return rune(lead), 1
	case lead&0xE0 == 0xC0: // 110xxxxx
		if avail < 2 || !isContinuation(bytes[start+1]) {
			return 0, 0
		}
		r := rune(lead&0x1F)<<6 | rune(bytes[start+1]&0x3F)
		return r, 2
	case lead&0xF0 == 0xE0: // 1110xxxx
		if avail < 3 || !isContinuation(bytes[start+1]) || !isContinuation(bytes[start+2]) {
			return 0, 0
		}
		r := rune(lead&0x0F)<<12 | rune(bytes[start+1]&0x3F)<<6 | rune(bytes[start+2]&0x3F)
		return r, 3
	case lead&0xF8 == 0xF0: // 11110xxx
		if avail < 4 || !isContinuation(bytes[start+1]) || !isContinuation(bytes[start+2]) || !isContinuation(bytes[start+3]) {
			return 0, 0
		}
		r := rune(lead&0x07)<<18 | rune(bytes[start+1]&0x3F)<<12 | rune(bytes[start+2]&0x3F)<<6 | rune(bytes[start+3]&0x3F)
		return r, 4
	default:
		return 0, 0
	}
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
