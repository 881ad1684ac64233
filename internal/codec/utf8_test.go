package codec

import "testing"

func TestDecodeUTF8CharASCII(t *testing.T) {
	cp, size := DecodeUTF8Char([]byte("hello"), 0, 5)
	if cp != 'h' || size != 1 {
		t.Fatalf("got (%c,%d), want ('h',1)", cp, size)
	}
}

func TestDecodeUTF8CharMultiByte(t *testing.T) {
	// 한 = U+D55C, UTF-8: ED 95 9C
	b := []byte{0xED, 0x95, 0x9C}
	cp, size := DecodeUTF8Char(b, 0, len(b))
	if cp != 0xD55C || size != 3 {
		t.Fatalf("got (%U,%d), want (U+D55C,3)", cp, size)
	}
}

func TestDecodeUTF8CharTwoByte(t *testing.T) {
	// ㄱ = U+3131, UTF-8: E3 84 B1 (three bytes, not two - pick a genuine
	// two-byte code point instead, e.g. U+00E9 'é' = C3 A9).
	b := []byte{0xC3, 0xA9}
	cp, size := DecodeUTF8Char(b, 0, len(b))
	if cp != 0xE9 || size != 2 {
		t.Fatalf("got (%U,%d), want (U+00E9,2)", cp, size)
	}
}

func TestDecodeUTF8CharFourByte(t *testing.T) {
	// U+1F600 (grinning face): F0 9F 98 80
	b := []byte{0xF0, 0x9F, 0x98, 0x80}
	cp, size := DecodeUTF8Char(b, 0, len(b))
	if cp != 0x1F600 || size != 4 {
		t.Fatalf("got (%U,%d), want (U+1F600,4)", cp, size)
	}
}

func TestDecodeUTF8CharPrematureEOF(t *testing.T) {
	// A truncated or malformed sequence must produce the (0,0) stop
	// sentinel, not a substitution or a partial decode.
	cases := []struct {
		name string
		b    []byte
	}{
		{"truncated 2-byte", []byte{0xC3}},
		{"truncated 3-byte at 1", []byte{0xED}},
		{"truncated 3-byte at 2", []byte{0xED, 0x95}},
		{"truncated 4-byte at 3", []byte{0xF0, 0x9F, 0x98}},
		{"bad continuation byte", []byte{0xC3, 0x41}},
		{"stray continuation byte as lead", []byte{0x80}},
		{"invalid lead byte", []byte{0xFF}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cp, size := DecodeUTF8Char(tt.b, 0, len(tt.b))
			if cp != 0 || size != 0 {
				t.Errorf("got (%U,%d), want (0,0)", cp, size)
			}
		})
	}
}

func TestDecodeUTF8CharRespectsMaxLen(t *testing.T) {
	b := []byte{0xED, 0x95, 0x9C, 'X'}
	// maxLen smaller than the sequence length must fail, even though more
	// bytes exist in the underlying slice.
	cp, size := DecodeUTF8Char(b, 0, 2)
	if cp != 0 || size != 0 {
		t.Fatalf("got (%U,%d), want (0,0) when maxLen cuts a sequence short", cp, size)
	}
}

func TestDecodeUTF8CharOutOfRangeStart(t *testing.T) {
	b := []byte("hi")
	if cp, size := DecodeUTF8Char(b, -1, 2); cp != 0 || size != 0 {
		t.Errorf("negative start: got (%U,%d), want (0,0)", cp, size)
	}
	if cp, size := DecodeUTF8Char(b, len(b), 2); cp != 0 || size != 0 {
		t.Errorf("start == len(b): got (%U,%d), want (0,0)", cp, size)
	}
}

func TestDecodeUTF8StreamIdentity(t *testing.T) {
	// Decoding a well-formed UTF-8 string byte-by-byte via repeated
	// DecodeUTF8Char calls reconstructs exactly the original rune
	// sequence.
	s := "한글hangul테스트🙂"
	want := []rune(s)
	b := []byte(s)

	var got []rune
	for i := 0; i < len(b); {
		cp, size := DecodeUTF8Char(b, i, len(b)-i)
		if size == 0 {
			t.Fatalf("unexpected decode failure at byte %d", i)
		}
		got = append(got, cp)
		i += size
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d runes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d: got %U, want %U", i, got[i], want[i])
		}
	}
}

func BenchmarkDecodeUTF8Char(b *testing.B) {
	buf := []byte("한")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeUTF8Char(buf, 0, len(buf))
	}
}
