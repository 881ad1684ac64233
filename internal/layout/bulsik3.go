package layout

// Value-range discriminants for the 3-Bulsik (Sebeolsik) table
// (spec.md §4.3).
const (
	bulsik3FinalLo   = 1
	bulsik3FinalHi   = 30
	bulsik3MedialLo  = 66
	bulsik3MedialHi  = 86
	bulsik3MedialOff = 35
	bulsik3InitLo    = 93
	bulsik3InitHi    = 122
	bulsik3InitOff   = 92
)

const (
	bulsik3Lo = 33
	bulsik3Hi = 126
)

// bulsik3Table holds one entry per ASCII byte 33..126 (index = byte -
// bulsik3Lo). Entries in [1,30] are a direct OhiFinal value, [66,86]
// encode an OhiMedial (value-35), [93,122] encode an OhiInitial
// (value-92), and any other value is a literal code point to insert
// verbatim. It is not a compile-time constant: init fills it once from
// the key->role assignments below, and nothing modifies it afterwards.
var bulsik3Table [bulsik3Hi - bulsik3Lo + 1]int

func init() {
	// Default: every key is literal, emitting its own ASCII code point.
	for b := bulsik3Lo; b <= bulsik3Hi; b++ {
		bulsik3Table[b-bulsik3Lo] = b
	}

	// Medial (vowel) keys — base vowels only; compound vowels (ㅘ ㅙ ㅚ
	// ㅝ ㅞ ㅟ ㅢ) are formed by the IME's double-medial absorption, the
	// same mechanism 2-Bulsik uses, so they need no dedicated key.
	setOhiMedial('k', 31) // ㅏ
	setOhiMedial('o', 32) // ㅐ
	setOhiMedial('i', 33) // ㅑ
	setOhiMedial('O', 34) // ㅒ
	setOhiMedial('j', 35) // ㅓ
	setOhiMedial('p', 36) // ㅔ
	setOhiMedial('u', 37) // ㅕ
	setOhiMedial('P', 38) // ㅖ
	setOhiMedial('h', 39) // ㅗ
	setOhiMedial('y', 43) // ㅛ
	setOhiMedial('n', 44) // ㅜ
	setOhiMedial('b', 48) // ㅠ
	setOhiMedial('m', 49) // ㅡ
	setOhiMedial('l', 51) // ㅣ

	// Initial (초성) keys — all 19 codec-valid initials get a direct key;
	// the five doubles additionally sit on the shifted twin of their base.
	setOhiInitial('r', 1)  // ㄱ
	setOhiInitial('R', 2)  // ㄲ
	setOhiInitial('s', 4)  // ㄴ
	setOhiInitial('e', 7)  // ㄷ
	setOhiInitial('E', 8)  // ㄸ
	setOhiInitial('f', 9)  // ㄹ
	setOhiInitial('a', 17) // ㅁ
	setOhiInitial('q', 18) // ㅂ
	setOhiInitial('Q', 19) // ㅃ
	setOhiInitial('t', 21) // ㅅ
	setOhiInitial('T', 22) // ㅆ
	setOhiInitial('d', 23) // ㅇ
	setOhiInitial('w', 24) // ㅈ
	setOhiInitial('W', 25) // ㅉ
	setOhiInitial('c', 26) // ㅊ
	setOhiInitial('z', 27) // ㅋ
	setOhiInitial('x', 28) // ㅌ
	setOhiInitial('v', 29) // ㅍ
	setOhiInitial('g', 30) // ㅎ

	// Final (종성) keys — the 14 single final consonants, plus direct keys
	// for three doubles (ㄲ, ㅆ, ㄵ). ㄲ and ㅆ are not reachable through
	// double-final absorption; ㄵ can also be formed by absorbing ㅈ into
	// a live ㄴ final.
	setOhiFinal('A', 1)  // ㄱ
	setOhiFinal('V', 2)  // ㄲ
	setOhiFinal('B', 4)  // ㄴ
	setOhiFinal('G', 5)  // ㄵ
	setOhiFinal('C', 7)  // ㄷ
	setOhiFinal('D', 9)  // ㄹ
	setOhiFinal('F', 17) // ㅁ
	setOhiFinal('H', 18) // ㅂ
	setOhiFinal('I', 21) // ㅅ
	setOhiFinal('J', 23) // ㅇ
	setOhiFinal('K', 24) // ㅈ
	setOhiFinal('L', 26) // ㅊ
	setOhiFinal('M', 27) // ㅋ
	setOhiFinal('N', 28) // ㅌ
	setOhiFinal('S', 29) // ㅍ
	setOhiFinal('U', 30) // ㅎ
	setOhiFinal('X', 22) // ㅆ

	// Punctuation keys whose own ASCII code would otherwise collide with
	// a reserved value range get a Korean-style literal instead; '[' gets
	// one too, to pair with ']'.
	setLiteral('[', 0x300C) // 「
	setLiteral(']', 0x300D) // 」
	setLiteral('^', 0x301C) // 〜
	setLiteral('_', 0x2014) // —
	setLiteral('`', 0x2018) // '
}

func setOhiMedial(b byte, ohi int) {
	bulsik3Table[b-bulsik3Lo] = ohi + bulsik3MedialOff
}

func setOhiInitial(b byte, ohi int) {
	bulsik3Table[b-bulsik3Lo] = ohi + bulsik3InitOff
}

func setOhiFinal(b byte, ohi int) {
	bulsik3Table[b-bulsik3Lo] = ohi
}

func setLiteral(b byte, cp rune) {
	bulsik3Table[b-bulsik3Lo] = int(cp)
}

// Key3Kind classifies a decoded 3-Bulsik key.
type Key3Kind int

const (
	Key3None Key3Kind = iota
	Key3Initial
	Key3Medial
	Key3Final
	Key3Literal
)

// Bulsik3Key decodes one ASCII byte (33..126) through the 3-Bulsik
// table, returning the decoded value (an Ohi index for jamo keys, or a
// literal code point) and its kind. ok is false for bytes outside the
// table's domain.
func Bulsik3Key(ascii byte) (value int, kind Key3Kind, ok bool) {
	if ascii < bulsik3Lo || ascii > bulsik3Hi {
		return 0, Key3None, false
	}
	raw := bulsik3Table[ascii-bulsik3Lo]
	switch {
	case raw >= bulsik3InitLo && raw <= bulsik3InitHi:
		return raw - bulsik3InitOff, Key3Initial, true
	case raw >= bulsik3MedialLo && raw <= bulsik3MedialHi:
		return raw - bulsik3MedialOff, Key3Medial, true
	case raw >= bulsik3FinalLo && raw <= bulsik3FinalHi:
		return raw, Key3Final, true
	default:
		return raw, Key3Literal, true
	}
}
