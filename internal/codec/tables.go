package codec

// Compatibility jamo range bounds (spec.md §3/§4.1).
const (
	JamoLo = 0x3131
	JamoHi = 0x3163

	SyllableLo = 0xAC00
	SyllableHi = 0xD7A3

	numInitials = 19
	numMedials  = 21
	numFinals   = 28 // includes index 0 = "no final"
)

// initialTable, medialTable, and finalTable are the fixed, Unicode-ordered
// compatibility-jamo code points for each codec index. They are pure data
// and never runtime-initialized, per spec.md §9 Design Notes.
var initialTable = [numInitials]rune{
	0x3131, 0x3132, 0x3134, 0x3137, 0x3138, 0x3139, 0x3141, 0x3142,
	0x3143, 0x3145, 0x3146, 0x3147, 0x3148, 0x3149, 0x314A, 0x314B,
	0x314C, 0x314D, 0x314E,
}

var medialTable = [numMedials]rune{
	0x314F, 0x3150, 0x3151, 0x3152, 0x3153, 0x3154, 0x3155, 0x3156,
	0x3157, 0x3158, 0x3159, 0x315A, 0x315B, 0x315C, 0x315D, 0x315E,
	0x315F, 0x3160, 0x3161, 0x3162, 0x3163,
}

// finalTable[0] == 0 means "no final"; see spec.md §4.1.
var finalTable = [numFinals]rune{
	0,
	0x3131, 0x3132, 0x3133, 0x3134, 0x3135, 0x3136, 0x3137,
	0x3139, 0x313A, 0x313B, 0x313C, 0x313D, 0x313E, 0x313F,
	0x3140, 0x3141, 0x3142, 0x3144, 0x3145, 0x3146, 0x3147,
	0x3148, 0x314A, 0x314B, 0x314C, 0x314D, 0x314E,
}

// reverseInitial/reverseMedial/reverseFinal are direct-address reverse
// lookup tables over the compatibility jamo range, giving O(1) compose()
// per spec.md §4.1 and §9 ("avoid per-call linear searches"). notFound is
// the marker value for "not a recognized initial/medial/final".
const notFound = -1

var (
	reverseInitial [JamoHi - JamoLo + 1]int
	reverseMedial  [JamoHi - JamoLo + 1]int
	reverseFinal   [JamoHi - JamoLo + 1]int
)

func init() {
	for i := range reverseInitial {
		reverseInitial[i] = notFound
		reverseMedial[i] = notFound
		reverseFinal[i] = notFound
	}
	for i, cp := range initialTable {
		reverseInitial[cp-JamoLo] = i
	}
	for i, cp := range medialTable {
		reverseMedial[cp-JamoLo] = i
	}
	for i, cp := range finalTable {
		if i == 0 {
			continue // final index 0 has no jamo code point
		}
		reverseFinal[cp-JamoLo] = i
	}
}

// doubleConsonants and doubleVowels are the fixed membership sets used by
// IsDoubleConsonant / IsDoubleVowel (spec.md §4.1).
var doubleConsonants = map[rune]bool{
	0x3132: true, // ㄲ
	0x3138: true, // ㄸ
	0x3143: true, // ㅃ
	0x3146: true, // ㅆ
	0x3149: true, // ㅉ
}

var doubleVowels = map[rune]bool{
	0x3158: true, // ㅘ
	0x3159: true, // ㅙ
	0x315A: true, // ㅚ
	0x315D: true, // ㅝ
	0x315E: true, // ㅞ
	0x315F: true, // ㅟ
	0x3162: true, // ㅢ
}
