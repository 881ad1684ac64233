package ime

// Double-jamo formation tables, fixed data per spec.md §4.4.1. All keys
// and values are Ohi indices (the sparse 1..51 slot space the state
// machine works in, not codec indices).

// doubleInitialPairs is keyed by the current initial's Ohi value; it
// matches only when the incoming key repeats that same consonant
// (spec.md: "self-pairs").
var doubleInitialPairs = map[int]int{
	1:  2,  // ㄱ+ㄱ -> ㄲ
	7:  8,  // ㄷ+ㄷ -> ㄸ
	18: 19, // ㅂ+ㅂ -> ㅃ
	21: 22, // ㅅ+ㅅ -> ㅆ
	24: 25, // ㅈ+ㅈ -> ㅉ
}

type jamoPair struct {
	base, next int
}

// doubleMedialPairs groups 13 rules by base vowel (spec.md §4.4.1).
var doubleMedialPairs = map[jamoPair]int{
	{39, 31}: 40, // ㅗ+ㅏ -> ㅘ
	{39, 32}: 41, // ㅗ+ㅐ -> ㅙ
	{39, 51}: 42, // ㅗ+ㅣ -> ㅚ
	{44, 35}: 45, // ㅜ+ㅓ -> ㅝ
	{44, 36}: 46, // ㅜ+ㅔ -> ㅞ
	{44, 51}: 47, // ㅜ+ㅣ -> ㅟ
	{49, 51}: 50, // ㅡ+ㅣ -> ㅢ
}

// doubleFinalPairs groups 11 rules by base consonant (spec.md §4.4.1).
var doubleFinalPairs = map[jamoPair]int{
	{1, 21}:  3,  // ㄱ+ㅅ -> ㄳ
	{4, 24}:  5,  // ㄴ+ㅈ -> ㄵ
	{4, 30}:  6,  // ㄴ+ㅎ -> ㄶ
	{9, 1}:   10, // ㄹ+ㄱ -> ㄺ
	{9, 17}:  11, // ㄹ+ㅁ -> ㄻ
	{9, 18}:  12, // ㄹ+ㅂ -> ㄼ
	{9, 21}:  13, // ㄹ+ㅅ -> ㄽ
	{9, 28}:  14, // ㄹ+ㅌ -> ㄾ
	{9, 29}:  15, // ㄹ+ㅍ -> ㄿ
	{9, 30}:  16, // ㄹ+ㅎ -> ㅀ
	{18, 21}: 20, // ㅂ+ㅅ -> ㅄ
}

// splitFinalPairs is the inverse of doubleFinalPairs, used when a vowel
// follows a syllable ending in a double final (spec.md §4.4.3 step 2):
// compound -> (base, second).
var splitFinalPairs = map[int]jamoPair{}

func init() {
	for pair, compound := range doubleFinalPairs {
		splitFinalPairs[compound] = pair
	}
}

// tryDoubleInitial returns the compound Ohi value for (current, incoming)
// if they form one of the 5 self-pairs.
func tryDoubleInitial(current, incoming int) (int, bool) {
	compound, ok := doubleInitialPairs[current]
	if !ok || incoming != current {
		return 0, false
	}
	return compound, true
}

func tryDoubleMedial(current, incoming int) (int, bool) {
	compound, ok := doubleMedialPairs[jamoPair{current, incoming}]
	return compound, ok
}

func tryDoubleFinal(current, incoming int) (int, bool) {
	compound, ok := doubleFinalPairs[jamoPair{current, incoming}]
	return compound, ok
}

// splitDoubleFinal reverse-looks a compound final into its (base, second)
// components.
func splitDoubleFinal(compound int) (base, second int, ok bool) {
	pair, ok := splitFinalPairs[compound]
	if !ok {
		return 0, 0, false
	}
	return pair.base, pair.next, true
}

// canFollowAsInitial mirrors the reference algorithm's load-bearing
// {8, 19, 25} set (spec.md §4.4.2, §9 Open Questions: kept exactly as
// specified and not "simplified"). These are the Ohi values of the
// double consonants ㄸ/ㅃ/ㅉ per spec.md's own double-initial table in
// §4.4.1 — the inline gloss "ㅁ/ㅅ/ㅊ" elsewhere in spec.md §4.4.2 does
// not match spec.md's own explicit Ohi assignments for 8/19/25 and is
// treated here as a documentation slip; the numeric set, which is what
// the branch-gate arithmetic actually consumes, is authoritative.
func canFollowAsInitial(ohi int) bool {
	return ohi == 8 || ohi == 19 || ohi == 25
}
