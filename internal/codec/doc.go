// Package codec implements the algorithmic Hangul codec: bidirectional
// mapping between precomposed Hangul syllables (U+AC00-U+D7A3) and their
// constituent jamo expressed as Unicode Compatibility Jamo (U+3131-U+3163),
// plus UTF-8 stream decomposition and its jamo-stream recomposition
// inverse.
//
// The composition identity is the single source of truth:
//
//	syllable = 0xAC00 + (initial*21*28) + (medial*28) + final
package codec
