// Package ime implements the stateful Hangul composition engine: a small
// state machine holding at most one in-progress syllable (초성/중성/종성
// slots), driven by either 2-Bulsik or 3-Bulsik key events, with
// backspace, commit, reset and code-point projection (spec.md §4.4).
//
// The state itself is a tagged variant rather than the reference
// algorithm's in-band -1 sentinel: each slot carries an explicit
// slotState (empty/live/blocked) alongside its Ohi value, so "no vowel
// yet" and "vowel position deliberately blocked pending a new syllable"
// are distinct, named states instead of overloaded integers
// (SPEC_FULL.md §3). Only the medial slot is ever blocked.
package ime
