// Package layout implements the stateless key-to-jamo mapping for the two
// supported Korean keyboard layouts: 2-Bulsik (Dubeolsik) and 3-Bulsik
// (Sebeolsik), plus the Ohi-index conversions the IME state machine uses
// to bridge the reference algorithm's sparse jamo-slot indexing with the
// codec's dense index space (spec.md §4.3).
package layout
