// Package arena implements the fixed-region bump allocator spec.md §5
// calls for. internal/bridge gives every session one Arena and stages its
// marshalling buffers through it (GetStateBytes, DecomposeStringFor,
// ComposeStringFor in internal/bridge/session.go) rather than letting
// those byte buffers allocate off the regular Go heap, so a linear bump
// allocator with a simple active-count guard is sufficient — no
// general-purpose allocator is needed (SPEC_FULL.md §7). The session's
// ConfiguredState itself is an ordinary Go heap value, not arena-backed:
// spec.md §5's ImeState-in-the-arena language describes a WASM
// linear-memory ABI where instance storage and marshalling buffers share
// one memory blob; this Go-native bridge (SPEC_FULL.md §9's allowed
// substitution) keeps long-lived struct state as a normal Go value and
// limits the arena to the transient buffers it actually backs.
package arena
