// Package bridge is the host-facing session layer spec.md §6 describes
// as a C-ABI/WASM linear-memory surface. Per spec.md §9's Design Notes
// ("a pure-process implementation may replace this with owned byte
// buffers and direct returns while keeping the typed IME/codec APIs
// unchanged"), this implementation drops the raw offset/length calling
// convention and exposes the same operation set as a handle table over
// Go-native types instead — there is no foreign linear memory to marshal
// into when both sides of the boundary are the same Go process.
package bridge
