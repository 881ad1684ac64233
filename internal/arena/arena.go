package arena

import "sync"

// DefaultSize is the fixed region size (~16KB) for a single session's
// marshalling buffers. The session's IME state is not stored here.
const DefaultSize = 16 * 1024

// Arena is a linear bump allocator over a fixed byte region. Alloc only
// ever moves the bump pointer forward; Free just decrements an
// active-allocation counter and, once every outstanding allocation has
// been freed, snaps the bump pointer back to zero so the region can be
// reused without a full Reset. Every method takes a mutex, because a
// D-Bus service may dispatch method calls for the same session on more
// than one goroutine; this keeps the bump pointer and the active count
// consistent, but a caller's Alloc/Bytes/Free sequence is not atomic and
// a slice returned by Bytes is not guarded (DESIGN.md).
type Arena struct {
	mu     sync.Mutex
	region []byte
	bump   uint32
	active uint32
}

// New creates an Arena over a region of the given size in bytes. A size
// of 0 falls back to DefaultSize.
func New(size uint32) *Arena {
	if size == 0 {
		size = DefaultSize
	}
	return &Arena{region: make([]byte, size)}
}

// Alloc reserves size bytes and returns the offset into the arena's
// region they start at, or 0 with ok=false if the region has no room
// left (spec.md's AllocationFailure).
func (a *Arena) Alloc(size uint32) (offset uint32, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if size == 0 {
		return 0, false
	}
	if uint64(a.bump)+uint64(size) > uint64(len(a.region)) {
		return 0, false
	}
	offset = a.bump
	a.bump += size
	a.active++
	return offset, true
}

// Free releases an allocation made by Alloc. It does not reclaim ptr..ptr+size
// for reuse by itself — only once every outstanding allocation has been
// freed does the bump pointer snap back to the start of the region.
func (a *Arena) Free(ptr, size uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == 0 {
		return
	}
	a.active--
	if a.active == 0 {
		a.bump = 0
	}
	_ = ptr
	_ = size
}

// Reset invalidates every outstanding allocation and snaps the bump
// pointer back to the start of the region, regardless of the active
// count. A session ending (ime_destroy) calls this rather than tracking
// down every individual Free.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bump = 0
	a.active = 0
}

// Used returns the number of bytes currently allocated from the front of
// the region.
func (a *Arena) Used() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bump
}

// ActiveCount returns the number of allocations made but not yet freed.
func (a *Arena) ActiveCount() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Bytes returns the region slice backing offset..offset+size, or nil if
// the range falls outside the arena. Callers use this to read/write the
// bytes an Alloc call reserved.
func (a *Arena) Bytes(offset, size uint32) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	if uint64(offset)+uint64(size) > uint64(len(a.region)) {
		return nil
	}
	return a.region[offset : offset+size]
}
