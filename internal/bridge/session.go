package bridge

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/hangulcore/ime/internal/arena"
	"github.com/hangulcore/ime/internal/codec"
	"github.com/hangulcore/ime/internal/ime"
)

// Handle identifies one live IME session. The zero Handle is never
// issued by Create, so callers can use it as an "unset" sentinel.
type Handle uint32

// MaxSessions bounds how many concurrent sessions one process serves —
// spec.md §5's arena is sized per session, so an unbounded handle table
// would defeat the point of a fixed-region allocator.
const MaxSessions = 256

// ErrSessionLimit is returned by Create when MaxSessions are already live.
var ErrSessionLimit = errors.New("bridge: session limit reached")

type session struct {
	state *ime.ConfiguredState
	arena *arena.Arena
}

// table is the process-wide handle table. A single mutex guards it;
// sessions themselves are not expected to be driven from more than one
// goroutine at a time (spec.md §5), but handle creation/destruction must
// still be safe against cmd/daemon's D-Bus dispatch.
var (
	mu       sync.Mutex
	sessions = map[Handle]*session{}
	nextID   Handle = 1
)

// Create allocates a new session configured for the given layout and
// returns its handle.
func Create(layout ime.Layout) (Handle, error) {
	mu.Lock()
	defer mu.Unlock()
	if len(sessions) >= MaxSessions {
		return 0, ErrSessionLimit
	}
	h := nextID
	nextID++
	sessions[h] = &session{
		state: ime.NewConfiguredState(&ime.Config{Layout: layout}),
		arena: arena.New(arena.DefaultSize),
	}
	return h, nil
}

// Destroy releases a session's arena and removes it from the table.
func Destroy(h Handle) {
	mu.Lock()
	defer mu.Unlock()
	if s, ok := sessions[h]; ok {
		s.arena.Reset()
		delete(sessions, h)
	}
}

func get(h Handle) (*session, bool) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := sessions[h]
	return s, ok
}

// ResetSession discards a session's in-progress syllable without
// emitting it. Returns false if h is not a live handle.
func ResetSession(h Handle) bool {
	s, ok := get(h)
	if !ok {
		return false
	}
	s.state.Reset()
	return true
}

// CommitSession flushes a session's in-progress syllable. Returns false
// if h is not a live handle.
func CommitSession(h Handle) (rune, bool) {
	s, ok := get(h)
	if !ok {
		return 0, false
	}
	return s.state.Commit(), true
}

// ProcessKey feeds one 2-Bulsik ASCII key event into a session. Returns
// false if h is not a live handle.
func ProcessKey(h Handle, ascii byte, shifted bool) (ime.KeyResult, bool) {
	s, ok := get(h)
	if !ok {
		return ime.KeyResult{}, false
	}
	return s.state.ProcessKey2Bulsik(ascii, shifted), true
}

// ProcessKey3 feeds one 3-Bulsik ASCII key event into a session. Returns
// false if h is not a live handle.
func ProcessKey3(h Handle, ascii byte) (ime.Key3Result, bool) {
	s, ok := get(h)
	if !ok {
		return ime.Key3Result{}, false
	}
	return s.state.ProcessKey3Bulsik(ascii), true
}

// BackspaceSession applies one backspace step. Returns false if h is not
// a live handle.
func BackspaceSession(h Handle) (rune, bool) {
	s, ok := get(h)
	if !ok {
		return 0, false
	}
	return s.state.Backspace(), true
}

// GetState returns a session's current composition slots. Returns false
// if h is not a live handle.
func GetState(h Handle) (ime.Snapshot, bool) {
	s, ok := get(h)
	if !ok {
		return ime.Snapshot{}, false
	}
	return s.state.Snapshot(), true
}

// Preedit returns a session's current projection (spec.md §4.4.7),
// i.e. what a frontend should display as in-progress composition text.
// Returns false if h is not a live handle.
func Preedit(h Handle) (rune, bool) {
	s, ok := get(h)
	if !ok {
		return 0, false
	}
	return s.state.ToCodepoint(), true
}

// snapshotSize is the width of a Snapshot encoded by putSnapshot: six
// little-endian uint32 fields (Initial, InitialFlag, Medial, MedialFlag,
// Final, FinalFlag).
const snapshotSize = 24

func putSnapshot(buf []byte, snap ime.Snapshot) {
	flagWord := func(b bool) uint32 {
		if b {
			return 1
		}
		return 0
	}
	binary.LittleEndian.PutUint32(buf[0:4], uint32(snap.Initial))
	binary.LittleEndian.PutUint32(buf[4:8], flagWord(snap.InitialFlag))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(snap.Medial))
	binary.LittleEndian.PutUint32(buf[12:16], flagWord(snap.MedialFlag))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(snap.Final))
	binary.LittleEndian.PutUint32(buf[20:24], flagWord(snap.FinalFlag))
}

// GetStateBytes is the ime_get_state marshalling path spec.md §5/§7
// describes: it encodes the session's Snapshot into a buffer allocated
// from the session's own arena, then copies it out for the caller (the
// arena offset is freed before this returns, so nothing escapes it).
// Returns false if h is not a live handle or the arena has no room left.
func GetStateBytes(h Handle) ([]byte, bool) {
	s, ok := get(h)
	if !ok {
		return nil, false
	}
	offset, ok := s.arena.Alloc(snapshotSize)
	if !ok {
		return nil, false
	}
	defer s.arena.Free(offset, snapshotSize)
	buf := s.arena.Bytes(offset, snapshotSize)
	putSnapshot(buf, s.state.Snapshot())
	out := make([]byte, snapshotSize)
	copy(out, buf)
	return out, true
}

// DecomposeStringFor is the session-scoped decompose_string marshalling
// path: the decoded jamo runes are written into a buffer allocated from
// the session's arena (the scratch space spec.md §5/§7 calls for) before
// being copied out to a caller-owned slice. Returns false if h is not a
// live handle or the arena has no room for the output.
func DecomposeStringFor(h Handle, b []byte) ([]rune, bool) {
	s, ok := get(h)
	if !ok {
		return nil, false
	}
	runes := codec.DecomposeString(b)
	if len(runes) == 0 {
		return nil, true
	}
	size := uint32(len(runes)) * 4
	offset, ok := s.arena.Alloc(size)
	if !ok {
		return nil, false
	}
	defer s.arena.Free(offset, size)
	buf := s.arena.Bytes(offset, size)
	for i, r := range runes {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(r))
	}
	out := make([]rune, len(runes))
	for i := range out {
		out[i] = rune(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out, true
}

// ComposeStringFor is the session-scoped compose_string marshalling path,
// mirroring DecomposeStringFor: the composed runes are staged through the
// session's arena before being copied out. Returns false if h is not a
// live handle or the arena has no room for the output.
func ComposeStringFor(h Handle, runes []rune) ([]rune, bool) {
	s, ok := get(h)
	if !ok {
		return nil, false
	}
	composed := codec.ComposeString(runes)
	if len(composed) == 0 {
		return nil, true
	}
	size := uint32(len(composed)) * 4
	offset, ok := s.arena.Alloc(size)
	if !ok {
		return nil, false
	}
	defer s.arena.Free(offset, size)
	buf := s.arena.Bytes(offset, size)
	for i, r := range composed {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(r))
	}
	out := make([]rune, len(composed))
	for i := range out {
		out[i] = rune(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out, true
}
