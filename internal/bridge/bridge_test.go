package bridge

import (
	"testing"

	"github.com/hangulcore/ime/internal/ime"
)

func TestCreateDestroyLifecycle(t *testing.T) {
	h, err := Create(ime.LayoutBulsik2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := GetState(h); !ok {
		t.Fatal("GetState on a freshly created session should succeed")
	}
	Destroy(h)
	if _, ok := GetState(h); ok {
		t.Error("GetState after Destroy should report the handle as gone")
	}
}

func TestOperationsOnUnknownHandleReturnFalse(t *testing.T) {
	bogus := Handle(999999)
	if _, ok := ProcessKey(bogus, 'g', false); ok {
		t.Error("ProcessKey on an unknown handle should return ok=false")
	}
	if _, ok := ProcessKey3(bogus, 'r'); ok {
		t.Error("ProcessKey3 on an unknown handle should return ok=false")
	}
	if _, ok := BackspaceSession(bogus); ok {
		t.Error("BackspaceSession on an unknown handle should return ok=false")
	}
	if _, ok := CommitSession(bogus); ok {
		t.Error("CommitSession on an unknown handle should return ok=false")
	}
	if ResetSession(bogus) {
		t.Error("ResetSession on an unknown handle should return false")
	}
}

func TestProcessKeyComposesThroughSession(t *testing.T) {
	h, err := Create(ime.LayoutBulsik2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Destroy(h)

	ProcessKey(h, 'g', false)
	ProcessKey(h, 'k', false)
	r, ok := ProcessKey(h, 's', false)
	if !ok {
		t.Fatal("ProcessKey should succeed on a live handle")
	}
	if r.CurrentCP != '한' {
		t.Errorf("CurrentCP = %c, want 한", r.CurrentCP)
	}

	snap, ok := GetState(h)
	if !ok || snap.Initial == 0 {
		t.Fatalf("GetState = (%+v,%v), want a live initial slot", snap, ok)
	}

	cp, ok := CommitSession(h)
	if !ok || cp != '한' {
		t.Errorf("CommitSession = (%c,%v), want (한,true)", cp, ok)
	}
	snap, _ = GetState(h)
	if snap.Initial != 0 || snap.Medial != 0 || snap.Final != 0 {
		t.Error("session should be empty after CommitSession")
	}
}

func TestProcessKey3RoutesToSebeolsik(t *testing.T) {
	h, err := Create(ime.LayoutBulsik3)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Destroy(h)

	r, ok := ProcessKey3(h, 'r')
	if !ok {
		t.Fatal("ProcessKey3 should succeed on a live handle")
	}
	if r.CurrentCP != 'ㄱ' {
		t.Errorf("CurrentCP = %c, want ㄱ", r.CurrentCP)
	}
}

func TestBackspaceSessionViaHandle(t *testing.T) {
	h, _ := Create(ime.LayoutBulsik2)
	defer Destroy(h)

	ProcessKey(h, 'g', false)
	ProcessKey(h, 'k', false)
	cp, ok := BackspaceSession(h)
	if !ok || cp != 'ㅎ' {
		t.Errorf("BackspaceSession = (%c,%v), want (ㅎ,true)", cp, ok)
	}
}

func TestResetSessionClearsState(t *testing.T) {
	h, _ := Create(ime.LayoutBulsik2)
	defer Destroy(h)

	ProcessKey(h, 'g', false)
	if !ResetSession(h) {
		t.Fatal("ResetSession should succeed on a live handle")
	}
	snap, _ := GetState(h)
	if snap.Initial != 0 {
		t.Error("state should be empty after ResetSession")
	}
}

func TestCreateRejectsOverSessionLimit(t *testing.T) {
	var handles []Handle
	for len(sessions) < MaxSessions {
		h, err := Create(ime.LayoutBulsik2)
		if err != nil {
			t.Fatalf("Create unexpectedly failed before reaching the limit: %v", err)
		}
		handles = append(handles, h)
	}
	if _, err := Create(ime.LayoutBulsik2); err != ErrSessionLimit {
		t.Errorf("Create at the session limit: err = %v, want ErrSessionLimit", err)
	}
	for _, h := range handles {
		Destroy(h)
	}
}

func TestDecomposeIntoWritesThreeComponents(t *testing.T) {
	dst := make([]rune, 3)
	if !DecomposeInto('한', dst) {
		t.Fatal("DecomposeInto('한') should succeed")
	}
	if dst[0] != 'ㅎ' || dst[1] != 'ㅏ' || dst[2] != 'ㄴ' {
		t.Errorf("got %v, want [ㅎ ㅏ ㄴ]", dst)
	}
}

func TestDecomposeIntoRejectsSmallDestination(t *testing.T) {
	dst := make([]rune, 2)
	if DecomposeInto('한', dst) {
		t.Error("DecomposeInto should fail when dst has room for fewer than 3 runes")
	}
}

func TestDecomposeIntoRejectsNonSyllable(t *testing.T) {
	dst := make([]rune, 3)
	if DecomposeInto('a', dst) {
		t.Error("DecomposeInto should fail for a non-syllable code point")
	}
}

func TestGetStateBytesRoundTripsThroughArena(t *testing.T) {
	h, err := Create(ime.LayoutBulsik2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Destroy(h)

	ProcessKey(h, 'g', false)
	ProcessKey(h, 'k', false)

	buf, ok := GetStateBytes(h)
	if !ok {
		t.Fatal("GetStateBytes should succeed on a live handle")
	}
	if len(buf) != snapshotSize {
		t.Fatalf("len(buf) = %d, want %d", len(buf), snapshotSize)
	}

	s, _ := get(h)
	if s.arena.ActiveCount() != 0 {
		t.Error("GetStateBytes should free its arena allocation before returning")
	}

	initial := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	snap, _ := GetState(h)
	if rune(initial) != rune(snap.Initial) {
		t.Errorf("encoded Initial = %d, want %d", initial, snap.Initial)
	}
}

func TestGetStateBytesOnUnknownHandle(t *testing.T) {
	if _, ok := GetStateBytes(Handle(999999)); ok {
		t.Error("GetStateBytes on an unknown handle should return ok=false")
	}
}

func TestDecomposeStringForUsesSessionArena(t *testing.T) {
	h, err := Create(ime.LayoutBulsik2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Destroy(h)

	runes, ok := DecomposeStringFor(h, []byte("한글"))
	if !ok {
		t.Fatal("DecomposeStringFor should succeed on a live handle")
	}
	want := []rune{'ㅎ', 'ㅏ', 'ㄴ', 'ㄱ', 'ㅡ', 'ㄹ'}
	if len(runes) != len(want) {
		t.Fatalf("got %v, want %v", runes, want)
	}
	for i := range want {
		if runes[i] != want[i] {
			t.Errorf("runes[%d] = %c, want %c", i, runes[i], want[i])
		}
	}

	s, _ := get(h)
	if s.arena.ActiveCount() != 0 {
		t.Error("DecomposeStringFor should free its arena allocation before returning")
	}
}

func TestComposeStringForUsesSessionArena(t *testing.T) {
	h, err := Create(ime.LayoutBulsik2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer Destroy(h)

	composed, ok := ComposeStringFor(h, []rune{'ㅎ', 'ㅏ', 'ㄴ'})
	if !ok {
		t.Fatal("ComposeStringFor should succeed on a live handle")
	}
	if len(composed) != 1 || composed[0] != '한' {
		t.Errorf("got %v, want [한]", composed)
	}

	s, _ := get(h)
	if s.arena.ActiveCount() != 0 {
		t.Error("ComposeStringFor should free its arena allocation before returning")
	}
}

func TestMarshalForOnUnknownHandle(t *testing.T) {
	bogus := Handle(999999)
	if _, ok := DecomposeStringFor(bogus, []byte("한")); ok {
		t.Error("DecomposeStringFor on an unknown handle should return ok=false")
	}
	if _, ok := ComposeStringFor(bogus, []rune{'ㅎ'}); ok {
		t.Error("ComposeStringFor on an unknown handle should return ok=false")
	}
}
