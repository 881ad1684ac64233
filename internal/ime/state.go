package ime

import (
	"github.com/hangulcore/ime/internal/codec"
	"github.com/hangulcore/ime/internal/layout"
)

// slotState tags what a jamo slot currently holds.
type slotState int

const (
	slotEmpty slotState = iota
	slotLive
	slotBlocked
)

// slot is one 초성/중성/종성 position. value is an Ohi index (1..30 for
// consonant slots, 31..51 for the medial slot) and is meaningful only
// when state == slotLive. flag records whether the current value was
// just formed by double-jamo absorption, matching the reference
// algorithm's initial_flag/medial_flag/final_flag (spec.md §4.4.1).
type slot struct {
	state slotState
	value int
	flag  bool
}

func (s slot) live() bool {
	return s.state == slotLive
}

func liveSlot(value int, flag bool) slot {
	return slot{state: slotLive, value: value, flag: flag}
}

// State is one in-progress Hangul syllable buffer. The zero value is a
// valid, empty state.
type State struct {
	initial slot
	medial  slot
	final   slot
}

// Layout identifies which keyboard layout a session was configured for.
type Layout int

const (
	LayoutBulsik2 Layout = iota
	LayoutBulsik3
)

// Config holds the composition options for a session (spec.md §4.2),
// mirroring the teacher's EngineConfig/ConfiguredEngine split: a plain
// struct of choices, and a wrapper embedding the stateful type.
type Config struct {
	Layout Layout
}

// DefaultConfig returns the default session configuration (2-Bulsik).
func DefaultConfig() *Config {
	return &Config{Layout: LayoutBulsik2}
}

// ConfiguredState is a State paired with the layout it was configured
// for, so callers driving raw ASCII key events don't need to remember
// which Process* method to call.
type ConfiguredState struct {
	*State
	config *Config
}

// NewConfiguredState creates a session for the given configuration. A nil
// config falls back to DefaultConfig.
func NewConfiguredState(config *Config) *ConfiguredState {
	if config == nil {
		config = DefaultConfig()
	}
	return &ConfiguredState{State: &State{}, config: config}
}

// GetConfig returns the session's current configuration.
func (c *ConfiguredState) GetConfig() *Config {
	return c.config
}

// SetConfig updates the session's configuration in place.
func (c *ConfiguredState) SetConfig(config *Config) {
	c.config = config
}

// ProcessASCII dispatches one raw ASCII key event to ProcessKey2Bulsik or
// ProcessKey3Bulsik according to the session's configured layout, and
// normalizes both results to a KeyResult (a 3-Bulsik literal collapses
// to ActionEmitAndNew with the literal code point as CurrentCP, since a
// KeyResult has nowhere else to carry it).
func (c *ConfiguredState) ProcessASCII(ch byte, shifted bool) KeyResult {
	if c.config.Layout == LayoutBulsik3 {
		r := c.State.ProcessKey3Bulsik(ch)
		if r.Action == ActionLiteral {
			return KeyResult{Action: ActionEmitAndNew, PrevCP: r.PrevCP, CurrentCP: r.LiteralCP}
		}
		return KeyResult{Action: r.Action, PrevCP: r.PrevCP, CurrentCP: r.CurrentCP}
	}
	return c.State.ProcessKey2Bulsik(ch, shifted)
}

// Action classifies the effect a Process* call had on the
// composition buffer (spec.md §4.4).
type Action int

const (
	// ActionNoChange means the key had no effect (e.g. an unmapped key).
	ActionNoChange Action = iota
	// ActionReplace means the in-progress syllable changed in place; the
	// caller should replace its previously displayed preedit text with
	// CurrentCP.
	ActionReplace
	// ActionEmitAndNew means the prior in-progress syllable was finalized
	// (PrevCP) and a new one started (CurrentCP).
	ActionEmitAndNew
	// ActionLiteral means the key produced a literal code point outside
	// the composition state entirely (3-Bulsik punctuation keys only).
	ActionLiteral
)

// KeyResult reports the effect of one 2-Bulsik key event.
type KeyResult struct {
	Action   Action
	PrevCP   rune // valid when Action == ActionEmitAndNew
	CurrentCP rune // the in-progress syllable's projection after the key (0 for ActionNoChange)
}

// Key3Result reports the effect of one 3-Bulsik key event. It extends
// KeyResult with the literal-key case.
type Key3Result struct {
	Action    Action
	PrevCP    rune
	CurrentCP rune
	LiteralCP rune // valid when Action == ActionLiteral
}

// IsEmpty reports whether every slot is unset.
func (s *State) IsEmpty() bool {
	return s.initial.state == slotEmpty && s.medial.state == slotEmpty && s.final.state == slotEmpty
}

// ToCodepoint projects the current state to a single rune per spec.md
// §4.4.7: a full syllable when initial and medial are both live, a
// standalone compatibility jamo when exactly one slot is live, or 0 when
// the state is empty. Corrupted states (a caller-injected out-of-range
// slotLive value) project to 0 rather than panicking, per spec.md
// §4.4.8.
func (s *State) ToCodepoint() rune {
	initialLive := s.initial.live()
	medialLive := s.medial.live()
	finalLive := s.final.live()

	if initialLive && medialLive {
		initIdx, ok1 := okInitial(s.initial.value)
		medIdx, ok2 := okMedial(s.medial.value)
		if !ok1 || !ok2 {
			return 0
		}
		finIdx := 0
		if finalLive {
			idx, ok := okFinal(s.final.value)
			if !ok {
				return 0
			}
			finIdx = idx
		}
		syll, ok := composeIdx(initIdx, medIdx, finIdx)
		if !ok {
			return 0
		}
		return syll
	}

	liveCount := 0
	var only int
	if initialLive {
		liveCount++
		only = s.initial.value
	}
	if medialLive {
		liveCount++
		only = s.medial.value
	}
	if finalLive {
		liveCount++
		only = s.final.value
	}
	if liveCount == 1 {
		if cp := ohiToSingleJamo(only); codec.IsJamo(cp) {
			return cp
		}
	}
	return 0
}

// Reset clears all three slots, discarding any in-progress syllable
// without emitting it.
func (s *State) Reset() {
	*s = State{}
}

// Commit returns the current projection and resets the state in one
// step (spec.md §4.4.6) — the explicit "flush what's there" operation a
// caller invokes on focus loss or an external commit request, as
// distinct from the implicit emit a new syllable's first keystroke
// triggers.
func (s *State) Commit() rune {
	cp := s.ToCodepoint()
	s.Reset()
	return cp
}

// Snapshot is a host-facing view of the three composition slots, the
// shape `internal/bridge`'s GetState marshals across the session
// boundary (spec.md §6's ImeState fields).
type Snapshot struct {
	Initial, Medial, Final             int
	InitialFlag, MedialFlag, FinalFlag bool
}

// Snapshot reports the current value of every slot. An empty slot
// reports Ohi value 0 and flag false, matching spec.md §3's "0 = empty"
// convention.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{}
	if s.initial.live() {
		snap.Initial, snap.InitialFlag = s.initial.value, s.initial.flag
	}
	if s.medial.live() {
		snap.Medial, snap.MedialFlag = s.medial.value, s.medial.flag
	}
	if s.final.live() {
		snap.Final, snap.FinalFlag = s.final.value, s.final.flag
	}
	return snap
}

func ohiToSingleJamo(ohi int) rune {
	return layout.OhiIndexToSingleJamo(ohi)
}

func okInitial(ohi int) (int, bool) {
	return layout.OhiInitialToIdx(ohi)
}

func okMedial(ohi int) (int, bool) {
	return layout.OhiMedialToIdx(ohi)
}

func okFinal(ohi int) (int, bool) {
	return layout.OhiFinalToIdx(ohi)
}

func composeIdx(initIdx, medIdx, finIdx int) (rune, bool) {
	return codec.ComposeIdx(initIdx, medIdx, finIdx)
}
