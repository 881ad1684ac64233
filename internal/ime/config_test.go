package ime

import "testing"

func TestNewConfiguredStateDefaultsToBulsik2(t *testing.T) {
	cs := NewConfiguredState(nil)
	if cs.GetConfig().Layout != LayoutBulsik2 {
		t.Errorf("default layout = %v, want LayoutBulsik2", cs.GetConfig().Layout)
	}
}

func TestConfiguredStateProcessASCIIDispatchesByLayout(t *testing.T) {
	t.Run("bulsik2", func(t *testing.T) {
		cs := NewConfiguredState(DefaultConfig())
		r := cs.ProcessASCII('g', false)
		if r.CurrentCP != 'ㅎ' {
			t.Errorf("CurrentCP = %c, want ㅎ", r.CurrentCP)
		}
	})

	t.Run("bulsik3", func(t *testing.T) {
		cs := NewConfiguredState(&Config{Layout: LayoutBulsik3})
		r := cs.ProcessASCII('r', false) // 초성 key
		if r.CurrentCP != 'ㄱ' {
			t.Errorf("CurrentCP = %c, want ㄱ", r.CurrentCP)
		}
	})
}

func TestConfiguredStateSetConfigSwitchesLayout(t *testing.T) {
	cs := NewConfiguredState(DefaultConfig())
	cs.SetConfig(&Config{Layout: LayoutBulsik3})
	if cs.GetConfig().Layout != LayoutBulsik3 {
		t.Error("SetConfig did not update the session's layout")
	}
}
