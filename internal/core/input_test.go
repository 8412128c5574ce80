package core

import "testing"

func TestInputFrame(t *testing.T) {
	var frame InputFrame

	if frame.Has(ActionSelect) {
		t.Error("zero frame should have no actions")
	}

	frame.Set(ActionSelect)
	frame.Set(ActionLayerUp)
	if !frame.Has(ActionSelect) || !frame.Has(ActionLayerUp) {
		t.Error("Set actions should be reported by Has")
	}
	if frame.Has(ActionQuit) {
		t.Error("unset action reported")
	}

	frame.Clear()
	if frame.Has(ActionSelect) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:      "None",
		ActionLayerDown: "LayerDown",
		ActionBack:      "Back",
		ActionQuit:      "Quit",
		Action(99):      "Unknown",
	}
	for a, expected := range tests {
		if got := a.String(); got != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, expected)
		}
	}
}
