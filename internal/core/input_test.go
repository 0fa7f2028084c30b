package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionMoveLeft) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionMoveLeft)
	f.Set(ActionSpeedUp)
	if !f.Has(ActionMoveLeft) || !f.Has(ActionSpeedUp) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionMoveRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionMoveLeft) || f.Has(ActionSpeedUp) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionStart) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionStart)
	if !f.Has(ActionStart) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:      "None",
		ActionMoveLeft:  "MoveLeft",
		ActionMoveRight: "MoveRight",
		ActionSpeedUp:   "SpeedUp",
		ActionStart:     "Start",
		ActionRetry:     "Retry",
		ActionQuit:      "Quit",
		Action(99):      "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
