package core

import "testing"

func TestInputFrameDirectionsKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if !f.Has(ActionPause) || !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Fatal("Set actions should be reported by Has")
	}
	if len(f.Directions) != 2 || f.Directions[0] != ActionUp || f.Directions[1] != ActionLeft {
		t.Errorf("Directions = %v, expected [Up Left]", f.Directions)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() || len(f.Directions) != 0 {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionUp) || len(clone.Directions) != 2 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventFoodEaten}, {Kind: EventHighScore, Score: 3}}}
	if !r.Has(EventHighScore) || r.Has(EventGameOver) {
		t.Errorf("Has() gave wrong answer for %v", r.Events)
	}
	if EventGameOver.String() != "game_over" {
		t.Errorf("EventGameOver.String() = %q", EventGameOver.String())
	}
}
