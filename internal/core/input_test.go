package core

import "testing"

func TestInputFrameKeepsPressOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPause)
	f.Set(ActionNone)
	f.Set(ActionDown)
	f.Set(ActionRight)

	if f.Len() != 4 {
		t.Fatalf("expected 4 actions, got %d", f.Len())
	}

	dirs := f.Directions()
	want := []Action{ActionRight, ActionDown, ActionRight}
	if len(dirs) != len(want) {
		t.Fatalf("expected %d directions, got %v", len(want), dirs)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("direction %d: expected %v, got %v", i, want[i], dirs[i])
		}
	}
}

func TestInputFrameHasAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	if !f.Has(ActionPause) {
		t.Error("Has(Pause) should be true")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(Restart) should be false")
	}

	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionPause) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		a    Action
		want bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionPause, false},
		{ActionConfirm, false},
		{ActionNone, false},
	}
	for _, tc := range tests {
		if got := tc.a.IsDirection(); got != tc.want {
			t.Errorf("%v.IsDirection() = %v, expected %v", tc.a, got, tc.want)
		}
	}
}
