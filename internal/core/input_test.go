package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Unset(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Unset should clear the action")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove every action")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRight) {
		t.Error("clone should keep its actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionNextLevel.String() != "NextLevel" {
		t.Errorf("ActionNextLevel.String() = %q", ActionNextLevel.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
