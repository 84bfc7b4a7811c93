package registry

import (
	"testing"

	"github.com/vovakirdan/forest-run/internal/core"
)

type stubGame struct {
	id, title string
	clock     core.FrameClock
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Dispatch(core.Action) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Clock() *core.FrameClock { return &g.clock }
func (g *stubGame) UnlockDeveloperMode(string) bool { return false }
func (g *stubGame) SetDeveloperMode(bool) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub", title: "Stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub", title: "First"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	if Exists("missing") {
		t.Fatal("unregistered game should not exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title = %q, want Stub", g.Title())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of an unknown id should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "aa-stub" && info.Title == "First" {
			found = true
		}
	}
	if !found {
		t.Error("List should carry titles")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same id twice should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
