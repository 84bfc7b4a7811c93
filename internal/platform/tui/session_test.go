package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/forest-run/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	m := NewSessionModel(testRuntime(), Options{Store: store})
	if m.view != viewMenu {
		t.Fatalf("session should start in the menu")
	}
	if len(m.menu.items) < 2 {
		t.Fatalf("menu should list both forests, got %d", len(m.menu.items))
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatal("enter should open the selected forest")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.game != nil {
		t.Fatal("esc from the forest menu should return to the picker")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunRecord{GameID: "forest", Score: 42, Level: 1, Outcome: storage.OutcomeWon}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewSessionModel(testRuntime(), Options{Store: store})
	if m.menu.items[0].Best != 42 {
		t.Errorf("menu best = %d, want 42", m.menu.items[0].Best)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores || m.scores == nil {
		t.Fatal("tab should open the run history")
	}
	if len(m.scores.scores) != 1 {
		t.Errorf("history rows = %d, want 1", len(m.scores.scores))
	}

	m = sessionUpdate(t, m, runes("x"))
	if len(m.scores.scores) != 0 {
		t.Errorf("x should clear the history, %d rows left", len(m.scores.scores))
	}
	if best, _ := store.HighScore("forest"); best != 0 {
		t.Errorf("high score after clear = %d, want 0", best)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Error("esc should return from the history to the picker")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testRuntime(), Options{})
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(SessionModel).View() != "" {
		t.Error("quitting session should render nothing")
	}
}
