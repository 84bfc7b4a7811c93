package storage

import (
	"sync"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTest(t)
	b := openTest(t)

	if _, err := a.SaveRun(RunRecord{GameID: "forest", Score: 10, Level: 1, Outcome: OutcomeLost, LossReason: "normal"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	high, err := b.HighScore("forest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second store sees first store's runs: high=%d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTest(t)

	runs := []RunRecord{
		{GameID: "forest", Score: 12, Level: 1, Outcome: OutcomeLost, LossReason: "normal"},
		{GameID: "forest", Score: 50, Level: 1, Outcome: OutcomeWon},
		{GameID: "forest", Score: 31, Level: 1, Outcome: OutcomeLost, LossReason: "miniboss"},
		{GameID: "forest-night", Score: 77, Level: 2, Outcome: OutcomeLost, LossReason: "branch", DevMode: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	top, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}
	wantScores := []int{50, 31, 12}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].Outcome != OutcomeWon || top[1].LossReason != "miniboss" {
		t.Errorf("fields not round-tripped: %+v", top[:2])
	}

	night, err := store.TopRuns("forest-night", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(night) != 1 || !night[0].DevMode || night[0].Level != 2 {
		t.Errorf("unexpected night runs: %+v", night)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTest(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(RunRecord{GameID: "forest", Score: i, Level: 1, Outcome: OutcomeLost}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // default
		{50, 20},
	}
	for _, tt := range tests {
		runs, err := store.TopRuns("forest", tt.limit)
		if err != nil {
			t.Fatalf("TopRuns() failed: %v", err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(limit=%d) returned %d, want %d", tt.limit, len(runs), tt.want)
		}
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTest(t)

	high, err := store.HighScore("forest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty game, got %d", high)
	}

	for _, r := range []RunRecord{
		{GameID: "forest", Score: 10, Level: 1, Outcome: OutcomeLost},
		{GameID: "forest", Score: 50, Level: 1, Outcome: OutcomeWon},
		{GameID: "forest", Score: 30, Level: 1, Outcome: OutcomeLost},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	high, err = store.HighScore("forest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 50 {
		t.Errorf("expected high score 50, got %d", high)
	}

	stats, err := store.Stats("forest")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.HighScore != 50 || stats.AvgScore != 30 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected last played time")
	}

	empty, err := store.Stats("nothing")
	if err != nil {
		t.Fatalf("Stats() on empty game failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", empty)
	}
}

func TestStoreRejectsBadRuns(t *testing.T) {
	store := openTest(t)

	tests := []struct {
		name string
		run  RunRecord
	}{
		{"no game", RunRecord{Score: 1, Outcome: OutcomeLost}},
		{"bad outcome", RunRecord{GameID: "forest", Outcome: "draw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStoreRecentAndClear(t *testing.T) {
	store := openTest(t)

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveRun(RunRecord{GameID: "forest", Score: i, Level: 1, Outcome: OutcomeLost}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("unexpected recent runs %+v", recent)
	}

	if err := store.ClearRuns("forest"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.TopRuns("forest", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTest(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRun(RunRecord{GameID: "forest", Score: score, Level: 1, Outcome: OutcomeLost}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	stats, err := store.Stats("forest")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 8 {
		t.Errorf("expected 8 runs, got %d", stats.Runs)
	}
}
