package game

import "testing"

func TestScoreTrackerAddAndBest(t *testing.T) {
	store := NewMemStore()
	tr := NewScoreTracker(store)

	tr.Add(4)
	tr.Add(8)

	if tr.Score() != 12 {
		t.Errorf("Score = %d, want 12", tr.Score())
	}
	if tr.Best() != 12 {
		t.Errorf("Best = %d, want 12", tr.Best())
	}
	if got := store.Get(KeyBestScore, "0"); got != "12" {
		t.Errorf("persisted best = %q, want \"12\"", got)
	}
}

func TestScoreTrackerResetKeepsBest(t *testing.T) {
	store := NewMemStore()
	tr := NewScoreTracker(store)

	tr.Add(100)
	tr.Reset()

	if tr.Score() != 0 {
		t.Errorf("Score after Reset = %d, want 0", tr.Score())
	}
	if tr.Best() != 100 {
		t.Errorf("Best after Reset = %d, want 100", tr.Best())
	}
}

func TestScoreTrackerLoadsPersistedBest(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyBestScore, "4096")

	tr := NewScoreTracker(store)

	if tr.Best() != 4096 {
		t.Errorf("Best = %d, want 4096 from the store", tr.Best())
	}

	// A lower score must not overwrite the persisted best.
	tr.Add(50)
	if got := store.Get(KeyBestScore, "0"); got != "4096" {
		t.Errorf("persisted best = %q, want unchanged \"4096\"", got)
	}
}

func TestScoreTrackerGarbageBestIgnored(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyBestScore, "not-a-number")

	tr := NewScoreTracker(store)

	if tr.Best() != 0 {
		t.Errorf("Best = %d, want 0 for unparseable stored value", tr.Best())
	}
}

func TestScoreTrackerNilStore(t *testing.T) {
	tr := NewScoreTracker(nil)
	tr.Add(8)

	if tr.Score() != 8 || tr.Best() != 8 {
		t.Errorf("tracker without store: score=%d best=%d, want 8/8", tr.Score(), tr.Best())
	}
}
