package game

import "strconv"

// ScoreTracker keeps the running score and the best score ever achieved.
// The best score is loaded from and persisted through the injected store;
// persistence failures are ignored and the in-memory values stay correct.
type ScoreTracker struct {
	score int
	best  int
	store KeyValueStore
}

// NewScoreTracker creates a tracker, loading the persisted best score.
func NewScoreTracker(store KeyValueStore) *ScoreTracker {
	if store == nil {
		store = NewMemStore()
	}
	t := &ScoreTracker{store: store}
	if v, err := strconv.Atoi(store.Get(KeyBestScore, "0")); err == nil && v > 0 {
		t.best = v
	}
	return t
}

// Add increments the score. When the new score exceeds the best score the
// best is updated and persisted.
func (t *ScoreTracker) Add(points int) {
	if points <= 0 {
		return
	}
	t.score += points
	if t.score > t.best {
		t.best = t.score
		t.store.Set(KeyBestScore, strconv.Itoa(t.best))
	}
}

// Reset sets the running score to zero. The best score is untouched.
func (t *ScoreTracker) Reset() {
	t.score = 0
}

// restore overwrites the running score from an undo snapshot. The best score
// is monotonic and never restored.
func (t *ScoreTracker) restore(score int) {
	t.score = score
}

// Score returns the running score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// Best returns the best score ever achieved.
func (t *ScoreTracker) Best() int {
	return t.best
}
