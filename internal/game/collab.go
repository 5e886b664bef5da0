package game

// Storage keys the engine and UI persist through a KeyValueStore.
const (
	KeyBestScore  = "bestScore"
	KeyDarkMode   = "darkMode"
	KeySoundMuted = "soundMuted"
)

// KeyValueStore persists small scalar settings. Implementations must never
// panic; a failed write is reported by returning false and is otherwise the
// store's own concern. The engine stays correct even if every call fails.
type KeyValueStore interface {
	// Get returns the stored value for key, or def when the key is absent
	// or the store is unavailable.
	Get(key, def string) string

	// Set stores value under key and reports whether the write succeeded.
	Set(key, value string) bool
}

// AudioSink receives fire-and-forget playback cues. Implementations swallow
// their own failures; none of these calls may block.
type AudioSink interface {
	PlayMove()
	PlayMerge()
	PlayWin()
	PlayGameOver()
}

// NopSink is an AudioSink that discards every cue.
type NopSink struct{}

func (NopSink) PlayMove()     {}
func (NopSink) PlayMerge()    {}
func (NopSink) PlayWin()      {}
func (NopSink) PlayGameOver() {}

// MemStore is an in-memory KeyValueStore. It backs the engine when no
// database is available and doubles as the test fake.
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get implements KeyValueStore.
func (m *MemStore) Get(key, def string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// Set implements KeyValueStore.
func (m *MemStore) Set(key, value string) bool {
	m.values[key] = value
	return true
}
