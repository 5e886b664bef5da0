package game

// Snapshot is an immutable deep copy of the full game state, taken before a
// state-changing move so Undo can restore it verbatim.
type Snapshot struct {
	Grid        *Grid
	Score       int
	Won         bool
	KeepPlaying bool
}

// DefaultHistorySize is the number of snapshots retained for undo.
const DefaultHistorySize = 5

// HistoryStack is a bounded snapshot buffer, oldest first. When a push
// exceeds capacity the oldest entry is evicted, never a middle one.
type HistoryStack struct {
	capacity  int
	snapshots []Snapshot
}

// NewHistoryStack creates a stack holding at most capacity snapshots.
func NewHistoryStack(capacity int) *HistoryStack {
	if capacity < 1 {
		capacity = DefaultHistorySize
	}
	return &HistoryStack{capacity: capacity}
}

// Push appends a snapshot, evicting the oldest entry on overflow.
func (h *HistoryStack) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
	if len(h.snapshots) > h.capacity {
		h.snapshots = h.snapshots[1:]
	}
}

// Pop removes and returns the most recent snapshot, or false when empty.
func (h *HistoryStack) Pop() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	s := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return s, true
}

// Clear discards all snapshots.
func (h *HistoryStack) Clear() {
	h.snapshots = nil
}

// Len returns the number of retained snapshots.
func (h *HistoryStack) Len() int {
	return len(h.snapshots)
}

// Capacity returns the maximum number of retained snapshots.
func (h *HistoryStack) Capacity() int {
	return h.capacity
}
