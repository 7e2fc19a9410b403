package study

// DefaultRecencyWindow is the number of recently shown keys remembered
// when no explicit capacity is configured.
const DefaultRecencyWindow = 3

// RecencyWindow remembers the most recently answered card keys, oldest first.
type RecencyWindow struct {
	capacity int
	keys     []string
}

// NewRecencyWindow creates a window holding at most capacity keys.
// A capacity below 1 falls back to DefaultRecencyWindow.
func NewRecencyWindow(capacity int) *RecencyWindow {
	if capacity < 1 {
		capacity = DefaultRecencyWindow
	}
	return &RecencyWindow{
		capacity: capacity,
		keys:     make([]string, 0, capacity+1),
	}
}

// Record appends key and evicts the single oldest entry if the window
// overflows. Keys already present are appended again.
func (w *RecencyWindow) Record(key string) {
	w.keys = append(w.keys, key)
	if len(w.keys) > w.capacity {
		w.keys = append(w.keys[:0], w.keys[1:]...)
	}
}

// Contains reports whether key is currently in the window.
func (w *RecencyWindow) Contains(key string) bool {
	for _, k := range w.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns a copy of the remembered keys, oldest first.
func (w *RecencyWindow) Keys() []string {
	out := make([]string, len(w.keys))
	copy(out, w.keys)
	return out
}

// Len returns the number of keys currently remembered.
func (w *RecencyWindow) Len() int {
	return len(w.keys)
}

// Capacity returns the maximum number of keys the window holds.
func (w *RecencyWindow) Capacity() int {
	return w.capacity
}

// Reset forgets all keys.
func (w *RecencyWindow) Reset() {
	w.keys = w.keys[:0]
}
