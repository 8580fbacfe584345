package entity

// WaveCounter tracks wave progress
type WaveCounter struct {
	Index     int // current wave, 1-based; 0 before the first wave
	Remaining int // enemies alive in the current wave
	Total     int
}

// CanAdvance returns true if the current wave is cleared and more remain
func (w *WaveCounter) CanAdvance() bool {
	return w.Remaining <= 0 && w.Index < w.Total
}

// Advance moves to the next wave with count enemies.
// Returns false if the counter cannot advance.
func (w *WaveCounter) Advance(count int) bool {
	if !w.CanAdvance() {
		return false
	}
	w.Index++
	w.Remaining = count
	return true
}

// Defeat records one enemy death. Returns true if the wave is now cleared.
func (w *WaveCounter) Defeat() bool {
	if w.Remaining <= 0 {
		return false
	}
	w.Remaining--
	return w.Remaining == 0
}

// Complete returns true once the last wave is cleared
func (w *WaveCounter) Complete() bool {
	return w.Index >= w.Total && w.Remaining <= 0
}
