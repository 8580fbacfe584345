package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/arena/internal/application/system"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Attack bool
	Fire   bool
	Dash   bool
}

// InputState converts a recorded frame back into device state
func (in ReplayInput) InputState() system.InputState {
	return system.InputState{
		Left:   in.Left,
		Right:  in.Right,
		Up:     in.Up,
		Down:   in.Down,
		Attack: in.Attack,
		Fire:   in.Fire,
		Dash:   in.Dash,
	}
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:   fi.L,
		Right:  fi.R,
		Up:     fi.U,
		Down:   fi.D,
		Attack: fi.A,
		Fire:   fi.Fi,
		Dash:   fi.Dsh,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Arena returns the arena the replay was recorded on
func (r *Replayer) Arena() string {
	return r.data.Arena
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Seed:      12345,
		Arena:     "test",
		TickRate:  60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
