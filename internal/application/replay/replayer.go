package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/clickball/internal/domain/entity"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Elapsed time.Duration
	Click   bool
	Point   entity.Vec2
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
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %s)", data.Version, Version)
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
		Elapsed: time.Duration(fi.T),
		Click:   fi.C,
		Point:   entity.Vec2{X: fi.X, Y: fi.Y},
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

// Mode returns the mode the recording was made in
func (r *Replayer) Mode() string {
	return r.data.Mode
}

// StartTime returns the recorded session start, or the Unix epoch if the
// header is missing or malformed. Only offsets from it matter.
func (r *Replayer) StartTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.data.StartTime)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: one frame every
// tickMs with no clicks
func CreateTestReplayData(mode string, frames int, tickMs int64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Mode:      mode,
		StartTime: "2024-01-01T00:00:00Z",
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			T: (time.Duration(int64(i+1)*tickMs) * time.Millisecond).Nanoseconds(),
		}
	}

	return data
}
