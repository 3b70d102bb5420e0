package replay

// FrameInput records what happened during a single tick
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	T int64   `json:"t"`           // Nanoseconds since the session started
	C bool    `json:"c,omitempty"` // Click this frame
	X float64 `json:"x,omitempty"` // Click world X
	Y float64 `json:"y,omitempty"` // Click world Y
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Mode      string       `json:"mode"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into new recordings. 1.0 files stored milliseconds
// and are not accepted.
const Version = "2.0"
