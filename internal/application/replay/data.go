package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	A   bool `json:"a,omitempty"`   // Attack
	Fi  bool `json:"fi,omitempty"`  // Fire
	Dsh bool `json:"dsh,omitempty"` // Dash
}

// ReplayData contains all data needed to replay a match
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Arena     string       `json:"arena"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
