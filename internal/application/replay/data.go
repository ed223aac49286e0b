package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	A  bool `json:"a,omitempty"`  // ActionJustPressed
	PX int  `json:"px"`           // PointerX
	PY int  `json:"py"`           // PointerY
	PP bool `json:"pp,omitempty"` // PointerPressed
	PJ bool `json:"pj,omitempty"` // PointerJustPressed
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every new recording
const Version = "1.0"
