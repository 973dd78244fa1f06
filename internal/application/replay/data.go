package replay

import "github.com/younwookim/rockman/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	H  float64 `json:"h,omitempty"`  // Horizontal axis, after smoothing
	FR bool    `json:"fr,omitempty"` // FaceRight edge
	FL bool    `json:"fl,omitempty"` // FaceLeft edge
	J  bool    `json:"j,omitempty"`  // Jump edge
	FD bool    `json:"fd,omitempty"` // FireDown edge
	FH bool    `json:"fh,omitempty"` // FireHeld level
	FU bool    `json:"fu,omitempty"` // FireUp edge
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Config    string       `json:"config"`   // config source the session ran with
	TickRate  int          `json:"tickRate"` // ticks per second
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput converts a tick's input into its recorded form
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		H:  in.Horizontal,
		FR: in.FaceRight,
		FL: in.FaceLeft,
		J:  in.Jump,
		FD: in.FireDown,
		FH: in.FireHeld,
		FU: in.FireUp,
	}
}

// Input converts a recorded frame back into an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Horizontal: fi.H,
		FaceRight:  fi.FR,
		FaceLeft:   fi.FL,
		Jump:       fi.J,
		FireDown:   fi.FD,
		FireHeld:   fi.FH,
		FireUp:     fi.FU,
	}
}
