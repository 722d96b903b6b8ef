// Package game is the controller that couples the board, the falling piece and
// the gravity clock into a playable session.
package game

const (
	// FrameRate is the fixed rate of the outer loop in frames per second.
	FrameRate = 50

	InitialSpeed   = 1.0
	SpeedIncrement = 0.035
	LevelFactor    = 1.70

	// LockCooldownFrames is how long soft drop stays disabled after a lock.
	LockCooldownFrames = 25

	// SoftDropRate is the gravity rate, in cycles per second, while soft
	// drop is held.
	SoftDropRate = 25.0

	baseLineScore = 50
)

// State is the controller's coarse state.
type State int

const (
	Idle State = iota
	Active
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Active:
		return "Active"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Direction selects a rotation direction.
type Direction int

const (
	CW Direction = iota
	CCW
)

// Intent is a player request forwarded by a presentation adapter.
type Intent int

const (
	MoveLeft Intent = iota + 1
	MoveRight
	RotateCW
	RotateCCW
	SoftDropStart
	SoftDropStop
	TogglePause
	Restart
)

var intentNames = map[Intent]string{
	MoveLeft:      "MoveLeft",
	MoveRight:     "MoveRight",
	RotateCW:      "RotateCW",
	RotateCCW:     "RotateCCW",
	SoftDropStart: "SoftDropStart",
	SoftDropStop:  "SoftDropStop",
	TogglePause:   "TogglePause",
	Restart:       "Restart",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "Intent(?)"
}

// LineScore returns the points for a single lock that cleared the given number
// of lines.
func LineScore(cleared int) int {
	if cleared <= 0 {
		return 0
	}
	return baseLineScore << cleared
}
