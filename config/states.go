package config

// StateID identifies an animation state for the player sprite.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	Die
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case Die:
		return "die"
	}
	return "none"
}
