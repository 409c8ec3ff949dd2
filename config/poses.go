package config

// PoseID identifies an animation pose independent of the bitmap frame shown.
type PoseID int

const (
	PoseNone PoseID = -1

	Idle PoseID = iota - 1
	Walk
	Spin
	Jump
	Fall
)

func (p PoseID) String() string {
	switch p {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Spin:
		return "spin"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	}
	return "none"
}
