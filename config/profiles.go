package config

// PhysicsProfile selects the integration rules applied to the body.
type PhysicsProfile int

const (
	// ProfilePlatformer is gravity, buffered jump and dash. Default.
	ProfilePlatformer PhysicsProfile = iota
	// ProfileFreeFly is plain damped velocity following input, no jump
	// or dash. Only reachable when Debug.AllowProfileToggle is set.
	ProfileFreeFly
)

func (p PhysicsProfile) String() string {
	switch p {
	case ProfilePlatformer:
		return "platformer"
	case ProfileFreeFly:
		return "free-fly"
	}
	return "unknown"
}
