package components

import "github.com/yohamta/donburi"

// Horizontal is the held left/right direction
type Horizontal int

const (
	HorizontalNone Horizontal = iota
	HorizontalLeft
	HorizontalRight
)

// Vertical is the held up/down direction
type Vertical int

const (
	VerticalNone Vertical = iota
	VerticalDown
	VerticalUp
)

// Action is the held action button. Only one can be active per tick.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionDash
)

// IntentData is one tick's input sample, written by the session before
// the systems run.
type IntentData struct {
	Horizontal Horizontal
	Vertical   Vertical
	Action     Action
}

var Intent = donburi.NewComponentType[IntentData]()
