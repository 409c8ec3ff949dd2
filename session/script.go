package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/cross/components"
	"github.com/automoto/cross/systems"
)

// ScriptStep holds the same buttons for Ticks ticks.
type ScriptStep struct {
	Buttons components.ButtonsData
	Ticks   int
}

// Script is an IntentSource that replays steps in order.
type Script struct {
	steps []ScriptStep
	step  int
	left  int
}

func NewScript(steps ...ScriptStep) *Script {
	s := &Script{steps: steps}
	if len(steps) > 0 {
		s.left = steps[0].Ticks
	}
	return s
}

// ParseScript reads steps of the form "buttons:ticks" separated by commas,
// where buttons is "idle" or a "+"-joined set of left, right, up, down, a
// and b. For example "right:10,right+a:1,idle:20".
func ParseScript(src string) (*Script, error) {
	var steps []ScriptStep
	for _, field := range strings.Split(src, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, count, found := strings.Cut(field, ":")
		if !found {
			return nil, fmt.Errorf("script step %q: missing tick count", field)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("script step %q: bad tick count", field)
		}
		buttons, err := parseButtons(name)
		if err != nil {
			return nil, fmt.Errorf("script step %q: %w", field, err)
		}
		steps = append(steps, ScriptStep{Buttons: buttons, Ticks: ticks})
	}
	return NewScript(steps...), nil
}

func parseButtons(name string) (components.ButtonsData, error) {
	var b components.ButtonsData
	if name == "idle" {
		return b, nil
	}
	for _, button := range strings.Split(name, "+") {
		switch strings.ToLower(button) {
		case "left":
			b.Left = true
		case "right":
			b.Right = true
		case "up":
			b.Up = true
		case "down":
			b.Down = true
		case "a":
			b.A = true
		case "b":
			b.B = true
		default:
			return b, fmt.Errorf("unknown button %q", button)
		}
	}
	return b, nil
}

func (s *Script) Next() (components.IntentData, bool) {
	for s.step < len(s.steps) && s.left == 0 {
		s.step++
		if s.step < len(s.steps) {
			s.left = s.steps[s.step].Ticks
		}
	}
	if s.step >= len(s.steps) {
		return components.IntentData{}, false
	}
	s.left--
	return systems.MapButtons(s.steps[s.step].Buttons), true
}

// Len returns the total number of ticks the script covers.
func (s *Script) Len() int {
	n := 0
	for _, step := range s.steps {
		n += step.Ticks
	}
	return n
}
