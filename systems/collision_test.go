package systems

import (
	"testing"

	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
)

func TestClassify(t *testing.T) {
	platform := gamemath.Rect{X: 0, Y: 40, W: 100, H: 5}
	wall := gamemath.Rect{X: 0, Y: 0, W: 20, H: 40}

	cases := []struct {
		name  string
		body  gamemath.Rect
		solid gamemath.Rect
		want  Contact
	}{
		{"feet_exactly_on_top", gamemath.Rect{X: 0, Y: 27, W: 13, H: 13}, platform, ContactFeet},
		{"feet_sunk_in", gamemath.Rect{X: 40, Y: 30, W: 13, H: 13}, platform, ContactFeet},
		{"passed_through", gamemath.Rect{X: 0, Y: 46, W: 13, H: 13}, platform, ContactNone},
		{"head", gamemath.Rect{X: 10, Y: 44, W: 13, H: 13}, platform, ContactHead},
		{"head_flush_under", gamemath.Rect{X: 10, Y: 45, W: 13, H: 13}, platform, ContactHead},
		{"left", gamemath.Rect{X: -5, Y: 10, W: 13, H: 13}, wall, ContactLeft},
		{"right", gamemath.Rect{X: 15, Y: 10, W: 13, H: 13}, wall, ContactRight},
		{"touching_side_only", gamemath.Rect{X: -13, Y: 10, W: 13, H: 13}, wall, ContactNone},
		{"inside", gamemath.Rect{X: 2, Y: 10, W: 13, H: 13}, wall, ContactNone},
		{"far_away", gamemath.Rect{X: 200, Y: 200, W: 13, H: 13}, wall, ContactNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.body, c.solid); got != c.want {
				t.Errorf("Classify = %v, want %v", got, c.want)
			}
		})
	}
}

func TestClassifyFeetBeatsSide(t *testing.T) {
	// Straddling the platform's left corner: feet wins over left.
	body := gamemath.Rect{X: -5, Y: 30, W: 13, H: 13}
	platform := gamemath.Rect{X: 0, Y: 40, W: 100, H: 5}

	if got := Classify(body, platform); got != ContactFeet {
		t.Errorf("Classify = %v, want %v", got, ContactFeet)
	}
}

func TestResolveLastWriteWins(t *testing.T) {
	a := gamemath.Rect{X: 0, Y: 38, W: 100, H: 10}
	b := gamemath.Rect{X: 0, Y: 36, W: 100, H: 10}
	body := &components.BodyData{X: 10, Y: 30, W: 13, H: 13, VY: 3, GroundedTicks: 4}

	Resolve(body, components.IntentData{Horizontal: components.HorizontalRight}, []gamemath.Rect{a, b})

	if want := b.Top() - body.H; body.Y != want {
		t.Fatalf("Y = %d, want %d (snap from the later solid)", body.Y, want)
	}
	if body.VY != cfg.Resolver.LandingSpeed {
		t.Errorf("VY = %v, want %v", body.VY, cfg.Resolver.LandingSpeed)
	}
	if body.GroundedTicks != 0 {
		t.Errorf("GroundedTicks = %d, want 0", body.GroundedTicks)
	}
	if body.Pose != cfg.Walk {
		t.Errorf("pose = %v, want %v", body.Pose, cfg.Walk)
	}
}

func TestResolveSnaps(t *testing.T) {
	wall := gamemath.Rect{X: 0, Y: 0, W: 20, H: 40}
	ceiling := gamemath.Rect{X: 0, Y: 40, W: 100, H: 5}

	cases := []struct {
		name   string
		body   components.BodyData
		solid  gamemath.Rect
		wantX  int
		wantY  int
		wantVX float64
		wantVY float64
	}{
		{"left", components.BodyData{X: -5, Y: 10, W: 13, H: 13, VX: 3, VY: 2}, wall, -13, 10, 0, 2},
		{"right", components.BodyData{X: 15, Y: 10, W: 13, H: 13, VX: -3, VY: 2}, wall, 20, 10, 0, 2},
		{"head", components.BodyData{X: 10, Y: 44, W: 13, H: 13, VX: 1, VY: -3}, ceiling, 10, 45, 1, 0},
		{"none", components.BodyData{X: 60, Y: 10, W: 13, H: 13, VX: 1, VY: 1}, wall, 60, 10, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := c.body
			Resolve(&body, components.IntentData{}, []gamemath.Rect{c.solid})

			if body.X != c.wantX || body.Y != c.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", body.X, body.Y, c.wantX, c.wantY)
			}
			if body.VX != c.wantVX || body.VY != c.wantVY {
				t.Errorf("velocity = (%v,%v), want (%v,%v)", body.VX, body.VY, c.wantVX, c.wantVY)
			}
		})
	}
}

func TestResolveLandingIdleWithoutInput(t *testing.T) {
	body := &components.BodyData{X: 25, Y: 10, W: 13, H: 13, Pose: cfg.Fall}

	Resolve(body, components.IntentData{}, []gamemath.Rect{{X: 20, Y: 20, W: 30, H: 5}})

	if body.Y != 7 {
		t.Errorf("Y = %d, want 7", body.Y)
	}
	if body.Pose != cfg.Idle {
		t.Errorf("pose = %v, want %v", body.Pose, cfg.Idle)
	}
}
