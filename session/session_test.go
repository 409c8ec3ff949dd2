package session

import (
	"errors"
	"testing"

	"github.com/automoto/cross/components"
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/shared/leveldata"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSettlesOnBaseline(t *testing.T) {
	cases := []struct {
		name  string
		level *leveldata.CollisionData
	}{
		{"no_solids", leveldata.Empty()},
		{"cross", leveldata.Cross()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newSession(t, Options{Level: c.level})

			last := config.PoseNone
			var frame Frame
			for i := 0; i < 30; i++ {
				frame = s.Step(components.IntentData{}, last)
				last = frame.Pose
			}

			body := s.Body()
			if want := config.Physics.FloorY - body.H; body.Y != want {
				t.Errorf("Y = %d, want %d", body.Y, want)
			}
			if body.VY != 0 {
				t.Errorf("VY = %v, want 0", body.VY)
			}
			if frame.Pose != config.Idle {
				t.Errorf("pose = %v, want %v", frame.Pose, config.Idle)
			}
			if frame.Tick != 30 {
				t.Errorf("tick = %d, want 30", frame.Tick)
			}
		})
	}
}

func TestFirstFrame(t *testing.T) {
	s := newSession(t, Options{Level: leveldata.Empty()})

	frame := s.Step(components.IntentData{}, config.PoseNone)

	if want := (gamemath.Rect{X: 110, Y: 27, W: 13, H: 13}); frame.Body != want {
		t.Errorf("body = %+v, want %+v", frame.Body, want)
	}
	if want := (components.CameraData{X: 101, Y: 144}); frame.Camera != want {
		t.Errorf("camera = %+v, want %+v", frame.Camera, want)
	}
	if want := (gamemath.Rect{X: 211, Y: 171, W: 13, H: 13}); frame.Screen != want {
		t.Errorf("screen = %+v, want %+v", frame.Screen, want)
	}
	if frame.DashReady {
		t.Errorf("dash armed before anything was drawn")
	}
}

func TestDashFollowsDisplayedPose(t *testing.T) {
	s := newSession(t, Options{Level: leveldata.Empty()})
	dashRight := components.IntentData{Horizontal: components.HorizontalRight, Action: components.ActionDash}

	frame := s.Step(components.IntentData{}, config.PoseNone)
	frame = s.Step(dashRight, frame.Pose)

	if frame.Pose != config.Spin {
		t.Fatalf("pose = %v, want %v", frame.Pose, config.Spin)
	}
	if frame.DashReady {
		t.Fatalf("dash still armed after dashing")
	}
	if frame.Body.X != 118 {
		t.Errorf("X = %d, want 118", frame.Body.X)
	}
	if anim := s.Animation(); anim.Lock != config.Animations[config.Spin].Lock {
		t.Errorf("spin lock = %d, want %d", anim.Lock, config.Animations[config.Spin].Lock)
	}

	// Spin on screen keeps the dash unarmed.
	for i := 0; i < 5; i++ {
		frame = s.Step(dashRight, frame.Pose)
		if frame.DashReady || s.Body().VX > 8 {
			t.Fatalf("dash re-armed while Spin was displayed")
		}
	}

	// Once the spin lock runs out a non-Spin pose is displayed and the dash
	// comes back.
	for i := 0; i < 40 && frame.Pose == config.Spin; i++ {
		frame = s.Step(components.IntentData{}, frame.Pose)
	}
	if frame.Pose == config.Spin {
		t.Fatalf("still spinning")
	}
	frame = s.Step(components.IntentData{}, frame.Pose)
	if !frame.DashReady {
		t.Errorf("dash not re-armed after %v was displayed", config.Idle)
	}
}

func TestFacingPersists(t *testing.T) {
	s := newSession(t, Options{Level: leveldata.Empty()})

	frame := s.Step(components.IntentData{Horizontal: components.HorizontalLeft}, config.PoseNone)
	if !frame.FacingLeft {
		t.Fatalf("not facing left")
	}
	frame = s.Step(components.IntentData{}, frame.Pose)
	if !frame.FacingLeft {
		t.Errorf("facing reset without input")
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want error
	}{
		{
			name: "zero_width_solid",
			opts: Options{Level: &leveldata.CollisionData{SolidRects: []gamemath.Rect{{X: 0, Y: 0, W: 0, H: 5}}}},
			want: ErrInvalidGeometry,
		},
		{
			name: "negative_height_solid",
			opts: Options{Level: &leveldata.CollisionData{SolidRects: []gamemath.Rect{{X: 0, Y: 0, W: 5, H: -1}}}},
			want: ErrInvalidGeometry,
		},
		{
			name: "negative_body",
			opts: Options{Width: -1, Height: 13},
			want: ErrInvalidBody,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New(c.opts)
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			if s != nil {
				t.Errorf("session returned alongside error")
			}
		})
	}
}

func TestProfileSwitch(t *testing.T) {
	s := newSession(t, Options{Level: leveldata.Empty(), Profile: config.ProfileFreeFly})
	up := components.IntentData{Vertical: components.VerticalUp}

	frame := s.Step(up, config.PoseNone)
	// Free-fly has no baseline plane: the body stays far below it and rises.
	if frame.Body.Y != 148 {
		t.Fatalf("free-fly Y = %d, want 148", frame.Body.Y)
	}

	s.SetProfile(config.ProfilePlatformer)
	if s.Profile() != config.ProfilePlatformer {
		t.Fatalf("profile = %v", s.Profile())
	}
	frame = s.Step(up, frame.Pose)
	if frame.Body.Y != 27 {
		t.Errorf("platformer Y = %d, want 27", frame.Body.Y)
	}
}

func TestCloseStopsStepping(t *testing.T) {
	s, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close = %v, want %v", err, ErrClosed)
	}
	if frame := s.Step(components.IntentData{}, config.PoseNone); frame != (Frame{}) {
		t.Errorf("Step after Close = %+v", frame)
	}
}

func TestLevelIsACopy(t *testing.T) {
	s := newSession(t, Options{})

	solids := s.Level()
	solids[0].X = 999

	if s.Level()[0].X == 999 {
		t.Errorf("Level exposed session geometry")
	}
}
