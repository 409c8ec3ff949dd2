// Package session owns one running instance of the simulation: the world,
// the level, the player and the ordered per-tick systems.
package session

import (
	"errors"
	"fmt"

	"github.com/automoto/cross/archetypes"
	"github.com/automoto/cross/components"
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/shared/leveldata"
	"github.com/automoto/cross/systems"
	"github.com/automoto/cross/systems/factory"
	"github.com/automoto/cross/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrInvalidGeometry = errors.New("invalid level geometry")
	ErrInvalidBody     = errors.New("invalid body size")
	ErrClosed          = errors.New("session closed")
)

// Options configures a new Session.
type Options struct {
	// Level defaults to the built-in level when nil.
	Level *leveldata.CollisionData

	// Width and Height of the body; zero uses config.Player.
	Width, Height int

	Profile config.PhysicsProfile
	Outline bool
}

// Frame is what one tick produced, for the renderer.
type Frame struct {
	Tick       int
	Frame      int
	Pose       config.PoseID
	FacingLeft bool

	Body   gamemath.Rect // world space
	Screen gamemath.Rect // Body offset by Camera
	Camera components.CameraData

	DashReady bool
}

// Session is not safe for concurrent use; drive it from one goroutine.
type Session struct {
	ecs      *ecs.ECS
	world    donburi.World
	level    *components.LevelData
	player   *donburi.Entry
	settings *donburi.Entry
	tick     int
	closed   bool
}

// New validates opts and builds the world. On error no session exists and
// no tick loop may be started.
func New(opts Options) (*Session, error) {
	data := opts.Level
	if data == nil {
		data = leveldata.Cross()
	}
	if err := validateGeometry(data.SolidRects); err != nil {
		return nil, err
	}

	width, height := opts.Width, opts.Height
	if width == 0 && height == 0 {
		width, height = config.Player.Width, config.Player.Height
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("body %dx%d: %w", width, height, ErrInvalidBody)
	}

	e := ecs.NewECS(donburi.NewWorld())
	w := e.World

	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, components.SettingsData{
		Profile: opts.Profile,
		Outline: opts.Outline,
	})

	levelEntry := factory.CreateLevel(w, data)
	level := components.Level.Get(levelEntry)
	player := factory.CreatePlayer(w, level, data.Spawn, width, height)

	// Camera follows the integrated position, before the resolver corrects it.
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateAnimation)
	e.AddSystem(systems.UpdateObjects)

	s := &Session{
		ecs:      e,
		world:    w,
		level:    level,
		player:   player,
		settings: settings,
	}
	return s, nil
}

func validateGeometry(solids []gamemath.Rect) error {
	for i, r := range solids {
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("solid %d %+v: %w", i, r, ErrInvalidGeometry)
		}
	}
	return nil
}

// Step advances the simulation by one tick. lastDisplayed is the pose the
// renderer actually drew for the previous frame, config.PoseNone when
// nothing was drawn yet; it decides whether the dash re-arms.
func (s *Session) Step(in components.IntentData, lastDisplayed config.PoseID) Frame {
	if s.closed {
		return Frame{}
	}

	components.Intent.SetValue(s.player, in)
	body := components.Body.Get(s.player)
	body.FacingLeft = systems.Facing(in, body.FacingLeft)
	systems.RearmDash(body, lastDisplayed)

	s.ecs.Update()
	s.tick++

	return s.frame()
}

func (s *Session) frame() Frame {
	body := components.Body.Get(s.player)
	anim := components.Animation.Get(s.player)
	cam := *components.Camera.Get(s.player)

	rect := body.Rect()
	return Frame{
		Tick:       s.tick,
		Frame:      anim.Frame,
		Pose:       anim.Playing,
		FacingLeft: body.FacingLeft,
		Body:       rect,
		Screen:     rect.Offset(cam.X, cam.Y),
		Camera:     cam,
		DashReady:  body.DashReady,
	}
}

// Tick returns the number of completed steps.
func (s *Session) Tick() int {
	return s.tick
}

// Level returns a copy of the ordered solids.
func (s *Session) Level() []gamemath.Rect {
	solids := make([]gamemath.Rect, len(s.level.Solids))
	copy(solids, s.level.Solids)
	return solids
}

func (s *Session) Body() components.BodyData {
	return *components.Body.Get(s.player)
}

func (s *Session) Animation() components.AnimationData {
	return *components.Animation.Get(s.player)
}

func (s *Session) Camera() components.CameraData {
	return *components.Camera.Get(s.player)
}

// Touching returns the indices of the solids the body touched after the
// last step.
func (s *Session) Touching() []int {
	if s.closed {
		return nil
	}
	return systems.TouchingSolids(s.world)
}

func (s *Session) Profile() config.PhysicsProfile {
	return components.Settings.Get(s.settings).Profile
}

// SetProfile switches the physics profile from the next step on.
func (s *Session) SetProfile(p config.PhysicsProfile) {
	components.Settings.Get(s.settings).Profile = p
}

func (s *Session) Outline() bool {
	return components.Settings.Get(s.settings).Outline
}

func (s *Session) SetOutline(on bool) {
	components.Settings.Get(s.settings).Outline = on
}

// World exposes the session's world to systems outside the tick, such as
// settings persistence.
func (s *Session) World() donburi.World {
	return s.world
}

// Close releases the level's space and every entity. Step is a no-op
// afterwards.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	s.level.Space.Remove(components.Object.Get(s.player).Object)
	s.level.Space.Remove(s.level.Objects...)
	s.level.Objects = nil

	entities := []donburi.Entity{s.player.Entity(), s.settings.Entity()}
	components.Level.Each(s.world, func(e *donburi.Entry) {
		entities = append(entities, e.Entity())
	})
	tags.Wall.Each(s.world, func(e *donburi.Entry) {
		entities = append(entities, e.Entity())
	})
	for _, e := range entities {
		s.world.Remove(e)
	}
	return nil
}
