package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/input"
	"github.com/automoto/cross/render"
	"github.com/automoto/cross/session"
	"github.com/automoto/cross/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// CrossScene runs one session in the window: it polls input, steps the
// session once per ebiten tick and draws the result.
type CrossScene struct {
	sceneChanger SceneChanger
	session      *session.Session
	watcher      *cfg.TuningWatcher
	dash         *render.DashIndicator
	frame        session.Frame
	lastDrawn    cfg.PoseID
	once         sync.Once
}

func NewCrossScene(sc SceneChanger) *CrossScene {
	return &CrossScene{sceneChanger: sc, lastDrawn: cfg.PoseNone}
}

func (cs *CrossScene) configure() {
	s, err := session.New(session.Options{Outline: cfg.Debug.Outline})
	if err != nil {
		panic("failed to create session: " + err.Error())
	}
	cs.session = s
	cs.dash = render.NewDashIndicator()

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(s.World(), saved)
	}

	if cfg.Debug.WatchTuning && cfg.Debug.TuningPath != "" {
		w, err := cfg.NewTuningWatcher(cfg.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			cs.watcher = w
		}
	}
}

func (cs *CrossScene) Update() {
	cs.once.Do(cs.configure)

	cs.applyTuning()
	cs.handleToggles()

	cs.step(systems.MapButtons(input.Poll()))
	cs.dash.Update(1/float32(cfg.C.TickRate), cs.frame.DashReady)
}

// step advances the session once. ebiten may run several updates per draw,
// so the stepped pose stands in as displayed until Draw reports its own.
func (cs *CrossScene) step(in components.IntentData) {
	cs.frame = cs.session.Step(in, cs.lastDrawn)
	cs.lastDrawn = cs.frame.Pose
}

// applyTuning picks up hot-reloaded tuning between ticks.
func (cs *CrossScene) applyTuning() {
	if cs.watcher == nil {
		return
	}
	select {
	case t := <-cs.watcher.Updates:
		t.Apply()
		log.Printf("Tuning reloaded from %s", cfg.Debug.TuningPath)
	case err := <-cs.watcher.Errors:
		log.Printf("Warning: Could not reload tuning: %v", err)
	default:
	}
}

func (cs *CrossScene) handleToggles() {
	changed := false
	if input.OutlineToggled() {
		cs.session.SetOutline(!cs.session.Outline())
		cfg.Debug.Outline = cs.session.Outline()
		changed = true
	}
	if cfg.Debug.AllowProfileToggle && input.ProfileToggled() {
		next := cfg.ProfileFreeFly
		if cs.session.Profile() == cfg.ProfileFreeFly {
			next = cfg.ProfilePlatformer
		}
		cs.session.SetProfile(next)
		changed = true
	}
	if changed {
		systems.SaveCurrentSettings(cs.session.World())
	}
}

func (cs *CrossScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.session == nil {
		return
	}

	outline := cs.session.Outline()
	var touching []int
	if outline {
		touching = cs.session.Touching()
	}

	render.DrawFloor(screen, cs.frame.Camera)
	render.DrawLevel(screen, cs.session.Level(), cs.frame.Camera, touching)
	if cs.frame.Tick > 0 {
		cs.lastDrawn = render.DrawPlayer(screen, cs.frame, outline)
	}
	cs.dash.Draw(screen)
	if outline {
		render.DrawHUD(screen, cs.frame, cs.session.Profile())
	}
}

// Close stops the tuning watcher and releases the session.
func (cs *CrossScene) Close() {
	if cs.watcher != nil {
		_ = cs.watcher.Close()
	}
	if cs.session != nil {
		_ = cs.session.Close()
	}
}
