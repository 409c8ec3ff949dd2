package session

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/cross/components"
	"github.com/automoto/cross/config"
)

// IntentSource supplies one intent per tick. ok is false once the source
// is exhausted, which ends the loop.
type IntentSource interface {
	Next() (in components.IntentData, ok bool)
}

// GameLoop drives a Session at a fixed tick rate without a window. The
// pose reported by the previous frame stands in for the drawn pose.
type GameLoop struct {
	session  *Session
	source   IntentSource
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once

	// Tuning, when set, is drained between ticks.
	Tuning <-chan config.Tuning
	// OnFrame, when set, receives every frame.
	OnFrame func(Frame)

	lastPose config.PoseID
}

func NewGameLoop(session *Session, source IntentSource, tickRate int) *GameLoop {
	return &GameLoop{
		session:  session,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		lastPose: config.PoseNone,
	}
}

// Run blocks until the source is exhausted or Stop is called.
func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return
		case t := <-g.Tuning:
			t.Apply()
			log.Printf("Tuning reloaded")
		case <-ticker.C:
			if !g.tick() {
				g.running.Store(false)
				log.Printf("Game loop finished after %d ticks", g.session.Tick())
				return
			}
		}
	}
}

// Running reports whether Run is between start and return.
func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() bool {
	in, ok := g.source.Next()
	if !ok {
		return false
	}

	frame := g.session.Step(in, g.lastPose)
	g.lastPose = frame.Pose
	if g.OnFrame != nil {
		g.OnFrame(frame)
	}
	return true
}
