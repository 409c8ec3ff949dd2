package systems

import (
	"testing"

	"github.com/automoto/cross/archetypes"
	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// committed returns an animation that has already settled on pose.
func committed(t *testing.T, pose cfg.PoseID) *components.AnimationData {
	t.Helper()
	anim := &components.AnimationData{Playing: cfg.Idle}
	if got := Animate(anim, pose); got != pose {
		t.Fatalf("initial commit to %v played %v", pose, got)
	}
	return anim
}

func TestAnimateFirstTickCommits(t *testing.T) {
	anim := &components.AnimationData{Playing: cfg.Idle}

	Animate(anim, cfg.Idle)

	if anim.Profile != cfg.Animations[cfg.Idle] {
		t.Errorf("profile = %+v, want %+v", anim.Profile, cfg.Animations[cfg.Idle])
	}
	if anim.Frame != 0 || anim.Counter != 0 {
		t.Errorf("frame/counter = %d/%d, want 0/0", anim.Frame, anim.Counter)
	}
}

func TestAnimateAdvancesFrames(t *testing.T) {
	anim := committed(t, cfg.Walk)

	// TicksPerFrame 4: the counter reaches 4 after four ticks and the frame
	// advances on the fifth.
	for i := 0; i < 4; i++ {
		Animate(anim, cfg.Walk)
	}
	if anim.Frame != 0 || anim.Counter != 4 {
		t.Fatalf("after 4 ticks frame/counter = %d/%d, want 0/4", anim.Frame, anim.Counter)
	}
	Animate(anim, cfg.Walk)
	if anim.Frame != 1 || anim.Counter != 1 {
		t.Fatalf("after 5 ticks frame/counter = %d/%d, want 1/1", anim.Frame, anim.Counter)
	}
}

func TestAnimateSpinLock(t *testing.T) {
	anim := committed(t, cfg.Idle)

	if got := Animate(anim, cfg.Spin); got != cfg.Spin {
		t.Fatalf("Spin request played %v", got)
	}
	if anim.Lock != 2 {
		t.Fatalf("lock = %d, want 2", anim.Lock)
	}

	// Two loops of 6 frames at 2 ticks per frame, the first frame one tick
	// short: 25 ticks until the lock is released.
	for tick := 1; tick <= 25; tick++ {
		if got := Animate(anim, cfg.Idle); got != cfg.Spin {
			t.Fatalf("tick %d: Idle pre-empted Spin (lock %d)", tick, anim.Lock)
		}
		if tick == 13 && anim.Lock != 1 {
			t.Errorf("tick 13: lock = %d, want 1", anim.Lock)
		}
	}
	if anim.Lock != 0 {
		t.Fatalf("lock = %d, want 0", anim.Lock)
	}

	if got := Animate(anim, cfg.Idle); got != cfg.Idle {
		t.Fatalf("Idle after unlock played %v", got)
	}
	if anim.Frame != 0 || anim.Counter != 0 {
		t.Errorf("frame/counter = %d/%d after commit, want 0/0", anim.Frame, anim.Counter)
	}
}

func TestAnimateLockGoesNegative(t *testing.T) {
	anim := committed(t, cfg.Walk)

	// Walk: 5 frames at 4 ticks per frame, the wrap lands on tick 21.
	for i := 0; i < 21; i++ {
		Animate(anim, cfg.Walk)
	}
	if anim.Lock != -1 {
		t.Fatalf("lock = %d, want -1", anim.Lock)
	}
	for i := 0; i < 20; i++ {
		Animate(anim, cfg.Walk)
	}
	if anim.Lock != -2 {
		t.Fatalf("lock = %d, want -2", anim.Lock)
	}

	// A negative lock never blocks, and a commit reloads it.
	if got := Animate(anim, cfg.Spin); got != cfg.Spin {
		t.Fatalf("Spin request played %v", got)
	}
	if anim.Lock != 2 {
		t.Errorf("lock = %d, want 2", anim.Lock)
	}
}

func TestAnimateStaticPoses(t *testing.T) {
	anim := committed(t, cfg.Jump)

	for i := 0; i < 10; i++ {
		if got := Animate(anim, cfg.Jump); got != cfg.Jump {
			t.Fatalf("Jump played %v", got)
		}
		if anim.Frame != 0 {
			t.Fatalf("static pose advanced to frame %d", anim.Frame)
		}
	}

	if got := Animate(anim, cfg.Fall); got != cfg.Fall {
		t.Errorf("Fall request played %v", got)
	}
}

func TestUpdateAnimationWritesDisplayedPose(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w := e.World
	player := archetypes.Player.Spawn(w)
	components.Animation.SetValue(player, *committed(t, cfg.Idle))
	body := components.Body.Get(player)

	body.Pose = cfg.Spin
	UpdateAnimation(e)
	body.Pose = cfg.Walk
	UpdateAnimation(e)

	if body.Pose != cfg.Spin {
		t.Errorf("body pose = %v, want the locked %v", body.Pose, cfg.Spin)
	}
}
