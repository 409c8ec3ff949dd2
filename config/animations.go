package config

// AnimationProfile describes how a pose plays.
type AnimationProfile struct {
	TicksPerFrame int
	FrameCount    int // 0 = static single pose, never advances
	Lock          int // Loops that must complete before another pose may pre-empt
}

// Animations maps each pose to its playback profile.
var Animations = map[PoseID]AnimationProfile{
	Idle: {TicksPerFrame: 4, FrameCount: 2, Lock: 0},
	Walk: {TicksPerFrame: 4, FrameCount: 5, Lock: 0},
	Spin: {TicksPerFrame: 2, FrameCount: 6, Lock: 2},
	Jump: {TicksPerFrame: 4, FrameCount: 0, Lock: 0},
	Fall: {TicksPerFrame: 4, FrameCount: 0, Lock: 0},
}
