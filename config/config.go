package config

import "image/color"

// PhysicsConfig contains the platformer integration constants
type PhysicsConfig struct {
	// Jump
	JumpSpeed   float64 `yaml:"jump_speed"`   // Upward speed set by a jump
	JumpNudge   int     `yaml:"jump_nudge"`   // One-time upward position nudge on jump
	JumpCarry   float64 `yaml:"jump_carry"`   // Horizontal speed multiplier on jump
	CoyoteTicks int     `yaml:"coyote_ticks"` // Jump is honored while GroundedTicks is below this

	// Movement
	Acceleration float64 `yaml:"acceleration"`
	Damping      float64 `yaml:"damping"` // Horizontal speed multiplier per tick

	// Gravity
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // No clamp on upward speed

	// Baseline plane, independent of level geometry
	FloorY int `yaml:"floor_y"`

	// Dash
	DashSpeedX float64 `yaml:"dash_speed_x"`
	DashSpeedY float64 `yaml:"dash_speed_y"`
}

// FreeFlyConfig contains the alternate damped-velocity profile constants
type FreeFlyConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	RiseSpeed    float64 `yaml:"rise_speed"` // Upward speed set while up is held
	SinkAccel    float64 `yaml:"sink_accel"` // Downward acceleration while down is held
	Damping      float64 `yaml:"damping"`    // Applied to both axes every tick
}

// ResolverConfig contains collision correction constants
type ResolverConfig struct {
	LandingSpeed float64 `yaml:"landing_speed"` // Vertical speed left on the body after a feet contact
	SideGap      float64 `yaml:"side_gap"`      // Gap subtracted/added before truncating a side snap
}

// PlayerConfig contains player body configuration values
type PlayerConfig struct {
	Width  int
	Height int

	SpawnX int
	SpawnY int

	// Initial camera offset
	CameraX int
	CameraY int
}

// CameraConfig contains the deadzone follow configuration
type CameraConfig struct {
	DeadzoneMinX int `yaml:"deadzone_min_x"`
	DeadzoneMaxX int `yaml:"deadzone_max_x"`
	DeadzoneMinY int `yaml:"deadzone_min_y"`
	DeadzoneMaxY int `yaml:"deadzone_max_y"`

	AnchorInset int     `yaml:"anchor_inset"` // Vertical check anchors on Y + (H - AnchorInset)
	SpeedScale  float64 `yaml:"speed_scale"`  // Correction speed per unit of distance from the deadzone midpoint
}

// HUDConfig contains debug overlay and indicator configuration
type HUDConfig struct {
	FontSize float64
	Margin   float64

	OutlineColor  color.RGBA
	TouchingColor color.RGBA
	FloorColor    color.RGBA
	TextColor     color.RGBA

	DashIndicatorSize     float64
	DashIndicatorDuration float32 // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Outline            bool // Draw the body outline
	AllowProfileToggle bool // Allow switching to the free-fly profile at runtime
	TuningPath         string
	WatchTuning        bool
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	Scale    int
	TickRate int
	AppName  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var FreeFly FreeFlyConfig
var Resolver ResolverConfig
var Player PlayerConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// defaultTuning holds the compiled-in values that tuning files overlay.
var defaultTuning Tuning

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:    280,
		Height:   240,
		Scale:    3,
		TickRate: 30,
		AppName:  "cross",
	}

	Physics = PhysicsConfig{
		JumpSpeed:   3.5,
		JumpNudge:   1,
		JumpCarry:   1.5,
		CoyoteTicks: 2,

		Acceleration: 0.7,
		Damping:      0.9,

		Gravity:      0.3,
		MaxFallSpeed: 6,

		FloorY: 40,

		DashSpeedX: 8,
		DashSpeedY: 4,
	}

	FreeFly = FreeFlyConfig{
		Acceleration: 0.7,
		RiseSpeed:    3.5,
		SinkAccel:    0.7,
		Damping:      0.8,
	}

	Resolver = ResolverConfig{
		LandingSpeed: 1,
		SideGap:      0.1,
	}

	Player = PlayerConfig{
		Width:   13,
		Height:  13,
		SpawnX:  110,
		SpawnY:  150,
		CameraX: 110,
		CameraY: 150,
	}

	Camera = CameraConfig{
		DeadzoneMinX: 100,
		DeadzoneMaxX: 180,
		DeadzoneMinY: 80,
		DeadzoneMaxY: 160,
		AnchorInset:  5,
		SpeedScale:   0.1,
	}

	HUD = HUDConfig{
		FontSize:              8,
		Margin:                4,
		OutlineColor:          White,
		TouchingColor:         Orange,
		FloorColor:            Grey,
		TextColor:             LightGreen,
		DashIndicatorSize:     6,
		DashIndicatorDuration: 0.4,
	}

	// Debug Config (defaults, can be overridden by CLI flags and saved settings)
	Debug = DebugConfig{
		Outline:            false,
		AllowProfileToggle: false,
	}

	defaultTuning = CurrentTuning()
}
