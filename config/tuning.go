package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current values.
type Tuning struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	FreeFly  FreeFlyConfig  `yaml:"free_fly"`
	Resolver ResolverConfig `yaml:"resolver"`
	Camera   CameraConfig   `yaml:"camera"`
}

// CurrentTuning returns the active tuning values.
func CurrentTuning() Tuning {
	return Tuning{
		Physics:  Physics,
		FreeFly:  FreeFly,
		Resolver: Resolver,
		Camera:   Camera,
	}
}

// ParseTuning overlays YAML data on base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file and overlays it on the active values.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	return ParseTuning(data, CurrentTuning())
}

// Apply makes t the active tuning. Must be called from the tick goroutine.
func (t Tuning) Apply() {
	Physics = t.Physics
	FreeFly = t.FreeFly
	Resolver = t.Resolver
	Camera = t.Camera
}

func (t Tuning) validate() error {
	if t.Camera.DeadzoneMinX > t.Camera.DeadzoneMaxX || t.Camera.DeadzoneMinY > t.Camera.DeadzoneMaxY {
		return fmt.Errorf("config: camera deadzone min exceeds max")
	}
	if t.Physics.MaxFallSpeed < 0 {
		return fmt.Errorf("config: max_fall_speed must not be negative")
	}
	return nil
}

// DefaultTuning returns the compiled-in tuning values.
func DefaultTuning() Tuning {
	return defaultTuning
}
