package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Outline bool `json:"outline"`
	FreeFly bool `json:"freeFly"`
}

// settingsStore is the subset of *gdata.Manager persistence needs.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the world's settings component.
func SaveCurrentSettings(w donburi.World) {
	s := currentSettings(w)
	_ = SaveSettings(&SavedSettings{
		Outline: s.Outline,
		FreeFly: s.Profile == cfg.ProfileFreeFly,
	})
}

// ApplySavedSettings copies loaded settings into the world. The free-fly
// profile is only restored when the profile toggle is allowed.
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	if saved == nil {
		return
	}

	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.Outline = saved.Outline
	cfg.Debug.Outline = saved.Outline

	settings.Profile = cfg.ProfilePlatformer
	if saved.FreeFly && cfg.Debug.AllowProfileToggle {
		settings.Profile = cfg.ProfileFreeFly
	}
}
