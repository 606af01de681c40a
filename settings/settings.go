package settings

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings are runner preferences kept between launches. Simulation state
// is never stored.
type Settings struct {
	Debug       bool `json:"debug"`
	WindowScale int  `json:"windowScale"`
}

// Defaults returns the settings used when nothing was saved yet.
func Defaults() Settings {
	return Settings{WindowScale: 2}
}

// Store reads and writes Settings through gdata.
type Store struct {
	manager *gdata.Manager
}

// Open initializes the gdata manager for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &Store{manager: m}, nil
}

// Load returns the saved settings, or Defaults when nothing is stored or the
// store is unavailable.
func (s *Store) Load() Settings {
	if s == nil || s.manager == nil {
		return Defaults()
	}
	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[settings] could not load: %v", err)
		return Defaults()
	}
	settings, err := Decode(data)
	if err != nil {
		log.Printf("[settings] could not parse: %v", err)
		return Defaults()
	}
	return settings
}

// Save writes settings. A nil store is a no-op.
func (s *Store) Save(settings Settings) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Decode parses stored settings over Defaults. Empty data yields Defaults.
func Decode(data []byte) (Settings, error) {
	settings := Defaults()
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return Defaults(), err
	}
	if settings.WindowScale < 1 {
		settings.WindowScale = 1
	}
	return settings, nil
}
