package solitaire

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player preferences kept between runs.
type Settings struct {
	DebugOverlay bool    `yaml:"debugOverlay"`
	WindowScale  float64 `yaml:"windowScale"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{WindowScale: 1}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsStore loads and saves Settings through a gdata manager. A store
// without a manager keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
}

// OpenSettingsStore opens the per-user data directory for appName. When the
// platform storage cannot be opened the store falls back to memory.
func OpenSettingsStore(appName string) *SettingsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[solitaire] settings storage unavailable: %v (in-memory only)", err)
		m = nil
	}
	return NewSettingsStore(m)
}

// NewSettingsStore wraps m, which may be nil, and loads saved settings.
// A load failure is logged and leaves the defaults in place.
func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	st := &SettingsStore{manager: m, settings: DefaultSettings()}
	if err := st.Load(); err != nil {
		log.Printf("[solitaire] %v (using defaults)", err)
	}
	return st
}

// Persistent reports whether the store writes to disk.
func (st *SettingsStore) Persistent() bool {
	return st.manager != nil
}

// Load replaces the current settings with the saved ones. Missing data
// yields the defaults.
func (st *SettingsStore) Load() error {
	st.settings = DefaultSettings()
	if st.manager == nil || !st.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("solitaire: load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("solitaire: decode settings: %w", err)
	}
	if loaded.WindowScale <= 0 {
		loaded.WindowScale = 1
	}
	st.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op for in-memory stores.
func (st *SettingsStore) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.settings)
	if err != nil {
		return fmt.Errorf("solitaire: encode settings: %w", err)
	}
	if err := st.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("solitaire: save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (st *SettingsStore) Settings() Settings {
	return st.settings
}

// Update replaces the current settings in memory. Call Save to persist.
func (st *SettingsStore) Update(s Settings) {
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
	st.settings = s
}
