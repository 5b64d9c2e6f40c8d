package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SavedConfig is one named entry in the save file.
type SavedConfig struct {
	Name   string      `json:"name"`
	Config CloudConfig `json:"config"`
}

// ConfigStore persists named configurations as a flat JSON list. There is a
// single writer (the UI), so writes are plain truncating rewrites.
type ConfigStore struct {
	path string
}

func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Load reads the save file. A missing file, unreadable file, or a file that
// does not hold a JSON list yields an empty slice rather than an error, so
// a corrupt save file never blocks startup.
func (s *ConfigStore) Load() []SavedConfig {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var configs []SavedConfig
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil
	}
	return configs
}

func (s *ConfigStore) save(configs []SavedConfig) error {
	out, err := json.MarshalIndent(configs, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, out, 0666)
}

// Upsert saves cfg under name, replacing any existing entry with the same
// name.
func (s *ConfigStore) Upsert(name string, cfg CloudConfig) error {
	if name == "" {
		return fmt.Errorf("config name is empty")
	}
	configs := s.Load()
	for i := range configs {
		if configs[i].Name == name {
			configs[i].Config = cfg
			return s.save(configs)
		}
	}
	return s.save(append(configs, SavedConfig{Name: name, Config: cfg}))
}

// Delete removes the entry with the given name. Deleting a name that does
// not exist is not an error.
func (s *ConfigStore) Delete(name string) error {
	configs := s.Load()
	kept := configs[:0]
	for _, c := range configs {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	return s.save(kept)
}

// Get returns the entry with the given name.
func (s *ConfigStore) Get(name string) (SavedConfig, bool) {
	for _, c := range s.Load() {
		if c.Name == name {
			return c, true
		}
	}
	return SavedConfig{}, false
}
