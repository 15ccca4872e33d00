package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	defaultConfigFileName = "sshprep.json"

	// EnvConfigPath overrides the config file location when set.
	EnvConfigPath = "SSHPREP_CONFIG"
)

// Store persists the profile mapping and theme mode as a single JSON
// document. Every mutation re-reads the document, applies the change
// and rewrites the whole file. Last writer wins; there is no locking.
type Store struct {
	ConfigPath string
	Config     *Config
}

func NewStore() (*Store, error) {
	configPath := os.Getenv(EnvConfigPath)
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(homeDir, ".config", "sshprep")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = filepath.Join(configDir, defaultConfigFileName)
	}

	return &Store{
		ConfigPath: configPath,
		Config:     NewConfig(),
	}, nil
}

// Load reads the config file into memory. A missing or unparsable file
// yields an empty config, never an error.
func (s *Store) Load() {
	s.Config = NewConfig()

	data, err := os.ReadFile(s.ConfigPath)
	if err != nil {
		return
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	for name, p := range cfg.Profiles {
		p.Name = name
		cfg.Profiles[name] = p
	}
	s.Config = &cfg
}

// Save rewrites the whole config file from memory.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(s.ConfigPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveProfile merges the profile into the mapping under its name,
// overwriting any existing entry, and rewrites the file.
func (s *Store) SaveProfile(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	s.Load()
	s.Config.Profiles[p.Name] = p
	return s.Save()
}

// DeleteProfile removes the named entry and rewrites the file. Deleting
// a name that is not present is a no-op.
func (s *Store) DeleteProfile(name string) error {
	s.Load()
	if _, ok := s.Config.Profiles[name]; !ok {
		return nil
	}
	delete(s.Config.Profiles, name)
	return s.Save()
}

func (s *Store) GetProfile(name string) (Profile, bool) {
	p, ok := s.Config.Profiles[name]
	return p, ok
}

// ListProfiles returns the saved profiles sorted by name.
func (s *Store) ListProfiles() []Profile {
	profiles := make([]Profile, 0, len(s.Config.Profiles))
	for _, p := range s.Config.Profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles
}

// ThemeMode returns the persisted theme mode, defaulting to dark.
func (s *Store) ThemeMode() string {
	if s.Config.Theme == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SetThemeMode persists the theme mode alongside the profiles.
func (s *Store) SetThemeMode(mode string) error {
	s.Load()
	s.Config.Theme = mode
	return s.Save()
}
