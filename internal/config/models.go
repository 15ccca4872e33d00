package config

// Profile represents a saved set of SSH connection parameters.
// All fields are free-form strings; Name is the unique key within the
// store and is the only field that must be non-empty.
type Profile struct {
	Name    string `json:"-"`
	IP      string `json:"ip"`
	User    string `json:"user"`
	Port    string `json:"port"`
	KeyPath string `json:"keyPath"`
}

// Theme modes persisted alongside the profiles.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config represents the persisted application document
type Config struct {
	Profiles map[string]Profile `json:"profiles"`
	Theme    string             `json:"theme,omitempty"`
}

// NewConfig creates a new default configuration
func NewConfig() *Config {
	return &Config{
		Profiles: map[string]Profile{},
	}
}
