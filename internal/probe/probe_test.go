package probe

import (
	"os"
	"path/filepath"
	"testing"

	"sshprep/internal/config"
)

func TestRunMissingKey(t *testing.T) {
	p := config.Profile{
		Name:    "test",
		IP:      "10.0.0.5",
		User:    "pat",
		Port:    "22",
		KeyPath: filepath.Join(t.TempDir(), "no_such_key"),
	}

	if _, err := Run(p); err == nil {
		t.Error("Expected error for missing key file")
	}
}

func TestRunMalformedKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "bad_key")
	if err := os.WriteFile(keyPath, []byte("not a private key"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	p := config.Profile{
		Name:    "test",
		IP:      "10.0.0.5",
		User:    "pat",
		Port:    "22",
		KeyPath: keyPath,
	}

	if _, err := Run(p); err == nil {
		t.Error("Expected error for malformed key file")
	}
}
