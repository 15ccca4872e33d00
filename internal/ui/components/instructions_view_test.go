package components

import (
	"strings"
	"testing"

	"sshprep/internal/config"
)

func TestInstructionsViewCompleteProfile(t *testing.T) {
	p := config.Profile{
		Name:    "homelab",
		IP:      "10.0.0.5",
		User:    "pat",
		Port:    "22",
		KeyPath: "/home/pat/.ssh/id_ed25519",
	}

	v := NewInstructionsView(p, 100, 40)
	if !v.complete {
		t.Fatal("Expected view to be complete for a full profile")
	}

	content := v.content()
	for _, want := range []string{
		"cat /home/pat/.ssh/id_ed25519.pub",
		"ssh-keygen -R 10.0.0.5",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Instructions content missing %q", want)
		}
	}
}

func TestInstructionsViewIncompleteProfile(t *testing.T) {
	p := config.Profile{Name: "partial", IP: "10.0.0.5"}

	v := NewInstructionsView(p, 100, 40)
	if v.complete {
		t.Fatal("Expected incomplete view for a partial profile")
	}

	content := v.content()
	if strings.Contains(content, "ssh-keygen") || strings.Contains(content, "cat ") {
		t.Errorf("Incomplete profile should produce no commands, got: %s", content)
	}
}
