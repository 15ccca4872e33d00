package instructions

import (
	"strings"
	"testing"

	"sshprep/internal/config"
)

func sampleProfile() config.Profile {
	return config.Profile{
		Name:    "homelab",
		IP:      "10.0.0.5",
		User:    "pat",
		Port:    "22",
		KeyPath: "/home/pat/.ssh/id_ed25519",
	}
}

func TestGenerateBlocks(t *testing.T) {
	blocks, ok := Generate(sampleProfile())
	if !ok {
		t.Fatal("Expected generation to succeed for a complete profile")
	}

	if blocks.PrintPublicKey != "cat /home/pat/.ssh/id_ed25519.pub" {
		t.Errorf("Unexpected public key command: %s", blocks.PrintPublicKey)
	}
	if blocks.ClearStaleEntry != "ssh-keygen -R 10.0.0.5" {
		t.Errorf("Unexpected known-hosts command: %s", blocks.ClearStaleEntry)
	}
	if !strings.Contains(blocks.EnableSSH, "systemctl enable ssh") {
		t.Errorf("Enable script missing daemon enable: %s", blocks.EnableSSH)
	}
	if !strings.Contains(blocks.EnableSSH, "authorized_keys") {
		t.Errorf("Enable script missing authorized key install: %s", blocks.EnableSSH)
	}
	if blocks.Connect != "ssh -i /home/pat/.ssh/id_ed25519 -p 22 pat@10.0.0.5" {
		t.Errorf("Unexpected connect command: %s", blocks.Connect)
	}
}

func TestGenerateRequiresAllFields(t *testing.T) {
	clear := []func(*config.Profile){
		func(p *config.Profile) { p.IP = "" },
		func(p *config.Profile) { p.User = "" },
		func(p *config.Profile) { p.Port = "" },
		func(p *config.Profile) { p.KeyPath = "" },
	}

	for i, f := range clear {
		p := sampleProfile()
		f(&p)
		if blocks, ok := Generate(p); ok {
			t.Errorf("Case %d: expected no output for incomplete profile, got %+v", i, blocks)
		}
	}
}

func TestRenderContainsAllBlocks(t *testing.T) {
	blocks, ok := Generate(sampleProfile())
	if !ok {
		t.Fatal("Expected generation to succeed")
	}

	rendered := blocks.Render()
	for _, want := range []string{
		"cat /home/pat/.ssh/id_ed25519.pub",
		"ssh-keygen -R 10.0.0.5",
		"systemctl start ssh",
		"ssh -i /home/pat/.ssh/id_ed25519 -p 22 pat@10.0.0.5",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Rendered output missing %q", want)
		}
	}
}
