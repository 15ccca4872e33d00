package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sshprep/internal/config"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestProfileFormValidation(t *testing.T) {
	form := NewProfileForm(nil)

	cases := []struct {
		name    string
		fill    map[int]string
		wantOK  bool
		wantErr string
	}{
		{
			name:    "empty form",
			fill:    map[int]string{},
			wantErr: "Profile name is required",
		},
		{
			name:    "missing ip",
			fill:    map[int]string{fieldName: "homelab"},
			wantErr: "IP address is required",
		},
		{
			name: "missing key path",
			fill: map[int]string{
				fieldName: "homelab",
				fieldIP:   "10.0.0.5",
				fieldUser: "pat",
			},
			wantErr: "SSH key path is required",
		},
		{
			name: "bad port",
			fill: map[int]string{
				fieldName:    "homelab",
				fieldIP:      "10.0.0.5",
				fieldUser:    "pat",
				fieldPort:    "not-a-port",
				fieldKeyPath: "~/.ssh/id_ed25519",
			},
			wantErr: "Port must be a number between 1 and 65535",
		},
		{
			name: "complete",
			fill: map[int]string{
				fieldName:    "homelab",
				fieldIP:      "10.0.0.5",
				fieldUser:    "pat",
				fieldPort:    "22",
				fieldKeyPath: "~/.ssh/id_ed25519",
			},
			wantOK: true,
		},
	}

	for _, tc := range cases {
		for i := range form.inputs {
			form.inputs[i].SetValue("")
		}
		for i, v := range tc.fill {
			form.inputs[i].SetValue(v)
		}

		ok, errMsg := form.validateForm()
		if ok != tc.wantOK {
			t.Errorf("%s: expected valid=%v, got %v (%s)", tc.name, tc.wantOK, ok, errMsg)
		}
		if !tc.wantOK && errMsg != tc.wantErr {
			t.Errorf("%s: expected error %q, got %q", tc.name, tc.wantErr, errMsg)
		}
	}
}

func TestProfileFormDefaultsPortOnSubmit(t *testing.T) {
	form := NewProfileForm(nil)
	form.inputs[fieldName].SetValue("homelab")
	form.inputs[fieldIP].SetValue("10.0.0.5")
	form.inputs[fieldUser].SetValue("pat")
	form.inputs[fieldKeyPath].SetValue("~/.ssh/id_ed25519")

	form.updateProfile()

	p := form.Profile()
	if p.Port != "22" {
		t.Errorf("Expected default port 22, got %q", p.Port)
	}
}

func TestProfileFormEditPrefill(t *testing.T) {
	existing := config.Profile{
		Name:    "homelab",
		IP:      "10.0.0.5",
		User:    "pat",
		Port:    "2222",
		KeyPath: "~/.ssh/id_ed25519",
	}
	form := NewProfileForm(&existing)

	if form.inputs[fieldName].Value() != "homelab" {
		t.Errorf("Expected prefilled name, got %q", form.inputs[fieldName].Value())
	}
	if form.inputs[fieldPort].Value() != "2222" {
		t.Errorf("Expected prefilled port, got %q", form.inputs[fieldPort].Value())
	}
}

func TestProfileFormCancel(t *testing.T) {
	form := NewProfileForm(nil)

	model, _ := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	form = model.(*ProfileForm)

	if !form.IsCanceled() {
		t.Error("Expected form to be canceled after esc")
	}
}

func TestDeleteConfirmationKeys(t *testing.T) {
	d := NewDeleteConfirmation("homelab")
	model, _ := d.Update(keyPress("y"))
	d = model.(*DeleteConfirmation)
	if !d.IsConfirmed() {
		t.Error("Expected confirmation after 'y'")
	}

	d = NewDeleteConfirmation("homelab")
	model, _ = d.Update(keyPress("n"))
	d = model.(*DeleteConfirmation)
	if !d.IsCanceled() {
		t.Error("Expected cancel after 'n'")
	}

	d = NewDeleteConfirmation("homelab")
	model, _ = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	d = model.(*DeleteConfirmation)
	if !d.IsCanceled() {
		t.Error("Expected cancel after esc")
	}
}
