package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sshprep/internal/config"
	"sshprep/internal/instructions"
	"sshprep/internal/probe"
)

// probeResultMsg carries the outcome of a connection test.
type probeResultMsg struct {
	result string
	err    error
}

// InstructionsView shows the generated command blocks for a profile in
// a scrollable viewport.
type InstructionsView struct {
	profile  config.Profile
	blocks   instructions.Blocks
	complete bool

	viewport viewport.Model
	finished bool
	probing  bool
	status   string
	width    int
	height   int
}

// NewInstructionsView builds the view for a profile. An incomplete
// profile produces no command output, only a hint to finish it.
func NewInstructionsView(p config.Profile, width, height int) *InstructionsView {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	v := &InstructionsView{
		profile: p,
		width:   width,
		height:  height,
	}

	v.blocks, v.complete = instructions.Generate(p)

	v.viewport = viewport.New(width-4, max(height-6, 5))
	v.viewport.SetContent(v.content())
	return v
}

func (v *InstructionsView) content() string {
	if !v.complete {
		return labelStyle.Render("This profile is missing one or more of IP, user, port or key path.\nEdit it before generating instructions.")
	}

	heading := func(text string) string {
		return lipgloss.NewStyle().Bold(true).Foreground(palette.Secondary).Render(text)
	}
	block := func(text string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Inactive).
			Padding(0, 1).
			Render(text)
	}

	var b strings.Builder
	b.WriteString(heading("1. On this machine: print the public key to install") + "\n")
	b.WriteString(block(v.blocks.PrintPublicKey) + "\n\n")
	b.WriteString(heading("2. On the target machine: enable SSH and install the key") + "\n")
	b.WriteString(block(v.blocks.EnableSSH) + "\n\n")
	b.WriteString(heading("3. On this machine: clear any stale host key fingerprint") + "\n")
	b.WriteString(block(v.blocks.ClearStaleEntry) + "\n\n")
	b.WriteString(heading("4. Connect") + "\n")
	b.WriteString(block(v.blocks.Connect) + "\n")
	return b.String()
}

func (v *InstructionsView) Init() tea.Cmd {
	return nil
}

func (v *InstructionsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.viewport.Width = msg.Width - 4
		v.viewport.Height = max(msg.Height-6, 5)
		return v, nil

	case probeResultMsg:
		v.probing = false
		if msg.err != nil {
			v.status = errorStyle.Render(msg.err.Error())
		} else {
			v.status = lipgloss.NewStyle().Foreground(palette.Secondary).Render(msg.result)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			v.finished = true
			return v, nil

		case "c":
			if v.complete {
				if err := clipboard.WriteAll(v.blocks.Render()); err != nil {
					v.status = errorStyle.Render(fmt.Sprintf("Copy failed: %s", err))
				} else {
					v.status = labelStyle.Render("Commands copied to clipboard")
				}
			}
			return v, nil

		case "T":
			if v.complete && !v.probing {
				v.probing = true
				v.status = labelStyle.Render("Testing connection...")
				p := v.profile
				return v, func() tea.Msg {
					result, err := probe.Run(p)
					return probeResultMsg{result: result, err: err}
				}
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *InstructionsView) View() string {
	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Enable SSH on %s (%s)", v.profile.Name, v.profile.IP)))
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	if v.status != "" {
		b.WriteString(v.status)
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("'c' copy commands, 'T' test connection, esc back"))

	return containerStyle.Render(b.String())
}

// IsFinished reports whether the user left the view.
func (v *InstructionsView) IsFinished() bool {
	return v.finished
}
