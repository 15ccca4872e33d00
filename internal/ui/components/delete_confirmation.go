package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DeleteConfirmation is the modal shown before a profile is removed.
type DeleteConfirmation struct {
	profileName string
	confirmed   bool
	canceled    bool
	width       int
	height      int
}

func NewDeleteConfirmation(profileName string) *DeleteConfirmation {
	return &DeleteConfirmation{
		profileName: profileName,
	}
}

func (d *DeleteConfirmation) Init() tea.Cmd {
	return nil
}

func (d *DeleteConfirmation) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if d.confirmed || d.canceled {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			d.confirmed = true
			return d, nil
		case "n", "N", "esc", "ctrl+c":
			d.canceled = true
			return d, nil
		}
	}

	return d, nil
}

func (d *DeleteConfirmation) View() string {
	if d.canceled {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Error).
		Render("⚠ Delete Profile")

	message := labelStyle.Render("Are you sure you want to delete this profile?")

	profileDisplay := lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Primary).
		Render(d.profileName)

	prompt := hintStyle.Render("Press Y to confirm, N or Esc to cancel")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"\n",
		message,
		"\n",
		profileDisplay,
		"\n\n",
		prompt,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Error).
		Padding(1, 3).
		Width(60).
		Align(lipgloss.Center).
		Render(content)

	availableHeight := max(d.height-3, 0)
	return lipgloss.Place(
		d.width,
		availableHeight,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (d *DeleteConfirmation) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *DeleteConfirmation) IsConfirmed() bool {
	return d.confirmed
}

func (d *DeleteConfirmation) IsCanceled() bool {
	return d.canceled
}
