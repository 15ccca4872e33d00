package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"sshprep/internal/config"
	"sshprep/internal/ui/components"
)

// Update handles updates to the UI model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Pass window size to active component
		if activeComponent := m.getActiveComponent(); activeComponent != nil {
			model, cmd := activeComponent.Update(msg)
			return m, m.handleComponentResult(model, cmd)
		}

	case tea.KeyMsg:
		if m.state == StateProfileList {
			listModel := m.profileList.List()
			if listModel.FilterState() == list.Filtering {
				newList, cmd := listModel.Update(msg)
				*listModel = newList
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))):
			return m, tea.Quit

		case m.state == StateProfileList && msg.String() == "a":
			m.profileForm = components.NewProfileForm(nil)
			m.state = StateAddProfile
			return m, m.profileForm.Init()

		case m.state == StateProfileList && msg.String() == "e":
			if p := m.profileList.HighlightedProfile(); p != nil {
				m.profileForm = components.NewProfileForm(p)
				m.state = StateEditProfile
				return m, m.profileForm.Init()
			}

		case m.state == StateProfileList && msg.String() == "d":
			if p := m.profileList.HighlightedProfile(); p != nil {
				m.deleteTarget = p.Name
				m.deleteDialog = components.NewDeleteConfirmation(p.Name)
				m.deleteDialog.SetSize(m.width, m.height)
				m.state = StateDeleteConfirm
				return m, nil
			}

		case m.state == StateProfileList && msg.String() == "t":
			mode := config.ThemeLight
			if m.store.ThemeMode() == config.ThemeLight {
				mode = config.ThemeDark
			}
			if err := m.store.SetThemeMode(mode); err != nil {
				m.errorMessage = err.Error()
			}
			components.ApplyTheme(mode)
			// Rebuild the list so its styles pick up the new palette
			width, height := m.listSize()
			m.profileList = components.NewProfileList(m.store.ListProfiles(), width, height)
			return m, nil
		}
	}

	// Pass message to active component
	if activeComponent := m.getActiveComponent(); activeComponent != nil {
		model, cmd := activeComponent.Update(msg)
		return m, m.handleComponentResult(model, cmd)
	}

	return m, cmd
}
