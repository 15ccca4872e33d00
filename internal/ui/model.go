package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sshprep/internal/config"
	"sshprep/internal/ui/components"
)

type AppState int

const (
	StateProfileList AppState = iota
	StateAddProfile
	StateEditProfile
	StateInstructions
	StateDeleteConfirm
	headerLines = 4
	footerLines = 4
)

type Model struct {
	state        AppState
	store        *config.Store
	width        int
	height       int
	profileList  *components.ProfileList
	profileForm  *components.ProfileForm
	instructions *components.InstructionsView
	deleteDialog *components.DeleteConfirmation
	deleteTarget string
	errorMessage string
}

func NewModel(store *config.Store) *Model {
	components.ApplyTheme(store.ThemeMode())
	return &Model{
		state:       StateProfileList,
		store:       store,
		profileList: components.NewProfileList(store.ListProfiles(), 60, 20),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) LoadProfiles() {
	m.store.Load()
	m.profileList.SetProfiles(m.store.ListProfiles())
}

func (m *Model) listSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 20
	}
	visibleHeight := height - headerLines - footerLines
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	return width, visibleHeight
}

func (m *Model) getActiveComponent() tea.Model {
	switch m.state {
	case StateProfileList:
		return m.profileList
	case StateAddProfile, StateEditProfile:
		return m.profileForm
	case StateInstructions:
		return m.instructions
	case StateDeleteConfirm:
		return m.deleteDialog
	default:
		return nil
	}
}

func (m *Model) handleComponentResult(model tea.Model, cmd tea.Cmd) tea.Cmd {
	switch m.state {
	case StateProfileList:
		m.profileList = model.(*components.ProfileList)
		if p := m.profileList.SelectedProfile(); p != nil {
			m.instructions = components.NewInstructionsView(*p, m.width, m.height)
			m.state = StateInstructions
			m.profileList.Reset()
			return m.instructions.Init()
		}

	case StateAddProfile, StateEditProfile:
		m.profileForm = model.(*components.ProfileForm)
		if m.profileForm.IsCanceled() {
			m.profileForm = nil
			m.state = StateProfileList
			m.profileList.Reset()
			return nil
		}
		if m.profileForm.IsSubmitted() {
			p := m.profileForm.Profile()
			if err := m.store.SaveProfile(p); err != nil {
				m.errorMessage = fmt.Sprintf("Failed to save profile: %s", err)
			} else {
				m.LoadProfiles()
				m.state = StateProfileList
			}
			m.profileForm = nil
			m.profileList.Reset()
			return nil
		}

	case StateInstructions:
		m.instructions = model.(*components.InstructionsView)
		if m.instructions.IsFinished() {
			m.instructions = nil
			m.state = StateProfileList
			m.profileList.Reset()
			return nil
		}

	case StateDeleteConfirm:
		m.deleteDialog = model.(*components.DeleteConfirmation)
		if m.deleteDialog.IsConfirmed() {
			if err := m.store.DeleteProfile(m.deleteTarget); err != nil {
				m.errorMessage = fmt.Sprintf("Failed to delete profile: %s", err)
			} else {
				m.LoadProfiles()
			}
			m.deleteDialog = nil
			m.deleteTarget = ""
			m.state = StateProfileList
			m.profileList.Reset()
			return nil
		}
		if m.deleteDialog.IsCanceled() {
			m.deleteDialog = nil
			m.deleteTarget = ""
			m.state = StateProfileList
			return nil
		}
	}
	return cmd
}
