package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sshprep/internal/config"
	"sshprep/pkg/sshutil"
)

// Field indices within the form.
const (
	fieldName = iota
	fieldIP
	fieldUser
	fieldPort
	fieldKeyPath
	fieldSubmit
)

// ProfileForm represents a form for creating/editing profiles
type ProfileForm struct {
	inputs       []textinput.Model
	focusIndex   int
	editing      bool
	profile      config.Profile
	submitted    bool
	canceled     bool
	width        int
	height       int
	errorMessage string

	// Dropdown for SSH key selection on the key path field
	dropdownOpen bool
	keyList      list.Model
	allKeys      []string // scanned keys from ~/.ssh
}

// list item type for key paths
type keyItem string

func (k keyItem) Title() string       { return string(k) }
func (k keyItem) Description() string { return "" }
func (k keyItem) FilterValue() string { return string(k) }

// NewProfileForm creates a new profile form. A nil profile starts a
// blank add form; otherwise the fields are pre-filled for editing.
func NewProfileForm(p *config.Profile) *ProfileForm {
	var initial config.Profile
	editing := p != nil

	if editing {
		initial = *p
	} else {
		initial = config.Profile{Port: "22"}
	}

	inputs := make([]textinput.Model, 5)

	initInput := func(i int, placeholder string, width int) {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholder
		inputs[i].Width = width
		inputs[i].Prompt = "> "
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}

	initInput(fieldName, "Profile Name", 40)
	inputs[fieldName].Focus()
	inputs[fieldName].PromptStyle = focusedStyle
	inputs[fieldName].TextStyle = focusedStyle

	initInput(fieldIP, "IP address", 40)
	initInput(fieldUser, "Username", 30)
	initInput(fieldPort, "Port (default: 22)", 40)
	initInput(fieldKeyPath, "Path to SSH key (example: ~/.ssh/id_ed25519)", 50)

	inputs[fieldName].SetValue(initial.Name)
	inputs[fieldIP].SetValue(initial.IP)
	inputs[fieldUser].SetValue(initial.User)
	inputs[fieldPort].SetValue(initial.Port)
	inputs[fieldKeyPath].SetValue(initial.KeyPath)

	// Scan ~/.ssh for private keys
	keys := sshutil.ScanSSHKeys()

	items := make([]list.Item, 0, len(keys))
	for _, k := range keys {
		items = append(items, keyItem(k))
	}

	l := list.New(items, list.NewDefaultDelegate(), 50, 6)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return &ProfileForm{
		inputs:  inputs,
		editing: editing,
		profile: initial,
		keyList: l,
		allKeys: keys,
	}
}

// Init initializes the form
func (m *ProfileForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles updates to the form
func (m *ProfileForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.canceled = true
			return m, nil
		}

		// Dropdown navigation for the key path field
		if m.focusIndex == fieldKeyPath && m.dropdownOpen {
			switch msg.String() {
			case "esc":
				m.dropdownOpen = false
				return m, nil

			case "enter":
				if selected := m.keyList.SelectedItem(); selected != nil {
					if s, ok := selected.(keyItem); ok {
						m.inputs[fieldKeyPath].SetValue(string(s))
					}
				}
				m.dropdownOpen = false
				return m, nil

			case "up", "down", "left", "right", "j", "k", "h", "l":
				var cmd tea.Cmd
				m.keyList, cmd = m.keyList.Update(msg)
				return m, cmd

			case "tab", "shift+tab":
				// Tab closes the dropdown and falls through to the
				// standard navigation below.
				m.dropdownOpen = false
			}

			// Typing in the field filters the dropdown
			if isPrintableKey(msg) {
				newTi, cmd := m.inputs[fieldKeyPath].Update(msg)
				m.inputs[fieldKeyPath] = newTi
				cmds = append(cmds, cmd)

				cur := strings.TrimSpace(m.inputs[fieldKeyPath].Value())

				if cur == "" {
					m.setKeyItems(m.allKeys)
					m.dropdownOpen = true
					return m, tea.Batch(cmds...)
				}

				// Manual entry trigger: a path-looking value closes the dropdown
				if strings.Contains(cur, "/") || strings.HasPrefix(cur, "~") || strings.HasPrefix(cur, ".") {
					m.dropdownOpen = false
					return m, tea.Batch(cmds...)
				}

				m.setKeyItems(filterKeys(m.allKeys, cur))
				return m, tea.Batch(cmds...)
			}
		}

		if m.focusIndex == fieldKeyPath && !m.dropdownOpen {
			if msg.String() == "backspace" || msg.String() == "delete" {
				newTi, cmd := m.inputs[fieldKeyPath].Update(msg)
				m.inputs[fieldKeyPath] = newTi
				cmds = append(cmds, cmd)

				if strings.TrimSpace(m.inputs[fieldKeyPath].Value()) == "" {
					m.setKeyItems(m.allKeys)
					m.dropdownOpen = true
				}
				return m, tea.Batch(cmds...)
			}
		}

		// Standard navigation
		switch msg.String() {
		case "esc":
			m.canceled = true
			return m, nil

		case "tab", "shift+tab", "up", "down":
			step := 1
			if msg.String() == "shift+tab" || msg.String() == "up" {
				step = -1
			}

			m.focusIndex += step
			if m.focusIndex > fieldSubmit {
				m.focusIndex = fieldName
			} else if m.focusIndex < fieldName {
				m.focusIndex = fieldSubmit
			}

			if m.focusIndex == fieldKeyPath {
				m.dropdownOpen = true
				m.setKeyItems(filterKeys(m.allKeys, m.inputs[fieldKeyPath].Value()))
			} else {
				m.dropdownOpen = false
			}

			for i := 0; i < len(m.inputs); i++ {
				if i == m.focusIndex {
					cmds = append(cmds, m.inputs[i].Focus())
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle
				} else {
					m.inputs[i].Blur()
					m.inputs[i].PromptStyle = blurredStyle
					m.inputs[i].TextStyle = blurredStyle
				}
			}

		case "enter":
			if m.focusIndex == fieldSubmit {
				if valid, err := m.validateForm(); valid {
					m.updateProfile()
					m.submitted = true
				} else {
					m.errorMessage = err
				}
			} else {
				// Move to next field on enter
				return m, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyTab} }
			}
		}
	}

	// Character input for standard fields
	if m.focusIndex < len(m.inputs) {
		// Avoid double update for the key field while the dropdown is open
		if kmsg, ok := msg.(tea.KeyMsg); ok && m.focusIndex == fieldKeyPath && m.dropdownOpen && isPrintableKey(kmsg) {
			// already handled
		} else {
			newInput, cmd := m.inputs[m.focusIndex].Update(msg)
			m.inputs[m.focusIndex] = newInput
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the form
func (m *ProfileForm) View() string {
	var b strings.Builder

	title := "Add SSH Profile"
	if m.editing {
		title = "Edit SSH Profile"
	}
	b.WriteString(sectionTitleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Name", "IP", "Username", "Port", "SSH key"}
	for i, label := range labels {
		b.WriteString(labelStyle.Render(label) + "\n")
		b.WriteString(m.inputs[i].View())

		if i == fieldKeyPath && m.dropdownOpen {
			dropdownBox := lipgloss.NewStyle().
				MarginLeft(2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Secondary).
				Padding(0, 1).
				Render(m.keyList.View())
			b.WriteString("\n" + dropdownBox)
		}
		b.WriteString("\n\n")
	}

	button := blurredButton
	if m.focusIndex == fieldSubmit {
		button = focusedButton
	}
	b.WriteString(button)

	if m.errorMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errorMessage))
	}

	formBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Primary).
		Padding(1, 3).
		Width(60).
		Align(lipgloss.Left).
		Render(b.String())

	availableHeight := max(m.height-3, 0)
	return lipgloss.Place(
		m.width,
		availableHeight,
		lipgloss.Center,
		lipgloss.Center,
		formBox,
	)
}

func (m *ProfileForm) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsCanceled returns whether the form was canceled
func (m *ProfileForm) IsCanceled() bool {
	return m.canceled
}

// IsSubmitted returns whether the form was submitted
func (m *ProfileForm) IsSubmitted() bool {
	return m.submitted
}

// Profile returns the profile from the form
func (m *ProfileForm) Profile() config.Profile {
	return m.profile
}

func (m *ProfileForm) setKeyItems(keys []string) {
	items := make([]list.Item, 0, len(keys))
	for _, k := range keys {
		items = append(items, keyItem(k))
	}
	m.keyList.SetItems(items)
	m.keyList.ResetSelected()
}

// validateForm checks if the form inputs are valid
func (m *ProfileForm) validateForm() (bool, string) {
	if strings.TrimSpace(m.inputs[fieldName].Value()) == "" {
		return false, "Profile name is required"
	}
	if strings.TrimSpace(m.inputs[fieldIP].Value()) == "" {
		return false, "IP address is required"
	}
	if strings.TrimSpace(m.inputs[fieldUser].Value()) == "" {
		return false, "Username is required"
	}
	if strings.TrimSpace(m.inputs[fieldKeyPath].Value()) == "" {
		return false, "SSH key path is required"
	}

	if v := strings.TrimSpace(m.inputs[fieldPort].Value()); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return false, "Port must be a number between 1 and 65535"
		}
	}

	return true, ""
}

// updateProfile updates the profile from the form inputs
func (m *ProfileForm) updateProfile() {
	port := strings.TrimSpace(m.inputs[fieldPort].Value())
	if port == "" {
		port = "22"
	}

	m.profile = config.Profile{
		Name:    strings.TrimSpace(m.inputs[fieldName].Value()),
		IP:      strings.TrimSpace(m.inputs[fieldIP].Value()),
		User:    strings.TrimSpace(m.inputs[fieldUser].Value()),
		Port:    port,
		KeyPath: strings.TrimSpace(m.inputs[fieldKeyPath].Value()),
	}
}

// ---------- Helper functions ----------

// filterKeys returns keys that contain the filter substring (case-insensitive)
func filterKeys(keys []string, filter string) []string {
	if filter == "" {
		return keys
	}
	filter = strings.ToLower(filter)
	out := make([]string, 0)
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), filter) {
			out = append(out, k)
		}
	}
	return out
}

// isPrintableKey checks if the key message represents a character that
// modifies text input.
func isPrintableKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
		return true
	}
	if msg.Paste {
		return true
	}
	return false
}
