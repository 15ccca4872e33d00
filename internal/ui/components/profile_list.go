package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"sshprep/internal/config"
)

// profileItem represents an item in the profile list
type profileItem struct {
	profile config.Profile
}

func (i profileItem) FilterValue() string {
	return i.profile.Name
}

func (i profileItem) Title() string {
	return i.profile.Name
}

func (i profileItem) Description() string {
	port := ""
	if i.profile.Port != "" && i.profile.Port != "22" {
		port = ":" + i.profile.Port
	}
	return fmt.Sprintf("%s@%s%s", i.profile.User, i.profile.IP, port)
}

// ProfileList is a Bubble Tea component for listing saved profiles
type ProfileList struct {
	list               list.Model
	profiles           []config.Profile
	selectedProfile    *config.Profile
	highlightedProfile *config.Profile
}

// NewProfileList creates a new profile list component.
// width and height should be set to the current terminal size.
func NewProfileList(profiles []config.Profile, width, height int) *ProfileList {
	items := make([]list.Item, len(profiles))
	for i, p := range profiles {
		items[i] = profileItem{profile: p}
	}

	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 20
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "SSH Profiles"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show instructions")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add profile")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete profile")),
			key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		}
	}

	var highlighted *config.Profile
	if len(profiles) > 0 {
		highlighted = &profiles[0]
	}

	return &ProfileList{
		list:               l,
		profiles:           profiles,
		highlightedProfile: highlighted,
	}
}

func (pl *ProfileList) Init() tea.Cmd {
	return nil
}

func (pl *ProfileList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pl.list.SetWidth(msg.Width)
		pl.list.SetHeight(msg.Height - 4) // Leave room for help and status
		return pl, nil

	case tea.KeyMsg:
		if pl.list.FilterState() == list.Filtering {
			newList, cmd := pl.list.Update(msg)
			pl.list = newList
			return pl, cmd
		}
		if key.Matches(msg, key.NewBinding(key.WithKeys("enter"))) {
			if item := pl.list.SelectedItem(); item != nil {
				if pi, ok := item.(profileItem); ok {
					pl.selectedProfile = &pi.profile
					return pl, nil
				}
			}
		}
	}

	newList, cmd := pl.list.Update(msg)
	pl.list = newList

	if item := pl.list.SelectedItem(); item != nil {
		if pi, ok := item.(profileItem); ok {
			pl.highlightedProfile = &pi.profile
		}
	} else {
		pl.highlightedProfile = nil
	}

	return pl, cmd
}

func (pl *ProfileList) View() string {
	if len(pl.profiles) == 0 {
		return fmt.Sprintf("\n%s\n\n  No profiles found. Press 'a' to add a profile.\n\n", titleStyle.Render("SSH Profiles"))
	}
	return pl.list.View()
}

// SelectedProfile returns the profile chosen with enter, or nil.
func (pl *ProfileList) SelectedProfile() *config.Profile {
	return pl.selectedProfile
}

// HighlightedProfile returns the profile under the cursor, or nil.
func (pl *ProfileList) HighlightedProfile() *config.Profile {
	return pl.highlightedProfile
}

func (pl *ProfileList) SetProfiles(profiles []config.Profile) {
	pl.profiles = profiles
	items := make([]list.Item, len(profiles))
	for i, p := range profiles {
		items[i] = profileItem{profile: p}
	}
	pl.list.SetItems(items)
}

func (pl *ProfileList) List() *list.Model {
	return &pl.list
}

func (pl *ProfileList) Reset() {
	pl.selectedProfile = nil
	pl.list.Select(0)
	if len(pl.profiles) > 0 {
		pl.highlightedProfile = &pl.profiles[0]
	} else {
		pl.highlightedProfile = nil
	}
}
