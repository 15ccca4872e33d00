package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"sshprep/internal/config"
)

// Palette holds the colors for one theme mode.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	SubText   lipgloss.Color
	Error     lipgloss.Color
	Inactive  lipgloss.Color
}

var darkPalette = Palette{
	Primary:   lipgloss.Color("#974FD7"),
	Secondary: lipgloss.Color("#00ADD8"),
	Accent:    lipgloss.Color("#F0D8B2"),
	Text:      lipgloss.Color("#FAFAFA"),
	SubText:   lipgloss.Color("#7D7D7D"),
	Error:     lipgloss.Color("#FF5555"),
	Inactive:  lipgloss.Color("#4D4D4D"),
}

var lightPalette = Palette{
	Primary:   lipgloss.Color("#6B2FA8"),
	Secondary: lipgloss.Color("#007A99"),
	Accent:    lipgloss.Color("#8A6B34"),
	Text:      lipgloss.Color("#1A1A1A"),
	SubText:   lipgloss.Color("#5A5A5A"),
	Error:     lipgloss.Color("#CC2222"),
	Inactive:  lipgloss.Color("#A0A0A0"),
}

// The active palette and derived styles. The TUI is single-threaded so
// swapping these on a theme toggle is safe.
var (
	palette = darkPalette

	titleStyle        lipgloss.Style
	sectionTitleStyle lipgloss.Style
	containerStyle    lipgloss.Style
	paginationStyle   lipgloss.Style
	helpStyle         lipgloss.Style
	focusedStyle      lipgloss.Style
	blurredStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	labelStyle        lipgloss.Style
	hintStyle         lipgloss.Style

	focusedButton string
	blurredButton string
)

func init() {
	ApplyTheme(config.ThemeDark)
}

// ApplyTheme switches the active palette and rebuilds the derived
// styles. mode is one of the config theme constants.
func ApplyTheme(mode string) {
	if mode == config.ThemeLight {
		palette = lightPalette
	} else {
		palette = darkPalette
	}

	titleStyle = lipgloss.NewStyle().
		MarginLeft(2).
		MarginTop(1).
		Foreground(palette.Primary).
		Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Primary).
		MarginBottom(1)

	containerStyle = lipgloss.NewStyle().
		Padding(1, 2)

	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)

	focusedStyle = lipgloss.NewStyle().Foreground(palette.Primary)
	blurredStyle = lipgloss.NewStyle().Foreground(palette.Inactive)

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Error).
		Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(palette.SubText)
	hintStyle = lipgloss.NewStyle().Foreground(palette.Inactive)

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
}
