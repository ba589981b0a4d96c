package panel

import "github.com/charmbracelet/lipgloss"

// Style controls the panel's rendering.
type Style struct {
	Title  lipgloss.Style
	Status lipgloss.Style

	Text      lipgloss.Style
	Caret     lipgloss.Style
	Separator lipgloss.Style

	Key        lipgloss.Style
	KeyVowel   lipgloss.Style
	KeyMatra   lipgloss.Style
	KeySpecial lipgloss.Style
	KeyFocused lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	key := lipgloss.NewStyle().Background(lipgloss.Color("236"))
	return Style{
		Title:      lipgloss.NewStyle().Bold(true),
		Status:     muted,
		Text:       lipgloss.NewStyle(),
		Caret:      lipgloss.NewStyle().Reverse(true),
		Separator:  muted,
		Key:        key,
		KeyVowel:   key.Foreground(lipgloss.Color("81")),
		KeyMatra:   key.Foreground(lipgloss.Color("214")),
		KeySpecial: key.Foreground(lipgloss.Color("245")),
		KeyFocused: lipgloss.NewStyle().Reverse(true).Bold(true),
	}
}
