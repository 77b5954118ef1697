package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text    lipgloss.Style
	Body    lipgloss.Style // ruby body
	Reading lipgloss.Style // ruby reading
	Bracket lipgloss.Style // reading brackets
	Markup  lipgloss.Style // revealed delimiters

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:      lipgloss.NewStyle(),
		Body:      lipgloss.NewStyle().Underline(true),
		Reading:   lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		Bracket:   dim,
		Markup:    dim,
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}

func (s Style) forKind(k cellKind) lipgloss.Style {
	switch k {
	case cellBody:
		return s.Body
	case cellReading:
		return s.Reading
	case cellBracket:
		return s.Bracket
	case cellMarkup:
		return s.Markup
	default:
		return s.Text
	}
}
