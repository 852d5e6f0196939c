package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// Monokai Pro color palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red     = "#FF6188" // Errors
	Orange  = "#FC9867" // Warnings, code
	Yellow  = "#FFD866" // Highlights, headings
	Green   = "#A9DC76" // Success, todo items
	Cyan    = "#78DCE8" // Equations
	Blue    = "#AB9DF2" // Links, mentions
	Magenta = "#FF6188" // Titles

	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, tree branches
)

// Common styles
var (
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	LinkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue)).Underline(true)
	CodeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	EquationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	BranchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Border))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border))
)

// blockColors tints block kind labels in previews.
var blockColors = map[notion.BlockType]string{
	notion.TypeParagraph: Foreground,
	notion.TypeHeading1:  Yellow,
	notion.TypeHeading2:  Yellow,
	notion.TypeHeading3:  Yellow,
	notion.TypeCode:      Orange,
	notion.TypeEquation:  Cyan,
	notion.TypeQuote:     Blue,
	notion.TypeBulleted:  Foreground,
	notion.TypeNumbered:  Foreground,
	notion.TypeToDo:      Green,
}

// BlockLabel returns the style for a block kind label.
func BlockLabel(t notion.BlockType) lipgloss.Style {
	color, ok := blockColors[t]
	if !ok {
		color = Comment
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}
