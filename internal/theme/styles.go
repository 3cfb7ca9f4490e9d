package theme

import "github.com/charmbracelet/lipgloss"

// Text styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Merge outcome styles
var (
	AddedStyle = lipgloss.NewStyle().
			Foreground(ColorAdded)

	ConflictStyle = lipgloss.NewStyle().
			Foreground(ColorConflict).
			Bold(true)

	DeletedStyle = lipgloss.NewStyle().
			Foreground(ColorDeleted)

	ModifiedStyle = lipgloss.NewStyle().
			Foreground(ColorModified)
)

// WarningBoxStyle frames blocks the operator must not miss (skipped merge targets)
var WarningBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorWarning).
	Foreground(ColorWarning).
	Padding(0, 1)
