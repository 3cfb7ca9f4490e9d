package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - headings
	ColorSecondary Color = "86" // Cyan - branch names
)

// Semantic colors
const (
	ColorError   Color = "196" // Bright red
	ColorMuted   Color = "241" // Gray - secondary text
	ColorSubtle  Color = "245" // Light gray - labels
	ColorSuccess Color = "2"   // Green
	ColorWarning Color = "214" // Orange
)

// Merge outcome colors
const (
	ColorAdded    Color = "2" // Green
	ColorConflict Color = "1" // Red
	ColorDeleted  Color = "1" // Red
	ColorModified Color = "3" // Yellow
)
