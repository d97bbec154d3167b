package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Segment colors
	SegmentFront = lipgloss.Color("#60A5FA") // Blue
	SegmentBody  = lipgloss.Color("#10B981") // Green
	SegmentBack  = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Chapter row styles
	RowFront = lipgloss.NewStyle().
			Foreground(SegmentFront)

	RowBody = lipgloss.NewStyle()

	RowBack = lipgloss.NewStyle().
			Foreground(SegmentBack)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	PageNumber = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SubCount = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Confirm = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// SegmentColor returns the color for a chapter type string
func SegmentColor(chapterType string) lipgloss.Color {
	switch chapterType {
	case "frontmatter":
		return SegmentFront
	case "backmatter":
		return SegmentBack
	default:
		return SegmentBody
	}
}
