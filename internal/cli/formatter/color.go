package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	StyleActiveTab = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
)

// BandColor returns the style for a band: green safe, yellow warning,
// red critical.
func BandColor(band domain.Band) lipgloss.Style {
	switch band {
	case domain.BandCritical:
		return StyleRed
	case domain.BandWarning:
		return StyleYellow
	case domain.BandSafe:
		return StyleGreen
	default:
		return StyleDim
	}
}

// BandIndicator returns a colored indicator such as "● CRITICAL". label
// replaces the band name when set.
func BandIndicator(band domain.Band, label string) string {
	if band == "" {
		return StyleDim.Render("--")
	}
	if label == "" {
		label = string(band)
	}
	return BandColor(band).Render("● " + strings.ToUpper(label))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
