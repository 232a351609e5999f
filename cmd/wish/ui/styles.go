// Package ui provides the visual styling for the wish gallery terminal UI.
// Festive palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#fdf8f0") // warm paper
	LightForeground = lipgloss.Color("#2b1d16")
	LightPrimary    = lipgloss.Color("#b3261e") // Santa red
	LightAccent     = lipgloss.Color("#1b6e3a") // pine
	LightMuted      = lipgloss.Color("#8a7f76")
	LightBorder     = lipgloss.Color("#e0cfc0")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#10141c")
	DarkForeground = lipgloss.Color("#f4efe9")
	DarkPrimary    = lipgloss.Color("#ef5350")
	DarkAccent     = lipgloss.Color("#66bb6a")
	DarkMuted      = lipgloss.Color("#7d8694")
	DarkBorder     = lipgloss.Color("#2e3646")
	DarkCard       = lipgloss.Color("#1a2130")

	Gold    = lipgloss.Color("#f2b705")
	Warning = lipgloss.Color("#ffb300")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or WISH_DARK_MODE=1, light
// otherwise.
func DetectTheme() Theme {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		// "foreground;background"; ANSI 0-6 and 8 are dark backgrounds.
		parts := strings.Split(fgbg, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("WISH_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Santa  lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Reminder lipgloss.Style

	// Input
	Input       lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Spinner     lipgloss.Style
	ToggleLabel lipgloss.Style

	// Gifts
	Gift         lipgloss.Style
	GiftSelected lipgloss.Style
	GiftOpened   lipgloss.Style
	GiftTitle    lipgloss.Style
	GiftEmoji    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Card).
		Foreground(theme.Foreground).
		Padding(1, 2).
		Width(22).
		Align(lipgloss.Center)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background).
			MarginTop(1).
			Padding(0, 1),

		Santa: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Reminder: lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		ButtonBusy: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2).
			Italic(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		ToggleLabel: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Gift: box,

		GiftSelected: box.
			BorderForeground(Gold).
			BorderStyle(lipgloss.ThickBorder()),

		GiftOpened: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Gold).
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 3).
			Width(60),

		GiftTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		GiftEmoji: lipgloss.NewStyle().
			MarginBottom(1),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

const tree = `
      *
     /.\
    /o..\
    /..o\
   /.o..o\
   /...o.\
  /..o....\
  ^^^[_]^^^`

const santaBusy = `
   .  *  .   *
    \ | /
  -- 🎅 --
    / | \
   *  .   *  .`

// Santa returns the decorative header; busy selects the preparing variant.
func Santa(s Styles, busy bool) string {
	if busy {
		return s.Santa.Render(santaBusy)
	}
	return s.Santa.Render(tree)
}
