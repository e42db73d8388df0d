package renderer

import "github.com/gdamore/tcell/v2"

// Theme holds the styles used for painting.
type Theme struct {
	Text    tcell.Style
	Match   tcell.Style // highlighted matches
	Current tcell.Style // the selection
	Status  tcell.Style
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return Theme{
		Text:    tcell.StyleDefault,
		Match:   tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack),
		Current: tcell.StyleDefault.Background(tcell.ColorDarkOrange).Foreground(tcell.ColorBlack).Bold(true),
		Status:  tcell.StyleDefault.Reverse(true),
	}
}
