package style

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

const (
	ColorLightGrey = lipgloss.Color("245")
	ColorCyan      = lipgloss.Color("63")
	ColorBrightRed = lipgloss.Color("196")
	ColorFuscia    = lipgloss.Color("170")
	ColorDarkGrey  = lipgloss.Color("241")
	ColorGrey2     = lipgloss.Color("235")
)

const Background1 = "☁"

// Styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	HotkeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFuscia)

	SubTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 0, 1).
			Foreground(ColorFuscia)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGrey)

	// Frame around each variation preview in the gallery.
	PreviewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCyan).
			Padding(0, 1)

	SubScreenStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorCyan).
			Background(ColorGrey2).
			Padding(1, 1)

	TaskWidgetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCyan).
			Padding(0, 1).
			Width(28)

	TaskActiveStyle = lipgloss.NewStyle().
			Foreground(ColorFuscia).
			Bold(true)

	TaskCompleteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("2")) // Green

	TaskFailedStyle = lipgloss.NewStyle().
			Foreground(ColorBrightRed) // Red
)

var Subtle = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}

// BannerBlends sweeps from the derived dark magenta to the default final
// color, mirroring the gradient the renderer ships with.
var BannerBlends = gamut.Blends(lipgloss.Color("#910078"), lipgloss.Color("#ff00d3"), 50)

// Rainbow colors each rune of s from the given ramp, cycling when the text
// is longer than the ramp.
func Rainbow(base lipgloss.Style, s string, colors []color.Color) string {
	var str string
	for i, ss := range s {
		c, _ := colorful.MakeColor(colors[i%len(colors)])
		str += base.Foreground(lipgloss.Color(c.Hex())).Render(string(ss))
	}
	return str
}

// RenderSubscreen centers boxed content over the whole window.
func RenderSubscreen(w, h int, title, content string) string {
	return lipgloss.Place(
		w,
		h,
		lipgloss.Center,
		lipgloss.Center,
		SubScreenStyle.Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				TitleStyle.Render(title),
				content,
			),
		),
		lipgloss.WithWhitespaceChars(Background1),
		lipgloss.WithWhitespaceForeground(Subtle),
	)
}
