package internal

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"nube/internal/style"
	"nube/internal/wordcloud"
)

// Messages sent from ConfigScreen to parent
type ConfigAppliedMsg struct {
	Config CloudConfig
}

type ConfigCancelledMsg struct{}

// configKeyMap defines the keybindings for the configuration screen
type configKeyMap struct {
	Tab    key.Binding
	Enter  key.Binding
	Escape key.Binding
}

func (k configKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Escape}
}

func (k configKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Enter, k.Escape}}
}

func newConfigKeyMap() configKeyMap {
	return configKeyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ConfigScreen is a self-contained BubbleTea model for editing the active
// configuration
type ConfigScreen struct {
	form          *huh.Form
	width, height int
	model         *Model
	help          help.Model
	keys          configKeyMap

	// Form field values (bound to form inputs)
	finalColor string
	numStops   int
	words      string
	cloudW     string
	cloudH     string
}

func validateHexColor(s string) error {
	_, err := wordcloud.ParseHex(s)
	return err
}

func validateDimension(name string) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if v < wordcloud.MinDimension || v > wordcloud.MaxDimension {
			return fmt.Errorf("%s must be between %d and %d",
				name, wordcloud.MinDimension, wordcloud.MaxDimension)
		}
		return nil
	}
}

func validateWords(s string) error {
	if len(SplitWords(s)) == 0 {
		return fmt.Errorf("add at least one word")
	}
	return nil
}

func buildConfigForm(s *ConfigScreen) *huh.Form {
	stopOptions := make([]huh.Option[int], 0, MaxStops-MinStops+1)
	for n := MinStops; n <= MaxStops; n++ {
		stopOptions = append(stopOptions, huh.NewOption(strconv.Itoa(n), n))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("color").
				Title("Final Color").
				Placeholder("#ff00d3").
				Validate(validateHexColor).
				Value(&s.finalColor),

			huh.NewSelect[int]().
				Key("stops").
				Title("Color Stops").
				Options(stopOptions...).
				Value(&s.numStops),

			huh.NewText().
				Key("words").
				Title("Words").
				Description("Comma, semicolon, or newline separated").
				Lines(8).
				Validate(validateWords).
				Value(&s.words),

			huh.NewInput().
				Key("width").
				Title("Width (px)").
				Placeholder("2000").
				Validate(validateDimension("width")).
				Value(&s.cloudW),

			huh.NewInput().
				Key("height").
				Title("Height (px)").
				Placeholder("1600").
				Validate(validateDimension("height")).
				Value(&s.cloudH),
		),
	).
		WithWidth(60).
		WithShowHelp(false).
		WithShowErrors(true)
}

// NewConfigScreen creates a configuration form pre-filled from the given
// config
func NewConfigScreen(cfg CloudConfig, m *Model) (*ConfigScreen, tea.Cmd) {
	screen := &ConfigScreen{
		width:      m.width,
		height:     m.height,
		model:      m,
		help:       help.New(),
		keys:       newConfigKeyMap(),
		finalColor: cfg.FinalColor,
		numStops:   cfg.NumStops,
		words:      JoinWords(cfg.Words),
		cloudW:     strconv.Itoa(cfg.Width),
		cloudH:     strconv.Itoa(cfg.Height),
	}

	screen.form = buildConfigForm(screen)
	return screen, screen.form.Init()
}

// Init implements tea.Model
func (s *ConfigScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements ScreenModel
func (s *ConfigScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return ConfigCancelledMsg{} }
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		cfg := CloudConfig{
			FinalColor: s.finalColor,
			NumStops:   s.numStops,
			Words:      SplitWords(s.words),
		}
		cfg.Width, _ = strconv.Atoi(s.cloudW)
		cfg.Height, _ = strconv.Atoi(s.cloudH)
		return s, func() tea.Msg { return ConfigAppliedMsg{Config: cfg} }
	}

	return s, cmd
}

// View implements tea.Model
func (s *ConfigScreen) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		style.SubTitleStyle.Render("Configuration"),
		s.gradientPreview(),
		"",
		s.form.View(),
		"",
		s.help.View(s.keys),
	)
	return centerInWindow(s.width, s.height, content)
}

// gradientPreview shows the stops the current form values would produce.
// Invalid intermediate input simply hides the preview.
func (s *ConfigScreen) gradientPreview() string {
	final, err := wordcloud.ParseHex(s.finalColor)
	if err != nil {
		return style.MutedStyle.Render("Gradient: (enter a valid color)")
	}
	stops, err := wordcloud.Stops(final, s.numStops)
	if err != nil {
		return ""
	}

	colors := make([]color.Color, len(stops))
	for i, c := range stops {
		colors[i] = c
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		style.MutedStyle.Render("Gradient: "),
		style.SwatchRow(colors),
	)
}

// SetSize updates the screen dimensions
func (s *ConfigScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
