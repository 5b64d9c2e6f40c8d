package internal

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"nube/internal/style"
)

// Messages sent from SaveNameScreen to parent
type SaveNamedMsg struct {
	Name string
}

type SaveNameCancelledMsg struct{}

// SaveNameScreen prompts for the name to save the active configuration
// under
type SaveNameScreen struct {
	form          *huh.Form
	width, height int
	model         *Model

	name string
}

// NewSaveNameScreen creates the naming form
func NewSaveNameScreen(m *Model) (*SaveNameScreen, tea.Cmd) {
	screen := &SaveNameScreen{
		width:  m.width,
		height: m.height,
		model:  m,
	}

	screen.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Config Name").
				Placeholder("my-word-cloud").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter a valid name")
					}
					return nil
				}).
				Value(&screen.name),
		),
	).
		WithWidth(40).
		WithShowHelp(true).
		WithShowErrors(true)

	return screen, screen.form.Init()
}

// Init implements tea.Model
func (s *SaveNameScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements ScreenModel
func (s *SaveNameScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return SaveNameCancelledMsg{} }
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		name := strings.TrimSpace(s.name)
		return s, func() tea.Msg { return SaveNamedMsg{Name: name} }
	}

	return s, cmd
}

// View implements tea.Model
func (s *SaveNameScreen) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		style.SubTitleStyle.Render("Save Current Config"),
		s.form.View(),
	)
	return centerInWindow(s.width, s.height, content)
}

// SetSize updates the screen dimensions
func (s *SaveNameScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
