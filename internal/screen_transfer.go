package internal

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"nube/internal/style"
)

// TransferMode selects between writing and reading a config JSON file
type TransferMode int

const (
	TransferExport TransferMode = iota
	TransferImport
)

// Messages sent from TransferScreen to parent
type TransferDoneMsg struct {
	Mode TransferMode
	Path string
}

type TransferCancelledMsg struct{}

// TransferScreen prompts for the file path to export the active config to,
// or import it from
type TransferScreen struct {
	form          *huh.Form
	mode          TransferMode
	width, height int
	model         *Model

	path string
}

// NewTransferScreen creates the export/import form
func NewTransferScreen(mode TransferMode, m *Model) (*TransferScreen, tea.Cmd) {
	screen := &TransferScreen{
		mode:   mode,
		width:  m.width,
		height: m.height,
		model:  m,
		path:   "active_config.json",
	}

	title := "Export To"
	if mode == TransferImport {
		title = "Import From"
	}

	screen.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title(title).
				Placeholder("active_config.json").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter a file path")
					}
					return nil
				}).
				Value(&screen.path),
		),
	).
		WithWidth(50).
		WithShowHelp(true).
		WithShowErrors(true)

	return screen, screen.form.Init()
}

// Init implements tea.Model
func (s *TransferScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements ScreenModel
func (s *TransferScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return TransferCancelledMsg{} }
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		mode := s.mode
		path := strings.TrimSpace(s.path)
		return s, func() tea.Msg { return TransferDoneMsg{Mode: mode, Path: path} }
	}

	return s, cmd
}

// View implements tea.Model
func (s *TransferScreen) View() string {
	title := "Export Active Config"
	if s.mode == TransferImport {
		title = "Import Config"
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		style.SubTitleStyle.Render(title),
		s.form.View(),
	)
	return centerInWindow(s.width, s.height, content)
}

// SetSize updates the screen dimensions
func (s *TransferScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
