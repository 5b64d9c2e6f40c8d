package internal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"nube/internal/style"
)

// ModalType identifies the type of modal for proper handling
type ModalType int

const (
	ModalTypeGeneric ModalType = iota
	ModalTypeError
	ModalTypeConfirmDelete
)

// Messages sent from ModalScreen to parent
type ModalCancelledMsg struct{}

type ModalButtonClickedMsg struct {
	Title         string    // Modal title for context
	ButtonClicked string    // Which button was clicked
	Type          ModalType // Modal type for proper handling
	Context       string    // Extra payload, e.g. the config name to delete
}

// ModalScreen encapsulates the modal dialog component
type ModalScreen struct {
	form *huh.Form

	width, height int
	model         *Model

	modalType ModalType
	title     string
	content   string
	buttons   []string
	context   string
}

// NewModalScreen creates a new modal screen instance
func NewModalScreen(modalType ModalType, title, content string, buttons []string, m *Model) *ModalScreen {
	if len(buttons) == 0 {
		buttons = []string{"OK"}
	}

	s := &ModalScreen{
		modalType: modalType,
		title:     title,
		content:   content,
		buttons:   buttons,
		width:     m.width,
		height:    m.height,
		model:     m,
	}

	s.initForm()
	return s
}

// WithContext attaches a payload carried back on the button click message
func (s *ModalScreen) WithContext(context string) *ModalScreen {
	s.context = context
	return s
}

// initForm creates the huh form for the modal buttons
func (s *ModalScreen) initForm() {
	var confirmField *huh.Confirm
	if len(s.buttons) == 1 {
		// Single button modal - just shows one button (always returns true)
		confirmField = huh.NewConfirm().
			Key("confirm").
			Affirmative(s.buttons[0]).
			Negative("")
	} else {
		// Two button modal - second button is affirmative (default), first is negative
		confirmField = huh.NewConfirm().
			Key("confirm").
			Value(func() *bool { t := true; return &t }()).
			Affirmative(s.buttons[1]).
			Negative(s.buttons[0])
	}

	// Get default key map and add Tab to toggle binding
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Confirm.Toggle.SetKeys("left", "right", "h", "l", "tab")

	// Create theme without left border
	theme := huh.ThemeCharm()
	theme.Focused.Base = theme.Focused.Base.
		UnsetBorderLeft().
		UnsetBorderStyle()

	s.form = huh.NewForm(
		huh.NewGroup(confirmField),
	).
		WithWidth(60).
		WithShowHelp(false).
		WithShowErrors(false).
		WithKeyMap(keyMap).
		WithTheme(theme)
}

// Init returns initial commands
func (s *ModalScreen) Init() tea.Cmd {
	if s.form != nil {
		return s.form.Init()
	}
	return nil
}

// Update handles messages and returns updated screen + commands
func (s *ModalScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return ModalCancelledMsg{} }
		}
	}

	if s.form != nil {
		form, cmd := s.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			s.form = f
		}

		if s.form.State == huh.StateCompleted {
			clicked := s.buttons[0]
			if len(s.buttons) > 1 && s.form.GetBool("confirm") {
				clicked = s.buttons[1]
			}
			title, modalType, context := s.title, s.modalType, s.context
			return s, func() tea.Msg {
				return ModalButtonClickedMsg{
					Title:         title,
					ButtonClicked: clicked,
					Type:          modalType,
					Context:       context,
				}
			}
		}
		return s, cmd
	}

	return s, nil
}

// View implements tea.Model
func (s *ModalScreen) View() string {
	titleStyle := style.TitleStyle
	if s.modalType == ModalTypeError {
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(style.ColorBrightRed)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(s.title),
		"",
		wordwrap.String(s.content, 56),
		"",
		s.form.View(),
	)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ColorCyan).
		Padding(1, 2).
		Render(body)

	return centerInWindow(s.width, s.height, dialog)
}

// SetSize updates the screen dimensions
func (s *ModalScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
