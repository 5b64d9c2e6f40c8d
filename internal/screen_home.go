package internal

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nube/internal/style"
)

// Messages sent from HomeScreen to parent
type HomeGalleryMsg struct{}

type HomeConfigMsg struct{}

type HomeSavedMsg struct{}

type HomeExportMsg struct{}

type HomeImportMsg struct{}

type HomeQuitMsg struct{}

type HomeRefreshBannerMsg struct{}

// HomeScreen is a self-contained BubbleTea model for the home screen
type HomeScreen struct {
	width, height int
	welcomeBanner string
	model         *Model
}

// NewHomeScreen creates a new home screen
func NewHomeScreen(m *Model) *HomeScreen {
	return &HomeScreen{
		width:         m.width,
		height:        m.height,
		welcomeBanner: m.welcomeBanner,
		model:         m,
	}
}

// Init implements tea.Model
func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

// Update implements ScreenModel
func (s *HomeScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case HomeGalleryMsg:
		return s, s.model.handleHomeGalleryMsg()
	case HomeConfigMsg:
		return s, s.model.handleHomeConfigMsg()
	case HomeSavedMsg:
		s.model.handleHomeSavedMsg()
		return s, nil
	case HomeExportMsg:
		return s, s.model.handleHomeTransferMsg(TransferExport)
	case HomeImportMsg:
		return s, s.model.handleHomeTransferMsg(TransferImport)
	case HomeQuitMsg:
		return s, tea.Quit
	case HomeRefreshBannerMsg:
		s.welcomeBanner = randomBanner()
		s.model.welcomeBanner = s.welcomeBanner
		return s, nil

	case tea.KeyMsg:
		return s.handleKeys(msg)
	}

	return s, nil
}

// View implements tea.Model
func (s *HomeScreen) View() string {
	banner := style.Rainbow(lipgloss.NewStyle().Bold(true), s.welcomeBanner, style.BannerBlends)

	menu := strings.Join(
		[]string{
			fmt.Sprintf("%s Gallery", style.HotkeyStyle.Render("(g)")),
			fmt.Sprintf("%s Configuration", style.HotkeyStyle.Render("(c)")),
			fmt.Sprintf("%s Saved Configs", style.HotkeyStyle.Render("(s)")),
			fmt.Sprintf("%s Export Active Config", style.HotkeyStyle.Render("(x)")),
			fmt.Sprintf("%s Import Config", style.HotkeyStyle.Render("(i)")),
			fmt.Sprintf("%s Quit", style.HotkeyStyle.Render("(q)")),
		},
		"\n",
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ColorFuscia).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			banner,
			"",
			menu,
		))

	content := box
	if widget := s.model.renderTaskWidget(); widget != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, box, "", widget)
	}

	return lipgloss.Place(
		s.width,
		s.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(style.Background1),
		lipgloss.WithWhitespaceForeground(style.Subtle),
	)
}

// SetSize updates the screen dimensions
func (s *HomeScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// handleKeys handles key input for the home screen
func (s *HomeScreen) handleKeys(msg tea.KeyMsg) (ScreenModel, tea.Cmd) {
	switch msg.String() {
	case "g", "enter":
		return s, func() tea.Msg { return HomeGalleryMsg{} }
	case "c":
		return s, func() tea.Msg { return HomeConfigMsg{} }
	case "s":
		return s, func() tea.Msg { return HomeSavedMsg{} }
	case "x":
		return s, func() tea.Msg { return HomeExportMsg{} }
	case "i":
		return s, func() tea.Msg { return HomeImportMsg{} }
	case "b":
		return s, func() tea.Msg { return HomeRefreshBannerMsg{} }
	case "q":
		return s, func() tea.Msg { return HomeQuitMsg{} }
	}
	return s, nil
}
