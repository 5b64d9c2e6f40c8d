package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nube/internal/style"
	"nube/internal/wordcloud"
)

// Messages sent from GalleryScreen to parent
type GalleryCancelledMsg struct{}

// galleryKeyMap defines the keybindings for the gallery screen
type galleryKeyMap struct {
	Regenerate key.Binding
	Export     key.Binding
	ExportAll  key.Binding
	Edit       key.Binding
	Back       key.Binding
}

func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Export, k.ExportAll, k.Edit, k.Back}
}

func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Regenerate, k.Export, k.ExportAll, k.Edit, k.Back}}
}

func newGalleryKeyMap() galleryKeyMap {
	return galleryKeyMap{
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		Export:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "export png")),
		ExportAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "export all")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit config")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// GalleryScreen shows the five rendered variations and drives regeneration
// and PNG export
type GalleryScreen struct {
	width, height int
	model         *Model
	help          help.Model
	keys          galleryKeyMap

	// previews caches the half-block rendition per variation; slots are
	// cleared when a render lands or the window resizes.
	previews []string
}

// NewGalleryScreen creates a new gallery screen
func NewGalleryScreen(m *Model) *GalleryScreen {
	return &GalleryScreen{
		width:    m.width,
		height:   m.height,
		model:    m,
		help:     help.New(),
		keys:     newGalleryKeyMap(),
		previews: make([]string, wordcloud.VariationCount),
	}
}

// Init implements tea.Model
func (s *GalleryScreen) Init() tea.Cmd {
	return nil
}

// Invalidate drops the cached preview for one variation
func (s *GalleryScreen) Invalidate(i int) {
	if i >= 0 && i < len(s.previews) {
		s.previews[i] = ""
	}
}

// InvalidateAll drops every cached preview
func (s *GalleryScreen) InvalidateAll() {
	s.previews = make([]string, wordcloud.VariationCount)
}

// Update implements ScreenModel
func (s *GalleryScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case GalleryCancelledMsg:
		s.model.PopScreen()
		return s, nil

	case tea.KeyMsg:
		return s.handleKeys(msg)
	}

	return s, nil
}

// handleKeys handles key input for the gallery screen
func (s *GalleryScreen) handleKeys(msg tea.KeyMsg) (ScreenModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return GalleryCancelledMsg{} }

	case "r":
		s.InvalidateAll()
		return s, s.model.regenerateVariations()

	case "a":
		return s, s.model.exportAll()

	case "e":
		var cmd tea.Cmd
		s.model.configScreen, cmd = NewConfigScreen(s.model.active, s.model)
		s.model.PushScreen(ScreenConfig)
		return s, cmd

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		return s, s.model.exportVariation(idx)
	}
	return s, nil
}

// previewCols sizes each preview so three boxes fit per row
func (s *GalleryScreen) previewCols() int {
	cols := (s.width-10)/3 - 4
	if cols < 16 {
		cols = 16
	}
	if cols > 48 {
		cols = 48
	}
	return cols
}

// variationBox renders one gallery cell: title, preview or status
func (s *GalleryScreen) variationBox(i int) string {
	title := style.TitleStyle.Render(fmt.Sprintf("Variation #%d", i+1))

	var body string
	switch {
	case i >= len(s.model.results) || s.model.results[i] == nil:
		body = style.MutedStyle.Render("waiting")
	case s.model.results[i].pending:
		body = style.MutedStyle.Render("rendering…")
	case s.model.results[i].err != nil:
		body = style.TaskFailedStyle.Render("render failed")
	default:
		if s.previews[i] == "" {
			s.previews[i] = wordcloud.Preview(s.model.results[i].img, s.previewCols())
		}
		body = s.previews[i]
		if skipped := s.model.results[i].skipped; len(skipped) > 0 {
			body = lipgloss.JoinVertical(lipgloss.Left, body,
				style.MutedStyle.Render(fmt.Sprintf("%d word(s) did not fit", len(skipped))))
		}
	}

	return style.PreviewBoxStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body),
	)
}

// View implements tea.Model
func (s *GalleryScreen) View() string {
	var rows []string
	var row []string
	for i := range wordcloud.VariationCount {
		row = append(row, s.variationBox(i))
		if len(row) == 3 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	headerText := fmt.Sprintf(
		"Gallery · %s · %d stops · %dx%d",
		s.model.active.FinalColor,
		s.model.active.NumStops,
		s.model.active.Width,
		s.model.active.Height,
	)
	// Title sweeps through the active gradient, dark end to final color.
	header := style.SubTitleStyle.Render(headerText)
	if n := len(s.model.stops); n >= 2 {
		header = style.ApplyBoldForegroundGrad(headerText, s.model.stops[0], s.model.stops[n-1])
	}

	sections := []string{header}
	sections = append(sections, rows...)

	if tasks := s.recentTaskLines(); tasks != "" {
		sections = append(sections, "", tasks)
	}
	sections = append(sections, "", s.help.View(s.keys))

	return style.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// recentTaskLines summarizes active and recently-finished tasks
func (s *GalleryScreen) recentTaskLines() string {
	var lines []string
	for _, task := range s.model.taskManager.GetActive() {
		lines = append(lines, renderTaskLine(task))
	}
	for _, task := range s.model.taskManager.GetCompleted(3) {
		lines = append(lines, renderTaskLine(task))
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the screen dimensions
func (s *GalleryScreen) SetSize(width, height int) {
	if width != s.width {
		s.InvalidateAll()
	}
	s.width = width
	s.height = height
}
