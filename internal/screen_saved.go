package internal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"nube/internal/style"
)

// Messages sent from SavedScreen to parent
type SavedSelectedMsg struct {
	Entry SavedConfig
}

type SavedDeleteRequestMsg struct {
	Name string
}

type SavedDeletedMsg struct {
	Name string
}

type SavedCreateMsg struct{}

type SavedCancelledMsg struct{}

// SavedScreen is a self-contained BubbleTea model for browsing saved
// configurations
type SavedScreen struct {
	list          list.Model
	width, height int
	model         *Model
}

// NewSavedScreen creates a new saved configs screen with the given entries
func NewSavedScreen(configs []SavedConfig, m *Model) *SavedScreen {
	items := make([]list.Item, len(configs))
	for i, sc := range configs {
		items[i] = savedItem{entry: sc}
	}

	// Calculate dimensions accounting for app style padding
	h, v := style.AppStyle.GetFrameSize()

	l := list.New(items, newSavedDelegate(), m.width-h, m.height-v)
	l.SetFilteringEnabled(true)
	l.SetShowStatusBar(true)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.DisableQuitKeybindings()

	return &SavedScreen{
		list:   l,
		width:  m.width,
		height: m.height,
		model:  m,
	}
}

// Init implements tea.Model
func (s *SavedScreen) Init() tea.Cmd {
	return nil
}

// Update implements ScreenModel
func (s *SavedScreen) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		// Handle custom keys when NOT actively filtering
		if s.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "esc":
				return s, func() tea.Msg { return SavedCancelledMsg{} }

			case "enter":
				if item, ok := s.list.SelectedItem().(savedItem); ok {
					return s, func() tea.Msg {
						return SavedSelectedMsg{Entry: item.entry}
					}
				}
				return s, nil

			case "n":
				return s, func() tea.Msg { return SavedCreateMsg{} }

			case "x":
				// Deletion happens only after the confirmation modal.
				if item, ok := s.list.SelectedItem().(savedItem); ok {
					name := item.entry.Name
					return s, func() tea.Msg {
						return SavedDeleteRequestMsg{Name: name}
					}
				}
				return s, nil
			}
		}
	}

	// Delegate all other messages to the list
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// View implements tea.Model
func (s *SavedScreen) View() string {
	return style.AppStyle.Render(s.list.View())
}

// SetSize updates the screen dimensions
func (s *SavedScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	h, v := style.AppStyle.GetFrameSize()
	s.list.SetSize(width-h, height-v)
}

// savedItem represents a saved configuration in the list
type savedItem struct {
	entry SavedConfig
}

func (i savedItem) FilterValue() string {
	return i.entry.Name
}
func (i savedItem) Title() string { return i.entry.Name }
func (i savedItem) Description() string {
	c := i.entry.Config
	return fmt.Sprintf("%s · %d stops · %d words · %dx%d",
		c.FinalColor, c.NumStops, len(c.Words), c.Width, c.Height)
}

// newSavedDelegate creates a custom delegate for saved config list items
func newSavedDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.ShortHelpFunc = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "load"),
			),
			key.NewBinding(
				key.WithKeys("n"),
				key.WithHelp("n", "save current"),
			),
			key.NewBinding(
				key.WithKeys("x"),
				key.WithHelp("x", "delete"),
			),
		}
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{
			{
				key.NewBinding(
					key.WithKeys("enter"),
					key.WithHelp("enter", "load"),
				),
				key.NewBinding(
					key.WithKeys("n"),
					key.WithHelp("n", "save current"),
				),
				key.NewBinding(
					key.WithKeys("x"),
					key.WithHelp("x", "delete"),
				),
				key.NewBinding(
					key.WithKeys("/"),
					key.WithHelp("/", "filter"),
				),
			},
		}
	}

	return d
}
