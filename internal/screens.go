package internal

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nube/internal/style"
)

// Home screen navigation handlers

func (m *Model) handleHomeGalleryMsg() tea.Cmd {
	m.galleryScreen = NewGalleryScreen(m)
	m.PushScreen(ScreenGallery)
	return nil
}

func (m *Model) handleHomeConfigMsg() tea.Cmd {
	var cmd tea.Cmd
	m.configScreen, cmd = NewConfigScreen(m.active, m)
	m.PushScreen(ScreenConfig)
	return cmd
}

func (m *Model) handleHomeSavedMsg() {
	m.savedScreen = NewSavedScreen(m.store.Load(), m)
	m.PushScreen(ScreenSaved)
}

func (m *Model) handleHomeTransferMsg(mode TransferMode) tea.Cmd {
	var cmd tea.Cmd
	m.transferScreen, cmd = NewTransferScreen(mode, m)
	m.PushScreen(ScreenTransfer)
	return cmd
}

// renderTaskWidget shows the most recent render/export tasks below the home
// menu, or an empty string when nothing has run yet.
func (m *Model) renderTaskWidget() string {
	activeTasks := m.taskManager.GetActive()
	completedTasks := m.taskManager.GetCompleted(3)

	var displayTasks []*Task
	displayTasks = append(displayTasks, activeTasks...)

	remaining := 3 - len(activeTasks)
	if remaining > 0 && len(completedTasks) > 0 {
		for i := 0; i < remaining && i < len(completedTasks); i++ {
			displayTasks = append(displayTasks, completedTasks[i])
		}
	}
	if len(displayTasks) == 0 {
		return ""
	}
	if len(displayTasks) > 3 {
		displayTasks = displayTasks[:3]
	}

	var content strings.Builder
	content.WriteString(style.TitleStyle.Render("Recent Renders") + "\n")

	for i, task := range displayTasks {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(m.renderCompactTask(task))
	}

	return style.TaskWidgetStyle.Render(content.String())
}

func (m *Model) renderCompactTask(task *Task) string {
	var lines []string

	label := task.Label
	if len(label) > 20 {
		label = label[:17] + "..."
	}

	var statusStr string
	switch task.Status {
	case TaskActive:
		percent := 0
		if task.WordCount > 0 {
			percent = int((float64(task.WordsDone) / float64(task.WordCount)) * 100)
		}
		statusStr = style.TaskActiveStyle.Render(fmt.Sprintf("%3d%%", percent))
	case TaskCompleted:
		statusStr = style.TaskCompleteStyle.Render("Done")
	case TaskFailed:
		statusStr = style.TaskFailedStyle.Render("Fail")
	case TaskPending:
		statusStr = style.MutedStyle.Render("Wait")
	}

	lines = append(lines, fmt.Sprintf("%-20s %4s", label, statusStr))

	// Progress bar only while a render is working through its words.
	if task.Status == TaskActive && task.WordCount > 0 {
		if prog, ok := m.taskProgress[task.ID]; ok {
			lines = append(lines, prog.ViewAs(float64(task.WordsDone)/float64(task.WordCount)))
		}
	}

	return strings.Join(lines, "\n")
}

// renderTaskLine is the one-line form used on the gallery screen.
func renderTaskLine(task *Task) string {
	switch task.Status {
	case TaskCompleted:
		d := task.EndTime.Sub(task.StartTime).Round(10 * time.Millisecond)
		return fmt.Sprintf("%s %s  %s",
			style.TaskCompleteStyle.Render("✓"), task.Label, style.MutedStyle.Render(d.String()))
	case TaskFailed:
		reason := "failed"
		if task.Error != nil {
			reason = task.Error.Error()
		}
		return fmt.Sprintf("%s %s  %s",
			style.TaskFailedStyle.Render("✗"), task.Label, style.MutedStyle.Render(reason))
	default:
		return fmt.Sprintf("%s %s",
			style.TaskActiveStyle.Render("…"), task.Label)
	}
}

// centerInWindow places content mid-window over the cloud backdrop.
func centerInWindow(w, h int, content string) string {
	return lipgloss.Place(
		w,
		h,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(style.Background1),
		lipgloss.WithWhitespaceForeground(style.Subtle),
	)
}
