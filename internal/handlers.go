package internal

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nube/internal/wordcloud"
)

// Messages passed between background commands and the model

type errorMsg struct {
	text string
}

type renderFinishedMsg struct {
	batch  int
	index  int
	taskID string
	result *wordcloud.Result
	err    error
}

type exportFinishedMsg struct {
	taskID string
	path   string
	err    error
}

func (m *Model) handleWindowResize(msg tea.Msg) (tea.Model, tea.Cmd) {
	sizeMsg := msg.(tea.WindowSizeMsg)
	m.width = sizeMsg.Width
	m.height = sizeMsg.Height

	// Propagate to every live screen so none renders stale dimensions.
	var screens []ScreenModel
	if m.homeScreen != nil {
		screens = append(screens, m.homeScreen)
	}
	if m.galleryScreen != nil {
		screens = append(screens, m.galleryScreen)
	}
	if m.configScreen != nil {
		screens = append(screens, m.configScreen)
	}
	if m.savedScreen != nil {
		screens = append(screens, m.savedScreen)
	}
	if m.saveNameScreen != nil {
		screens = append(screens, m.saveNameScreen)
	}
	if m.transferScreen != nil {
		screens = append(screens, m.transferScreen)
	}
	if m.logsScreen != nil {
		screens = append(screens, m.logsScreen)
	}
	if m.modalScreen != nil {
		screens = append(screens, m.modalScreen)
	}

	var cmds []tea.Cmd
	for _, screen := range screens {
		_, cmd := screen.Update(sizeMsg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleErrorMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	text := msg.(errorMsg).text
	m.logger.Error(text)
	m.soundPlayer.PlayAsync(SoundError)

	m.modalScreen = NewModalScreen(ModalTypeError, "Error", text, []string{"OK"}, m)
	if m.CurrentScreen() != ScreenModal {
		m.PushScreen(ScreenModal)
	}
	return m, m.modalScreen.Init()
}

func (m *Model) handleConfigAppliedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	applied := msg.(ConfigAppliedMsg)
	m.PopScreen()
	return m, m.applyConfig(applied.Config)
}

func (m *Model) handleConfigCancelledMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.PopScreen()
	return m, nil
}

func (m *Model) handleSavedSelectedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	entry := msg.(SavedSelectedMsg).Entry
	m.logger.Info("Loaded saved config", "name", entry.Name)
	m.PopScreen()
	return m, m.applyConfig(entry.Config)
}

func (m *Model) handleSavedDeleteRequestMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	name := msg.(SavedDeleteRequestMsg).Name
	m.modalScreen = NewModalScreen(
		ModalTypeConfirmDelete,
		"Delete Config",
		fmt.Sprintf("Delete saved config %q?", name),
		[]string{"Cancel", "Delete"},
		m,
	).WithContext(name)
	m.PushScreen(ScreenModal)
	return m, m.modalScreen.Init()
}

func (m *Model) handleSavedDeletedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	name := msg.(SavedDeletedMsg).Name
	if err := m.store.Delete(name); err != nil {
		return m, m.showError(fmt.Sprintf("Failed to delete %q: %v", name, err))
	}
	m.logger.Info("Deleted saved config", "name", name)

	if m.CurrentScreen() == ScreenSaved {
		m.savedScreen = NewSavedScreen(m.store.Load(), m)
	}
	return m, nil
}

func (m *Model) handleSavedCancelledMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.PopScreen()
	return m, nil
}

func (m *Model) handleSavedCreateMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.saveNameScreen, cmd = NewSaveNameScreen(m)
	m.PushScreen(ScreenSaveName)
	return m, cmd
}

func (m *Model) handleSaveNamedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	name := msg.(SaveNamedMsg).Name
	if err := m.store.Upsert(name, m.active); err != nil {
		m.PopScreen()
		return m, m.showError(fmt.Sprintf("Failed to save config: %v", err))
	}
	m.logger.Info("Saved config", "name", name)
	m.PopScreen()

	// Refresh the list when we came from the saved configs screen.
	if m.CurrentScreen() == ScreenSaved {
		m.savedScreen = NewSavedScreen(m.store.Load(), m)
	}
	return m, nil
}

func (m *Model) handleSaveNameCancelledMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.PopScreen()
	return m, nil
}

func (m *Model) handleTransferDoneMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	done := msg.(TransferDoneMsg)
	m.PopScreen()

	if done.Mode == TransferExport {
		if err := m.exportActiveConfig(done.Path); err != nil {
			return m, m.showError(fmt.Sprintf("Export failed: %v", err))
		}
		m.logger.Info("Exported active config", "path", done.Path)
		return m, nil
	}

	cfg, err := importConfigFile(done.Path)
	if err != nil {
		return m, m.showError(fmt.Sprintf("Import failed: %v", err))
	}
	m.logger.Info("Imported config", "path", done.Path)
	return m, m.applyConfig(cfg)
}

func (m *Model) handleTransferCancelledMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.PopScreen()
	return m, nil
}

func (m *Model) handleRenderFinishedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	finished := msg.(renderFinishedMsg)
	m.taskManager.Finish(finished.taskID, finished.err)

	// A result from a superseded batch: the task is closed out above, the
	// image is dropped.
	if finished.batch != m.batch {
		return m, nil
	}

	res := m.results[finished.index]
	res.pending = false
	res.err = finished.err
	if finished.result != nil {
		res.img = finished.result.Image
		res.skipped = finished.result.Skipped
	}

	if finished.err != nil {
		m.logger.Error("Render failed", "variation", finished.index+1, "err", finished.err)
	} else if len(res.skipped) > 0 {
		m.logger.Info("Render finished with skips",
			"variation", finished.index+1, "skipped", len(res.skipped))
	}

	if m.galleryScreen != nil {
		m.galleryScreen.Invalidate(finished.index)
	}

	if m.renderingDone() {
		m.soundPlayer.PlayAsync(SoundRenderComplete)
		m.logger.Info("All variations rendered")
	}
	return m, nil
}

func (m *Model) handleExportFinishedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	finished := msg.(exportFinishedMsg)
	m.taskManager.Finish(finished.taskID, finished.err)

	if finished.err != nil {
		return m, m.showError(fmt.Sprintf("Export failed: %v", finished.err))
	}

	m.soundPlayer.PlayAsync(SoundExportComplete)
	m.logger.Info("Exported variation", "path", finished.path)
	return m, nil
}

func (m *Model) handleModalCancelledMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.PopScreen()
	return m, nil
}

func (m *Model) handleModalButtonClickedMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	clicked := msg.(ModalButtonClickedMsg)
	m.PopScreen()

	if clicked.Type == ModalTypeConfirmDelete && clicked.ButtonClicked == "Delete" {
		name := clicked.Context
		return m, func() tea.Msg {
			return SavedDeletedMsg{Name: name}
		}
	}

	// Errors and informational modals just return to the previous screen.
	return m, nil
}

// exportActiveConfig writes the active configuration as pretty JSON, in the
// same shape the import path and the saved-config store use.
func (m *Model) exportActiveConfig(path string) error {
	out, err := json.MarshalIndent(m.active, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0666)
}

func importConfigFile(path string) (CloudConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CloudConfig{}, err
	}
	var cfg CloudConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return CloudConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CloudConfig{}, err
	}
	return cfg, nil
}
