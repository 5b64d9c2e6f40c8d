package internal

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"nube/internal/wordcloud"
)

// Screen types
type Screen int

// ScreenModel is the interface that all screens must implement
type ScreenModel interface {
	Update(tea.Msg) (ScreenModel, tea.Cmd)
	View() string
}

const (
	ScreenHome Screen = iota
	ScreenGallery
	ScreenConfig
	ScreenSaved
	ScreenSaveName
	ScreenTransfer
	ScreenLogs
	ScreenModal
)

type msgHandler func(tea.Msg) (tea.Model, tea.Cmd)

// renderedVariation is the outcome of one background render.
type renderedVariation struct {
	img     *image.RGBA
	skipped []string
	err     error
	pending bool
}

// Model
type Model struct {
	program *tea.Program

	// Configuration
	cfgPath     string
	prefs       *Settings
	logger      *slog.Logger
	debugBuffer *DebugBuffer
	soundPlayer *SoundPlayer
	store       *ConfigStore

	msgHandlers map[reflect.Type]msgHandler

	// Screen state
	screenHistory []Screen // Stack of screens, current screen is last element

	width         int
	height        int
	welcomeBanner string // Randomly selected banner, loaded once at startup

	// Working state
	active     CloudConfig
	stops      []wordcloud.RGB
	variations []map[string]int
	results    []*renderedVariation

	// batch increments on every regenerate so stale render results from a
	// superseded batch are discarded.
	batch int

	rng *rand.Rand

	// Render/export task tracking
	taskManager  *TaskManager
	taskProgress map[string]progress.Model // task ID -> progress model

	// Screens
	homeScreen     *HomeScreen
	galleryScreen  *GalleryScreen
	configScreen   *ConfigScreen
	savedScreen    *SavedScreen
	saveNameScreen *SaveNameScreen
	transferScreen *TransferScreen
	logsScreen     *LogsScreen
	modalScreen    *ModalScreen
}

// CurrentScreen returns the current screen, or ScreenHome if history is empty
func (m *Model) CurrentScreen() Screen {
	if len(m.screenHistory) == 0 {
		return ScreenHome
	}
	return m.screenHistory[len(m.screenHistory)-1]
}

// PushScreen adds a new screen to history (modal/overlay pattern)
func (m *Model) PushScreen(screen Screen) {
	m.screenHistory = append(m.screenHistory, screen)
}

// PopScreen removes current screen and returns to previous
func (m *Model) PopScreen() Screen {
	if len(m.screenHistory) <= 1 {
		m.screenHistory = []Screen{ScreenHome}
		return ScreenHome
	}
	m.screenHistory = m.screenHistory[:len(m.screenHistory)-1]
	return m.screenHistory[len(m.screenHistory)-1]
}

// ReplaceScreen replaces the current screen without adding to history
func (m *Model) ReplaceScreen(screen Screen) {
	if len(m.screenHistory) == 0 {
		m.screenHistory = []Screen{screen}
	} else {
		m.screenHistory[len(m.screenHistory)-1] = screen
	}
}

// NavigateTo clears history and jumps to a screen (hard navigation)
func (m *Model) NavigateTo(screen Screen) {
	m.screenHistory = []Screen{screen}
}

// currentScreen returns the current screen as a ScreenModel interface
func (m *Model) currentScreen() ScreenModel {
	switch m.CurrentScreen() {
	case ScreenHome:
		return m.homeScreen
	case ScreenGallery:
		return m.galleryScreen
	case ScreenConfig:
		return m.configScreen
	case ScreenSaved:
		return m.savedScreen
	case ScreenSaveName:
		return m.saveNameScreen
	case ScreenTransfer:
		return m.transferScreen
	case ScreenLogs:
		return m.logsScreen
	case ScreenModal:
		return m.modalScreen
	}
	return nil
}

func NewModel(cfgPath string, logger *slog.Logger, db *DebugBuffer) *Model {
	prefs, err := readConfig(cfgPath)
	if err != nil {
		logger.Error(fmt.Sprintf("unable to read config file %s", cfgPath), "err", err)
		os.Exit(1)
	}

	soundPlayer, err := NewSoundPlayer(prefs.EnableSounds)
	if err != nil {
		logger.Error("Failed to initialize sound player", "err", err)
	}

	savePath := prefs.SaveFile
	if !filepath.IsAbs(savePath) {
		savePath = filepath.Join(filepath.Dir(cfgPath), savePath)
	}

	return &Model{
		msgHandlers:   make(map[reflect.Type]msgHandler),
		cfgPath:       cfgPath,
		prefs:         prefs,
		logger:        logger,
		debugBuffer:   db,
		soundPlayer:   soundPlayer,
		store:         NewConfigStore(savePath),
		welcomeBanner: randomBanner(), // Load banner once at startup
		active:        prefs.DefaultConfig,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		taskManager:   NewTaskManager(),
		taskProgress:  make(map[string]progress.Model),
		screenHistory: []Screen{ScreenHome},
	}
}

// readConfig loads the YAML settings file, writing a default one on first
// run so the studio starts without any manual setup.
func readConfig(cfgPath string) (*Settings, error) {
	fh, err := os.Open(cfgPath)
	if os.IsNotExist(err) {
		prefs := defaultSettings()
		return prefs, writeConfig(cfgPath, prefs)
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = fh.Close()
	}()

	var prefs Settings
	decoder := yaml.NewDecoder(fh)
	if err := decoder.Decode(&prefs); err != nil {
		return nil, err
	}
	if prefs.DefaultConfig.Validate() != nil {
		prefs.DefaultConfig = DefaultCloudConfig()
	}
	if prefs.OutputDir == "" {
		prefs.OutputDir = defaultSettings().OutputDir
	}
	if prefs.SaveFile == "" {
		prefs.SaveFile = defaultSettings().SaveFile
	}
	return &prefs, nil
}

func writeConfig(cfgPath string, prefs *Settings) error {
	out, err := yaml.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(cfgPath, out, 0666)
}

func (m *Model) Init() tea.Cmd {
	// Initialize home screen
	m.homeScreen = NewHomeScreen(m)

	m.registerHandler(tea.WindowSizeMsg{}, m.handleWindowResize)
	m.registerHandler(errorMsg{}, m.handleErrorMsg)

	m.registerHandler(ConfigAppliedMsg{}, m.handleConfigAppliedMsg)
	m.registerHandler(ConfigCancelledMsg{}, m.handleConfigCancelledMsg)

	m.registerHandler(SavedSelectedMsg{}, m.handleSavedSelectedMsg)
	m.registerHandler(SavedDeleteRequestMsg{}, m.handleSavedDeleteRequestMsg)
	m.registerHandler(SavedDeletedMsg{}, m.handleSavedDeletedMsg)
	m.registerHandler(SavedCancelledMsg{}, m.handleSavedCancelledMsg)
	m.registerHandler(SavedCreateMsg{}, m.handleSavedCreateMsg)
	m.registerHandler(SaveNamedMsg{}, m.handleSaveNamedMsg)
	m.registerHandler(SaveNameCancelledMsg{}, m.handleSaveNameCancelledMsg)

	m.registerHandler(TransferDoneMsg{}, m.handleTransferDoneMsg)
	m.registerHandler(TransferCancelledMsg{}, m.handleTransferCancelledMsg)

	m.registerHandler(renderFinishedMsg{}, m.handleRenderFinishedMsg)
	m.registerHandler(exportFinishedMsg{}, m.handleExportFinishedMsg)

	m.registerHandler(ModalButtonClickedMsg{}, m.handleModalButtonClickedMsg)
	m.registerHandler(ModalCancelledMsg{}, m.handleModalCancelledMsg)

	// Kick off the first batch of variations right away so the gallery has
	// content when the user gets there.
	return m.regenerateVariations()
}

func (m *Model) registerHandler(msg tea.Msg, handler msgHandler) {
	m.msgHandlers[reflect.TypeOf(msg)] = handler
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logger.Debug("Update UI", "tea.Msg", fmt.Sprintf("%v", msg), "currentScreen", m.CurrentScreen())

	// Handle global keybindings
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+q" {
			return m, tea.Quit
		}
		if keyMsg.String() == "ctrl+l" {
			m.logsScreen = NewLogsScreen(m.debugBuffer, m)
			m.PushScreen(ScreenLogs)
			return m, nil
		}
	}

	// Check if we have a registered handler for this message type
	msgType := reflect.TypeOf(msg)
	if handler, ok := m.msgHandlers[msgType]; ok {
		return handler(msg)
	}

	if screen := m.currentScreen(); screen != nil {
		_, cmd := screen.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	if screen := m.currentScreen(); screen != nil {
		return screen.View()
	}
	return ""
}

func (m *Model) Start() error {
	m.program = tea.NewProgram(m, tea.WithAltScreen())
	_, err := m.program.Run()
	return err
}

// applyConfig swaps in a new active configuration, persists it as the
// startup default, and rebuilds stops and variations.
func (m *Model) applyConfig(cfg CloudConfig) tea.Cmd {
	if err := cfg.Validate(); err != nil {
		return m.showError(err.Error())
	}

	m.active = cfg
	m.prefs.DefaultConfig = cfg
	if err := m.savePreferences(); err != nil {
		m.logger.Error("Failed to save preferences", "err", err)
	}

	return m.regenerateVariations()
}

// regenerateVariations draws a fresh set of five frequency assignments and
// starts a background render for each.
func (m *Model) regenerateVariations() tea.Cmd {
	stops, err := m.active.Stops()
	if err != nil {
		return m.showError(err.Error())
	}
	m.stops = stops
	m.variations = wordcloud.Variations(m.active.Words, m.rng)
	m.batch++

	m.results = make([]*renderedVariation, wordcloud.VariationCount)
	if m.galleryScreen != nil {
		m.galleryScreen.InvalidateAll()
	}
	cmds := make([]tea.Cmd, 0, wordcloud.VariationCount)
	for i := range m.variations {
		m.results[i] = &renderedVariation{pending: true}
		cmds = append(cmds, m.renderVariation(i))
	}

	m.logger.Info("Generating variations",
		"words", len(m.active.Words),
		"size", fmt.Sprintf("%dx%d", m.active.Width, m.active.Height),
		"color", m.active.FinalColor)

	return tea.Batch(cmds...)
}

// renderVariation renders one variation at full resolution in a background
// command, tracked as a task.
func (m *Model) renderVariation(i int) tea.Cmd {
	task := m.newTask(TaskRender, fmt.Sprintf("Variation #%d", i+1), i+1)
	task.WordCount = len(m.variations[i])

	batch := m.batch
	freqs := m.variations[i]
	cfg := m.active
	stops := m.stops
	seed := m.rng.Int63()
	tm := m.taskManager

	return func() tea.Msg {
		gen, err := wordcloud.NewGenerator(wordcloud.Options{
			Width:  cfg.Width,
			Height: cfg.Height,
			Stops:  stops,
		})
		if err != nil {
			return renderFinishedMsg{batch: batch, index: i, taskID: task.ID, err: err}
		}

		res, err := gen.Render(freqs, rand.New(rand.NewSource(seed)), func(done, total int) {
			tm.SetProgress(task.ID, done, total)
		})
		if err != nil {
			return renderFinishedMsg{batch: batch, index: i, taskID: task.ID, err: err}
		}
		return renderFinishedMsg{batch: batch, index: i, taskID: task.ID, result: res}
	}
}

// exportVariation writes one rendered variation as a full-resolution PNG.
func (m *Model) exportVariation(i int) tea.Cmd {
	if i < 0 || i >= len(m.results) || m.results[i] == nil {
		return m.showError(fmt.Sprintf("Variation #%d is not available", i+1))
	}
	res := m.results[i]
	if res.pending {
		return m.showError(fmt.Sprintf("Variation #%d is still rendering", i+1))
	}
	if res.err != nil || res.img == nil {
		return m.showError(fmt.Sprintf("Variation #%d failed to render", i+1))
	}

	fileName := fmt.Sprintf("wordcloud_variation_%d.png", i+1)
	path := filepath.Join(m.prefs.OutputDir, fileName)

	task := m.newTask(TaskExport, fileName, i+1)
	task.LocalPath = path
	img := res.img

	return func() tea.Msg {
		if err := wordcloud.WritePNG(path, img); err != nil {
			return exportFinishedMsg{taskID: task.ID, path: path, err: err}
		}
		return exportFinishedMsg{taskID: task.ID, path: path}
	}
}

// exportAll exports every successfully rendered variation.
func (m *Model) exportAll() tea.Cmd {
	var cmds []tea.Cmd
	for i, res := range m.results {
		if res != nil && !res.pending && res.err == nil && res.img != nil {
			cmds = append(cmds, m.exportVariation(i))
		}
	}
	if len(cmds) == 0 {
		return m.showError("No rendered variations to export yet")
	}
	return tea.Batch(cmds...)
}

func (m *Model) newTask(kind TaskKind, label string, variation int) *Task {
	task := &Task{
		ID:        newTaskID(),
		Kind:      kind,
		Label:     label,
		Variation: variation,
		Status:    TaskPending,
		StartTime: time.Now(),
	}
	m.taskManager.Add(task)
	m.taskProgress[task.ID] = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)
	return task
}

// renderingDone reports whether every slot of the current batch resolved.
func (m *Model) renderingDone() bool {
	for _, res := range m.results {
		if res == nil || res.pending {
			return false
		}
	}
	return true
}

func (m *Model) showError(text string) tea.Cmd {
	return func() tea.Msg {
		return errorMsg{text: text}
	}
}

func (m *Model) savePreferences() error {
	return writeConfig(m.cfgPath, m.prefs)
}
