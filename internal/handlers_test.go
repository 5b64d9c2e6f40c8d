package internal

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	return &Model{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:         NewConfigStore(filepath.Join(t.TempDir(), "saved_configs.json")),
		prefs:         defaultSettings(),
		width:         80,
		height:        24,
		screenHistory: []Screen{ScreenHome},
	}
}

func TestDeleteRequestShowsConfirmModal(t *testing.T) {
	m := testModel(t)
	if err := m.store.Upsert("viejo", DefaultCloudConfig()); err != nil {
		t.Fatal(err)
	}
	m.savedScreen = NewSavedScreen(m.store.Load(), m)
	m.screenHistory = []Screen{ScreenHome, ScreenSaved}

	m.handleSavedDeleteRequestMsg(SavedDeleteRequestMsg{Name: "viejo"})

	if m.CurrentScreen() != ScreenModal {
		t.Fatalf("expected modal screen, on %v", m.CurrentScreen())
	}
	if m.modalScreen == nil || m.modalScreen.modalType != ModalTypeConfirmDelete {
		t.Fatal("expected a delete confirmation modal")
	}
	if m.modalScreen.context != "viejo" {
		t.Errorf("modal carries context %q, want the config name", m.modalScreen.context)
	}
	// Nothing is deleted until the modal confirms.
	if _, ok := m.store.Get("viejo"); !ok {
		t.Error("entry deleted before confirmation")
	}
}

func TestConfirmDeleteFlow(t *testing.T) {
	m := testModel(t)
	for _, name := range []string{"keep", "gone"} {
		if err := m.store.Upsert(name, DefaultCloudConfig()); err != nil {
			t.Fatal(err)
		}
	}
	m.savedScreen = NewSavedScreen(m.store.Load(), m)
	m.screenHistory = []Screen{ScreenHome, ScreenSaved, ScreenModal}

	// Cancel keeps everything.
	_, cmd := m.handleModalButtonClickedMsg(ModalButtonClickedMsg{
		Type: ModalTypeConfirmDelete, ButtonClicked: "Cancel", Context: "gone",
	})
	if cmd != nil {
		t.Error("cancel should not produce a follow-up command")
	}
	if m.CurrentScreen() != ScreenSaved {
		t.Errorf("cancel should return to the saved screen, on %v", m.CurrentScreen())
	}
	if got := len(m.store.Load()); got != 2 {
		t.Fatalf("cancel deleted entries: %d left", got)
	}

	// Confirming deletes the named entry and refreshes the list.
	m.PushScreen(ScreenModal)
	_, cmd = m.handleModalButtonClickedMsg(ModalButtonClickedMsg{
		Type: ModalTypeConfirmDelete, ButtonClicked: "Delete", Context: "gone",
	})
	if cmd == nil {
		t.Fatal("confirmed delete should emit a message")
	}
	del, ok := cmd().(SavedDeletedMsg)
	if !ok || del.Name != "gone" {
		t.Fatalf("expected SavedDeletedMsg for %q, got %#v", "gone", del)
	}

	m.handleSavedDeletedMsg(del)
	if _, ok := m.store.Get("gone"); ok {
		t.Error("entry still present after confirmed delete")
	}
	if _, ok := m.store.Get("keep"); !ok {
		t.Error("unrelated entry removed")
	}
	if got := len(m.savedScreen.list.Items()); got != 1 {
		t.Errorf("saved list not refreshed: %d items, want 1", got)
	}
}

func TestNilSoundPlayerIsSafe(t *testing.T) {
	var sp *SoundPlayer
	sp.PlayAsync(SoundError)
	sp.SetEnabled(true)
	sp.Close()
}
