package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"hitit/internal/core/model"
)

type failingStore struct {
	presets []model.Preset
	loadErr error
	saveErr error
	saves   int
}

func (store *failingStore) Load() ([]model.Preset, error) {
	return store.presets, store.loadErr
}

func (store *failingStore) Save(presets []model.Preset) error {
	store.saves++
	if store.saveErr != nil {
		return store.saveErr
	}
	store.presets = presets
	return nil
}

func TestLibraryAddAppendsAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	library := NewLibrary(NewFileStore(path))

	for _, preset := range samplePresets {
		if err := library.Add(preset); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if !equalPresets(library.List(), samplePresets) {
		t.Fatalf("unexpected order %+v", library.List())
	}

	reloaded := NewLibrary(NewFileStore(path))
	if !equalPresets(reloaded.List(), samplePresets) {
		t.Fatalf("presets not persisted: %+v", reloaded.List())
	}
}

func TestLibraryRemove(t *testing.T) {
	store := &failingStore{presets: append([]model.Preset(nil), samplePresets...)}
	library := NewLibrary(store)

	if err := library.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := library.List(); len(got) != 1 || got[0].Name != "EMOM" {
		t.Fatalf("unexpected presets %+v", got)
	}
	if len(store.presets) != 1 {
		t.Fatal("removal not saved")
	}
	if err := library.Remove(5); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestLibraryKeepsStateOnSaveFailure(t *testing.T) {
	store := &failingStore{saveErr: errors.New("disk full")}
	library := NewLibrary(store)

	if err := library.Add(samplePresets[0]); err == nil {
		t.Fatal("expected save error")
	}
	if len(library.List()) != 0 {
		t.Fatal("failed add must not change the list")
	}
}

func TestLibraryStartsEmptyOnLoadFailure(t *testing.T) {
	library := NewLibrary(&failingStore{presets: samplePresets, loadErr: errors.New("permission denied")})
	if len(library.List()) != 0 {
		t.Fatal("expected empty library")
	}
}

func TestLibraryListIsACopy(t *testing.T) {
	library := NewLibrary(&failingStore{presets: append([]model.Preset(nil), samplePresets...)})
	list := library.List()
	list[0].Name = "changed"
	if library.List()[0].Name != "Tabata" {
		t.Fatal("List must not expose internal state")
	}
}
