// Package soundbanktest provides in-memory soundbank collaborators for tests.
package soundbanktest

import (
	"errors"
	"fmt"
	"sync"

	"hitit/internal/core/soundbank"
)

// ErrMissing is returned by Resolver for keys listed in Missing.
var ErrMissing = errors.New("resource missing")

// Resource is a named byte slice.
type Resource struct {
	ResourceName string
	Data         []byte
}

func (resource Resource) Name() string    { return resource.ResourceName }
func (resource Resource) Content() []byte { return resource.Data }

// Resolver resolves every key to "<slot>/<key>", falling back to "<slot>/Default"
// for keys outside Known when Known is set.
type Resolver struct {
	Known   map[string]bool
	Missing map[string]bool
}

// Resolve implements soundbank.Resolver.
func (resolver Resolver) Resolve(key string, slot soundbank.Slot) (soundbank.Resource, error) {
	if resolver.Missing[key] {
		return nil, fmt.Errorf("%s/%s: %w", slot, key, ErrMissing)
	}
	if resolver.Known != nil && !resolver.Known[key] {
		key = "Default"
	}
	return Resource{ResourceName: fmt.Sprintf("%s/%s", slot, key)}, nil
}

// Loader hands out Media and remembers them by resource name.
type Loader struct {
	mu     sync.Mutex
	Fail   map[string]error
	loaded map[string][]*Media
}

// Load implements soundbank.Loader.
func (loader *Loader) Load(resource soundbank.Resource) (soundbank.Media, error) {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	if err := loader.Fail[resource.Name()]; err != nil {
		return nil, err
	}
	if loader.loaded == nil {
		loader.loaded = make(map[string][]*Media)
	}
	media := &Media{Name: resource.Name()}
	loader.loaded[resource.Name()] = append(loader.loaded[resource.Name()], media)
	return media, nil
}

// Latest returns the most recently loaded media for name.
func (loader *Loader) Latest(name string) *Media {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	all := loader.loaded[name]
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// Count returns how many times name was loaded.
func (loader *Loader) Count(name string) int {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	return len(loader.loaded[name])
}

// Media records playback calls. Finish simulates the sound reaching its end.
type Media struct {
	mu         sync.Mutex
	Name       string
	playing    bool
	position   int
	starts     int
	seeks      int
	released   bool
	StartErr   error
	completion func()
}

func (media *Media) Start() error {
	media.mu.Lock()
	defer media.mu.Unlock()
	if media.released {
		return errors.New("media released")
	}
	if media.StartErr != nil {
		return media.StartErr
	}
	media.playing = true
	media.starts++
	return nil
}

func (media *Media) Pause() error {
	media.mu.Lock()
	media.playing = false
	media.mu.Unlock()
	return nil
}

func (media *Media) SeekToStart() error {
	media.mu.Lock()
	media.position = 0
	media.seeks++
	media.mu.Unlock()
	return nil
}

func (media *Media) IsPlaying() bool {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.playing
}

func (media *Media) SetOnCompletion(handler func()) {
	media.mu.Lock()
	media.completion = handler
	media.mu.Unlock()
}

func (media *Media) Release() error {
	media.mu.Lock()
	media.released = true
	media.playing = false
	media.mu.Unlock()
	return nil
}

// Advance moves the playback position forward while playing.
func (media *Media) Advance(steps int) {
	media.mu.Lock()
	if media.playing {
		media.position += steps
	}
	media.mu.Unlock()
}

// Finish stops playback and calls the completion handler.
func (media *Media) Finish() {
	media.mu.Lock()
	media.playing = false
	handler := media.completion
	media.mu.Unlock()
	if handler != nil {
		handler()
	}
}

// Position returns the simulated playback position.
func (media *Media) Position() int {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.position
}

// Starts returns how many times Start succeeded.
func (media *Media) Starts() int {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.starts
}

// Seeks returns how many times SeekToStart was called.
func (media *Media) Seeks() int {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.seeks
}

// Released reports whether Release was called.
func (media *Media) Released() bool {
	media.mu.Lock()
	defer media.mu.Unlock()
	return media.released
}
