package platform

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"hitit/internal/core/soundbank/soundbanktest"
)

// wavBytes builds a mono 16-bit PCM WAV of the given sample count.
func wavBytes(sampleRate, samples int) []byte {
	var buf bytes.Buffer
	dataSize := samples * 2
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

func TestSoundLength(t *testing.T) {
	if got := soundLength(wavBytes(1000, 500)); got != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", got)
	}
	if got := soundLength([]byte("not a wav")); got != fallbackCueLength {
		t.Fatalf("expected fallback length, got %s", got)
	}
}

func TestSilentMediaCompletes(t *testing.T) {
	media, err := newSilentLoader().Load(soundbanktest.Resource{ResourceName: "cue", Data: wavBytes(1000, 20)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	done := make(chan struct{})
	media.SetOnCompletion(func() { close(done) })

	if err := media.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !media.IsPlaying() {
		t.Fatal("expected playing")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("silent media never completed")
	}
	if media.IsPlaying() {
		t.Fatal("expected stopped after completion")
	}
}

func TestSilentMediaPauseHoldsCompletion(t *testing.T) {
	media, _ := newSilentLoader().Load(soundbanktest.Resource{ResourceName: "cue", Data: wavBytes(1000, 50)})
	completed := make(chan struct{}, 1)
	media.SetOnCompletion(func() { completed <- struct{}{} })

	media.Start()
	media.Pause()
	select {
	case <-completed:
		t.Fatal("paused media completed")
	case <-time.After(120 * time.Millisecond):
	}

	media.SeekToStart()
	media.Start()
	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("resumed media never completed")
	}
}

func TestSilentMediaReleaseSuppressesCompletion(t *testing.T) {
	media, _ := newSilentLoader().Load(soundbanktest.Resource{ResourceName: "cue", Data: wavBytes(1000, 20)})
	completed := make(chan struct{}, 1)
	media.SetOnCompletion(func() { completed <- struct{}{} })

	media.Start()
	if err := media.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	select {
	case <-completed:
		t.Fatal("released media completed")
	case <-time.After(80 * time.Millisecond):
	}
	if err := media.Start(); err == nil {
		t.Fatal("expected error starting released media")
	}
}

func TestNewAudioLoaderClampsVolume(t *testing.T) {
	if NewAudioLoader(3) == nil || NewAudioLoader(-1) == nil {
		t.Fatal("expected a loader")
	}
}
