package soundbank_test

import (
	"errors"
	"testing"

	"hitit/internal/core/soundbank"
	"hitit/internal/core/soundbank/soundbanktest"
)

func TestCuePlayerWithoutMedia(t *testing.T) {
	player := soundbank.NewCuePlayer(soundbank.SlotDone)
	if err := player.Start(false); !errors.Is(err, soundbank.ErrNoMedia) {
		t.Fatalf("expected ErrNoMedia, got %v", err)
	}
	if err := player.Pause(true); err != nil {
		t.Fatalf("pause without media should be a no-op, got %v", err)
	}
	if player.IsPlaying() {
		t.Fatal("empty player cannot be playing")
	}
}

func TestCuePlayerStopRewinds(t *testing.T) {
	player := soundbank.NewCuePlayer(soundbank.SlotWorkout)
	media := &soundbanktest.Media{Name: "workout"}
	if err := player.Replace(media); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if err := player.Start(false); err != nil {
		t.Fatalf("Start: %v", err)
	}
	media.Advance(4)
	if err := player.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if media.IsPlaying() || media.Position() != 0 {
		t.Fatalf("stop should pause and rewind, playing=%v position=%d", media.IsPlaying(), media.Position())
	}

	if err := player.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !player.IsPlaying() {
		t.Fatal("expected playback after resume")
	}
}

func TestCuePlayerReplaceDetachesOldMedia(t *testing.T) {
	player := soundbank.NewCuePlayer(soundbank.SlotAlarm)
	fired := 0
	player.SetOnDone(func() { fired++ })

	old := &soundbanktest.Media{Name: "old"}
	player.Replace(old)
	player.Replace(&soundbanktest.Media{Name: "new"})

	old.Finish()
	if fired != 0 {
		t.Fatal("released media must not trigger completion")
	}
	if !old.Released() {
		t.Fatal("old media not released")
	}
}
