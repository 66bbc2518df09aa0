package speech

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSynth struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("wav"), nil
}

func (f *fakeSynth) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakePlayer struct {
	mu     sync.Mutex
	played int
	err    error
	done   chan struct{}
}

func (f *fakePlayer) Play(_ context.Context, _ []byte) error {
	f.mu.Lock()
	f.played++
	f.mu.Unlock()
	if f.done != nil {
		close(f.done)
	}
	return f.err
}

type fakeFallback struct {
	mu    sync.Mutex
	calls int
	done  chan struct{}
}

func (f *fakeFallback) Speak(_ context.Context, _ string) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.done != nil {
		close(f.done)
	}
	return nil
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for speech worker")
	}
}

func TestSpeak_SynthesizesAndPlays(t *testing.T) {
	synth := &fakeSynth{}
	player := &fakePlayer{done: make(chan struct{})}
	s := NewService(synth, player, nil, nil)

	s.Speak(context.Background(), "Hello! How are you today?")
	waitFor(t, player.done)

	if synth.callCount() != 1 {
		t.Errorf("synth calls = %d, want 1", synth.callCount())
	}
}

func TestSpeak_SynthFailureUsesFallback(t *testing.T) {
	synth := &fakeSynth{err: errors.New("quota")}
	fallback := &fakeFallback{done: make(chan struct{})}
	s := NewService(synth, &fakePlayer{}, fallback, nil)

	s.Speak(context.Background(), "What is your name?")
	waitFor(t, fallback.done)
}

func TestSpeak_PlayerFailureUsesFallback(t *testing.T) {
	synth := &fakeSynth{}
	fallback := &fakeFallback{done: make(chan struct{})}
	s := NewService(synth, &fakePlayer{err: errors.New("no device")}, fallback, nil)

	s.Speak(context.Background(), "Where are you from?")
	waitFor(t, fallback.done)
}

func TestSpeak_EmptyTextIgnored(t *testing.T) {
	synth := &fakeSynth{}
	s := NewService(synth, &fakePlayer{}, nil, nil)

	s.Speak(context.Background(), "")
	time.Sleep(50 * time.Millisecond)

	if synth.callCount() != 0 {
		t.Errorf("synth calls = %d, want 0", synth.callCount())
	}
}

func TestWrapWAV_Header(t *testing.T) {
	pcm := make([]byte, 480)
	wav := wrapWAV(pcm, 24000, 1, 16)

	if len(wav) != 44+len(pcm) {
		t.Fatalf("wav length = %d, want %d", len(wav), 44+len(pcm))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if rate := binary.LittleEndian.Uint32(wav[24:28]); rate != 24000 {
		t.Errorf("sample rate = %d, want 24000", rate)
	}
	if size := binary.LittleEndian.Uint32(wav[40:44]); size != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", size, len(pcm))
	}
}

func TestCommandConstructors_NoBinariesYieldNilInterfaces(t *testing.T) {
	// An empty PATH means no player or TTS binary can be found. The
	// constructors must then return nil interfaces, so the worker's
	// nil checks skip them instead of calling through a nil receiver.
	t.Setenv("PATH", t.TempDir())

	player := NewCommandPlayer()
	if player != nil {
		t.Fatalf("NewCommandPlayer() = %v, want nil interface", player)
	}
	speaker := NewCommandSpeaker()
	if speaker != nil {
		t.Fatalf("NewCommandSpeaker() = %v, want nil interface", speaker)
	}

	synth := &fakeSynth{err: errors.New("quota")}
	s := NewService(synth, player, speaker, nil)
	s.Speak(context.Background(), "Nice to meet you.")
	s.Close()

	// Drain completes without panicking even though every stage is
	// unavailable.
	deadline := time.Now().Add(2 * time.Second)
	for synth.callCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for speech worker")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
