// Package speech reads question text aloud. Synthesis is fire-and-forget:
// the worksheet never blocks on audio, and every failure degrades silently
// (first to a local TTS command, then to nothing).
package speech

import (
	"context"
	"time"

	"github.com/ngthanh/engmaster/internal/store"
)

// Synthesizer converts text to playable audio bytes.
type Synthesizer interface {
	// Synthesize returns WAV audio for the given English text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Player plays synthesized audio.
type Player interface {
	// Play blocks until the audio finishes or fails.
	Play(ctx context.Context, wav []byte) error
}

// FallbackSpeaker speaks text without going through synthesis,
// e.g. a local TTS command.
type FallbackSpeaker interface {
	Speak(ctx context.Context, text string) error
}

// Service queues speech requests and processes them on a single worker.
// At most one utterance plays at a time; requests that arrive while the
// queue is full are dropped.
type Service struct {
	synth    Synthesizer
	player   Player
	fallback FallbackSpeaker
	events   store.EventRepo
	pending  chan speechJob
	timeout  time.Duration
}

type speechJob struct {
	ctx  context.Context
	text string
}

// NewService creates a speech service and starts its worker.
// synth and fallback may each be nil; with both nil, Speak is a no-op.
// events may be nil to skip recording synthesis calls.
func NewService(synth Synthesizer, player Player, fallback FallbackSpeaker, events store.EventRepo) *Service {
	s := &Service{
		synth:    synth,
		player:   player,
		fallback: fallback,
		events:   events,
		pending:  make(chan speechJob, 8),
		timeout:  30 * time.Second,
	}
	go s.processLoop()
	return s
}

// Speak queues text for playback and returns immediately.
func (s *Service) Speak(ctx context.Context, text string) {
	if text == "" {
		return
	}
	select {
	case s.pending <- speechJob{ctx: ctx, text: text}:
	default:
		// Queue full. Speech is not critical, drop silently.
	}
}

// Close stops the worker once queued utterances drain. Speak must not
// be called after Close.
func (s *Service) Close() {
	close(s.pending)
}

func (s *Service) processLoop() {
	for job := range s.pending {
		s.process(job)
	}
}

func (s *Service) process(job speechJob) {
	ctx, cancel := context.WithTimeout(job.ctx, s.timeout)
	defer cancel()

	if s.synth != nil {
		start := time.Now()
		wav, err := s.synth.Synthesize(ctx, job.text)
		s.record(ctx, job.text, time.Since(start), err)
		if err == nil && s.player != nil {
			if perr := s.player.Play(ctx, wav); perr == nil {
				return
			}
		}
	}

	if s.fallback != nil {
		_ = s.fallback.Speak(ctx, job.text)
	}
}

// record appends a synthesis attempt to the event log when a repo is wired.
func (s *Service) record(ctx context.Context, text string, latency time.Duration, synthErr error) {
	if s.events == nil {
		return
	}
	data := store.LLMRequestEventData{
		Provider:    "gemini",
		Model:       ttsModel,
		Purpose:     "tts",
		LatencyMs:   latency.Milliseconds(),
		Success:     synthErr == nil,
		RequestBody: text,
	}
	if synthErr != nil {
		data.ErrorMessage = synthErr.Error()
	}
	_ = s.events.AppendLLMRequest(ctx, data)
}
