package speech

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
)

// playerCommands lists audio players to probe, in preference order.
var playerCommands = [][]string{
	{"afplay"},
	{"aplay", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"paplay"},
}

// CommandPlayer plays WAV audio by shelling out to a local player.
type CommandPlayer struct {
	cmd []string
}

// NewCommandPlayer probes for an installed audio player. The return
// type is the interface so "none found" is a nil interface that passes
// the service's nil checks, not a typed nil pointer that would slip
// through them and panic on first use.
func NewCommandPlayer() Player {
	for _, c := range playerCommands {
		if _, err := exec.LookPath(c[0]); err == nil {
			return &CommandPlayer{cmd: c}
		}
	}
	return nil
}

// Play writes the WAV to a temp file and runs the player on it.
func (p *CommandPlayer) Play(ctx context.Context, wav []byte) error {
	f, err := os.CreateTemp("", "engmaster-*.wav")
	if err != nil {
		return fmt.Errorf("create temp audio file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(wav); err != nil {
		f.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	f.Close()

	args := append(p.cmd[1:], f.Name())
	if err := exec.CommandContext(ctx, p.cmd[0], args...).Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}

// ttsCommands lists local text-to-speech commands to probe, in preference order.
var ttsCommands = [][]string{
	{"say"},
	{"espeak", "-v", "en"},
	{"espeak-ng", "-v", "en"},
}

// CommandSpeaker speaks text through a local TTS command when the
// Gemini voice is unavailable.
type CommandSpeaker struct {
	cmd []string
}

// NewCommandSpeaker probes for an installed TTS command. Returns a nil
// interface when none is found, same as NewCommandPlayer.
func NewCommandSpeaker() FallbackSpeaker {
	for _, c := range ttsCommands {
		if _, err := exec.LookPath(c[0]); err == nil {
			return &CommandSpeaker{cmd: c}
		}
	}
	return nil
}

// Speak runs the TTS command with the text as its final argument.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	args := append(s.cmd[1:], text)
	if err := exec.CommandContext(ctx, s.cmd[0], args...).Run(); err != nil {
		return fmt.Errorf("local TTS: %w", err)
	}
	return nil
}

// wrapWAV frames raw PCM samples with a RIFF/WAVE header so any
// standard player can handle them.
func wrapWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, 0, 44+len(pcm))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(pcm)))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16) // PCM chunk size
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // PCM format
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(blockAlign))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(bitsPerSample))
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pcm)))
	buf = append(buf, pcm...)
	return buf
}
