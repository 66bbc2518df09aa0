package speech

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ttsModel is the Gemini model used for speech synthesis.
const ttsModel = "gemini-2.5-flash-preview-tts"

// ttsVoice is a clear prebuilt voice suited to slow learner-paced English.
const ttsVoice = "Kore"

// GeminiSynthesizer implements Synthesizer using the Gemini TTS API.
// It shares the genai client with the question/grading provider.
type GeminiSynthesizer struct {
	client *genai.Client
}

// NewGeminiSynthesizer wraps an existing genai client.
func NewGeminiSynthesizer(client *genai.Client) *GeminiSynthesizer {
	return &GeminiSynthesizer{client: client}
}

// Synthesize returns WAV audio for the given English text.
func (g *GeminiSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: ttsVoice},
			},
		},
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: text}}, Role: genai.RoleUser},
	}

	result, err := g.client.Models.GenerateContent(ctx, ttsModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("TTS request: %w", err)
	}

	pcm := extractAudio(result)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("TTS response contained no audio")
	}

	// Gemini TTS returns raw 16-bit mono PCM at 24 kHz.
	return wrapWAV(pcm, 24000, 1, 16), nil
}

func extractAudio(result *genai.GenerateContentResponse) []byte {
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
