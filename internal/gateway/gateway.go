// Package gateway fronts the AI services with a never-fail contract.
//
// The worksheet calls the gateway for questions, grades, cultural notes,
// and speech, and is never handed an error: every failure is absorbed
// here and replaced with the fixed fallback value for that operation.
// The underlying failures are not lost; the logging provider records
// each LLM call, success or not, in the event store.
package gateway

import (
	"context"

	"github.com/ngthanh/engmaster/internal/culture"
	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/quizgen"
)

// Speaker is the fire-and-forget voice output.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

// Gateway bundles the AI-backed operations behind fallback semantics.
type Gateway struct {
	questions quizgen.Generator
	grader    grader.Grader
	culture   culture.Fetcher
	speaker   Speaker
}

// New assembles a gateway. Any dependency may be nil; its operation
// then resolves straight to the fallback (or, for speech, a no-op),
// which is how the app runs without a configured provider.
func New(questions quizgen.Generator, g grader.Grader, c culture.Fetcher, speaker Speaker) *Gateway {
	return &Gateway{
		questions: questions,
		grader:    g,
		culture:   c,
		speaker:   speaker,
	}
}

// FetchQuestions returns a batch for the topic. On any generation
// failure it returns the fixed fallback batch, so the result is always
// non-empty.
func (gw *Gateway) FetchQuestions(ctx context.Context, topic string, count int, prior []string) []quizgen.Question {
	if gw.questions == nil {
		return quizgen.FallbackQuestions(topic)
	}
	questions, err := gw.questions.GenerateBatch(ctx, topic, count, prior)
	if err != nil || len(questions) == 0 {
		return quizgen.FallbackQuestions(topic)
	}
	return questions
}

// GradeAnswer returns an assessment for the answer. On any grading
// failure it returns the fixed zero-score fallback.
func (gw *Gateway) GradeAnswer(ctx context.Context, questionText, answerText string) grader.Assessment {
	if gw.grader == nil {
		return *grader.Fallback()
	}
	a, err := gw.grader.Grade(ctx, questionText, answerText)
	if err != nil || a == nil {
		return *grader.Fallback()
	}
	return *a
}

// FetchCulturalNote returns a short tip for the topic, or the fixed
// generic line when the fetch fails.
func (gw *Gateway) FetchCulturalNote(ctx context.Context, topic string) string {
	if gw.culture == nil {
		return culture.ErrorTip
	}
	tip, err := gw.culture.FetchTip(ctx, topic)
	if err != nil || tip == "" {
		return culture.ErrorTip
	}
	return tip
}

// Speak queues text for voice output and returns immediately.
func (gw *Gateway) Speak(ctx context.Context, text string) {
	if gw.speaker == nil {
		return
	}
	gw.speaker.Speak(ctx, text)
}
