package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an English teacher creating practice questions for Vietnamese beginners.

Rules:
- Generate simple communication questions suitable for beginners.
- Ensure the questions are diverse (greeting, asking specific info, etc.).
- Each question must be answerable in one or two sentences of spoken English.
- Put any Vietnamese hint in the "context" field, never in the question text.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message for a batch request.
func buildUserMessage(topic string, count int, prior []string, maxPrior int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d beginner English communication questions about the topic: %q.\n", count, topic)

	b.WriteString("\nAlready asked recently:\n")
	b.WriteString(buildDedup(prior, maxPrior))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
