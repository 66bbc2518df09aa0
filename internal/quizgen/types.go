package quizgen

// Question is a single practice question shown on the worksheet.
type Question struct {
	// ID uniquely identifies the question within the local history.
	// Format: "<topic>-<unix-millis>-<index>".
	ID string

	// Topic is the practice topic this question belongs to.
	Topic string

	// Text is the English question text, e.g. "What is your name?"
	Text string

	// Context is an optional Vietnamese hint shown below the question.
	// Empty when the model provides none.
	Context string

	// Difficulty is the model's self-assessed difficulty (1-5).
	Difficulty int
}

// DefaultBatchSize is the number of questions requested per worksheet.
const DefaultBatchSize = 5
