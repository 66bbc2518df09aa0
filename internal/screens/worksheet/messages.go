package worksheet

import (
	"time"

	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/quizgen"
)

// batchReadyMsg is sent when a question batch has been fetched.
type batchReadyMsg struct {
	Questions []quizgen.Question
}

// tipReadyMsg is sent when the cultural note has been fetched.
type tipReadyMsg struct {
	Tip string
}

// gradedMsg is sent when the current answer has been graded.
type gradedMsg struct {
	Assessment grader.Assessment
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
