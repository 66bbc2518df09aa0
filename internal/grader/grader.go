package grader

import "context"

// Assessment is the grade for a single answer.
type Assessment struct {
	// Score is the grade on a fixed 0-10 scale.
	Score int `json:"score"`

	// Correction is the corrected English version of the answer.
	Correction string `json:"correction"`

	// Feedback explains the grade in Vietnamese.
	Feedback string `json:"feedback"`

	// Praise is a short English encouragement, e.g. "Good job!".
	Praise string `json:"praise"`
}

// Grader grades learner answers using an LLM provider.
type Grader interface {
	// Grade assesses the learner's answer to the given question.
	Grade(ctx context.Context, question, answer string) (*Assessment, error)
}

// Fallback returns the assessment served when grading fails. The score
// is zero so a broken grader never inflates the batch average.
func Fallback() *Assessment {
	return &Assessment{
		Score:      0,
		Correction: "Error grading answer.",
		Feedback:   "Hệ thống đang bận, vui lòng thử lại sau.",
		Praise:     "Keep trying!",
	}
}
