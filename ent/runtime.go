// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ngthanh/engmaster/ent/answerevent"
	"github.com/ngthanh/engmaster/ent/batchevent"
	"github.com/ngthanh/engmaster/ent/llmrequestevent"
	"github.com/ngthanh/engmaster/ent/schema"
	"github.com/ngthanh/engmaster/ent/syncevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescBatchID is the schema descriptor for batch_id field.
	answereventDescBatchID := answereventFields[0].Descriptor()
	// answerevent.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	answerevent.BatchIDValidator = answereventDescBatchID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[1].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescAnswer is the schema descriptor for answer field.
	answereventDescAnswer := answereventFields[4].Descriptor()
	// answerevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	answerevent.AnswerValidator = answereventDescAnswer.Validators[0].(func(string) error)
	// answereventDescCorrection is the schema descriptor for correction field.
	answereventDescCorrection := answereventFields[6].Descriptor()
	// answerevent.DefaultCorrection holds the default value on creation for the correction field.
	answerevent.DefaultCorrection = answereventDescCorrection.Default.(string)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[7].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	// answereventDescPraise is the schema descriptor for praise field.
	answereventDescPraise := answereventFields[8].Descriptor()
	// answerevent.DefaultPraise holds the default value on creation for the praise field.
	answerevent.DefaultPraise = answereventDescPraise.Default.(string)
	batcheventMixin := schema.BatchEvent{}.Mixin()
	batcheventMixinFields0 := batcheventMixin[0].Fields()
	_ = batcheventMixinFields0
	batcheventFields := schema.BatchEvent{}.Fields()
	_ = batcheventFields
	// batcheventDescTimestamp is the schema descriptor for timestamp field.
	batcheventDescTimestamp := batcheventMixinFields0[1].Descriptor()
	// batchevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	batchevent.DefaultTimestamp = batcheventDescTimestamp.Default.(func() time.Time)
	// batcheventDescBatchID is the schema descriptor for batch_id field.
	batcheventDescBatchID := batcheventFields[0].Descriptor()
	// batchevent.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	batchevent.BatchIDValidator = batcheventDescBatchID.Validators[0].(func(string) error)
	// batcheventDescAction is the schema descriptor for action field.
	batcheventDescAction := batcheventFields[1].Descriptor()
	// batchevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	batchevent.ActionValidator = batcheventDescAction.Validators[0].(func(string) error)
	// batcheventDescTopic is the schema descriptor for topic field.
	batcheventDescTopic := batcheventFields[2].Descriptor()
	// batchevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	batchevent.TopicValidator = batcheventDescTopic.Validators[0].(func(string) error)
	// batcheventDescQuestionsServed is the schema descriptor for questions_served field.
	batcheventDescQuestionsServed := batcheventFields[3].Descriptor()
	// batchevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	batchevent.DefaultQuestionsServed = batcheventDescQuestionsServed.Default.(int)
	// batcheventDescAverageScore is the schema descriptor for average_score field.
	batcheventDescAverageScore := batcheventFields[4].Descriptor()
	// batchevent.DefaultAverageScore holds the default value on creation for the average_score field.
	batchevent.DefaultAverageScore = batcheventDescAverageScore.Default.(float64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	synceventMixin := schema.SyncEvent{}.Mixin()
	synceventMixinFields0 := synceventMixin[0].Fields()
	_ = synceventMixinFields0
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventMixinFields0[1].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	// synceventDescQuestionID is the schema descriptor for question_id field.
	synceventDescQuestionID := synceventFields[0].Descriptor()
	// syncevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	syncevent.QuestionIDValidator = synceventDescQuestionID.Validators[0].(func(string) error)
	// synceventDescStudentID is the schema descriptor for student_id field.
	synceventDescStudentID := synceventFields[1].Descriptor()
	// syncevent.DefaultStudentID holds the default value on creation for the student_id field.
	syncevent.DefaultStudentID = synceventDescStudentID.Default.(string)
	// synceventDescSimulated is the schema descriptor for simulated field.
	synceventDescSimulated := synceventFields[3].Descriptor()
	// syncevent.DefaultSimulated holds the default value on creation for the simulated field.
	syncevent.DefaultSimulated = synceventDescSimulated.Default.(bool)
	// synceventDescErrorMessage is the schema descriptor for error_message field.
	synceventDescErrorMessage := synceventFields[4].Descriptor()
	// syncevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	syncevent.DefaultErrorMessage = synceventDescErrorMessage.Default.(string)
}
