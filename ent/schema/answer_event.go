package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded answer within a worksheet batch.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			NotEmpty().
			Comment("Links to BatchEvent"),
		field.String("topic").
			NotEmpty().
			Comment("Practice topic, e.g. Greetings"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable question identifier"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("answer").
			NotEmpty().
			Comment("What the learner entered"),
		field.Int("score").
			Comment("Grade on the 0-10 scale"),
		field.String("correction").
			Default("").
			Comment("Corrected English if the answer had errors"),
		field.String("feedback").
			Default("").
			Comment("Vietnamese explanation of the grade"),
		field.String("praise").
			Default("").
			Comment("Short encouragement line"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("topic"),
		index.Fields("score"),
	}
}
