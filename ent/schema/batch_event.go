package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BatchEvent records the lifecycle of one worksheet batch.
// A "started" event is appended when questions load, and a "completed"
// event with the final average when the learner finishes the batch.
type BatchEvent struct {
	ent.Schema
}

func (BatchEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BatchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			NotEmpty().
			Comment("Unique batch identifier"),
		field.String("action").
			NotEmpty().
			Comment("started or completed"),
		field.String("topic").
			NotEmpty().
			Comment("Practice topic"),
		field.Int("questions_served").
			Default(0).
			Comment("Number of questions in the batch"),
		field.Float("average_score").
			Default(0).
			Comment("Mean score across graded answers, 0 while in progress"),
	}
}

func (BatchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("action"),
		index.Fields("topic"),
	}
}
