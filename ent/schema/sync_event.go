package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records one attempt to push a graded answer to the
// teacher's progress sheet, successful or not.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Question the synced answer belonged to"),
		field.String("student_id").
			Default("").
			Comment("Learner the row was recorded for"),
		field.Bool("success").
			Comment("Whether the push reached the sheet"),
		field.Bool("simulated").
			Default(false).
			Comment("True when no endpoint is configured and the push was skipped"),
		field.String("error_message").
			Default("").
			Comment("Error message if the push failed"),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("success"),
	}
}
