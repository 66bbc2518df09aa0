package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile stores the learner's identity and preferences between runs.
// There is one row per saved profile; the most recent one wins.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.Time("updated_at").
			Comment("When this profile was last saved"),
		field.JSON("data", map[string]any{}).
			Comment("Profile payload as JSON"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
