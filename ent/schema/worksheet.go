package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Worksheet is a saved worksheet owned by one user. The full request and
// worksheet live in content; the other columns are denormalized for listing.
type Worksheet struct {
	ent.Schema
}

func (Worksheet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title"),
		field.String("grade"),
		field.String("subject"),
		field.String("difficulty"),
		field.JSON("topics", []string{}).
			Comment("Topic display names"),
		field.Int("question_count").
			Default(0),
		field.Bool("fallback").
			Default(false).
			Comment("Offline content served when generation failed"),
		field.Text("content"),
		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

func (Worksheet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", Attempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Worksheet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
