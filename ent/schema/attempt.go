package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one graded practice run of a worksheet.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Float("score").
			Default(0).
			Comment("Percentage 0-100"),
		field.Float("earned_points").
			Default(0),
		field.Float("total_points").
			Default(0),
		field.Int("answered").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.Int64("time_spent_secs").
			Default(0),
		field.Bool("completed").
			Default(false),
		field.JSON("answers", map[string]string{}),
		field.Text("result").
			Comment("Serialized grading result"),
		field.Time("created_at").
			Immutable(),
		field.String("worksheet_id").
			Immutable(),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("worksheet", Worksheet.Type).
			Ref("attempts").
			Field("worksheet_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("worksheet_id"),
	}
}
