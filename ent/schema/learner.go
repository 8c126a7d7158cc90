package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Learner is a platform user who submits solutions to design tasks.
// TotalScore and CompletedTaskCount form the score ledger and are mutated
// only through the completion accounting protocol.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.Int("total_score").
			Default(0).
			NonNegative().
			Comment("Sum of the best passing score per completed task"),
		field.Int("completed_task_count").
			Default(0).
			NonNegative().
			Comment("Number of progress records with passing status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Learner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("progress", Progress.Type),
	}
}
