package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoadmapTask links a task into a roadmap at a fixed ordinal position.
type RoadmapTask struct {
	ent.Schema
}

func (RoadmapTask) Fields() []ent.Field {
	return []ent.Field{
		field.Int("roadmap_id"),
		field.Int("task_id"),
		field.Int("ordinal").
			NonNegative().
			Comment("Position within the roadmap, ascending"),
	}
}

func (RoadmapTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("roadmap", Roadmap.Type).
			Ref("tasks").
			Unique().
			Required().
			Field("roadmap_id"),
		edge.From("task", Task.Type).
			Ref("roadmap_tasks").
			Unique().
			Required().
			Field("task_id"),
	}
}

func (RoadmapTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roadmap_id", "task_id").Unique(),
		index.Fields("roadmap_id", "ordinal").Unique(),
	}
}
