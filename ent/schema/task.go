package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Task is a gradable design exercise targeting one or more languages.
type Task struct {
	ent.Schema
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty(),
		field.Text("description"),
		field.Strings("languages").
			Comment("Target languages: subset of html, css, js, jsx"),
		field.JSON("optimal_solution", map[string]string{}).
			Comment("Authoritative reference source keyed by language"),
		field.String("reference_image_url").
			NotEmpty().
			Comment("URI of the target design image"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("progress", Progress.Type),
		edge.To("roadmap_tasks", RoadmapTask.Type),
	}
}
