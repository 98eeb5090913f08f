package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Frame is a grouping container on the ideation board. It has the same
// shape and lifecycle as Idea and can additionally act as a connection
// endpoint for further ideas.
type Frame struct{ ent.Schema }

// Fields of the Frame.
func (Frame) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Text("content").Default(""),
		field.Float("x").Default(0),
		field.Float("y").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Frame.
func (Frame) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.To("project", Project.Type).Unique().Required(),
	}
}

// Indexes of the Frame.
func (Frame) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner", "project"),
	}
}
