package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Idea is a sticky-note canvas node on the ideation board, scoped to
// (owner, project). Empty content is allowed: the client creates the node
// first and fills the text in afterwards.
type Idea struct{ ent.Schema }

// Fields of the Idea.
func (Idea) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Text("content").Default(""),
		field.Float("x").Default(0),
		field.Float("y").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Idea.
func (Idea) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.To("project", Project.Type).Unique().Required(),
	}
}

// Indexes of the Idea.
func (Idea) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner", "project"),
	}
}
