package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Connection is a drawn link between two canvas elements. Source and target
// are opaque client-side element handles (e.g. "idea-<uuid>",
// "problem-statement"), not foreign keys: the client may draw a connection
// before the referenced node has a persisted id.
type Connection struct{ ent.Schema }

// Fields of the Connection.
func (Connection) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("source_id").NotEmpty(),
		field.String("target_id").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Connection.
func (Connection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.To("project", Project.Type).Unique().Required(),
	}
}

// Indexes of the Connection.
func (Connection) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner", "project"),
	}
}
