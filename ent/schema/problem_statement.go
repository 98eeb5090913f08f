package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProblemStatement is the root anchor node of an ideation board, seeded from
// the project description on first visit. The store does not dedupe writes;
// readers keep the newest statement per project.
type ProblemStatement struct{ ent.Schema }

// Fields of the ProblemStatement.
func (ProblemStatement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Text("content").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the ProblemStatement.
func (ProblemStatement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.To("project", Project.Type).Unique().Required(),
	}
}

// Indexes of the ProblemStatement.
func (ProblemStatement) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner", "project"),
	}
}
