package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Solution is a conceptual solution draft (stage 4 artifact).
type Solution struct{ ent.Schema }

// Fields of the Solution.
func (Solution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("title").NotEmpty(),
		field.Text("detail").Default(""),
		field.Text("key_features").Default(""),
		field.Text("implementation_steps").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Solution.
func (Solution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.From("project", Project.Type).Ref("solution").Unique(),
	}
}
