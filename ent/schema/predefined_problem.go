package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PredefinedProblem is a curated problem statement tied to an SDG goal.
type PredefinedProblem struct{ ent.Schema }

// Fields of the PredefinedProblem.
func (PredefinedProblem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("sdg_goal").NotEmpty(),
		field.Text("problem_statement").NotEmpty(),
		field.JSON("stakeholders", []string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes of the PredefinedProblem.
func (PredefinedProblem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sdg_goal"),
	}
}
