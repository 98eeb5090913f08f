package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SchoolProgram is the enrollment of a school into a program.
type SchoolProgram struct{ ent.Schema }

// Fields of the SchoolProgram.
func (SchoolProgram) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Int("number_of_students").Default(0),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the SchoolProgram.
func (SchoolProgram) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("school", School.Type).Unique().Required(),
		edge.To("program", Program.Type).Unique().Required(),
	}
}

// Indexes of the SchoolProgram.
func (SchoolProgram) Indexes() []ent.Index {
	return []ent.Index{
		// a school enrols into a program at most once
		index.Edges("school", "program").Unique(),
	}
}
