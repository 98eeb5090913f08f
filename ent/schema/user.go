// Package schema defines Ent ORM schema types for the application.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct{ ent.Schema }

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("username").NotEmpty().Unique(),
		field.String("display_name").Optional(),
		field.String("email").Optional(),
		field.Enum("type").Values("student", "admin", "program_admin").Default("student"),
		field.Bool("is_active").Default(true),
		field.Time("last_login_at").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("identities", Identity.Type),
		edge.From("projects", Project.Type).Ref("owner"),
		edge.From("solutions", Solution.Type).Ref("owner"),
	}
}
