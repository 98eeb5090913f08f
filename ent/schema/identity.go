package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Identity is a login credential bound to a user. Only password identities
// exist today; the provider enum leaves room for SSO providers later.
type Identity struct{ ent.Schema }

// Fields of the Identity.
func (Identity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Enum("provider").Values("password"),
		field.String("identifier").NotEmpty().Unique(),
		field.String("secret_hash").Optional().Nillable().Sensitive(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Identity.
func (Identity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).Ref("identities").Unique().Required(),
	}
}
