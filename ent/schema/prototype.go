package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PrototypeFile is metadata for an uploaded prototype artifact. The bytes
// themselves live in external object storage; we only keep the pointer.
type PrototypeFile struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// Prototype is the stage-5 artifact aggregate. A prototype without files
// does not complete the stage.
type Prototype struct{ ent.Schema }

// Fields of the Prototype.
func (Prototype) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Text("description").Default(""),
		field.JSON("files", []PrototypeFile{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Prototype.
func (Prototype) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).Ref("prototype").Unique(),
	}
}
