// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/prototype"
	"sdg-innovation-api/ent/schema"
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// TeamInfo holds the value of the "team_info" field.
	TeamInfo *schema.TeamInfo `json:"team_info,omitempty"`
	// ProblemInfo holds the value of the "problem_info" field.
	ProblemInfo *schema.ProblemInfo `json:"problem_info,omitempty"`
	// IdeationSessionID holds the value of the "ideation_session_id" field.
	IdeationSessionID *uuid.UUID `json:"ideation_session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges         ProjectEdges `json:"edges"`
	project_owner *uuid.UUID
	selectValues  sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Solution holds the value of the solution edge.
	Solution *Solution `json:"solution,omitempty"`
	// Prototype holds the value of the prototype edge.
	Prototype *Prototype `json:"prototype,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// SolutionOrErr returns the Solution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) SolutionOrErr() (*Solution, error) {
	if e.Solution != nil {
		return e.Solution, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: solution.Label}
	}
	return nil, &NotLoadedError{edge: "solution"}
}

// PrototypeOrErr returns the Prototype value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) PrototypeOrErr() (*Prototype, error) {
	if e.Prototype != nil {
		return e.Prototype, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: prototype.Label}
	}
	return nil, &NotLoadedError{edge: "prototype"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldIdeationSessionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case project.FieldTeamInfo, project.FieldProblemInfo:
			values[i] = new([]byte)
		case project.FieldTitle, project.FieldDescription, project.FieldLocation, project.FieldNotes:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case project.FieldID:
			values[i] = new(uuid.UUID)
		case project.ForeignKeys[0]: // project_owner
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case project.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case project.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case project.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case project.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case project.FieldTeamInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field team_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TeamInfo); err != nil {
					return fmt.Errorf("unmarshal field team_info: %w", err)
				}
			}
		case project.FieldProblemInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field problem_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProblemInfo); err != nil {
					return fmt.Errorf("unmarshal field problem_info: %w", err)
				}
			}
		case project.FieldIdeationSessionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field ideation_session_id", values[i])
			} else if value.Valid {
				_m.IdeationSessionID = new(uuid.UUID)
				*_m.IdeationSessionID = *value.S.(*uuid.UUID)
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case project.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field project_owner", values[i])
			} else if value.Valid {
				_m.project_owner = new(uuid.UUID)
				*_m.project_owner = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Project entity.
func (_m *Project) QueryOwner() *UserQuery {
	return NewProjectClient(_m.config).QueryOwner(_m)
}

// QuerySolution queries the "solution" edge of the Project entity.
func (_m *Project) QuerySolution() *SolutionQuery {
	return NewProjectClient(_m.config).QuerySolution(_m)
}

// QueryPrototype queries the "prototype" edge of the Project entity.
func (_m *Project) QueryPrototype() *PrototypeQuery {
	return NewProjectClient(_m.config).QueryPrototype(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("team_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamInfo))
	builder.WriteString(", ")
	builder.WriteString("problem_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemInfo))
	builder.WriteString(", ")
	if v := _m.IdeationSessionID; v != nil {
		builder.WriteString("ideation_session_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
