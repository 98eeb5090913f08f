// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Solution is the model entity for the Solution schema.
type Solution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// KeyFeatures holds the value of the "key_features" field.
	KeyFeatures string `json:"key_features,omitempty"`
	// ImplementationSteps holds the value of the "implementation_steps" field.
	ImplementationSteps string `json:"implementation_steps,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SolutionQuery when eager-loading is set.
	Edges            SolutionEdges `json:"edges"`
	project_solution *uuid.UUID
	solution_owner   *uuid.UUID
	selectValues     sql.SelectValues
}

// SolutionEdges holds the relations/edges for other nodes in the graph.
type SolutionEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Solution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solution.FieldTitle, solution.FieldDetail, solution.FieldKeyFeatures, solution.FieldImplementationSteps:
			values[i] = new(sql.NullString)
		case solution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case solution.FieldID:
			values[i] = new(uuid.UUID)
		case solution.ForeignKeys[0]: // project_solution
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case solution.ForeignKeys[1]: // solution_owner
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Solution fields.
func (_m *Solution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case solution.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case solution.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case solution.FieldKeyFeatures:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_features", values[i])
			} else if value.Valid {
				_m.KeyFeatures = value.String
			}
		case solution.FieldImplementationSteps:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field implementation_steps", values[i])
			} else if value.Valid {
				_m.ImplementationSteps = value.String
			}
		case solution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case solution.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field project_solution", values[i])
			} else if value.Valid {
				_m.project_solution = new(uuid.UUID)
				*_m.project_solution = *value.S.(*uuid.UUID)
			}
		case solution.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field solution_owner", values[i])
			} else if value.Valid {
				_m.solution_owner = new(uuid.UUID)
				*_m.solution_owner = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Solution.
// This includes values selected through modifiers, order, etc.
func (_m *Solution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Solution entity.
func (_m *Solution) QueryOwner() *UserQuery {
	return NewSolutionClient(_m.config).QueryOwner(_m)
}

// QueryProject queries the "project" edge of the Solution entity.
func (_m *Solution) QueryProject() *ProjectQuery {
	return NewSolutionClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Solution.
// Note that you need to call Solution.Unwrap() before calling this method if this Solution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Solution) Update() *SolutionUpdateOne {
	return NewSolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Solution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Solution) Unwrap() *Solution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Solution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Solution) String() string {
	var builder strings.Builder
	builder.WriteString("Solution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("key_features=")
	builder.WriteString(_m.KeyFeatures)
	builder.WriteString(", ")
	builder.WriteString("implementation_steps=")
	builder.WriteString(_m.ImplementationSteps)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Solutions is a parsable slice of Solution.
type Solutions []*Solution
