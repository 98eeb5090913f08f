// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"sdg-innovation-api/ent/problemstatement"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ProblemStatement is the model entity for the ProblemStatement schema.
type ProblemStatement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProblemStatementQuery when eager-loading is set.
	Edges                     ProblemStatementEdges `json:"edges"`
	problem_statement_owner   *uuid.UUID
	problem_statement_project *uuid.UUID
	selectValues              sql.SelectValues
}

// ProblemStatementEdges holds the relations/edges for other nodes in the graph.
type ProblemStatementEdges struct {
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
func (e ProblemStatementEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProblemStatementEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProblemStatement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problemstatement.FieldContent:
			values[i] = new(sql.NullString)
		case problemstatement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case problemstatement.FieldID:
			values[i] = new(uuid.UUID)
		case problemstatement.ForeignKeys[0]: // problem_statement_owner
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case problemstatement.ForeignKeys[1]: // problem_statement_project
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProblemStatement fields.
func (_m *ProblemStatement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problemstatement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case problemstatement.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case problemstatement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case problemstatement.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field problem_statement_owner", values[i])
			} else if value.Valid {
				_m.problem_statement_owner = new(uuid.UUID)
				*_m.problem_statement_owner = *value.S.(*uuid.UUID)
			}
		case problemstatement.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field problem_statement_project", values[i])
			} else if value.Valid {
				_m.problem_statement_project = new(uuid.UUID)
				*_m.problem_statement_project = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProblemStatement.
// This includes values selected through modifiers, order, etc.
func (_m *ProblemStatement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the ProblemStatement entity.
func (_m *ProblemStatement) QueryOwner() *UserQuery {
	return NewProblemStatementClient(_m.config).QueryOwner(_m)
}

// QueryProject queries the "project" edge of the ProblemStatement entity.
func (_m *ProblemStatement) QueryProject() *ProjectQuery {
	return NewProblemStatementClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ProblemStatement.
// Note that you need to call ProblemStatement.Unwrap() before calling this method if this ProblemStatement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProblemStatement) Update() *ProblemStatementUpdateOne {
	return NewProblemStatementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProblemStatement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProblemStatement) Unwrap() *ProblemStatement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProblemStatement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProblemStatement) String() string {
	var builder strings.Builder
	builder.WriteString("ProblemStatement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProblemStatements is a parsable slice of ProblemStatement.
type ProblemStatements []*ProblemStatement
