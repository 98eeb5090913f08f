// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"sdg-innovation-api/ent/frame"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Frame is the model entity for the Frame schema.
type Frame struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// X holds the value of the "x" field.
	X float64 `json:"x,omitempty"`
	// Y holds the value of the "y" field.
	Y float64 `json:"y,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FrameQuery when eager-loading is set.
	Edges         FrameEdges `json:"edges"`
	frame_owner   *uuid.UUID
	frame_project *uuid.UUID
	selectValues  sql.SelectValues
}

// FrameEdges holds the relations/edges for other nodes in the graph.
type FrameEdges struct {
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
func (e FrameEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FrameEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Frame) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case frame.FieldX, frame.FieldY:
			values[i] = new(sql.NullFloat64)
		case frame.FieldContent:
			values[i] = new(sql.NullString)
		case frame.FieldCreatedAt, frame.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case frame.FieldID:
			values[i] = new(uuid.UUID)
		case frame.ForeignKeys[0]: // frame_owner
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case frame.ForeignKeys[1]: // frame_project
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Frame fields.
func (_m *Frame) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case frame.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case frame.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case frame.FieldX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = value.Float64
			}
		case frame.FieldY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = value.Float64
			}
		case frame.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case frame.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case frame.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field frame_owner", values[i])
			} else if value.Valid {
				_m.frame_owner = new(uuid.UUID)
				*_m.frame_owner = *value.S.(*uuid.UUID)
			}
		case frame.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field frame_project", values[i])
			} else if value.Valid {
				_m.frame_project = new(uuid.UUID)
				*_m.frame_project = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Frame.
// This includes values selected through modifiers, order, etc.
func (_m *Frame) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Frame entity.
func (_m *Frame) QueryOwner() *UserQuery {
	return NewFrameClient(_m.config).QueryOwner(_m)
}

// QueryProject queries the "project" edge of the Frame entity.
func (_m *Frame) QueryProject() *ProjectQuery {
	return NewFrameClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Frame.
// Note that you need to call Frame.Unwrap() before calling this method if this Frame
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Frame) Update() *FrameUpdateOne {
	return NewFrameClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Frame entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Frame) Unwrap() *Frame {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Frame is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Frame) String() string {
	var builder strings.Builder
	builder.WriteString("Frame(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Frames is a parsable slice of Frame.
type Frames []*Frame
