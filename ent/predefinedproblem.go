// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"sdg-innovation-api/ent/predefinedproblem"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// PredefinedProblem is the model entity for the PredefinedProblem schema.
type PredefinedProblem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SdgGoal holds the value of the "sdg_goal" field.
	SdgGoal string `json:"sdg_goal,omitempty"`
	// ProblemStatement holds the value of the "problem_statement" field.
	ProblemStatement string `json:"problem_statement,omitempty"`
	// Stakeholders holds the value of the "stakeholders" field.
	Stakeholders []string `json:"stakeholders,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PredefinedProblem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case predefinedproblem.FieldStakeholders:
			values[i] = new([]byte)
		case predefinedproblem.FieldSdgGoal, predefinedproblem.FieldProblemStatement:
			values[i] = new(sql.NullString)
		case predefinedproblem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case predefinedproblem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PredefinedProblem fields.
func (_m *PredefinedProblem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case predefinedproblem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case predefinedproblem.FieldSdgGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sdg_goal", values[i])
			} else if value.Valid {
				_m.SdgGoal = value.String
			}
		case predefinedproblem.FieldProblemStatement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_statement", values[i])
			} else if value.Valid {
				_m.ProblemStatement = value.String
			}
		case predefinedproblem.FieldStakeholders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stakeholders", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stakeholders); err != nil {
					return fmt.Errorf("unmarshal field stakeholders: %w", err)
				}
			}
		case predefinedproblem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PredefinedProblem.
// This includes values selected through modifiers, order, etc.
func (_m *PredefinedProblem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PredefinedProblem.
// Note that you need to call PredefinedProblem.Unwrap() before calling this method if this PredefinedProblem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PredefinedProblem) Update() *PredefinedProblemUpdateOne {
	return NewPredefinedProblemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PredefinedProblem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PredefinedProblem) Unwrap() *PredefinedProblem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PredefinedProblem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PredefinedProblem) String() string {
	var builder strings.Builder
	builder.WriteString("PredefinedProblem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sdg_goal=")
	builder.WriteString(_m.SdgGoal)
	builder.WriteString(", ")
	builder.WriteString("problem_statement=")
	builder.WriteString(_m.ProblemStatement)
	builder.WriteString(", ")
	builder.WriteString("stakeholders=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stakeholders))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PredefinedProblems is a parsable slice of PredefinedProblem.
type PredefinedProblems []*PredefinedProblem
