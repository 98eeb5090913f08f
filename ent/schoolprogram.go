// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/school"
	"sdg-innovation-api/ent/schoolprogram"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SchoolProgram is the model entity for the SchoolProgram schema.
type SchoolProgram struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// NumberOfStudents holds the value of the "number_of_students" field.
	NumberOfStudents int `json:"number_of_students,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SchoolProgramQuery when eager-loading is set.
	Edges                  SchoolProgramEdges `json:"edges"`
	school_program_school  *uuid.UUID
	school_program_program *uuid.UUID
	selectValues           sql.SelectValues
}

// SchoolProgramEdges holds the relations/edges for other nodes in the graph.
type SchoolProgramEdges struct {
	// School holds the value of the school edge.
	School *School `json:"school,omitempty"`
	// Program holds the value of the program edge.
	Program *Program `json:"program,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SchoolOrErr returns the School value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SchoolProgramEdges) SchoolOrErr() (*School, error) {
	if e.School != nil {
		return e.School, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: school.Label}
	}
	return nil, &NotLoadedError{edge: "school"}
}

// ProgramOrErr returns the Program value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SchoolProgramEdges) ProgramOrErr() (*Program, error) {
	if e.Program != nil {
		return e.Program, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: program.Label}
	}
	return nil, &NotLoadedError{edge: "program"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchoolProgram) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schoolprogram.FieldIsActive:
			values[i] = new(sql.NullBool)
		case schoolprogram.FieldNumberOfStudents:
			values[i] = new(sql.NullInt64)
		case schoolprogram.FieldCreatedAt, schoolprogram.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case schoolprogram.FieldID:
			values[i] = new(uuid.UUID)
		case schoolprogram.ForeignKeys[0]: // school_program_school
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case schoolprogram.ForeignKeys[1]: // school_program_program
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchoolProgram fields.
func (_m *SchoolProgram) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schoolprogram.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case schoolprogram.FieldNumberOfStudents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_students", values[i])
			} else if value.Valid {
				_m.NumberOfStudents = int(value.Int64)
			}
		case schoolprogram.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case schoolprogram.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case schoolprogram.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case schoolprogram.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field school_program_school", values[i])
			} else if value.Valid {
				_m.school_program_school = new(uuid.UUID)
				*_m.school_program_school = *value.S.(*uuid.UUID)
			}
		case schoolprogram.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field school_program_program", values[i])
			} else if value.Valid {
				_m.school_program_program = new(uuid.UUID)
				*_m.school_program_program = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchoolProgram.
// This includes values selected through modifiers, order, etc.
func (_m *SchoolProgram) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySchool queries the "school" edge of the SchoolProgram entity.
func (_m *SchoolProgram) QuerySchool() *SchoolQuery {
	return NewSchoolProgramClient(_m.config).QuerySchool(_m)
}

// QueryProgram queries the "program" edge of the SchoolProgram entity.
func (_m *SchoolProgram) QueryProgram() *ProgramQuery {
	return NewSchoolProgramClient(_m.config).QueryProgram(_m)
}

// Update returns a builder for updating this SchoolProgram.
// Note that you need to call SchoolProgram.Unwrap() before calling this method if this SchoolProgram
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchoolProgram) Update() *SchoolProgramUpdateOne {
	return NewSchoolProgramClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchoolProgram entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchoolProgram) Unwrap() *SchoolProgram {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchoolProgram is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchoolProgram) String() string {
	var builder strings.Builder
	builder.WriteString("SchoolProgram(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("number_of_students=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumberOfStudents))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchoolPrograms is a parsable slice of SchoolProgram.
type SchoolPrograms []*SchoolProgram
