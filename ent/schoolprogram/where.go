// Code generated by ent, DO NOT EDIT.

package schoolprogram

import (
	"sdg-innovation-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLTE(FieldID, id))
}

// NumberOfStudents applies equality check predicate on the "number_of_students" field. It's identical to NumberOfStudentsEQ.
func NumberOfStudents(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldNumberOfStudents, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldUpdatedAt, v))
}

// NumberOfStudentsEQ applies the EQ predicate on the "number_of_students" field.
func NumberOfStudentsEQ(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldNumberOfStudents, v))
}

// NumberOfStudentsNEQ applies the NEQ predicate on the "number_of_students" field.
func NumberOfStudentsNEQ(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNEQ(FieldNumberOfStudents, v))
}

// NumberOfStudentsIn applies the In predicate on the "number_of_students" field.
func NumberOfStudentsIn(vs ...int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldIn(FieldNumberOfStudents, vs...))
}

// NumberOfStudentsNotIn applies the NotIn predicate on the "number_of_students" field.
func NumberOfStudentsNotIn(vs ...int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNotIn(FieldNumberOfStudents, vs...))
}

// NumberOfStudentsGT applies the GT predicate on the "number_of_students" field.
func NumberOfStudentsGT(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGT(FieldNumberOfStudents, v))
}

// NumberOfStudentsGTE applies the GTE predicate on the "number_of_students" field.
func NumberOfStudentsGTE(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGTE(FieldNumberOfStudents, v))
}

// NumberOfStudentsLT applies the LT predicate on the "number_of_students" field.
func NumberOfStudentsLT(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLT(FieldNumberOfStudents, v))
}

// NumberOfStudentsLTE applies the LTE predicate on the "number_of_students" field.
func NumberOfStudentsLTE(v int) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLTE(FieldNumberOfStudents, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSchool applies the HasEdge predicate on the "school" edge.
func HasSchool() predicate.SchoolProgram {
	return predicate.SchoolProgram(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, SchoolTable, SchoolColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchoolWith applies the HasEdge predicate on the "school" edge with a given conditions (other predicates).
func HasSchoolWith(preds ...predicate.School) predicate.SchoolProgram {
	return predicate.SchoolProgram(func(s *sql.Selector) {
		step := newSchoolStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProgram applies the HasEdge predicate on the "program" edge.
func HasProgram() predicate.SchoolProgram {
	return predicate.SchoolProgram(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ProgramTable, ProgramColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProgramWith applies the HasEdge predicate on the "program" edge with a given conditions (other predicates).
func HasProgramWith(preds ...predicate.Program) predicate.SchoolProgram {
	return predicate.SchoolProgram(func(s *sql.Selector) {
		step := newProgramStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchoolProgram) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchoolProgram) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchoolProgram) predicate.SchoolProgram {
	return predicate.SchoolProgram(sql.NotPredicates(p))
}
