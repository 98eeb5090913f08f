// Code generated by ent, DO NOT EDIT.

package solution

import (
	"sdg-innovation-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldTitle, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDetail, v))
}

// KeyFeatures applies equality check predicate on the "key_features" field. It's identical to KeyFeaturesEQ.
func KeyFeatures(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldKeyFeatures, v))
}

// ImplementationSteps applies equality check predicate on the "implementation_steps" field. It's identical to ImplementationStepsEQ.
func ImplementationSteps(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldImplementationSteps, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldTitle, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldDetail, v))
}

// KeyFeaturesEQ applies the EQ predicate on the "key_features" field.
func KeyFeaturesEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldKeyFeatures, v))
}

// KeyFeaturesNEQ applies the NEQ predicate on the "key_features" field.
func KeyFeaturesNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldKeyFeatures, v))
}

// KeyFeaturesIn applies the In predicate on the "key_features" field.
func KeyFeaturesIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldKeyFeatures, vs...))
}

// KeyFeaturesNotIn applies the NotIn predicate on the "key_features" field.
func KeyFeaturesNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldKeyFeatures, vs...))
}

// KeyFeaturesGT applies the GT predicate on the "key_features" field.
func KeyFeaturesGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldKeyFeatures, v))
}

// KeyFeaturesGTE applies the GTE predicate on the "key_features" field.
func KeyFeaturesGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldKeyFeatures, v))
}

// KeyFeaturesLT applies the LT predicate on the "key_features" field.
func KeyFeaturesLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldKeyFeatures, v))
}

// KeyFeaturesLTE applies the LTE predicate on the "key_features" field.
func KeyFeaturesLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldKeyFeatures, v))
}

// KeyFeaturesContains applies the Contains predicate on the "key_features" field.
func KeyFeaturesContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldKeyFeatures, v))
}

// KeyFeaturesHasPrefix applies the HasPrefix predicate on the "key_features" field.
func KeyFeaturesHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldKeyFeatures, v))
}

// KeyFeaturesHasSuffix applies the HasSuffix predicate on the "key_features" field.
func KeyFeaturesHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldKeyFeatures, v))
}

// KeyFeaturesEqualFold applies the EqualFold predicate on the "key_features" field.
func KeyFeaturesEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldKeyFeatures, v))
}

// KeyFeaturesContainsFold applies the ContainsFold predicate on the "key_features" field.
func KeyFeaturesContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldKeyFeatures, v))
}

// ImplementationStepsEQ applies the EQ predicate on the "implementation_steps" field.
func ImplementationStepsEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldImplementationSteps, v))
}

// ImplementationStepsNEQ applies the NEQ predicate on the "implementation_steps" field.
func ImplementationStepsNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldImplementationSteps, v))
}

// ImplementationStepsIn applies the In predicate on the "implementation_steps" field.
func ImplementationStepsIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldImplementationSteps, vs...))
}

// ImplementationStepsNotIn applies the NotIn predicate on the "implementation_steps" field.
func ImplementationStepsNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldImplementationSteps, vs...))
}

// ImplementationStepsGT applies the GT predicate on the "implementation_steps" field.
func ImplementationStepsGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldImplementationSteps, v))
}

// ImplementationStepsGTE applies the GTE predicate on the "implementation_steps" field.
func ImplementationStepsGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldImplementationSteps, v))
}

// ImplementationStepsLT applies the LT predicate on the "implementation_steps" field.
func ImplementationStepsLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldImplementationSteps, v))
}

// ImplementationStepsLTE applies the LTE predicate on the "implementation_steps" field.
func ImplementationStepsLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldImplementationSteps, v))
}

// ImplementationStepsContains applies the Contains predicate on the "implementation_steps" field.
func ImplementationStepsContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldImplementationSteps, v))
}

// ImplementationStepsHasPrefix applies the HasPrefix predicate on the "implementation_steps" field.
func ImplementationStepsHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldImplementationSteps, v))
}

// ImplementationStepsHasSuffix applies the HasSuffix predicate on the "implementation_steps" field.
func ImplementationStepsHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldImplementationSteps, v))
}

// ImplementationStepsEqualFold applies the EqualFold predicate on the "implementation_steps" field.
func ImplementationStepsEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldImplementationSteps, v))
}

// ImplementationStepsContainsFold applies the ContainsFold predicate on the "implementation_steps" field.
func ImplementationStepsContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldImplementationSteps, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.NotPredicates(p))
}
