// Code generated by ent, DO NOT EDIT.

package predefinedproblem

import (
	"sdg-innovation-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLTE(FieldID, id))
}

// SdgGoal applies equality check predicate on the "sdg_goal" field. It's identical to SdgGoalEQ.
func SdgGoal(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldSdgGoal, v))
}

// ProblemStatement applies equality check predicate on the "problem_statement" field. It's identical to ProblemStatementEQ.
func ProblemStatement(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldProblemStatement, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldCreatedAt, v))
}

// SdgGoalEQ applies the EQ predicate on the "sdg_goal" field.
func SdgGoalEQ(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldSdgGoal, v))
}

// SdgGoalNEQ applies the NEQ predicate on the "sdg_goal" field.
func SdgGoalNEQ(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNEQ(FieldSdgGoal, v))
}

// SdgGoalIn applies the In predicate on the "sdg_goal" field.
func SdgGoalIn(vs ...string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldIn(FieldSdgGoal, vs...))
}

// SdgGoalNotIn applies the NotIn predicate on the "sdg_goal" field.
func SdgGoalNotIn(vs ...string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNotIn(FieldSdgGoal, vs...))
}

// SdgGoalGT applies the GT predicate on the "sdg_goal" field.
func SdgGoalGT(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGT(FieldSdgGoal, v))
}

// SdgGoalGTE applies the GTE predicate on the "sdg_goal" field.
func SdgGoalGTE(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGTE(FieldSdgGoal, v))
}

// SdgGoalLT applies the LT predicate on the "sdg_goal" field.
func SdgGoalLT(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLT(FieldSdgGoal, v))
}

// SdgGoalLTE applies the LTE predicate on the "sdg_goal" field.
func SdgGoalLTE(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLTE(FieldSdgGoal, v))
}

// SdgGoalContains applies the Contains predicate on the "sdg_goal" field.
func SdgGoalContains(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldContains(FieldSdgGoal, v))
}

// SdgGoalHasPrefix applies the HasPrefix predicate on the "sdg_goal" field.
func SdgGoalHasPrefix(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldHasPrefix(FieldSdgGoal, v))
}

// SdgGoalHasSuffix applies the HasSuffix predicate on the "sdg_goal" field.
func SdgGoalHasSuffix(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldHasSuffix(FieldSdgGoal, v))
}

// SdgGoalEqualFold applies the EqualFold predicate on the "sdg_goal" field.
func SdgGoalEqualFold(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEqualFold(FieldSdgGoal, v))
}

// SdgGoalContainsFold applies the ContainsFold predicate on the "sdg_goal" field.
func SdgGoalContainsFold(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldContainsFold(FieldSdgGoal, v))
}

// ProblemStatementEQ applies the EQ predicate on the "problem_statement" field.
func ProblemStatementEQ(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldProblemStatement, v))
}

// ProblemStatementNEQ applies the NEQ predicate on the "problem_statement" field.
func ProblemStatementNEQ(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNEQ(FieldProblemStatement, v))
}

// ProblemStatementIn applies the In predicate on the "problem_statement" field.
func ProblemStatementIn(vs ...string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldIn(FieldProblemStatement, vs...))
}

// ProblemStatementNotIn applies the NotIn predicate on the "problem_statement" field.
func ProblemStatementNotIn(vs ...string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNotIn(FieldProblemStatement, vs...))
}

// ProblemStatementGT applies the GT predicate on the "problem_statement" field.
func ProblemStatementGT(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGT(FieldProblemStatement, v))
}

// ProblemStatementGTE applies the GTE predicate on the "problem_statement" field.
func ProblemStatementGTE(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGTE(FieldProblemStatement, v))
}

// ProblemStatementLT applies the LT predicate on the "problem_statement" field.
func ProblemStatementLT(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLT(FieldProblemStatement, v))
}

// ProblemStatementLTE applies the LTE predicate on the "problem_statement" field.
func ProblemStatementLTE(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLTE(FieldProblemStatement, v))
}

// ProblemStatementContains applies the Contains predicate on the "problem_statement" field.
func ProblemStatementContains(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldContains(FieldProblemStatement, v))
}

// ProblemStatementHasPrefix applies the HasPrefix predicate on the "problem_statement" field.
func ProblemStatementHasPrefix(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldHasPrefix(FieldProblemStatement, v))
}

// ProblemStatementHasSuffix applies the HasSuffix predicate on the "problem_statement" field.
func ProblemStatementHasSuffix(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldHasSuffix(FieldProblemStatement, v))
}

// ProblemStatementEqualFold applies the EqualFold predicate on the "problem_statement" field.
func ProblemStatementEqualFold(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEqualFold(FieldProblemStatement, v))
}

// ProblemStatementContainsFold applies the ContainsFold predicate on the "problem_statement" field.
func ProblemStatementContainsFold(v string) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldContainsFold(FieldProblemStatement, v))
}

// StakeholdersIsNil applies the IsNil predicate on the "stakeholders" field.
func StakeholdersIsNil() predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldIsNull(FieldStakeholders))
}

// StakeholdersNotNil applies the NotNil predicate on the "stakeholders" field.
func StakeholdersNotNil() predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNotNull(FieldStakeholders))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PredefinedProblem) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PredefinedProblem) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PredefinedProblem) predicate.PredefinedProblem {
	return predicate.PredefinedProblem(sql.NotPredicates(p))
}
