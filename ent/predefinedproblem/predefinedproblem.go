// Code generated by ent, DO NOT EDIT.

package predefinedproblem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the predefinedproblem type in the database.
	Label = "predefined_problem"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSdgGoal holds the string denoting the sdg_goal field in the database.
	FieldSdgGoal = "sdg_goal"
	// FieldProblemStatement holds the string denoting the problem_statement field in the database.
	FieldProblemStatement = "problem_statement"
	// FieldStakeholders holds the string denoting the stakeholders field in the database.
	FieldStakeholders = "stakeholders"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the predefinedproblem in the database.
	Table = "predefined_problems"
)

// Columns holds all SQL columns for predefinedproblem fields.
var Columns = []string{
	FieldID,
	FieldSdgGoal,
	FieldProblemStatement,
	FieldStakeholders,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SdgGoalValidator is a validator for the "sdg_goal" field. It is called by the builders before save.
	SdgGoalValidator func(string) error
	// ProblemStatementValidator is a validator for the "problem_statement" field. It is called by the builders before save.
	ProblemStatementValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PredefinedProblem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySdgGoal orders the results by the sdg_goal field.
func BySdgGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSdgGoal, opts...).ToFunc()
}

// ByProblemStatement orders the results by the problem_statement field.
func ByProblemStatement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemStatement, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
