// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Connection is the predicate function for connection builders.
type Connection func(*sql.Selector)

// Frame is the predicate function for frame builders.
type Frame func(*sql.Selector)

// Idea is the predicate function for idea builders.
type Idea func(*sql.Selector)

// Identity is the predicate function for identity builders.
type Identity func(*sql.Selector)

// PredefinedProblem is the predicate function for predefinedproblem builders.
type PredefinedProblem func(*sql.Selector)

// ProblemStatement is the predicate function for problemstatement builders.
type ProblemStatement func(*sql.Selector)

// Program is the predicate function for program builders.
type Program func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Prototype is the predicate function for prototype builders.
type Prototype func(*sql.Selector)

// School is the predicate function for school builders.
type School func(*sql.Selector)

// SchoolProgram is the predicate function for schoolprogram builders.
type SchoolProgram func(*sql.Selector)

// Solution is the predicate function for solution builders.
type Solution func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
