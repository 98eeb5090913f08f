package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TeamInfo is the Excite & Enrol form data captured on a project.
type TeamInfo struct {
	SchoolName                  string    `json:"school_name,omitempty"`
	ClassName                   string    `json:"class_name,omitempty"`
	GroupMembers                string    `json:"group_members,omitempty"`
	GroupName                   string    `json:"group_name,omitempty"`
	EnrolledProgramID           uuid.UUID `json:"enrolled_program_id,omitempty"`
	SdgGoal                     string    `json:"sdg_goal,omitempty"`
	InnovationProcessSteps      string    `json:"innovation_process_steps,omitempty"`
	ProblemDiscoveryMethod      string    `json:"problem_discovery_method,omitempty"`
	CommunityChallenges         string    `json:"community_challenges,omitempty"`
	FiveYearProblem             string    `json:"five_year_problem,omitempty"`
	TechnologyApplicationReason string    `json:"technology_application_reason,omitempty"`
}

// CustomProblem is a team-authored problem statement.
type CustomProblem struct {
	WhoHasProblem   string `json:"who_has_problem,omitempty"`
	WhatIsProblem   string `json:"what_is_problem,omitempty"`
	ExpectedBenefit string `json:"expected_benefit,omitempty"`
}

// ProblemInfo is the Problem Discovery selection on a project. Exactly one of
// SelectedPredefinedProblemID or CustomProblem is expected to be set.
type ProblemInfo struct {
	SelectedPredefinedProblemID *uuid.UUID     `json:"selected_predefined_problem_id,omitempty"`
	RecommendedStakeholders     []string       `json:"recommended_stakeholders,omitempty"`
	ProblemType                 string         `json:"problem_type,omitempty"` // predefined | custom
	CustomProblem               *CustomProblem `json:"custom_problem,omitempty"`
}

// Project is the top-level unit a team works on through the five stages.
type Project struct{ ent.Schema }

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("title").Default("New Project"),
		field.String("description").Default(""),
		field.String("location").Optional(),
		field.String("notes").Default(""),
		field.JSON("team_info", &TeamInfo{}).Optional(),
		field.JSON("problem_info", &ProblemInfo{}).Optional(),
		// back-reference to the board's root problem statement, set once by
		// the board save workflow on first statement creation
		field.UUID("ideation_session_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owner", User.Type).Unique().Required(),
		edge.To("solution", Solution.Type).Unique(),
		edge.To("prototype", Prototype.Type).Unique(),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner"),
		index.Fields("updated_at"),
	}
}
