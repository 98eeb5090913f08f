package projects

import (
	"github.com/google/uuid"

	"sdg-innovation-api/internal/stage"
)

// CreateProjectRequest is the request body for creating a project
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// UpdateProjectRequest is the request body for updating a project
// swagger:model UpdateProjectRequest
type UpdateProjectRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// TeamInfoRequest is the Excite & Enrol form payload.
// swagger:model TeamInfoRequest
type TeamInfoRequest struct {
	SchoolName                  string    `json:"school_name"`
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

// CustomProblemPayload is a team-authored problem.
// swagger:model CustomProblemPayload
type CustomProblemPayload struct {
	WhoHasProblem   string `json:"who_has_problem"`
	WhatIsProblem   string `json:"what_is_problem"`
	ExpectedBenefit string `json:"expected_benefit,omitempty"`
}

// SelectProblemRequest is the Problem Discovery payload. Exactly one of
// PredefinedProblemID or CustomProblem must be set.
// swagger:model SelectProblemRequest
type SelectProblemRequest struct {
	PredefinedProblemID *uuid.UUID            `json:"predefined_problem_id,omitempty"`
	CustomProblem       *CustomProblemPayload `json:"custom_problem,omitempty"`
}

// ProjectSummary is one row of the stage summary listing.
// swagger:model ProjectSummary
type ProjectSummary struct {
	ProjectID   uuid.UUID    `json:"project_id"`
	Title       string       `json:"title"`
	StageInfo   stage.Result `json:"stage_info"`
	TotalPoints int          `json:"total_points"`
}
