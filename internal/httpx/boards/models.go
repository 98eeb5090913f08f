package boards

import "github.com/google/uuid"

// ElementPayload is one idea or frame as the canvas sends it. ID carries the
// DOM handle ("idea-<uuid>" / "frame-<uuid>") for persisted elements and is
// empty for new ones.
// swagger:model ElementPayload
type ElementPayload struct {
	ID      string  `json:"id,omitempty"`
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// StatementPayload is the problem-statement part of a board save.
// swagger:model StatementPayload
type StatementPayload struct {
	Content   string     `json:"content"`
	ProjectID *uuid.UUID `json:"project_id"`
}

// ConnectionPayload is one drawn edge between two canvas handles.
// swagger:model ConnectionPayload
type ConnectionPayload struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// SaveBoardRequest is the whole-board save payload.
// swagger:model SaveBoardRequest
type SaveBoardRequest struct {
	Ideas            []ElementPayload    `json:"ideas"`
	Frames           []ElementPayload    `json:"frames"`
	ProblemStatement StatementPayload    `json:"problem_statement"`
	Connections      []ConnectionPayload `json:"connections"`
}

// CreateElementRequest creates a single idea or frame.
// swagger:model CreateElementRequest
type CreateElementRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	Content   string    `json:"content"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
}

// MoveElementRequest updates an element position.
// swagger:model MoveElementRequest
type MoveElementRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
