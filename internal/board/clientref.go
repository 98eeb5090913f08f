package board

import (
	"strings"

	"github.com/google/uuid"
)

// Client-side element handle prefixes. The canvas assigns DOM ids like
// "idea-<uuid>" once an element has been persisted; unsaved elements carry
// no id at all.
const (
	IdeaRefPrefix  = "idea-"
	FrameRefPrefix = "frame-"

	// ProblemStatementAnchor is the fixed handle of the board's root node.
	// Connections may target it directly.
	ProblemStatementAnchor = "problem-statement"
)

// ClientRef is the parsed form of an incoming element handle: either a brand
// new element, or a reference to an existing row by id.
type ClientRef struct {
	Existing bool
	ID       uuid.UUID
}

// ParseClientRef recovers an entity id from a prefixed client handle. Any
// handle that is empty, carries the wrong prefix, or holds a malformed uuid
// parses as a new element; the save workflow then falls back to insert.
func ParseClientRef(prefix, raw string) ClientRef {
	if raw == "" || !strings.HasPrefix(raw, prefix) {
		return ClientRef{}
	}
	id, err := uuid.Parse(strings.TrimPrefix(raw, prefix))
	if err != nil {
		return ClientRef{}
	}
	return ClientRef{Existing: true, ID: id}
}
