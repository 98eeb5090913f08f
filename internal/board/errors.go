package board

import "errors"

var (
	// ErrNotFoundOrUnauthorized is returned when a mutation target does not
	// exist or belongs to another user. The two cases are deliberately
	// indistinguishable so callers cannot probe for other users' elements.
	ErrNotFoundOrUnauthorized = errors.New("board element not found")

	// ErrMissingProject rejects a board save whose statement payload carries
	// no project id. Nothing on the board can be scoped without one.
	ErrMissingProject = errors.New("problem statement payload has no project id")
)
