package board

import (
	"context"

	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/frame"
	"sdg-innovation-api/ent/idea"
	"sdg-innovation-api/ent/problemstatement"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
)

// NodeInput is one incoming idea or frame. Ref distinguishes new elements
// from references to already-persisted rows.
type NodeInput struct {
	Ref     ClientRef
	Content string
	X       float64
	Y       float64
}

// StatementInput is the single problem-statement payload of a save.
type StatementInput struct {
	Content   string
	ProjectID *uuid.UUID
}

// ConnectionInput is one incoming edge between two client handles.
type ConnectionInput struct {
	SourceID string
	TargetID string
}

// SaveInput is the whole-board payload.
type SaveInput struct {
	Ideas       []NodeInput
	Frames      []NodeInput
	Statement   StatementInput
	Connections []ConnectionInput
}

// SaveResult reports the outcome of a board save.
type SaveResult struct {
	TotalPoints      int
	StatementID      uuid.UUID
	CreatedStatement bool
}

// SaveBoard persists a whole board in one request. The sequence is
// best-effort and not atomic: the first failing step aborts the rest and
// already-written elements stay written.
//
// Per element class:
//   - ideas/frames upsert by client reference, falling back to insert when
//     the referenced row is gone or out of scope
//   - the problem statement is first-write-wins; the first creation also
//     stamps the owning project's ideation session back-reference
//   - connections dedupe by exact tuple, so replaying a save is safe
func (s *Store) SaveBoard(ctx context.Context, userID uuid.UUID, in SaveInput) (*SaveResult, error) {
	if in.Statement.ProjectID == nil {
		return nil, ErrMissingProject
	}
	projectID := *in.Statement.ProjectID

	for _, n := range in.Ideas {
		if err := s.upsertIdea(ctx, userID, projectID, n); err != nil {
			return nil, err
		}
	}
	for _, n := range in.Frames {
		if err := s.upsertFrame(ctx, userID, projectID, n); err != nil {
			return nil, err
		}
	}

	st, created, err := s.ensureStatement(ctx, userID, projectID, in.Statement.Content)
	if err != nil {
		return nil, err
	}

	for _, cn := range in.Connections {
		if cn.SourceID == "" || cn.TargetID == "" {
			continue
		}
		exists, err := s.HasConnection(ctx, userID, projectID, cn.SourceID, cn.TargetID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		if _, err := s.AddConnection(ctx, userID, projectID, cn.SourceID, cn.TargetID); err != nil {
			return nil, err
		}
	}

	points, err := s.TotalPoints(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	return &SaveResult{TotalPoints: points, StatementID: st.ID, CreatedStatement: created}, nil
}

// upsertIdea updates in place when the client reference resolves within the
// caller's scope, otherwise inserts as new. An update that matches zero rows
// is not an error: the row was deleted or never ours, so the element comes
// back as a fresh insert.
func (s *Store) upsertIdea(ctx context.Context, userID, projectID uuid.UUID, n NodeInput) error {
	if n.Ref.Existing {
		updated, err := s.client.Idea.Update().
			Where(
				idea.IDEQ(n.Ref.ID),
				idea.HasOwnerWith(user.IDEQ(userID)),
				idea.HasProjectWith(project.IDEQ(projectID)),
			).
			SetContent(n.Content).
			SetX(n.X).
			SetY(n.Y).
			Save(ctx)
		if err != nil {
			return err
		}
		if updated > 0 {
			return nil
		}
	}
	_, err := s.AddIdea(ctx, userID, projectID, n.Content, n.X, n.Y)
	return err
}

func (s *Store) upsertFrame(ctx context.Context, userID, projectID uuid.UUID, n NodeInput) error {
	if n.Ref.Existing {
		updated, err := s.client.Frame.Update().
			Where(
				frame.IDEQ(n.Ref.ID),
				frame.HasOwnerWith(user.IDEQ(userID)),
				frame.HasProjectWith(project.IDEQ(projectID)),
			).
			SetContent(n.Content).
			SetX(n.X).
			SetY(n.Y).
			Save(ctx)
		if err != nil {
			return err
		}
		if updated > 0 {
			return nil
		}
	}
	_, err := s.AddFrame(ctx, userID, projectID, n.Content, n.X, n.Y)
	return err
}

// ensureStatement returns the existing statement for the scope untouched, or
// creates one and stamps the project's ideation session id.
func (s *Store) ensureStatement(ctx context.Context, userID, projectID uuid.UUID, content string) (*ent.ProblemStatement, bool, error) {
	existing, err := s.client.ProblemStatement.Query().
		Where(
			problemstatement.HasOwnerWith(user.IDEQ(userID)),
			problemstatement.HasProjectWith(project.IDEQ(projectID)),
		).
		Order(ent.Desc(problemstatement.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}

	st, err := s.AddProblemStatement(ctx, userID, projectID, content)
	if err != nil {
		return nil, false, err
	}
	// Back-reference on first creation only. Scoped to the owner so a save
	// against someone else's project cannot touch their record.
	_, err = s.client.Project.Update().
		Where(project.IDEQ(projectID), project.HasOwnerWith(user.IDEQ(userID))).
		SetIdeationSessionID(st.ID).
		Save(ctx)
	if err != nil {
		return nil, false, err
	}
	return st, true, nil
}
