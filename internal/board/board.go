// Package board implements the ideation board: ideas, frames, connections
// and the problem statement anchor, all scoped to (user, project), plus the
// composite save workflow the canvas uses to persist a whole board at once.
package board

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/connection"
	"sdg-innovation-api/ent/frame"
	"sdg-innovation-api/ent/idea"
	"sdg-innovation-api/ent/problemstatement"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
)

// Store provides CRUD and scoped queries over the four board collections.
// Every operation takes the caller's user id; mutations on single elements
// are additionally guarded by ownership.
type Store struct {
	client *ent.Client
}

func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// AddIdea persists a new idea. No dedupe: identical content at identical
// coordinates is two ideas.
func (s *Store) AddIdea(ctx context.Context, userID, projectID uuid.UUID, content string, x, y float64) (*ent.Idea, error) {
	return s.client.Idea.Create().
		SetContent(content).
		SetX(x).
		SetY(y).
		SetOwnerID(userID).
		SetProjectID(projectID).
		Save(ctx)
}

// Ideas returns the caller's ideas for one project, oldest first. A nil
// project id matches nothing: board queries are never allowed to widen to
// "all ideas for the user".
func (s *Store) Ideas(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*ent.Idea, error) {
	if projectID == nil {
		return nil, nil
	}
	return s.client.Idea.Query().
		Where(idea.HasOwnerWith(user.IDEQ(userID)), idea.HasProjectWith(project.IDEQ(*projectID))).
		Order(ent.Asc(idea.FieldCreatedAt)).
		All(ctx)
}

// UpdateIdeaPosition moves an idea. Missing rows and rows owned by someone
// else fail identically with ErrNotFoundOrUnauthorized.
func (s *Store) UpdateIdeaPosition(ctx context.Context, userID, id uuid.UUID, x, y float64) (*ent.Idea, error) {
	n, err := s.client.Idea.Update().
		Where(idea.IDEQ(id), idea.HasOwnerWith(user.IDEQ(userID))).
		SetX(x).
		SetY(y).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFoundOrUnauthorized
	}
	return s.client.Idea.Get(ctx, id)
}

// DeleteIdea removes an owned idea and reports which project it belonged to.
func (s *Store) DeleteIdea(ctx context.Context, userID, id uuid.UUID) (uuid.UUID, error) {
	row, err := s.client.Idea.Query().
		Where(idea.IDEQ(id), idea.HasOwnerWith(user.IDEQ(userID))).
		WithProject().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.Nil, ErrNotFoundOrUnauthorized
		}
		return uuid.Nil, err
	}
	if err := s.client.Idea.DeleteOne(row).Exec(ctx); err != nil {
		return uuid.Nil, err
	}
	return row.Edges.Project.ID, nil
}

// AddFrame persists a new frame.
func (s *Store) AddFrame(ctx context.Context, userID, projectID uuid.UUID, content string, x, y float64) (*ent.Frame, error) {
	return s.client.Frame.Create().
		SetContent(content).
		SetX(x).
		SetY(y).
		SetOwnerID(userID).
		SetProjectID(projectID).
		Save(ctx)
}

// Frames mirrors Ideas for frames, including the nil-project guard.
func (s *Store) Frames(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*ent.Frame, error) {
	if projectID == nil {
		return nil, nil
	}
	return s.client.Frame.Query().
		Where(frame.HasOwnerWith(user.IDEQ(userID)), frame.HasProjectWith(project.IDEQ(*projectID))).
		Order(ent.Asc(frame.FieldCreatedAt)).
		All(ctx)
}

// UpdateFramePosition mirrors UpdateIdeaPosition for frames.
func (s *Store) UpdateFramePosition(ctx context.Context, userID, id uuid.UUID, x, y float64) (*ent.Frame, error) {
	n, err := s.client.Frame.Update().
		Where(frame.IDEQ(id), frame.HasOwnerWith(user.IDEQ(userID))).
		SetX(x).
		SetY(y).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFoundOrUnauthorized
	}
	return s.client.Frame.Get(ctx, id)
}

// DeleteFrame removes an owned frame and reports its project.
func (s *Store) DeleteFrame(ctx context.Context, userID, id uuid.UUID) (uuid.UUID, error) {
	row, err := s.client.Frame.Query().
		Where(frame.IDEQ(id), frame.HasOwnerWith(user.IDEQ(userID))).
		WithProject().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.Nil, ErrNotFoundOrUnauthorized
		}
		return uuid.Nil, err
	}
	if err := s.client.Frame.DeleteOne(row).Exec(ctx); err != nil {
		return uuid.Nil, err
	}
	return row.Edges.Project.ID, nil
}

// AddProblemStatement inserts unconditionally. First-write-wins is enforced
// by the save workflow, not here.
func (s *Store) AddProblemStatement(ctx context.Context, userID, projectID uuid.UUID, content string) (*ent.ProblemStatement, error) {
	return s.client.ProblemStatement.Create().
		SetContent(content).
		SetOwnerID(userID).
		SetProjectID(projectID).
		Save(ctx)
}

// ProblemStatements returns every statement the user has across all
// projects, newest first, with the project edge loaded.
func (s *Store) ProblemStatements(ctx context.Context, userID uuid.UUID) ([]*ent.ProblemStatement, error) {
	return s.client.ProblemStatement.Query().
		Where(problemstatement.HasOwnerWith(user.IDEQ(userID))).
		Order(ent.Desc(problemstatement.FieldCreatedAt)).
		WithProject().
		All(ctx)
}

// DedupeByProject keeps the first statement per project. Combined with the
// newest-first ordering of ProblemStatements this yields the latest
// statement for each project.
func DedupeByProject(rows []*ent.ProblemStatement) []*ent.ProblemStatement {
	return lo.UniqBy(rows, func(r *ent.ProblemStatement) uuid.UUID {
		if r.Edges.Project == nil {
			return uuid.Nil
		}
		return r.Edges.Project.ID
	})
}

// AddConnection inserts a connection unconditionally. The save workflow is
// responsible for tuple dedupe.
func (s *Store) AddConnection(ctx context.Context, userID, projectID uuid.UUID, sourceID, targetID string) (*ent.Connection, error) {
	return s.client.Connection.Create().
		SetSourceID(sourceID).
		SetTargetID(targetID).
		SetOwnerID(userID).
		SetProjectID(projectID).
		Save(ctx)
}

// Connections lists the caller's connections for one project.
func (s *Store) Connections(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*ent.Connection, error) {
	if projectID == nil {
		return nil, nil
	}
	return s.client.Connection.Query().
		Where(connection.HasOwnerWith(user.IDEQ(userID)), connection.HasProjectWith(project.IDEQ(*projectID))).
		Order(ent.Asc(connection.FieldCreatedAt)).
		All(ctx)
}

// HasConnection reports whether the exact (user, project, source, target)
// tuple is already stored.
func (s *Store) HasConnection(ctx context.Context, userID, projectID uuid.UUID, sourceID, targetID string) (bool, error) {
	return s.client.Connection.Query().
		Where(
			connection.HasOwnerWith(user.IDEQ(userID)),
			connection.HasProjectWith(project.IDEQ(projectID)),
			connection.SourceIDEQ(sourceID),
			connection.TargetIDEQ(targetID),
		).
		Exist(ctx)
}

// DeleteIdeasForProject bulk-deletes the caller's ideas in one project and
// returns how many rows went away.
func (s *Store) DeleteIdeasForProject(ctx context.Context, userID, projectID uuid.UUID) (int, error) {
	return s.client.Idea.Delete().
		Where(idea.HasOwnerWith(user.IDEQ(userID)), idea.HasProjectWith(project.IDEQ(projectID))).
		Exec(ctx)
}

// DeleteFramesForProject mirrors DeleteIdeasForProject for frames.
func (s *Store) DeleteFramesForProject(ctx context.Context, userID, projectID uuid.UUID) (int, error) {
	return s.client.Frame.Delete().
		Where(frame.HasOwnerWith(user.IDEQ(userID)), frame.HasProjectWith(project.IDEQ(projectID))).
		Exec(ctx)
}

// DeleteConnectionsForProject mirrors DeleteIdeasForProject for connections.
func (s *Store) DeleteConnectionsForProject(ctx context.Context, userID, projectID uuid.UUID) (int, error) {
	return s.client.Connection.Delete().
		Where(connection.HasOwnerWith(user.IDEQ(userID)), connection.HasProjectWith(project.IDEQ(projectID))).
		Exec(ctx)
}

// DeleteStatementsForProject removes the caller's statements in one project.
func (s *Store) DeleteStatementsForProject(ctx context.Context, userID, projectID uuid.UUID) (int, error) {
	return s.client.ProblemStatement.Delete().
		Where(problemstatement.HasOwnerWith(user.IDEQ(userID)), problemstatement.HasProjectWith(project.IDEQ(projectID))).
		Exec(ctx)
}

// TotalPoints is the gamification counter: idea count plus frame count for
// the scope. It is unrelated to stage progress.
func (s *Store) TotalPoints(ctx context.Context, userID, projectID uuid.UUID) (int, error) {
	ideas, err := s.client.Idea.Query().
		Where(idea.HasOwnerWith(user.IDEQ(userID)), idea.HasProjectWith(project.IDEQ(projectID))).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	frames, err := s.client.Frame.Query().
		Where(frame.HasOwnerWith(user.IDEQ(userID)), frame.HasProjectWith(project.IDEQ(projectID))).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return ideas + frames, nil
}

// IdeaCount counts all ideas on a project regardless of author. Stage
// classification uses the project-wide number.
func (s *Store) IdeaCount(ctx context.Context, projectID uuid.UUID) (int, error) {
	return s.client.Idea.Query().
		Where(idea.HasProjectWith(project.IDEQ(projectID))).
		Count(ctx)
}
