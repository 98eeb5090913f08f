package projects

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
	"sdg-innovation-api/internal/board"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/httpx/mw"
	"sdg-innovation-api/internal/stage"
)

// snapshotOf maps a loaded project row onto the classifier input. The
// Solution and Prototype edges must already be loaded; an eager-loaded
// prototype is a resolved reference.
func snapshotOf(proj *ent.Project) *stage.Snapshot {
	if proj == nil {
		return nil
	}
	s := &stage.Snapshot{HasSolution: proj.Edges.Solution != nil}
	if ti := proj.TeamInfo; ti != nil {
		s.TeamInfo = &stage.TeamInfo{SchoolName: ti.SchoolName}
	}
	if pi := proj.ProblemInfo; pi != nil {
		hasCustom := pi.CustomProblem != nil &&
			pi.CustomProblem.WhoHasProblem != "" &&
			pi.CustomProblem.WhatIsProblem != ""
		s.ProblemInfo = &stage.ProblemInfo{
			HasSelectedPredefinedProblem: pi.SelectedPredefinedProblemID != nil,
			ProblemType:                  pi.ProblemType,
			HasCustomProblem:             hasCustom,
		}
	}
	if pt := proj.Edges.Prototype; pt != nil {
		s.Prototype = &stage.PrototypeRef{Resolved: true, FileCount: len(pt.Files)}
	}
	return s
}

func summarize(ctx context.Context, store *board.Store, userID uuid.UUID, proj *ent.Project) (ProjectSummary, error) {
	ideaCount, err := store.IdeaCount(ctx, proj.ID)
	if err != nil {
		return ProjectSummary{}, err
	}
	points, err := store.TotalPoints(ctx, userID, proj.ID)
	if err != nil {
		return ProjectSummary{}, err
	}
	return ProjectSummary{
		ProjectID:   proj.ID,
		Title:       proj.Title,
		StageInfo:   stage.Classify(snapshotOf(proj), ideaCount),
		TotalPoints: points,
	}, nil
}

// SummaryHandler returns stage info and points for every project the caller
// owns, newest first.
//
//	@Summary      Stage summary
//	@Description  Classifier output and points per owned project
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/projects/summary [get]
func SummaryHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		rows, err := client.Project.Query().
			Where(project.HasOwnerWith(user.IDEQ(uid))).
			WithSolution().
			WithPrototype().
			Order(ent.Desc(project.FieldUpdatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query projects failed", err.Error())
		}

		out := make([]ProjectSummary, 0, len(rows))
		for _, proj := range rows {
			sum, err := summarize(ctx, store, uid, proj)
			if err != nil {
				return kit.InternalError("summarize project failed", err.Error())
			}
			out = append(out, sum)
		}
		return kit.OK(c, out)
	}
}

// GetSummaryHandler returns stage info for a single owned project.
//
//	@Summary      Stage summary (single project)
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Project UUID"
//	@Success      200  {object}  projects.ProjectSummary
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/summary [get]
func GetSummaryHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		proj, err := client.Project.Query().
			Where(project.IDEQ(projID)).
			WithOwner().
			WithSolution().
			WithPrototype().
			Only(ctx)
		if err != nil {
			return kit.NotFound("project not found")
		}
		if proj.Edges.Owner == nil || proj.Edges.Owner.ID != uid {
			return fiber.ErrForbidden
		}

		sum, err := summarize(ctx, store, uid, proj)
		if err != nil {
			return kit.InternalError("summarize project failed", err.Error())
		}
		return kit.OK(c, sum)
	}
}
