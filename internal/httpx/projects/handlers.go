// Package projects provides HTTP handlers for projects: CRUD, the Excite &
// Enrol form, problem discovery and the per-project stage summary.
package projects

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/predefinedproblem"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/schema"
	"sdg-innovation-api/ent/user"
	"sdg-innovation-api/internal/board"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/httpx/mw"
	"sdg-innovation-api/internal/logx"
	"sdg-innovation-api/internal/mqx"
)

var projectsLogger = logx.GetScope("projects")

// ownedProject loads a project and enforces that the caller owns it. Errors
// are already HTTP-shaped.
func ownedProject(ctx context.Context, client *ent.Client, ownerID, projID uuid.UUID) (*ent.Project, error) {
	proj, err := client.Project.Query().Where(project.IDEQ(projID)).WithOwner().Only(ctx)
	if err != nil {
		return nil, kit.NotFound("project not found")
	}
	if proj.Edges.Owner == nil || proj.Edges.Owner.ID != ownerID {
		return nil, fiber.ErrForbidden
	}
	return proj, nil
}

// ListProjectsHandler lists projects owned by the current user.
//
//	@Summary      List my projects
//	@Description  Returns projects owned by the current user
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Param        sort    query  string  false  "field:asc|desc"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/projects [get]
func ListProjectsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		q := client.Project.Query().Where(project.HasOwnerWith(user.IDEQ(uid)))
		if pg.Sort == "" {
			q = q.Order(ent.Desc(project.FieldUpdatedAt))
		} else {
			q, err = kit.ApplyProjectSort(q, pg.Sort)
			if err != nil {
				return err
			}
		}

		var total *int
		if pg.WithTotal {
			n, err := client.Project.Query().Where(project.HasOwnerWith(user.IDEQ(uid))).Count(ctx)
			if err != nil {
				return kit.InternalError("count projects failed", err.Error())
			}
			total = &n
		}

		items, err := q.Limit(pg.Limit + 1).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query projects failed", err.Error())
		}
		hasMore := len(items) > pg.Limit
		if hasMore {
			items = items[:pg.Limit]
		}
		return kit.List(c, items, kit.ListMeta(pg, len(items), hasMore, total))
	}
}

// CreateProjectHandler creates a new project owned by the current user.
//
//	@Summary      Create project
//	@Description  Create a project owned by the current user
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  projects.CreateProjectRequest  true  "project payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/projects [post]
func CreateProjectHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req CreateProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		create := client.Project.Create().SetOwnerID(uid)
		if strings.TrimSpace(req.Title) != "" {
			create = create.SetTitle(req.Title)
		}
		if req.Description != "" {
			create = create.SetDescription(req.Description)
		}
		if req.Location != "" {
			create = create.SetLocation(req.Location)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return kit.InternalError("create project failed", err.Error())
		}

		if pub != nil {
			body, _ := json.Marshal(fiber.Map{"user_id": uid, "project_id": created.ID})
			if err := pub.Publish(ctx, mqx.EventProjectCreated, body); err != nil {
				projectsLogger.Sugar().Warnf("publish %s failed: %v", mqx.EventProjectCreated, err)
			}
		}
		return kit.Created(c, created)
	}
}

// GetProjectHandler gets a single project by ID.
//
//	@Summary      Get project
//	@Description  Get project details (owner only)
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Project UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [get]
func GetProjectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
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
		return kit.OK(c, proj)
	}
}

// UpdateProjectHandler updates a project owned by the current user.
//
//	@Summary      Update project
//	@Description  Update project details (owner only)
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                         true  "Project UUID"
//	@Param        body  body  projects.UpdateProjectRequest  true  "project payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [put]
func UpdateProjectHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("id"))
		}
		var req UpdateProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if _, err := ownedProject(ctx, client, uid, projID); err != nil {
			return err
		}

		upd := client.Project.UpdateOneID(projID)
		if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
			upd = upd.SetTitle(*req.Title)
		}
		if req.Description != nil {
			upd = upd.SetDescription(*req.Description)
		}
		if req.Location != nil {
			upd = upd.SetLocation(*req.Location)
		}
		if req.Notes != nil {
			upd = upd.SetNotes(*req.Notes)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update project failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// UpdateTeamInfoHandler stores the Excite & Enrol form on a project. When a
// group name is given the project is retitled "<group> - Innovation Project".
//
//	@Summary      Save Excite & Enrol form
//	@Description  Store team info on a project (owner only)
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                    true  "Project UUID"
//	@Param        body  body  projects.TeamInfoRequest  true  "team info"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/team-info [put]
func UpdateTeamInfoHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("id"))
		}
		var req TeamInfoRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.SchoolName) == "" {
			return kit.BadRequest("school_name required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if _, err := ownedProject(ctx, client, uid, projID); err != nil {
			return err
		}

		info := &schema.TeamInfo{
			SchoolName:                  req.SchoolName,
			ClassName:                   req.ClassName,
			GroupMembers:                req.GroupMembers,
			GroupName:                   req.GroupName,
			EnrolledProgramID:           req.EnrolledProgramID,
			SdgGoal:                     req.SdgGoal,
			InnovationProcessSteps:      req.InnovationProcessSteps,
			ProblemDiscoveryMethod:      req.ProblemDiscoveryMethod,
			CommunityChallenges:         req.CommunityChallenges,
			FiveYearProblem:             req.FiveYearProblem,
			TechnologyApplicationReason: req.TechnologyApplicationReason,
		}
		upd := client.Project.UpdateOneID(projID).SetTeamInfo(info)
		if strings.TrimSpace(req.GroupName) != "" {
			upd = upd.SetTitle(req.GroupName + " - Innovation Project")
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update team info failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// SelectProblemHandler stores the Problem Discovery selection. A predefined
// selection copies the catalogue statement and stakeholders onto the project;
// a custom one titles the project "<who> - <what>".
//
//	@Summary      Select problem
//	@Description  Store problem discovery selection on a project (owner only)
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                         true  "Project UUID"
//	@Param        body  body  projects.SelectProblemRequest  true  "problem selection"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id}/problem [put]
func SelectProblemHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("id"))
		}
		var req SelectProblemRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if (req.PredefinedProblemID == nil) == (req.CustomProblem == nil) {
			return kit.BadRequest("exactly one of predefined_problem_id or custom_problem required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if _, err := ownedProject(ctx, client, uid, projID); err != nil {
			return err
		}

		upd := client.Project.UpdateOneID(projID)
		if req.PredefinedProblemID != nil {
			p, err := client.PredefinedProblem.Query().
				Where(predefinedproblem.IDEQ(*req.PredefinedProblemID)).
				Only(ctx)
			if err != nil {
				return kit.NotFound("predefined problem not found")
			}
			upd = upd.
				SetProblemInfo(&schema.ProblemInfo{
					SelectedPredefinedProblemID: &p.ID,
					RecommendedStakeholders:     p.Stakeholders,
					ProblemType:                 "predefined",
				}).
				SetTitle(titleFromStatement(p.ProblemStatement)).
				SetDescription(p.ProblemStatement)
		} else {
			cp := req.CustomProblem
			if strings.TrimSpace(cp.WhoHasProblem) == "" || strings.TrimSpace(cp.WhatIsProblem) == "" {
				return kit.BadRequest("who_has_problem and what_is_problem required", nil)
			}
			upd = upd.
				SetProblemInfo(&schema.ProblemInfo{
					ProblemType: "custom",
					CustomProblem: &schema.CustomProblem{
						WhoHasProblem:   cp.WhoHasProblem,
						WhatIsProblem:   cp.WhatIsProblem,
						ExpectedBenefit: cp.ExpectedBenefit,
					},
				}).
				SetTitle(cp.WhoHasProblem + " - " + cp.WhatIsProblem).
				SetDescription(cp.WhatIsProblem)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("select problem failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// titleFromStatement shortens a catalogue statement into a project title.
func titleFromStatement(s string) string {
	const max = 80
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	if i := strings.LastIndex(s[:max], " "); i > 0 {
		return s[:i] + "..."
	}
	return s[:max] + "..."
}

// DeleteProjectHandler deletes a project and tears down its board.
//
//	@Summary      Delete project
//	@Description  Delete a project and its board rows (owner only)
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Project UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/projects/{id} [delete]
func DeleteProjectHandler(client *ent.Client) fiber.Handler {
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

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()
		if _, err := ownedProject(ctx, client, uid, projID); err != nil {
			return err
		}

		// Board rows first, then the project itself.
		if _, err := store.DeleteConnectionsForProject(ctx, uid, projID); err != nil {
			return kit.InternalError("delete connections failed", err.Error())
		}
		if _, err := store.DeleteIdeasForProject(ctx, uid, projID); err != nil {
			return kit.InternalError("delete ideas failed", err.Error())
		}
		if _, err := store.DeleteFramesForProject(ctx, uid, projID); err != nil {
			return kit.InternalError("delete frames failed", err.Error())
		}
		if _, err := store.DeleteStatementsForProject(ctx, uid, projID); err != nil {
			return kit.InternalError("delete statements failed", err.Error())
		}
		if err := client.Project.DeleteOneID(projID).Exec(ctx); err != nil {
			return kit.InternalError("delete failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}
