// Package solutions provides HTTP handlers for conceptual solution drafts.
package solutions

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/httpx/mw"
	"sdg-innovation-api/internal/logx"
	"sdg-innovation-api/internal/mqx"
)

var solutionsLogger = logx.GetScope("solutions")

// SaveSolutionRequest is the solution draft payload. When ProjectID is set the
// solution becomes that project's solution.
// swagger:model SaveSolutionRequest
type SaveSolutionRequest struct {
	Title               string     `json:"title"`
	Detail              string     `json:"detail,omitempty"`
	KeyFeatures         string     `json:"key_features,omitempty"`
	ImplementationSteps string     `json:"implementation_steps,omitempty"`
	ProjectID           *uuid.UUID `json:"project_id,omitempty"`
}

// UpdateSolutionRequest updates an existing draft.
// swagger:model UpdateSolutionRequest
type UpdateSolutionRequest struct {
	Title               *string `json:"title,omitempty"`
	Detail              *string `json:"detail,omitempty"`
	KeyFeatures         *string `json:"key_features,omitempty"`
	ImplementationSteps *string `json:"implementation_steps,omitempty"`
}

// CreateSolutionHandler saves a solution draft for the current user.
//
//	@Summary      Save solution draft
//	@Description  Create a solution, optionally attaching it to an owned project
//	@Tags         solutions
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  solutions.SaveSolutionRequest  true  "solution payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/solutions [post]
func CreateSolutionHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req SaveSolutionRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Title) == "" {
			return kit.BadRequest("title required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if req.ProjectID != nil {
			proj, err := client.Project.Query().Where(project.IDEQ(*req.ProjectID)).WithOwner().Only(ctx)
			if err != nil {
				return kit.NotFound("project not found")
			}
			if proj.Edges.Owner == nil || proj.Edges.Owner.ID != uid {
				return fiber.ErrForbidden
			}
		}

		created, err := client.Solution.Create().
			SetTitle(req.Title).
			SetDetail(req.Detail).
			SetKeyFeatures(req.KeyFeatures).
			SetImplementationSteps(req.ImplementationSteps).
			SetOwnerID(uid).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create solution failed", err.Error())
		}

		if req.ProjectID != nil {
			if err := client.Project.UpdateOneID(*req.ProjectID).SetSolution(created).Exec(ctx); err != nil {
				return kit.InternalError("attach solution failed", err.Error())
			}
		}

		if pub != nil {
			body, _ := json.Marshal(fiber.Map{"user_id": uid, "solution_id": created.ID, "project_id": req.ProjectID})
			if err := pub.Publish(ctx, mqx.EventSolutionSaved, body); err != nil {
				solutionsLogger.Sugar().Warnf("publish %s failed: %v", mqx.EventSolutionSaved, err)
			}
		}
		return kit.Created(c, created)
	}
}

// ListSolutionsHandler lists the caller's solution drafts, newest first.
//
//	@Summary      List my solutions
//	@Tags         solutions
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/solutions [get]
func ListSolutionsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		rows, err := client.Solution.Query().
			Where(solution.HasOwnerWith(user.IDEQ(uid))).
			Order(ent.Desc(solution.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query solutions failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// GetSolutionHandler returns one owned solution.
//
//	@Summary      Get solution
//	@Tags         solutions
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Solution UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/solutions/{id} [get]
func GetSolutionHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid solution id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		row, err := client.Solution.Query().Where(solution.IDEQ(id)).WithOwner().Only(ctx)
		if err != nil {
			return kit.NotFound("solution not found")
		}
		if row.Edges.Owner == nil || row.Edges.Owner.ID != uid {
			return fiber.ErrForbidden
		}
		return kit.OK(c, row)
	}
}

// UpdateSolutionHandler updates an owned solution draft.
//
//	@Summary      Update solution
//	@Tags         solutions
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                           true  "Solution UUID"
//	@Param        body  body  solutions.UpdateSolutionRequest  true  "solution payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/solutions/{id} [put]
func UpdateSolutionHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid solution id", c.Params("id"))
		}
		var req UpdateSolutionRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		row, err := client.Solution.Query().Where(solution.IDEQ(id)).WithOwner().Only(ctx)
		if err != nil {
			return kit.NotFound("solution not found")
		}
		if row.Edges.Owner == nil || row.Edges.Owner.ID != uid {
			return fiber.ErrForbidden
		}

		upd := client.Solution.UpdateOneID(id)
		if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
			upd = upd.SetTitle(*req.Title)
		}
		if req.Detail != nil {
			upd = upd.SetDetail(*req.Detail)
		}
		if req.KeyFeatures != nil {
			upd = upd.SetKeyFeatures(*req.KeyFeatures)
		}
		if req.ImplementationSteps != nil {
			upd = upd.SetImplementationSteps(*req.ImplementationSteps)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update solution failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}
