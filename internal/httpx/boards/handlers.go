// Package boards exposes the ideation board over HTTP: element CRUD, the
// whole-board save endpoint and the gamification points counter.
package boards

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/internal/board"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/httpx/mw"
	"sdg-innovation-api/internal/logx"
	"sdg-innovation-api/internal/mqx"
)

var boardsLogger = logx.GetScope("boards")

// GetBoardHandler returns everything on one project's board.
//
//	@Summary      Get board
//	@Description  Ideas, frames, connections, latest statement and points for one project
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        project_id  path  string  true  "Project UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/boards/{project_id} [get]
func GetBoardHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("project_id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("project_id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		ideas, err := store.Ideas(ctx, uid, &projID)
		if err != nil {
			return kit.InternalError("query ideas failed", err.Error())
		}
		frames, err := store.Frames(ctx, uid, &projID)
		if err != nil {
			return kit.InternalError("query frames failed", err.Error())
		}
		conns, err := store.Connections(ctx, uid, &projID)
		if err != nil {
			return kit.InternalError("query connections failed", err.Error())
		}
		statements, err := store.ProblemStatements(ctx, uid)
		if err != nil {
			return kit.InternalError("query statements failed", err.Error())
		}
		var statement *ent.ProblemStatement
		for _, st := range board.DedupeByProject(statements) {
			if st.Edges.Project != nil && st.Edges.Project.ID == projID {
				statement = st
				break
			}
		}
		points, err := store.TotalPoints(ctx, uid, projID)
		if err != nil {
			return kit.InternalError("count points failed", err.Error())
		}
		return kit.OK(c, fiber.Map{
			"ideas":             ideas,
			"frames":            frames,
			"connections":       conns,
			"problem_statement": statement,
			"total_points":      points,
		})
	}
}

// SaveBoardHandler persists a whole board in one request.
//
//	@Summary      Save board
//	@Description  Upsert ideas/frames, create-once statement, dedupe connections, return points
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  boards.SaveBoardRequest  true  "board payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/boards/save [post]
func SaveBoardHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req SaveBoardRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		if req.ProblemStatement.ProjectID == nil {
			return kit.BadRequest("problem statement project_id required", nil)
		}

		in := board.SaveInput{
			Statement: board.StatementInput{
				Content:   req.ProblemStatement.Content,
				ProjectID: req.ProblemStatement.ProjectID,
			},
		}
		for _, e := range req.Ideas {
			in.Ideas = append(in.Ideas, board.NodeInput{
				Ref:     board.ParseClientRef(board.IdeaRefPrefix, e.ID),
				Content: e.Content,
				X:       e.X,
				Y:       e.Y,
			})
		}
		for _, e := range req.Frames {
			in.Frames = append(in.Frames, board.NodeInput{
				Ref:     board.ParseClientRef(board.FrameRefPrefix, e.ID),
				Content: e.Content,
				X:       e.X,
				Y:       e.Y,
			})
		}
		for _, cn := range req.Connections {
			in.Connections = append(in.Connections, board.ConnectionInput{SourceID: cn.SourceID, TargetID: cn.TargetID})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()
		res, err := store.SaveBoard(ctx, uid, in)
		if err != nil {
			if errors.Is(err, board.ErrMissingProject) {
				return kit.BadRequest("problem statement project_id required", nil)
			}
			return kit.InternalError("save board failed", err.Error())
		}

		if pub != nil {
			body, _ := json.Marshal(fiber.Map{
				"user_id":      uid,
				"project_id":   req.ProblemStatement.ProjectID,
				"total_points": res.TotalPoints,
			})
			if err := pub.Publish(ctx, mqx.EventBoardSaved, body); err != nil {
				boardsLogger.Sugar().Warnf("publish %s failed: %v", mqx.EventBoardSaved, err)
			}
		}

		return kit.OK(c, fiber.Map{"total_points": res.TotalPoints, "statement_id": res.StatementID})
	}
}

// CreateIdeaHandler adds one idea to a board.
//
//	@Summary      Create idea
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  boards.CreateElementRequest  true  "idea payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/boards/ideas [post]
func CreateIdeaHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req CreateElementRequest
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return kit.BadRequest("project_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		row, err := store.AddIdea(ctx, uid, req.ProjectID, req.Content, req.X, req.Y)
		if err != nil {
			return kit.InternalError("create idea failed", err.Error())
		}
		return kit.Created(c, row)
	}
}

// MoveIdeaHandler updates an idea position.
//
//	@Summary      Move idea
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                     true  "Idea UUID"
//	@Param        body  body  boards.MoveElementRequest  true  "position"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/boards/ideas/{id} [put]
func MoveIdeaHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid idea id", c.Params("id"))
		}
		var req MoveElementRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		row, err := store.UpdateIdeaPosition(ctx, uid, id, req.X, req.Y)
		if err != nil {
			if errors.Is(err, board.ErrNotFoundOrUnauthorized) {
				return kit.NotFound("idea not found")
			}
			return kit.InternalError("move idea failed", err.Error())
		}
		return kit.OK(c, row)
	}
}

// DeleteIdeaHandler removes an idea and returns the refreshed points counter.
//
//	@Summary      Delete idea
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Idea UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/boards/ideas/{id} [delete]
func DeleteIdeaHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid idea id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		projID, err := store.DeleteIdea(ctx, uid, id)
		if err != nil {
			if errors.Is(err, board.ErrNotFoundOrUnauthorized) {
				return kit.NotFound("idea not found")
			}
			return kit.InternalError("delete idea failed", err.Error())
		}
		points, err := store.TotalPoints(ctx, uid, projID)
		if err != nil {
			return kit.InternalError("count points failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"total_points": points})
	}
}

// CreateFrameHandler adds one frame to a board.
//
//	@Summary      Create frame
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  boards.CreateElementRequest  true  "frame payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/boards/frames [post]
func CreateFrameHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req CreateElementRequest
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return kit.BadRequest("project_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		row, err := store.AddFrame(ctx, uid, req.ProjectID, req.Content, req.X, req.Y)
		if err != nil {
			return kit.InternalError("create frame failed", err.Error())
		}
		return kit.Created(c, row)
	}
}

// MoveFrameHandler updates a frame position.
//
//	@Summary      Move frame
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                     true  "Frame UUID"
//	@Param        body  body  boards.MoveElementRequest  true  "position"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/boards/frames/{id} [put]
func MoveFrameHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid frame id", c.Params("id"))
		}
		var req MoveElementRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		row, err := store.UpdateFramePosition(ctx, uid, id, req.X, req.Y)
		if err != nil {
			if errors.Is(err, board.ErrNotFoundOrUnauthorized) {
				return kit.NotFound("frame not found")
			}
			return kit.InternalError("move frame failed", err.Error())
		}
		return kit.OK(c, row)
	}
}

// DeleteFrameHandler removes a frame and returns the refreshed points counter.
//
//	@Summary      Delete frame
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "Frame UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/boards/frames/{id} [delete]
func DeleteFrameHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid frame id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		projID, err := store.DeleteFrame(ctx, uid, id)
		if err != nil {
			if errors.Is(err, board.ErrNotFoundOrUnauthorized) {
				return kit.NotFound("frame not found")
			}
			return kit.InternalError("delete frame failed", err.Error())
		}
		points, err := store.TotalPoints(ctx, uid, projID)
		if err != nil {
			return kit.InternalError("count points failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"total_points": points})
	}
}

// ListStatementsHandler returns the caller's problem statements, one per
// project, newest kept.
//
//	@Summary      List my problem statements
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/boards/statements [get]
func ListStatementsHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rows, err := store.ProblemStatements(ctx, uid)
		if err != nil {
			return kit.InternalError("query statements failed", err.Error())
		}
		return kit.OK(c, board.DedupeByProject(rows))
	}
}

// GetPointsHandler returns the gamification counter for one project.
//
//	@Summary      Get board points
//	@Tags         boards
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        project_id  path  string  true  "Project UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/boards/{project_id}/points [get]
func GetPointsHandler(client *ent.Client) fiber.Handler {
	store := board.NewStore(client)
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("project_id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("project_id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		points, err := store.TotalPoints(ctx, uid, projID)
		if err != nil {
			return kit.InternalError("count points failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"total_points": points})
	}
}
