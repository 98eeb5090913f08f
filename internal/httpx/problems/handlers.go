// Package problems provides the SDG goal catalogue and the predefined problem
// library: admin-curated statements students pick from during Problem
// Discovery.
package problems

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/predefinedproblem"
	"sdg-innovation-api/internal/config"
	"sdg-innovation-api/internal/esx"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/logx"
	"sdg-innovation-api/internal/sdg"
)

var problemsLogger = logx.GetScope("problems")

// CreateProblemRequest is the admin payload for a catalogue entry.
// swagger:model CreateProblemRequest
type CreateProblemRequest struct {
	SdgGoal          int      `json:"sdg_goal"`
	ProblemStatement string   `json:"problem_statement"`
	Stakeholders     []string `json:"stakeholders,omitempty"`
}

// ListGoalsHandler returns the SDG goal catalogue.
//
//	@Summary      List SDG goals
//	@Description  The 17 SDG goals plus the platform's extra goal 18
//	@Tags         problems
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/sdg-goals [get]
func ListGoalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return kit.OK(c, sdg.Goals())
	}
}

// ListProblemsHandler lists catalogue problems, optionally for one SDG goal.
//
//	@Summary      List predefined problems
//	@Tags         problems
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        sdg_goal  query  int  false  "filter by SDG goal"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/problems [get]
func ListProblemsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.PredefinedProblem.Query()
		if goal := c.QueryInt("sdg_goal", 0); goal > 0 {
			if !sdg.Valid(goal) {
				return kit.BadRequest("unknown sdg goal", goal)
			}
			q = q.Where(predefinedproblem.SdgGoalEQ(strconv.Itoa(goal)))
		}
		rows, err := q.Order(ent.Asc(predefinedproblem.FieldSdgGoal), ent.Asc(predefinedproblem.FieldCreatedAt)).All(ctx)
		if err != nil {
			return kit.InternalError("query problems failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// CreateProblemHandler adds a catalogue entry and indexes it for search.
// Admin only; the role gate sits in the router.
//
//	@Summary      Create predefined problem
//	@Description  Add a catalogue problem (admin only) and index it for search
//	@Tags         problems
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  problems.CreateProblemRequest  true  "problem payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/problems [post]
func CreateProblemHandler(cfg *config.Config, client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateProblemRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.ProblemStatement) == "" {
			return kit.BadRequest("problem_statement required", nil)
		}
		if !sdg.Valid(req.SdgGoal) {
			return kit.BadRequest("unknown sdg goal", req.SdgGoal)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		created, err := client.PredefinedProblem.Create().
			SetSdgGoal(strconv.Itoa(req.SdgGoal)).
			SetProblemStatement(req.ProblemStatement).
			SetStakeholders(req.Stakeholders).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create problem failed", err.Error())
		}

		// Search indexing is best-effort; the DB row is the source of truth.
		doc := esx.ProblemDoc{
			ID:               created.ID,
			SdgGoal:          req.SdgGoal,
			ProblemStatement: created.ProblemStatement,
			Stakeholders:     created.Stakeholders,
			CreatedAt:        created.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := esx.IndexProblem(ctx, es, cfg.ES.ProblemIndex, doc); err != nil {
			problemsLogger.Sugar().Warnf("index problem %s failed: %v", created.ID, err)
		}
		return kit.Created(c, created)
	}
}

// SearchProblemsHandler searches the catalogue. Elasticsearch drives the
// ranking when configured; otherwise a LIKE scan over the DB answers.
//
//	@Summary      Search predefined problems
//	@Tags         problems
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        q         query  string  true   "search text"
//	@Param        sdg_goal  query  int     false  "filter by SDG goal"
//	@Param        limit     query  int     false  "page size"  default(20)
//	@Param        offset    query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/problems/search [get]
func SearchProblemsHandler(cfg *config.Config, client *ent.Client, es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			return kit.BadRequest("q required", nil)
		}
		goal := c.QueryInt("sdg_goal", 0)
		if goal > 0 && !sdg.Valid(goal) {
			return kit.BadRequest("unknown sdg goal", goal)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if es != nil {
			ids, err := esx.SearchProblems(ctx, es, cfg.ES.ProblemIndex, query, goal, pg.Offset, pg.Limit)
			if err != nil {
				problemsLogger.Sugar().Warnf("es search failed, falling back to db: %v", err)
			} else {
				rows, err := client.PredefinedProblem.Query().
					Where(predefinedproblem.IDIn(ids...)).
					All(ctx)
				if err != nil {
					return kit.InternalError("load problems failed", err.Error())
				}
				return kit.OK(c, orderByIDs(rows, ids))
			}
		}

		q := client.PredefinedProblem.Query().
			Where(predefinedproblem.ProblemStatementContainsFold(query))
		if goal > 0 {
			q = q.Where(predefinedproblem.SdgGoalEQ(strconv.Itoa(goal)))
		}
		rows, err := q.Order(ent.Asc(predefinedproblem.FieldCreatedAt)).
			Limit(pg.Limit).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("search problems failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// orderByIDs re-sorts DB rows into the search engine's relevance order.
func orderByIDs(rows []*ent.PredefinedProblem, ids []uuid.UUID) []*ent.PredefinedProblem {
	byID := make(map[uuid.UUID]*ent.PredefinedProblem, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	out := make([]*ent.PredefinedProblem, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
