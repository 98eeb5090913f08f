// Package httpx wires the HTTP surface: router, shared middleware and the
// response kit used by every handler group.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/internal/config"
	"sdg-innovation-api/internal/esx"
	"sdg-innovation-api/internal/httpx/admin"
	"sdg-innovation-api/internal/httpx/auth"
	"sdg-innovation-api/internal/httpx/boards"
	"sdg-innovation-api/internal/httpx/mw"
	"sdg-innovation-api/internal/httpx/problems"
	"sdg-innovation-api/internal/httpx/progadmin"
	"sdg-innovation-api/internal/httpx/projects"
	"sdg-innovation-api/internal/httpx/prototypes"
	"sdg-innovation-api/internal/httpx/solutions"
	"sdg-innovation-api/internal/httpx/users"
	"sdg-innovation-api/internal/mqx"
	"sdg-innovation-api/internal/redisx"
)

// Providers carries the optional infrastructure collaborators. Any of them
// may be nil; handlers degrade to DB-only behavior.
type Providers struct {
	MQ  mqx.Publisher
	ES  *esx.Client
	RDB *redisx.Client
}

// tokenParser adapts auth.ParseAndValidate to the middleware contract.
func tokenParser(cfg *config.Config) mw.TokenParser {
	return func(token string) (string, string, []string, string, error) {
		claims, err := auth.ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", nil, "", err
		}
		return claims.Subject, claims.Kind, claims.Roles, "", nil
	}
}

// Register mounts every route group under /api/v1.
func Register(app *fiber.App, cfg *config.Config, client *ent.Client, providers ...*Providers) {
	p := &Providers{}
	if len(providers) > 0 && providers[0] != nil {
		p = providers[0]
	}

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api/v1", mw.JWTMiddlewareDynamic(tokenParser(cfg)))

	// Auth. Rate limited: these are the only unauthenticated write endpoints.
	ar := api.Group("/auth")
	if cfg.RateLimit.Enable {
		ar.Use(mw.RateLimitDefault(p.RDB, cfg.RateLimit.Window, cfg.RateLimit.Max))
	}
	ar.Post("/register", auth.RegisterHandler(cfg, client))
	ar.Post("/login", auth.LoginHandler(cfg, client))
	ar.Post("/refresh", auth.RefreshHandler(cfg))
	ar.Post("/logout", auth.LogoutHandler())
	ar.Get("/me", auth.MeHandler())

	// Public catalogue.
	api.Get("/sdg-goals", problems.ListGoalsHandler())

	// Authenticated student surface.
	authed := api.Group("", mw.RequireUser())

	authed.Get("/projects", projects.ListProjectsHandler(client))
	authed.Post("/projects", projects.CreateProjectHandler(client, p.MQ))
	authed.Get("/projects/summary", projects.SummaryHandler(client))
	authed.Get("/projects/:id/summary", projects.GetSummaryHandler(client))
	authed.Put("/projects/:id/team-info", projects.UpdateTeamInfoHandler(client))
	authed.Put("/projects/:id/problem", projects.SelectProblemHandler(client))
	authed.Get("/projects/:id", projects.GetProjectHandler(client))
	authed.Put("/projects/:id", projects.UpdateProjectHandler(client))
	authed.Delete("/projects/:id", projects.DeleteProjectHandler(client))

	authed.Get("/boards/statements", boards.ListStatementsHandler(client))
	authed.Post("/boards/save", boards.SaveBoardHandler(client, p.MQ))
	authed.Post("/boards/ideas", boards.CreateIdeaHandler(client))
	authed.Put("/boards/ideas/:id", boards.MoveIdeaHandler(client))
	authed.Delete("/boards/ideas/:id", boards.DeleteIdeaHandler(client))
	authed.Post("/boards/frames", boards.CreateFrameHandler(client))
	authed.Put("/boards/frames/:id", boards.MoveFrameHandler(client))
	authed.Delete("/boards/frames/:id", boards.DeleteFrameHandler(client))
	authed.Get("/boards/:project_id/points", boards.GetPointsHandler(client))
	authed.Get("/boards/:project_id", boards.GetBoardHandler(client))

	authed.Get("/solutions", solutions.ListSolutionsHandler(client))
	authed.Post("/solutions", solutions.CreateSolutionHandler(client, p.MQ))
	authed.Get("/solutions/:id", solutions.GetSolutionHandler(client))
	authed.Put("/solutions/:id", solutions.UpdateSolutionHandler(client))

	authed.Post("/prototypes", prototypes.SavePrototypeHandler(client, p.MQ))
	authed.Get("/prototypes/:project_id", prototypes.GetPrototypeHandler(client))
	authed.Post("/prototypes/:project_id/files", prototypes.AddFileHandler(client))
	authed.Delete("/prototypes/:project_id/files/:index", prototypes.DeleteFileHandler(client))

	authed.Get("/problems/search", problems.SearchProblemsHandler(cfg, client, p.ES))
	authed.Get("/problems", problems.ListProblemsHandler(client))

	authed.Get("/users/me", users.GetProfileHandler(client))
	authed.Put("/users/me", users.UpdateProfileHandler(client))

	// Program administrator surface.
	pa := api.Group("", mw.RequireRoles("program_admin", "admin"))
	pa.Get("/programs/:program_id/dashboard", progadmin.DashboardHandler(client))

	// Admin surface.
	ad := api.Group("/admin", mw.RequireRoles("admin"))
	ad.Get("/schools", admin.ListSchoolsHandler(client))
	ad.Post("/schools", admin.CreateSchoolHandler(client))
	ad.Put("/schools/:id", admin.UpdateSchoolHandler(client))
	ad.Get("/programs", admin.ListProgramsHandler(client))
	ad.Post("/programs", admin.CreateProgramHandler(client))
	ad.Put("/programs/:id", admin.UpdateProgramHandler(client))
	ad.Get("/enrollments", admin.ListEnrollmentsHandler(client))
	ad.Post("/enrollments", admin.EnrollSchoolHandler(client, p.MQ))
	ad.Get("/users", users.ListUsersHandler(client))
	ad.Put("/users/:id/type", admin.PromoteUserHandler(client))

	api.Post("/problems", mw.RequireRoles("admin"), problems.CreateProblemHandler(cfg, client, p.ES))
}
