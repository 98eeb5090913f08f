package projects

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/schema"
	testutil "sdg-innovation-api/internal/httpx/kit/testutil"
	"sdg-innovation-api/internal/httpx/mw"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := testCtx()
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func seedUser(t *testing.T, client *ent.Client, name string) uuid.UUID {
	t.Helper()
	ctx, cancel := testCtx()
	defer cancel()
	u, err := client.User.Create().SetUsername(name).SetDisplayName(name).Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func newProjectsApp(client *ent.Client, userID uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + userID.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Get("/projects", ListProjectsHandler(client))
			app.Post("/projects", CreateProjectHandler(client, nil))
			app.Get("/projects/summary", SummaryHandler(client))
			app.Get("/projects/:id/summary", GetSummaryHandler(client))
			app.Put("/projects/:id/team-info", UpdateTeamInfoHandler(client))
			app.Put("/projects/:id/problem", SelectProblemHandler(client))
			app.Get("/projects/:id", GetProjectHandler(client))
			app.Put("/projects/:id", UpdateProjectHandler(client))
			app.Delete("/projects/:id", DeleteProjectHandler(client))
		},
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func createProject(t *testing.T, app *fiber.App, title string) uuid.UUID {
	t.Helper()
	res := doJSON(t, app, http.MethodPost, "/projects", CreateProjectRequest{Title: title})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data.ID
}

func TestTeamInfoRetitlesProject(t *testing.T) {
	client := newTestClient(t)
	uid := seedUser(t, client, "team")
	app := newProjectsApp(client, uid)
	pid := createProject(t, app, "")

	res := doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/team-info", TeamInfoRequest{
		SchoolName: "Lincoln High",
		GroupName:  "Green Sparks",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}

	ctx, cancel := testCtx()
	defer cancel()
	proj := client.Project.GetX(ctx, pid)
	if proj.Title != "Green Sparks - Innovation Project" {
		t.Fatalf("title = %q", proj.Title)
	}
	if proj.TeamInfo == nil || proj.TeamInfo.SchoolName != "Lincoln High" {
		t.Fatalf("team info = %+v", proj.TeamInfo)
	}

	// missing school name is rejected
	res2 := doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/team-info", TeamInfoRequest{GroupName: "X"})
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing school status=%d", res2.StatusCode)
	}
}

func TestSelectProblem_CustomTitlesFromWhoAndWhat(t *testing.T) {
	client := newTestClient(t)
	uid := seedUser(t, client, "custom")
	app := newProjectsApp(client, uid)
	pid := createProject(t, app, "")

	res := doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/problem", SelectProblemRequest{
		CustomProblem: &CustomProblemPayload{WhoHasProblem: "Farmers", WhatIsProblem: "crop waste"},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	ctx, cancel := testCtx()
	defer cancel()
	proj := client.Project.GetX(ctx, pid)
	if proj.Title != "Farmers - crop waste" {
		t.Fatalf("title = %q", proj.Title)
	}
	if proj.ProblemInfo == nil || proj.ProblemInfo.ProblemType != "custom" {
		t.Fatalf("problem info = %+v", proj.ProblemInfo)
	}

	// both or neither selection is rejected
	res2 := doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/problem", SelectProblemRequest{})
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty selection status=%d", res2.StatusCode)
	}
}

func TestSelectProblem_PredefinedCopiesStakeholders(t *testing.T) {
	client := newTestClient(t)
	uid := seedUser(t, client, "predef")
	app := newProjectsApp(client, uid)
	pid := createProject(t, app, "")

	ctx, cancel := testCtx()
	defer cancel()
	p, err := client.PredefinedProblem.Create().
		SetSdgGoal("6").
		SetProblemStatement("Communities lack access to clean water").
		SetStakeholders([]string{"local council", "residents"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed problem: %v", err)
	}

	res := doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/problem", SelectProblemRequest{
		PredefinedProblemID: &p.ID,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	proj := client.Project.GetX(ctx, pid)
	pi := proj.ProblemInfo
	if pi == nil || pi.SelectedPredefinedProblemID == nil || *pi.SelectedPredefinedProblemID != p.ID {
		t.Fatalf("problem info = %+v", pi)
	}
	if len(pi.RecommendedStakeholders) != 2 {
		t.Fatalf("stakeholders = %v", pi.RecommendedStakeholders)
	}
	if proj.Description != "Communities lack access to clean water" {
		t.Fatalf("description = %q", proj.Description)
	}
}

func TestSummaryTracksStageProgression(t *testing.T) {
	client := newTestClient(t)
	uid := seedUser(t, client, "stages")
	app := newProjectsApp(client, uid)
	pid := createProject(t, app, "")

	fetch := func() ProjectSummary {
		t.Helper()
		res := doJSON(t, app, http.MethodGet, "/projects/"+pid.String()+"/summary", nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("summary status=%d", res.StatusCode)
		}
		var env struct{ Data ProjectSummary }
		if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return env.Data
	}

	if s := fetch(); s.StageInfo.Stage != 1 || s.StageInfo.Progress != 0 {
		t.Fatalf("fresh project: %+v", s.StageInfo)
	}

	doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/team-info", TeamInfoRequest{SchoolName: "Lincoln High"})
	if s := fetch(); s.StageInfo.Stage != 2 || s.StageInfo.Progress != 20 {
		t.Fatalf("after team info: %+v", s.StageInfo)
	}

	doJSON(t, app, http.MethodPut, "/projects/"+pid.String()+"/problem", SelectProblemRequest{
		CustomProblem: &CustomProblemPayload{WhoHasProblem: "Students", WhatIsProblem: "food waste"},
	})
	if s := fetch(); s.StageInfo.Stage != 3 || s.StageInfo.Progress != 40 {
		t.Fatalf("after problem: %+v", s.StageInfo)
	}

	ctx, cancel := testCtx()
	defer cancel()
	for i := 0; i < 10; i++ {
		if _, err := client.Idea.Create().SetContent("idea").SetOwnerID(uid).SetProjectID(pid).Save(ctx); err != nil {
			t.Fatalf("seed idea: %v", err)
		}
	}
	s := fetch()
	if s.StageInfo.Stage != 4 || s.StageInfo.Progress != 60 {
		t.Fatalf("after ideas: %+v", s.StageInfo)
	}
	if s.TotalPoints != 10 {
		t.Fatalf("total points = %d, want 10", s.TotalPoints)
	}

	// an empty prototype never completes the last stage
	sol, err := client.Solution.Create().SetTitle("compost bins").SetOwnerID(uid).Save(ctx)
	if err != nil {
		t.Fatalf("seed solution: %v", err)
	}
	proto, err := client.Prototype.Create().SetFiles(nil).Save(ctx)
	if err != nil {
		t.Fatalf("seed prototype: %v", err)
	}
	if err := client.Project.UpdateOneID(pid).SetSolution(sol).SetPrototype(proto).Exec(ctx); err != nil {
		t.Fatalf("link edges: %v", err)
	}
	if s := fetch(); s.StageInfo.Stage != 5 || s.StageInfo.Progress != 80 {
		t.Fatalf("empty prototype: %+v", s.StageInfo)
	}

	if err := client.Prototype.UpdateOneID(proto.ID).
		SetFiles([]schema.PrototypeFile{{URL: "https://cdn/x.png", Filename: "x.png"}}).
		Exec(ctx); err != nil {
		t.Fatalf("add file: %v", err)
	}
	if s := fetch(); s.StageInfo.Stage != 5 || s.StageInfo.Progress != 100 {
		t.Fatalf("complete: %+v", s.StageInfo)
	}
}

func TestDeleteProjectTearsDownBoard(t *testing.T) {
	client := newTestClient(t)
	uid := seedUser(t, client, "teardown")
	app := newProjectsApp(client, uid)
	pid := createProject(t, app, "doomed")

	ctx, cancel := testCtx()
	defer cancel()
	if _, err := client.Idea.Create().SetContent("i").SetOwnerID(uid).SetProjectID(pid).Save(ctx); err != nil {
		t.Fatalf("seed idea: %v", err)
	}
	if _, err := client.Frame.Create().SetContent("f").SetOwnerID(uid).SetProjectID(pid).Save(ctx); err != nil {
		t.Fatalf("seed frame: %v", err)
	}
	if _, err := client.Connection.Create().SetSourceID("a").SetTargetID("b").SetOwnerID(uid).SetProjectID(pid).Save(ctx); err != nil {
		t.Fatalf("seed connection: %v", err)
	}
	if _, err := client.ProblemStatement.Create().SetContent("s").SetOwnerID(uid).SetProjectID(pid).Save(ctx); err != nil {
		t.Fatalf("seed statement: %v", err)
	}

	res := doJSON(t, app, http.MethodDelete, "/projects/"+pid.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status=%d", res.StatusCode)
	}
	if n, _ := client.Idea.Query().Count(ctx); n != 0 {
		t.Fatalf("ideas left=%d", n)
	}
	if n, _ := client.Connection.Query().Count(ctx); n != 0 {
		t.Fatalf("connections left=%d", n)
	}
	if n, _ := client.Project.Query().Count(ctx); n != 0 {
		t.Fatalf("projects left=%d", n)
	}
}

func TestProjectAccessIsOwnerOnly(t *testing.T) {
	client := newTestClient(t)
	owner := seedUser(t, client, "owner")
	intruder := seedUser(t, client, "intruder")
	ownerApp := newProjectsApp(client, owner)
	pid := createProject(t, ownerApp, "private")

	intruderApp := newProjectsApp(client, intruder)
	res := doJSON(t, intruderApp, http.MethodGet, "/projects/"+pid.String(), nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign get status=%d, want 403", res.StatusCode)
	}
	res = doJSON(t, intruderApp, http.MethodDelete, "/projects/"+pid.String(), nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign delete status=%d, want 403", res.StatusCode)
	}
}
