package progadmin

import (
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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestDashboardRollup(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prog, err := client.Program.Create().SetName("Innovation 2026").Save(ctx)
	if err != nil {
		t.Fatalf("seed program: %v", err)
	}
	active, err := client.School.Create().SetName("Lincoln High").Save(ctx)
	if err != nil {
		t.Fatalf("seed school: %v", err)
	}
	idle, err := client.School.Create().SetName("Quiet Academy").Save(ctx)
	if err != nil {
		t.Fatalf("seed school: %v", err)
	}
	for _, sch := range []*ent.School{active, idle} {
		if _, err := client.SchoolProgram.Create().SetSchool(sch).SetProgram(prog).SetNumberOfStudents(30).Save(ctx); err != nil {
			t.Fatalf("enroll %s: %v", sch.Name, err)
		}
	}

	u, err := client.User.Create().SetUsername("rollup_student").Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// six projects with problems: one of them also crosses the idea
	// threshold and carries a solution
	for i := 0; i < 6; i++ {
		create := client.Project.Create().
			SetOwner(u).
			SetTeamInfo(&schema.TeamInfo{SchoolName: "Lincoln High", EnrolledProgramID: prog.ID}).
			SetProblemInfo(&schema.ProblemInfo{ProblemType: "custom", CustomProblem: &schema.CustomProblem{WhoHasProblem: "w", WhatIsProblem: "x"}})
		p, err := create.Save(ctx)
		if err != nil {
			t.Fatalf("seed project: %v", err)
		}
		if i == 0 {
			for j := 0; j < 10; j++ {
				if _, err := client.Idea.Create().SetContent("i").SetOwner(u).SetProject(p).Save(ctx); err != nil {
					t.Fatalf("seed idea: %v", err)
				}
			}
			sol, err := client.Solution.Create().SetTitle("s").SetOwner(u).Save(ctx)
			if err != nil {
				t.Fatalf("seed solution: %v", err)
			}
			if err := client.Project.UpdateOne(p).SetSolution(sol).Exec(ctx); err != nil {
				t.Fatalf("attach solution: %v", err)
			}
		}
	}

	app := testutil.NewApp(func(a *fiber.App) {
		a.Get("/programs/:program_id/dashboard", DashboardHandler(client))
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/programs/"+prog.ID.String()+"/dashboard", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data Dashboard }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Schools) != 2 {
		t.Fatalf("schools=%d, want 2", len(env.Data.Schools))
	}
	byName := map[string]SchoolRollup{}
	for _, s := range env.Data.Schools {
		byName[s.SchoolName] = s
	}
	lincoln := byName["Lincoln High"]
	if lincoln.ProblemCount != 6 || lincoln.IdeationCount != 1 || lincoln.SolutionCount != 1 {
		t.Fatalf("lincoln rollup = %+v", lincoln)
	}
	// six problems clears the floor but misses every upper threshold
	if lincoln.Level != LevelLow || lincoln.LevelColor != "red" {
		t.Fatalf("lincoln level = %d/%s", lincoln.Level, lincoln.LevelColor)
	}
	quiet := byName["Quiet Academy"]
	if quiet.ProblemCount != 0 || quiet.Level != LevelLow {
		t.Fatalf("quiet rollup = %+v", quiet)
	}

	// unknown program is a 404
	nres, _ := app.Test(httptest.NewRequest(http.MethodGet, "/programs/"+uuid.NewString()+"/dashboard", nil))
	if nres.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown program status=%d", nres.StatusCode)
	}
}
