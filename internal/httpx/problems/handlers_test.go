package problems

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
	_ "modernc.org/sqlite"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/internal/config"
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

func newProblemsApp(client *ent.Client) *fiber.App {
	cfg := &config.Config{}
	cfg.ES.ProblemIndex = "predefined-problems"
	return testutil.NewApp(func(app *fiber.App) {
		app.Get("/sdg-goals", ListGoalsHandler())
		app.Get("/problems/search", SearchProblemsHandler(cfg, client, nil))
		app.Get("/problems", ListProblemsHandler(client))
		app.Post("/problems", CreateProblemHandler(cfg, client, nil))
	})
}

func TestListGoals_IncludesExtraGoal(t *testing.T) {
	app := newProblemsApp(newTestClient(t))
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/sdg-goals", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var env struct {
		Data []struct {
			Number int    `json:"number"`
			Title  string `json:"title"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 18 {
		t.Fatalf("goals=%d, want 18", len(env.Data))
	}
	if env.Data[17].Number != 18 || env.Data[17].Title != "Women and Welfare" {
		t.Fatalf("goal 18 = %+v", env.Data[17])
	}
}

func TestCreateAndListByGoal(t *testing.T) {
	client := newTestClient(t)
	app := newProblemsApp(client)

	create := func(goal int, statement string) {
		t.Helper()
		b, _ := json.Marshal(CreateProblemRequest{SdgGoal: goal, ProblemStatement: statement})
		req := httptest.NewRequest(http.MethodPost, "/problems", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("create status=%d", res.StatusCode)
		}
	}
	create(6, "Communities lack access to clean water")
	create(6, "Wells are contaminated by runoff")
	create(13, "Coastal towns flood every year")

	res, _ := app.Test(httptest.NewRequest(http.MethodGet, "/problems?sdg_goal=6", nil))
	var env struct {
		Data []struct {
			SdgGoal string `json:"sdg_goal"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("goal 6 problems=%d, want 2", len(env.Data))
	}

	// unknown goals are rejected on both write and read
	b, _ := json.Marshal(CreateProblemRequest{SdgGoal: 99, ProblemStatement: "x"})
	req := httptest.NewRequest(http.MethodPost, "/problems", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	bad, _ := app.Test(req)
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad goal status=%d", bad.StatusCode)
	}
}

func TestSearchFallsBackToDatabase(t *testing.T) {
	client := newTestClient(t)
	app := newProblemsApp(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.PredefinedProblem.Create().SetSdgGoal("6").SetProblemStatement("Communities lack access to clean water").Save(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := client.PredefinedProblem.Create().SetSdgGoal("13").SetProblemStatement("Coastal towns flood every year").Save(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/problems/search?q=clean+water", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data []struct {
			ProblemStatement string `json:"problem_statement"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].ProblemStatement != "Communities lack access to clean water" {
		t.Fatalf("search result = %+v", env.Data)
	}

	// empty query is a 400
	bad, _ := app.Test(httptest.NewRequest(http.MethodGet, "/problems/search", nil))
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty query status=%d", bad.StatusCode)
	}
}
