package solutions

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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newSolutionsApp(client *ent.Client, userID uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + userID.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Get("/solutions", ListSolutionsHandler(client))
			app.Post("/solutions", CreateSolutionHandler(client, nil))
			app.Get("/solutions/:id", GetSolutionHandler(client))
			app.Put("/solutions/:id", UpdateSolutionHandler(client))
		},
	)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestCreateSolution_AttachesToOwnedProject(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername("maker").SetDisplayName("Maker").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := client.Project.Create().SetTitle("bins").SetOwner(u).Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	app := newSolutionsApp(client, u.ID)

	res := postJSON(t, app, "/solutions", SaveSolutionRequest{
		Title:       "Compost network",
		Detail:      "neighbourhood compost bins",
		KeyFeatures: "cheap, local",
		ProjectID:   &p.ID,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}

	proj, err := client.Project.Query().WithSolution().Only(ctx)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if proj.Edges.Solution == nil || proj.Edges.Solution.Title != "Compost network" {
		t.Fatalf("solution edge = %+v", proj.Edges.Solution)
	}

	// empty title is rejected
	bad := postJSON(t, app, "/solutions", SaveSolutionRequest{Title: "  "})
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty title status=%d", bad.StatusCode)
	}
}

func TestSolutionAccessIsOwnerOnly(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	owner, _ := client.User.Create().SetUsername("sol_owner").Save(ctx)
	other, _ := client.User.Create().SetUsername("sol_other").Save(ctx)
	sol, err := client.Solution.Create().SetTitle("secret").SetOwner(owner).Save(ctx)
	if err != nil {
		t.Fatalf("create solution: %v", err)
	}

	app := newSolutionsApp(client, other.ID)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/solutions/"+sol.ID.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign get status=%d, want 403", res.StatusCode)
	}

	// and the listing never leaks foreign rows
	lres, _ := app.Test(httptest.NewRequest(http.MethodGet, "/solutions", nil))
	var env struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(lres.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 0 {
		t.Fatalf("foreign list len=%d, want 0", len(env.Data))
	}
}
