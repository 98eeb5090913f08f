package boards

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

func seedUserAndProject(t *testing.T, client *ent.Client, name string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername(name).SetDisplayName(name).Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := client.Project.Create().SetTitle(name + " project").SetOwner(u).Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return u.ID, p.ID
}

// authAs injects an auth context the way the JWT middleware would.
func authAs(userID uuid.UUID) func(*fiber.App) {
	return func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{Subject: "user:" + userID.String(), Kind: "user"})
			return c.Next()
		})
	}
}

func newBoardsApp(client *ent.Client, userID uuid.UUID) *fiber.App {
	return testutil.NewApp(
		authAs(userID),
		func(app *fiber.App) {
			app.Get("/boards/statements", ListStatementsHandler(client))
			app.Post("/boards/save", SaveBoardHandler(client, nil))
			app.Post("/boards/ideas", CreateIdeaHandler(client))
			app.Put("/boards/ideas/:id", MoveIdeaHandler(client))
			app.Delete("/boards/ideas/:id", DeleteIdeaHandler(client))
			app.Post("/boards/frames", CreateFrameHandler(client))
			app.Put("/boards/frames/:id", MoveFrameHandler(client))
			app.Delete("/boards/frames/:id", DeleteFrameHandler(client))
			app.Get("/boards/:project_id/points", GetPointsHandler(client))
			app.Get("/boards/:project_id", GetBoardHandler(client))
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

func TestSaveBoard_RequiresProjectID(t *testing.T) {
	client := newTestClient(t)
	uid, _ := seedUserAndProject(t, client, "saver")
	app := newBoardsApp(client, uid)

	res := postJSON(t, app, "/boards/save", SaveBoardRequest{
		Ideas:            []ElementPayload{{Content: "orphan"}},
		ProblemStatement: StatementPayload{Content: "no project"},
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", res.StatusCode)
	}
}

func TestSaveBoard_ReturnsTotalPoints(t *testing.T) {
	client := newTestClient(t)
	uid, pid := seedUserAndProject(t, client, "points")
	app := newBoardsApp(client, uid)

	res := postJSON(t, app, "/boards/save", SaveBoardRequest{
		Ideas:            []ElementPayload{{Content: "a"}, {Content: "b"}},
		Frames:           []ElementPayload{{Content: "cluster"}},
		ProblemStatement: StatementPayload{Content: "too much waste", ProjectID: &pid},
		Connections:      []ConnectionPayload{{SourceID: "idea-x", TargetID: "frame-y"}},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			TotalPoints int `json:"total_points"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.TotalPoints != 3 {
		t.Fatalf("total_points=%d, want 3", env.Data.TotalPoints)
	}

	// replaying the exact same payload with no client refs adds more ideas
	// but never duplicates the connection or statement
	res2 := postJSON(t, app, "/boards/save", SaveBoardRequest{
		ProblemStatement: StatementPayload{Content: "rewritten", ProjectID: &pid},
		Connections:      []ConnectionPayload{{SourceID: "idea-x", TargetID: "frame-y"}},
	})
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("replay status=%d", res2.StatusCode)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if n, _ := client.Connection.Query().Count(ctx); n != 1 {
		t.Fatalf("connections=%d, want 1", n)
	}
	st, err := client.ProblemStatement.Query().Only(ctx)
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if st.Content != "too much waste" {
		t.Fatalf("statement content = %q, want first write kept", st.Content)
	}
}

func TestIdeaLifecycleOverHTTP(t *testing.T) {
	client := newTestClient(t)
	uid, pid := seedUserAndProject(t, client, "lifecycle")
	app := newBoardsApp(client, uid)

	res := postJSON(t, app, "/boards/ideas", CreateElementRequest{ProjectID: pid, Content: "solar benches", X: 10, Y: 20})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}
	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	b, _ := json.Marshal(MoveElementRequest{X: 33, Y: 44})
	req := httptest.NewRequest(http.MethodPut, "/boards/ideas/"+created.Data.ID.String(), bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	mres, err := app.Test(req)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if mres.StatusCode != http.StatusOK {
		t.Fatalf("move status=%d", mres.StatusCode)
	}

	// moving a missing idea reads like not found, never forbidden
	req = httptest.NewRequest(http.MethodPut, "/boards/ideas/"+uuid.NewString(), bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	nres, _ := app.Test(req)
	if nres.StatusCode != http.StatusNotFound {
		t.Fatalf("move missing status=%d, want 404", nres.StatusCode)
	}

	dres, err := app.Test(httptest.NewRequest(http.MethodDelete, "/boards/ideas/"+created.Data.ID.String(), nil))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if dres.StatusCode != http.StatusOK {
		t.Fatalf("delete status=%d", dres.StatusCode)
	}
	var deleted struct {
		Data struct {
			TotalPoints int `json:"total_points"`
		}
	}
	if err := json.NewDecoder(dres.Body).Decode(&deleted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if deleted.Data.TotalPoints != 0 {
		t.Fatalf("total_points after delete=%d, want 0", deleted.Data.TotalPoints)
	}
}

func TestGetBoard_ScopedToCaller(t *testing.T) {
	client := newTestClient(t)
	uid, pid := seedUserAndProject(t, client, "mine")
	otherID, otherPID := seedUserAndProject(t, client, "other")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Idea.Create().SetContent("mine").SetOwnerID(uid).SetProjectID(pid).Save(ctx); err != nil {
		t.Fatalf("seed idea: %v", err)
	}
	if _, err := client.Idea.Create().SetContent("theirs").SetOwnerID(otherID).SetProjectID(otherPID).Save(ctx); err != nil {
		t.Fatalf("seed foreign idea: %v", err)
	}

	app := newBoardsApp(client, uid)
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/boards/"+pid.String(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Ideas       []json.RawMessage `json:"ideas"`
			TotalPoints int               `json:"total_points"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Ideas) != 1 || env.Data.TotalPoints != 1 {
		t.Fatalf("ideas=%d points=%d, want 1/1", len(env.Data.Ideas), env.Data.TotalPoints)
	}
}
