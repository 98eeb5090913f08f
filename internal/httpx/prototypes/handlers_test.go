package prototypes

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
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
	u, err := client.User.Create().SetUsername(name).Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := client.Project.Create().SetTitle(name).SetOwner(u).Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return u.ID, p.ID
}

func newPrototypesApp(client *ent.Client, userID uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + userID.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Post("/prototypes", SavePrototypeHandler(client, nil))
			app.Get("/prototypes/:project_id", GetPrototypeHandler(client))
			app.Post("/prototypes/:project_id/files", AddFileHandler(client))
			app.Delete("/prototypes/:project_id/files/:index", DeleteFileHandler(client))
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

func TestSavePrototype_CreateThenUpdate(t *testing.T) {
	client := newTestClient(t)
	uid, pid := seedUserAndProject(t, client, "proto")
	app := newPrototypesApp(client, uid)

	res := postJSON(t, app, "/prototypes", SavePrototypeRequest{
		ProjectID:   pid,
		Description: "cardboard mockup",
		Files:       []FilePayload{{URL: "https://cdn/a.png", Filename: "a.png"}},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("create status=%d", res.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	proj, err := client.Project.Query().WithPrototype().Only(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if proj.Edges.Prototype == nil || len(proj.Edges.Prototype.Files) != 1 {
		t.Fatalf("prototype edge = %+v", proj.Edges.Prototype)
	}

	// a second save updates in place rather than creating another row
	res2 := postJSON(t, app, "/prototypes", SavePrototypeRequest{ProjectID: pid, Description: "3d print"})
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d", res2.StatusCode)
	}
	if n, _ := client.Prototype.Query().Count(ctx); n != 1 {
		t.Fatalf("prototypes=%d, want 1", n)
	}
}

func TestFileRegistryAddAndDeleteByIndex(t *testing.T) {
	client := newTestClient(t)
	uid, pid := seedUserAndProject(t, client, "files")
	app := newPrototypesApp(client, uid)

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		res := postJSON(t, app, "/prototypes/"+pid.String()+"/files", FilePayload{URL: "https://cdn/" + name, Filename: name})
		if res.StatusCode != http.StatusOK {
			t.Fatalf("add %s status=%d", name, res.StatusCode)
		}
	}

	res, err := app.Test(httptest.NewRequest(http.MethodDelete, "/prototypes/"+pid.String()+"/files/1", nil))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Files []FilePayload `json:"files"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Files) != 2 || env.Data.Files[0].Filename != "a.png" || env.Data.Files[1].Filename != "c.png" {
		t.Fatalf("files after delete = %+v", env.Data.Files)
	}

	// out-of-range index reads as not found
	oob, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/prototypes/"+pid.String()+"/files/"+strconv.Itoa(9), nil))
	if oob.StatusCode != http.StatusNotFound {
		t.Fatalf("oob status=%d, want 404", oob.StatusCode)
	}
}

func TestPrototypeIsOwnerOnly(t *testing.T) {
	client := newTestClient(t)
	_, pid := seedUserAndProject(t, client, "proto_owner")
	intruderID, _ := seedUserAndProject(t, client, "proto_intruder")

	app := newPrototypesApp(client, intruderID)
	res := postJSON(t, app, "/prototypes", SavePrototypeRequest{ProjectID: pid})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign save status=%d, want 403", res.StatusCode)
	}
}
