package users

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

func newUsersApp(client *ent.Client, userID uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + userID.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Get("/users/me", GetProfileHandler(client))
			app.Put("/users/me", UpdateProfileHandler(client))
			app.Get("/admin/users", ListUsersHandler(client))
		},
	)
}

func TestProfileGetAndUpdate(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername("me").SetDisplayName("Old Name").Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	app := newUsersApp(client, u.ID)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res.StatusCode)
	}

	name := "New Name"
	b, _ := json.Marshal(UpdateProfileRequest{DisplayName: &name})
	req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	ures, err := app.Test(req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ures.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d", ures.StatusCode)
	}
	if got := client.User.GetX(ctx, u.ID).DisplayName; got != "New Name" {
		t.Fatalf("display name = %q", got)
	}
}

func TestListUsersPaging(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var first uuid.UUID
	for _, name := range []string{"u1", "u2", "u3"} {
		u, err := client.User.Create().SetUsername(name).Save(ctx)
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		if first == uuid.Nil {
			first = u.ID
		}
	}
	app := newUsersApp(client, first)

	res, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/users?limit=2", nil))
	var env struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			HasMore bool `json:"has_more"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 || !env.Meta.HasMore {
		t.Fatalf("page len=%d has_more=%v", len(env.Data), env.Meta.HasMore)
	}
}
