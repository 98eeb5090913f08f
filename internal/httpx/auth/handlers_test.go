package auth

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
	"sdg-innovation-api/ent/identity"
	"sdg-innovation-api/ent/user"
	"sdg-innovation-api/internal/config"
	testutil "sdg-innovation-api/internal/httpx/kit/testutil"
)

func newTestApp(t *testing.T, client *ent.Client, cfg *config.Config) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/auth/register", RegisterHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(cfg, client)) },
		func(app *fiber.App) { app.Post("/auth/refresh", RefreshHandler(cfg)) },
	)
}

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
	ctx, cancel := contextWithT(t)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return cfg
}

func TestRegister_CreatesUserAndIdentity(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	body := RegisterRequest{Username: "alice", Password: "P@ssw0rd", DisplayName: "Alice"}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Code string
		Data TokenResponse
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token: %+v", env.Data)
	}

	ctx, cancel := contextWithT(t)
	defer cancel()
	if n, err := client.User.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("users=%d err=%v", n, err)
	}
	if n, err := client.Identity.Query().Count(ctx); err != nil || n != 1 {
		t.Fatalf("identities=%d err=%v", n, err)
	}

	// duplicate username is rejected
	res2, _ := app.Test(httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(b)))
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register status=%d", res2.StatusCode)
	}
}

func TestLogin_Password_IssuesToken(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	ctx, cancel := contextWithT(t)
	defer cancel()
	u, err := client.User.Create().SetUsername("alice").SetDisplayName("Alice").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	hash, err := HashPassword("P@ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, err = client.Identity.Create().SetProvider(identity.ProviderPassword).SetIdentifier("alice").SetSecretHash(hash).SetUser(u).Save(ctx)
	if err != nil {
		t.Fatalf("create identity: %v", err)
	}

	in := LoginRequest{Identifier: "alice", Password: "P@ssw0rd"}
	b, _ := json.Marshal(in)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data TokenResponse }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.AccessToken == "" {
		t.Fatalf("missing access_token")
	}

	claims, err := ParseAndValidate(cfg, env.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "user:"+u.ID.String() || claims.Kind != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// wrong password
	bad, _ := json.Marshal(LoginRequest{Identifier: "alice", Password: "nope"})
	breq := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(bad))
	breq.Header.Set("Content-Type", "application/json")
	bres, _ := app.Test(breq)
	if bres.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password status=%d", bres.StatusCode)
	}
}

func TestLogin_AdminGetsRole(t *testing.T) {
	client := newTestClient(t)
	cfg := newTestConfig()
	app := newTestApp(t, client, cfg)

	ctx, cancel := contextWithT(t)
	defer cancel()
	u, err := client.User.Create().SetUsername("root").SetType(user.TypeAdmin).Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	hash, _ := HashPassword("P@ssw0rd")
	if _, err := client.Identity.Create().SetProvider(identity.ProviderPassword).SetIdentifier("root").SetSecretHash(hash).SetUser(u).Save(ctx); err != nil {
		t.Fatalf("create identity: %v", err)
	}

	b, _ := json.Marshal(LoginRequest{Identifier: "root", Password: "P@ssw0rd"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	var env struct{ Data TokenResponse }
	_ = json.NewDecoder(res.Body).Decode(&env)
	claims, err := ParseAndValidate(cfg, env.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("roles = %v, want [admin]", claims.Roles)
	}
}

func contextWithT(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}
