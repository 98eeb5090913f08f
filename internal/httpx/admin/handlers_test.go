package admin

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
	"sdg-innovation-api/ent/user"
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

func newAdminApp(client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Get("/admin/schools", ListSchoolsHandler(client))
		app.Post("/admin/schools", CreateSchoolHandler(client))
		app.Put("/admin/schools/:id", UpdateSchoolHandler(client))
		app.Get("/admin/programs", ListProgramsHandler(client))
		app.Post("/admin/programs", CreateProgramHandler(client))
		app.Put("/admin/programs/:id", UpdateProgramHandler(client))
		app.Get("/admin/enrollments", ListEnrollmentsHandler(client))
		app.Post("/admin/enrollments", EnrollSchoolHandler(client, nil))
		app.Put("/admin/users/:id/type", PromoteUserHandler(client))
	})
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

func TestSchoolsSortedByName(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(client)

	for _, name := range []string{"Zeta High", "Alpha School", "Mid Academy"} {
		res := postJSON(t, app, "/admin/schools", SchoolRequest{Name: name})
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("create %s status=%d", name, res.StatusCode)
		}
	}
	// duplicate name collapses into a 400
	dup := postJSON(t, app, "/admin/schools", SchoolRequest{Name: "Alpha School"})
	if dup.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate status=%d", dup.StatusCode)
	}

	res, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/schools", nil))
	var env struct {
		Data []struct {
			Name string `json:"name"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 3 || env.Data[0].Name != "Alpha School" || env.Data[2].Name != "Zeta High" {
		t.Fatalf("schools = %+v", env.Data)
	}
}

func TestEnrollmentUpsertsStudentCount(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sch, err := client.School.Create().SetName("Lincoln High").Save(ctx)
	if err != nil {
		t.Fatalf("seed school: %v", err)
	}
	prg, err := client.Program.Create().SetName("Innovation 2026").Save(ctx)
	if err != nil {
		t.Fatalf("seed program: %v", err)
	}

	res := postJSON(t, app, "/admin/enrollments", EnrollRequest{SchoolID: sch.ID, ProgramID: prg.ID, NumberOfStudents: 40})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("enroll status=%d", res.StatusCode)
	}

	// enrolling again updates the count instead of duplicating the row
	res2 := postJSON(t, app, "/admin/enrollments", EnrollRequest{SchoolID: sch.ID, ProgramID: prg.ID, NumberOfStudents: 55})
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("re-enroll status=%d", res2.StatusCode)
	}
	rows, err := client.SchoolProgram.Query().All(ctx)
	if err != nil {
		t.Fatalf("query enrollments: %v", err)
	}
	if len(rows) != 1 || rows[0].NumberOfStudents != 55 {
		t.Fatalf("enrollments = %+v", rows)
	}

	neg := postJSON(t, app, "/admin/enrollments", EnrollRequest{SchoolID: sch.ID, ProgramID: prg.ID, NumberOfStudents: -1})
	if neg.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative count status=%d", neg.StatusCode)
	}
}

func TestPromoteUser(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := client.User.Create().SetUsername("promotee").Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	b, _ := json.Marshal(PromoteUserRequest{Type: "program_admin"})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+u.ID.String()+"/type", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if got := client.User.GetX(ctx, u.ID).Type; got != user.TypeProgramAdmin {
		t.Fatalf("type = %v", got)
	}

	bad, _ := json.Marshal(PromoteUserRequest{Type: "superuser"})
	req = httptest.NewRequest(http.MethodPut, "/admin/users/"+u.ID.String()+"/type", bytes.NewReader(bad))
	req.Header.Set("Content-Type", "application/json")
	bres, _ := app.Test(req)
	if bres.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown type status=%d", bres.StatusCode)
	}
}
