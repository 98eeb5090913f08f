package board

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sdg-innovation-api/ent"
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

func seedUserAndProject(t *testing.T, client *ent.Client, name string) (*ent.User, *ent.Project) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().SetUsername(name).SetDisplayName(name).Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := client.Project.Create().SetTitle(name + " project").SetOwnerID(u.ID).Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return u, p
}

func TestIdeasScopedStrictlyToProject(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	if _, err := store.AddIdea(ctx, u.ID, p.ID, "water access", 10, 20); err != nil {
		t.Fatalf("add idea: %v", err)
	}

	// nil project id must match nothing, never widen to all of the user's ideas
	got, err := store.Ideas(ctx, u.ID, nil)
	if err != nil {
		t.Fatalf("ideas: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("nil project returned %d ideas, want 0", len(got))
	}

	got, err = store.Ideas(ctx, u.ID, &p.ID)
	if err != nil {
		t.Fatalf("ideas: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d ideas, want 1", len(got))
	}
}

func TestAddIdeaPreservesEmptyContentAndPosition(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	if _, err := store.AddIdea(ctx, u.ID, p.ID, "", 100, 200); err != nil {
		t.Fatalf("add idea: %v", err)
	}
	got, err := store.Ideas(ctx, u.ID, &p.ID)
	if err != nil {
		t.Fatalf("ideas: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d ideas, want 1", len(got))
	}
	if got[0].Content != "" || got[0].X != 100 || got[0].Y != 200 {
		t.Fatalf("idea = %q (%v,%v), want \"\" (100,200)", got[0].Content, got[0].X, got[0].Y)
	}
}

func TestMutationsByNonOwnerFailLikeMissing(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	owner, p := seedUserAndProject(t, client, "owner")
	intruder, _ := seedUserAndProject(t, client, "intruder")

	ideaRow, err := store.AddIdea(ctx, owner.ID, p.ID, "seed", 1, 1)
	if err != nil {
		t.Fatalf("add idea: %v", err)
	}

	// foreign id and missing id must be indistinguishable
	_, errForeign := store.UpdateIdeaPosition(ctx, intruder.ID, ideaRow.ID, 5, 5)
	_, errMissing := store.UpdateIdeaPosition(ctx, intruder.ID, uuid.New(), 5, 5)
	if !errors.Is(errForeign, ErrNotFoundOrUnauthorized) || !errors.Is(errMissing, ErrNotFoundOrUnauthorized) {
		t.Fatalf("want ErrNotFoundOrUnauthorized for both, got %v / %v", errForeign, errMissing)
	}

	if _, err := store.DeleteIdea(ctx, intruder.ID, ideaRow.ID); !errors.Is(err, ErrNotFoundOrUnauthorized) {
		t.Fatalf("delete by non-owner: %v", err)
	}

	// the idea is untouched
	fresh, err := client.Idea.Get(ctx, ideaRow.ID)
	if err != nil {
		t.Fatalf("reload idea: %v", err)
	}
	if fresh.X != 1 || fresh.Y != 1 {
		t.Fatalf("idea moved by non-owner: (%v,%v)", fresh.X, fresh.Y)
	}
}

func TestUpdateAndDeleteIdeaByOwner(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	row, err := store.AddIdea(ctx, u.ID, p.ID, "seed", 1, 1)
	if err != nil {
		t.Fatalf("add idea: %v", err)
	}
	moved, err := store.UpdateIdeaPosition(ctx, u.ID, row.ID, 30, 40)
	if err != nil {
		t.Fatalf("move idea: %v", err)
	}
	if moved.X != 30 || moved.Y != 40 {
		t.Fatalf("position = (%v,%v), want (30,40)", moved.X, moved.Y)
	}

	gotProject, err := store.DeleteIdea(ctx, u.ID, row.ID)
	if err != nil {
		t.Fatalf("delete idea: %v", err)
	}
	if gotProject != p.ID {
		t.Fatalf("deleted idea reported project %s, want %s", gotProject, p.ID)
	}
	left, _ := store.Ideas(ctx, u.ID, &p.ID)
	if len(left) != 0 {
		t.Fatalf("idea still present after delete")
	}
}

func TestTotalPointsCountsIdeasAndFrames(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")
	other, po := seedUserAndProject(t, client, "u2")

	for i := 0; i < 3; i++ {
		if _, err := store.AddIdea(ctx, u.ID, p.ID, "i", 0, 0); err != nil {
			t.Fatalf("add idea: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := store.AddFrame(ctx, u.ID, p.ID, "f", 0, 0); err != nil {
			t.Fatalf("add frame: %v", err)
		}
	}
	// noise in another scope
	if _, err := store.AddIdea(ctx, other.ID, po.ID, "other", 0, 0); err != nil {
		t.Fatalf("add idea: %v", err)
	}

	points, err := store.TotalPoints(ctx, u.ID, p.ID)
	if err != nil {
		t.Fatalf("total points: %v", err)
	}
	ideas, _ := store.Ideas(ctx, u.ID, &p.ID)
	frames, _ := store.Frames(ctx, u.ID, &p.ID)
	if points != len(ideas)+len(frames) {
		t.Fatalf("points = %d, want %d", points, len(ideas)+len(frames))
	}
	if points != 5 {
		t.Fatalf("points = %d, want 5", points)
	}
}

func TestProblemStatementsNewestFirstAndDedupe(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p1 := seedUserAndProject(t, client, "u1")
	p2, err := client.Project.Create().SetTitle("second").SetOwnerID(u.ID).Save(ctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	old, err := client.ProblemStatement.Create().
		SetContent("old").
		SetCreatedAt(time.Now().Add(-time.Hour)).
		SetOwnerID(u.ID).
		SetProjectID(p1.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create statement: %v", err)
	}
	_ = old
	if _, err := store.AddProblemStatement(ctx, u.ID, p1.ID, "new"); err != nil {
		t.Fatalf("add statement: %v", err)
	}
	if _, err := store.AddProblemStatement(ctx, u.ID, p2.ID, "other project"); err != nil {
		t.Fatalf("add statement: %v", err)
	}

	rows, err := store.ProblemStatements(ctx, u.ID)
	if err != nil {
		t.Fatalf("statements: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d statements, want 3", len(rows))
	}
	if rows[0].Content == "old" {
		t.Fatalf("expected newest first")
	}

	deduped := DedupeByProject(rows)
	if len(deduped) != 2 {
		t.Fatalf("got %d deduped, want 2", len(deduped))
	}
	for _, r := range deduped {
		if r.Edges.Project.ID == p1.ID && r.Content != "new" {
			t.Fatalf("dedupe kept %q for project 1, want the newest", r.Content)
		}
	}
}

func TestProjectTeardownCounts(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	for i := 0; i < 2; i++ {
		if _, err := store.AddIdea(ctx, u.ID, p.ID, "i", 0, 0); err != nil {
			t.Fatalf("add idea: %v", err)
		}
	}
	if _, err := store.AddFrame(ctx, u.ID, p.ID, "f", 0, 0); err != nil {
		t.Fatalf("add frame: %v", err)
	}
	if _, err := store.AddConnection(ctx, u.ID, p.ID, "idea-a", "idea-b"); err != nil {
		t.Fatalf("add connection: %v", err)
	}
	if _, err := store.AddProblemStatement(ctx, u.ID, p.ID, "root"); err != nil {
		t.Fatalf("add statement: %v", err)
	}

	if n, err := store.DeleteIdeasForProject(ctx, u.ID, p.ID); err != nil || n != 2 {
		t.Fatalf("delete ideas: n=%d err=%v", n, err)
	}
	if n, err := store.DeleteFramesForProject(ctx, u.ID, p.ID); err != nil || n != 1 {
		t.Fatalf("delete frames: n=%d err=%v", n, err)
	}
	if n, err := store.DeleteConnectionsForProject(ctx, u.ID, p.ID); err != nil || n != 1 {
		t.Fatalf("delete connections: n=%d err=%v", n, err)
	}
	if n, err := store.DeleteStatementsForProject(ctx, u.ID, p.ID); err != nil || n != 1 {
		t.Fatalf("delete statements: n=%d err=%v", n, err)
	}

	points, err := store.TotalPoints(ctx, u.ID, p.ID)
	if err != nil || points != 0 {
		t.Fatalf("points after teardown: %d (%v)", points, err)
	}
}
