package board

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSaveBoardRequiresProject(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	u, _ := seedUserAndProject(t, client, "u1")

	_, err := store.SaveBoard(context.Background(), u.ID, SaveInput{
		Statement: StatementInput{Content: "anything"},
	})
	if !errors.Is(err, ErrMissingProject) {
		t.Fatalf("want ErrMissingProject, got %v", err)
	}
}

func TestSaveBoardInsertsAndUpserts(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	res, err := store.SaveBoard(ctx, u.ID, SaveInput{
		Ideas: []NodeInput{
			{Content: "solar pump", X: 10, Y: 10},
			{Content: "rain tank", X: 20, Y: 20},
		},
		Frames:    []NodeInput{{Content: "water", X: 0, Y: 0}},
		Statement: StatementInput{Content: "no clean water", ProjectID: &p.ID},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.TotalPoints != 3 {
		t.Fatalf("points = %d, want 3", res.TotalPoints)
	}
	if !res.CreatedStatement {
		t.Fatalf("first save should create the statement")
	}

	ideas, _ := store.Ideas(ctx, u.ID, &p.ID)
	if len(ideas) != 2 {
		t.Fatalf("got %d ideas, want 2", len(ideas))
	}

	// referencing an existing idea updates it in place
	res, err = store.SaveBoard(ctx, u.ID, SaveInput{
		Ideas: []NodeInput{
			{Ref: ClientRef{Existing: true, ID: ideas[0].ID}, Content: "solar pump v2", X: 99, Y: 98},
		},
		Statement: StatementInput{Content: "ignored", ProjectID: &p.ID},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.TotalPoints != 3 {
		t.Fatalf("points after update = %d, want 3", res.TotalPoints)
	}
	fresh, err := client.Idea.Get(ctx, ideas[0].ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if fresh.Content != "solar pump v2" || fresh.X != 99 || fresh.Y != 98 {
		t.Fatalf("idea not updated in place: %q (%v,%v)", fresh.Content, fresh.X, fresh.Y)
	}

	// a stale reference falls back to insert
	res, err = store.SaveBoard(ctx, u.ID, SaveInput{
		Ideas: []NodeInput{
			{Ref: ClientRef{Existing: true, ID: uuid.New()}, Content: "ghost", X: 1, Y: 1},
		},
		Statement: StatementInput{Content: "ignored", ProjectID: &p.ID},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.TotalPoints != 4 {
		t.Fatalf("points after fallback insert = %d, want 4", res.TotalPoints)
	}
}

func TestSaveBoardNewIdeasDuplicateConnectionsDoNot(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	in := SaveInput{
		Ideas:     []NodeInput{{Content: "dup", X: 1, Y: 1}},
		Statement: StatementInput{Content: "root", ProjectID: &p.ID},
		Connections: []ConnectionInput{
			{SourceID: "a", TargetID: "b"},
			{SourceID: "a", TargetID: "b"},
		},
	}
	if _, err := store.SaveBoard(ctx, u.ID, in); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if _, err := store.SaveBoard(ctx, u.ID, in); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	// ideas without ids insert every time, connections dedupe by tuple
	ideas, _ := store.Ideas(ctx, u.ID, &p.ID)
	if len(ideas) != 2 {
		t.Fatalf("got %d ideas, want 2", len(ideas))
	}
	conns, err := store.Connections(ctx, u.ID, &p.ID)
	if err != nil {
		t.Fatalf("connections: %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("got %d connections, want 1", len(conns))
	}
	if conns[0].SourceID != "a" || conns[0].TargetID != "b" {
		t.Fatalf("connection tuple = (%q,%q)", conns[0].SourceID, conns[0].TargetID)
	}
}

func TestSaveBoardStatementFirstWriteWins(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u, p := seedUserAndProject(t, client, "u1")

	first, err := store.SaveBoard(ctx, u.ID, SaveInput{
		Statement: StatementInput{Content: "original", ProjectID: &p.ID},
	})
	if err != nil {
		t.Fatalf("save 1: %v", err)
	}
	second, err := store.SaveBoard(ctx, u.ID, SaveInput{
		Statement: StatementInput{Content: "rewritten", ProjectID: &p.ID},
	})
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if second.CreatedStatement {
		t.Fatalf("second save must not create a new statement")
	}
	if first.StatementID != second.StatementID {
		t.Fatalf("statement id changed across saves")
	}

	st, err := client.ProblemStatement.Get(ctx, first.StatementID)
	if err != nil {
		t.Fatalf("reload statement: %v", err)
	}
	if st.Content != "original" {
		t.Fatalf("statement content = %q, want first write kept", st.Content)
	}

	// the project back-reference points at the statement created first
	proj, err := client.Project.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if proj.IdeationSessionID == nil || *proj.IdeationSessionID != first.StatementID {
		t.Fatalf("ideation session back-reference not set to first statement")
	}
}

func TestParseClientRef(t *testing.T) {
	id := uuid.New()
	ref := ParseClientRef(IdeaRefPrefix, "idea-"+id.String())
	if !ref.Existing || ref.ID != id {
		t.Fatalf("parsed ref = %+v", ref)
	}
	for _, raw := range []string{"", "idea-not-a-uuid", "frame-" + id.String(), ProblemStatementAnchor} {
		if ref := ParseClientRef(IdeaRefPrefix, raw); ref.Existing {
			t.Fatalf("%q should parse as new", raw)
		}
	}
	if ref := ParseClientRef(FrameRefPrefix, "frame-"+id.String()); !ref.Existing || ref.ID != id {
		t.Fatalf("frame ref = %+v", ref)
	}
}
