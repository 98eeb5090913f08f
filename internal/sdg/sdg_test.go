package sdg

import "testing"

func TestCatalogue(t *testing.T) {
	gs := Goals()
	if len(gs) != 18 {
		t.Fatalf("want 18 goals, got %d", len(gs))
	}
	for i, g := range gs {
		if g.Number != i+1 {
			t.Fatalf("goal %d has number %d", i+1, g.Number)
		}
		if g.Title == "" {
			t.Fatalf("goal %d has empty title", g.Number)
		}
	}
	if Title(18) != "Women and Welfare" {
		t.Fatalf("goal 18 title = %q", Title(18))
	}
	if Valid(0) || Valid(19) {
		t.Fatalf("out-of-range goals must be invalid")
	}
	if Title(0) != "" {
		t.Fatalf("unknown goal should have empty title")
	}
}
