package kit

import (
	"testing"

	"sdg-innovation-api/ent"
)

func TestApplyProjectSort_ValidateField(t *testing.T) {
	c := ent.NewClient()
	q := c.Project.Query()
	if _, err := ApplyProjectSort(q, "title:asc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ApplyProjectSort(q, "unknown:asc"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := ApplyProjectSort(q, "title:sideways"); err == nil {
		t.Fatalf("expected error for invalid direction")
	}
}
