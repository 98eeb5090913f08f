package stage

import "testing"

func TestClassifyNilSnapshot(t *testing.T) {
	got := Classify(nil, 42)
	if got.Stage != FirstStage {
		t.Fatalf("stage = %d, want %d", got.Stage, FirstStage)
	}
	if got.Progress != 0 {
		t.Fatalf("progress = %d, want 0", got.Progress)
	}
	for n := FirstStage; n <= LastStage; n++ {
		if got.StageProgress[n] != 0 {
			t.Fatalf("stage %d progress = %d, want 0", n, got.StageProgress[n])
		}
	}
}

func TestClassifyProgressIsMultipleOfWeight(t *testing.T) {
	snaps := []*Snapshot{
		nil,
		{},
		{TeamInfo: &TeamInfo{SchoolName: "A"}},
		{ProblemInfo: &ProblemInfo{HasSelectedPredefinedProblem: true}},
		{HasSolution: true},
		{Prototype: &PrototypeRef{Resolved: true, FileCount: 2}},
		{
			TeamInfo:    &TeamInfo{SchoolName: "A"},
			ProblemInfo: &ProblemInfo{ProblemType: "custom", HasCustomProblem: true},
			HasSolution: true,
			Prototype:   &PrototypeRef{Resolved: true, FileCount: 1},
		},
	}
	for _, s := range snaps {
		for _, count := range []int{0, 9, 10, 100} {
			got := Classify(s, count)
			if got.Progress%StageWeight != 0 {
				t.Fatalf("progress %d not a multiple of %d", got.Progress, StageWeight)
			}
			if got.Progress < 0 || got.Progress > 100 {
				t.Fatalf("progress %d out of range", got.Progress)
			}
			sum := 0
			for n := FirstStage; n <= LastStage; n++ {
				sum += got.StageProgress[n]
			}
			if sum != got.Progress {
				t.Fatalf("stage progress sum %d != progress %d", sum, got.Progress)
			}
		}
	}
}

func TestClassifyNonContiguousCompletion(t *testing.T) {
	// Stages 1-3 complete, 4 and 5 not: pointer sits on 4.
	s := &Snapshot{
		TeamInfo:    &TeamInfo{SchoolName: "Hilltop"},
		ProblemInfo: &ProblemInfo{HasSelectedPredefinedProblem: true},
	}
	got := Classify(s, IdeationThreshold)
	if got.Stage != ConceptualSolution || got.Progress != 60 {
		t.Fatalf("got stage %d progress %d, want 4/60", got.Stage, got.Progress)
	}

	// Stage 4 complete while stage 3 is not: pointer stays on 3, yet the
	// completed later stage still counts toward progress.
	s = &Snapshot{
		TeamInfo:    &TeamInfo{SchoolName: "Hilltop"},
		ProblemInfo: &ProblemInfo{HasSelectedPredefinedProblem: true},
		HasSolution: true,
	}
	got = Classify(s, IdeationThreshold-1)
	if got.Stage != Ideation {
		t.Fatalf("stage = %d, want %d", got.Stage, Ideation)
	}
	if got.Progress != 60 {
		t.Fatalf("progress = %d, want 60", got.Progress)
	}
}

func TestClassifyIdeationThreshold(t *testing.T) {
	got := Classify(&Snapshot{}, IdeationThreshold-1)
	if got.StageProgress[Ideation] != 0 {
		t.Fatalf("%d ideas should not complete ideation", IdeationThreshold-1)
	}
	got = Classify(&Snapshot{}, IdeationThreshold)
	if got.StageProgress[Ideation] != StageWeight {
		t.Fatalf("%d ideas should complete ideation", IdeationThreshold)
	}
}

func TestClassifyPrototypeResolution(t *testing.T) {
	base := Snapshot{
		TeamInfo:    &TeamInfo{SchoolName: "Hilltop"},
		ProblemInfo: &ProblemInfo{HasSelectedPredefinedProblem: true},
		HasSolution: true,
	}

	s := base
	s.Prototype = &PrototypeRef{Resolved: false, FileCount: 3}
	got := Classify(&s, IdeationThreshold)
	if got.Stage != Prototyping || got.Progress != 80 {
		t.Fatalf("unresolved prototype: got stage %d progress %d, want 5/80", got.Stage, got.Progress)
	}

	s = base
	s.Prototype = &PrototypeRef{Resolved: true, FileCount: 0}
	got = Classify(&s, IdeationThreshold)
	if got.StageProgress[Prototyping] != 0 {
		t.Fatalf("resolved prototype without files should not complete stage 5")
	}

	s = base
	s.Prototype = &PrototypeRef{Resolved: true, FileCount: 1}
	got = Classify(&s, IdeationThreshold)
	if got.Stage != Prototyping || got.Progress != 100 {
		t.Fatalf("got stage %d progress %d, want 5/100", got.Stage, got.Progress)
	}
}

func TestClassifyCustomProblemRequiresBothFields(t *testing.T) {
	got := Classify(&Snapshot{ProblemInfo: &ProblemInfo{ProblemType: "custom"}}, 0)
	if got.StageProgress[ProblemDiscovery] != 0 {
		t.Fatalf("custom type without custom payload should not complete stage 2")
	}
	got = Classify(&Snapshot{ProblemInfo: &ProblemInfo{HasCustomProblem: true}}, 0)
	if got.StageProgress[ProblemDiscovery] != 0 {
		t.Fatalf("custom payload without custom type should not complete stage 2")
	}
	got = Classify(&Snapshot{ProblemInfo: &ProblemInfo{ProblemType: "custom", HasCustomProblem: true}}, 0)
	if got.StageProgress[ProblemDiscovery] != StageWeight {
		t.Fatalf("custom type with payload should complete stage 2")
	}
}

func TestClassifyConcreteScenario(t *testing.T) {
	s := &Snapshot{
		TeamInfo:    &TeamInfo{SchoolName: "Lincoln High"},
		ProblemInfo: &ProblemInfo{ProblemType: "custom", HasCustomProblem: true},
	}
	got := Classify(s, 12)
	if got.Stage != ConceptualSolution {
		t.Fatalf("stage = %d, want %d", got.Stage, ConceptualSolution)
	}
	if got.Name != "Conceptual Solution" {
		t.Fatalf("name = %q", got.Name)
	}
	if got.Progress != 60 {
		t.Fatalf("progress = %d, want 60", got.Progress)
	}
	want := map[int]int{1: 20, 2: 20, 3: 20, 4: 0, 5: 0}
	for n, w := range want {
		if got.StageProgress[n] != w {
			t.Fatalf("stage %d progress = %d, want %d", n, got.StageProgress[n], w)
		}
	}
}
