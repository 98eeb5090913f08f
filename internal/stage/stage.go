// Package stage classifies a project's position in the five-stage innovation
// pipeline. The classifier is a pure function: it performs no I/O and the
// caller is responsible for resolving references (notably the prototype's
// file list) before calling it.
package stage

// Stage numbers. Each completed stage is worth StageWeight percent.
const (
	ExciteEnrol = iota + 1
	ProblemDiscovery
	Ideation
	ConceptualSolution
	Prototyping

	FirstStage = ExciteEnrol
	LastStage  = Prototyping

	// StageWeight is the progress contribution of one completed stage.
	StageWeight = 20

	// IdeationThreshold is the idea count that completes the Ideation stage.
	IdeationThreshold = 10
)

var stageNames = map[int]string{
	ExciteEnrol:        "Excite & Enrol",
	ProblemDiscovery:   "Problem Discovery",
	Ideation:           "Ideation",
	ConceptualSolution: "Conceptual Solution",
	Prototyping:        "Prototyping",
}

// Name returns the display name of a stage number, or "" if out of range.
func Name(n int) string { return stageNames[n] }

// TeamInfo carries the stage-1 criterion fields of a project snapshot.
type TeamInfo struct {
	SchoolName string
}

// ProblemInfo carries the stage-2 criterion fields of a project snapshot.
type ProblemInfo struct {
	HasSelectedPredefinedProblem bool
	ProblemType                  string // "predefined" | "custom"
	HasCustomProblem             bool
}

// PrototypeRef describes the prototype reference on a snapshot. Resolved is
// false when the caller only had an id and did not load the aggregate; an
// unresolved prototype never completes stage 5.
type PrototypeRef struct {
	Resolved  bool
	FileCount int
}

// Snapshot is a point-in-time view of the project fields the classifier
// reads. Nil sub-structs mean the data was never captured.
type Snapshot struct {
	TeamInfo    *TeamInfo
	ProblemInfo *ProblemInfo
	HasSolution bool
	Prototype   *PrototypeRef
}

// Result is the classification of one project.
type Result struct {
	// Stage is the first incomplete stage scanned 1..5 (5 when all are
	// complete). With non-contiguous completion this can lag Progress:
	// stages 1,2,4 done but 3 not still reports Stage 3 at Progress 60.
	Stage int    `json:"stage"`
	Name  string `json:"name"`
	// Progress is the sum of completed stage weights, 0..100 step 20.
	Progress int `json:"progress"`
	// StageProgress maps stage number to 0 or StageWeight.
	StageProgress map[int]int `json:"stage_progress"`
}

// Classify evaluates all five stage criteria independently and returns the
// project's stage pointer and progress. A nil snapshot (project not yet
// created) yields stage 1 at zero progress. Classify never fails: missing or
// malformed data degrades to "incomplete".
func Classify(s *Snapshot, ideaCount int) Result {
	sp := map[int]int{
		ExciteEnrol:        0,
		ProblemDiscovery:   0,
		Ideation:           0,
		ConceptualSolution: 0,
		Prototyping:        0,
	}
	if s == nil {
		return Result{Stage: FirstStage, Name: Name(FirstStage), Progress: 0, StageProgress: sp}
	}

	// Stage 1: team info captured with a school name.
	if s.TeamInfo != nil && s.TeamInfo.SchoolName != "" {
		sp[ExciteEnrol] = StageWeight
	}

	// Stage 2: a predefined problem was selected, or a custom one authored.
	if pi := s.ProblemInfo; pi != nil {
		if pi.HasSelectedPredefinedProblem || (pi.ProblemType == "custom" && pi.HasCustomProblem) {
			sp[ProblemDiscovery] = StageWeight
		}
	}

	// Stage 3: enough ideas on the board.
	if ideaCount >= IdeationThreshold {
		sp[Ideation] = StageWeight
	}

	// Stage 4: a solution reference exists (existence only).
	if s.HasSolution {
		sp[ConceptualSolution] = StageWeight
	}

	// Stage 5: a prototype exists, was resolved by the caller, and has files.
	if p := s.Prototype; p != nil && p.Resolved && p.FileCount > 0 {
		sp[Prototyping] = StageWeight
	}

	progress := 0
	for n := FirstStage; n <= LastStage; n++ {
		progress += sp[n]
	}

	current := LastStage
	for n := FirstStage; n <= LastStage; n++ {
		if sp[n] == 0 {
			current = n
			break
		}
	}

	return Result{Stage: current, Name: Name(current), Progress: progress, StageProgress: sp}
}
