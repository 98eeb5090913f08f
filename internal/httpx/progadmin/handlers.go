// Package progadmin provides the program administrator dashboard: a
// per-school activity rollup within one program.
package progadmin

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/idea"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/schoolprogram"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/stage"
)

// SchoolRollup is one dashboard row.
// swagger:model SchoolRollup
type SchoolRollup struct {
	SchoolID         uuid.UUID `json:"school_id"`
	SchoolName       string    `json:"school_name"`
	NumberOfStudents int       `json:"number_of_students"`
	ProblemCount     int       `json:"problem_count"`
	IdeationCount    int       `json:"ideation_count"`
	SolutionCount    int       `json:"solution_count"`
	Level            int       `json:"level"`
	LevelColor       string    `json:"level_color"`
}

// Dashboard is the rollup response for one program.
// swagger:model Dashboard
type Dashboard struct {
	ProgramID   uuid.UUID      `json:"program_id"`
	ProgramName string         `json:"program_name"`
	Schools     []SchoolRollup `json:"schools"`
}

// schoolActivity tallies project artifacts attributed to one school.
type schoolActivity struct {
	problems  int
	ideations int
	solutions int
}

// rollupActivity scans every project enrolled into the program and groups
// artifact counts by the school name captured on the Excite & Enrol form. A
// project counts as "ideating" once its board carries at least the
// classifier's idea threshold.
func rollupActivity(ctx context.Context, client *ent.Client, programID uuid.UUID) (map[string]*schoolActivity, error) {
	rows, err := client.Project.Query().
		Where(project.TeamInfoNotNil()).
		WithSolution().
		All(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*schoolActivity)
	for _, p := range rows {
		ti := p.TeamInfo
		if ti == nil || ti.EnrolledProgramID != programID || ti.SchoolName == "" {
			continue
		}
		act := byName[ti.SchoolName]
		if act == nil {
			act = &schoolActivity{}
			byName[ti.SchoolName] = act
		}
		if p.ProblemInfo != nil {
			act.problems++
		}
		if p.Edges.Solution != nil {
			act.solutions++
		}
		n, err := client.Idea.Query().Where(idea.HasProjectWith(project.IDEQ(p.ID))).Count(ctx)
		if err != nil {
			return nil, err
		}
		if n >= stage.IdeationThreshold {
			act.ideations++
		}
	}
	return byName, nil
}

// DashboardHandler builds the per-school rollup for one program. Program
// admin only; the role gate sits in the router.
//
//	@Summary      Program dashboard
//	@Description  Per-school activity rollup with traffic-light levels
//	@Tags         progadmin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        program_id  path  string  true  "Program UUID"
//	@Success      200  {object}  progadmin.Dashboard
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/programs/{program_id}/dashboard [get]
func DashboardHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		programID, err := uuid.Parse(c.Params("program_id"))
		if err != nil {
			return kit.BadRequest("invalid program id", c.Params("program_id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()

		prog, err := client.Program.Query().Where(program.IDEQ(programID)).Only(ctx)
		if err != nil {
			return kit.NotFound("program not found")
		}

		enrollments, err := client.SchoolProgram.Query().
			Where(schoolprogram.HasProgramWith(program.IDEQ(programID)), schoolprogram.IsActiveEQ(true)).
			WithSchool().
			All(ctx)
		if err != nil {
			return kit.InternalError("query enrollments failed", err.Error())
		}

		activity, err := rollupActivity(ctx, client, programID)
		if err != nil {
			return kit.InternalError("rollup failed", err.Error())
		}

		out := Dashboard{ProgramID: prog.ID, ProgramName: prog.Name}
		for _, en := range enrollments {
			sch := en.Edges.School
			if sch == nil {
				continue
			}
			act := activity[sch.Name]
			if act == nil {
				act = &schoolActivity{}
			}
			level := calculateLevel(act.problems, act.ideations, act.solutions)
			out.Schools = append(out.Schools, SchoolRollup{
				SchoolID:         sch.ID,
				SchoolName:       sch.Name,
				NumberOfStudents: en.NumberOfStudents,
				ProblemCount:     act.problems,
				IdeationCount:    act.ideations,
				SolutionCount:    act.solutions,
				Level:            level,
				LevelColor:       levelColor(level),
			})
		}
		return kit.OK(c, out)
	}
}
