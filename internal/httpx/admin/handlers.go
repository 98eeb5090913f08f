// Package admin provides platform administration handlers: schools, programs,
// school-program enrollment and user promotion. The admin role gate sits in
// the router.
package admin

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/school"
	"sdg-innovation-api/ent/schoolprogram"
	"sdg-innovation-api/ent/user"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/logx"
	"sdg-innovation-api/internal/mqx"
)

var adminLogger = logx.GetScope("admin")

// SchoolRequest creates or updates a school.
// swagger:model SchoolRequest
type SchoolRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// ProgramRequest creates or updates a program.
// swagger:model ProgramRequest
type ProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// EnrollRequest enrols a school into a program.
// swagger:model EnrollRequest
type EnrollRequest struct {
	SchoolID         uuid.UUID `json:"school_id"`
	ProgramID        uuid.UUID `json:"program_id"`
	NumberOfStudents int       `json:"number_of_students"`
}

// PromoteUserRequest changes a user's type.
// swagger:model PromoteUserRequest
type PromoteUserRequest struct {
	Type string `json:"type"` // student | admin | program_admin
}

// ListSchoolsHandler lists schools sorted by name.
//
//	@Summary      List schools
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/schools [get]
func ListSchoolsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rows, err := client.School.Query().Order(ent.Asc(school.FieldName)).All(ctx)
		if err != nil {
			return kit.InternalError("query schools failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// CreateSchoolHandler registers a school.
//
//	@Summary      Create school
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  admin.SchoolRequest  true  "school payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/admin/schools [post]
func CreateSchoolHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SchoolRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		created, err := client.School.Create().
			SetName(req.Name).
			SetAddress(req.Address).
			SetCity(req.City).
			SetState(req.State).
			Save(ctx)
		if err != nil {
			return kit.BadRequest("school already exists", req.Name)
		}
		return kit.Created(c, created)
	}
}

// UpdateSchoolHandler updates a school.
//
//	@Summary      Update school
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string               true  "School UUID"
//	@Param        body  body  admin.SchoolRequest  true  "school payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/schools/{id} [put]
func UpdateSchoolHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid school id", c.Params("id"))
		}
		var req SchoolRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.School.UpdateOneID(id)
		if strings.TrimSpace(req.Name) != "" {
			upd = upd.SetName(req.Name)
		}
		if req.Address != "" {
			upd = upd.SetAddress(req.Address)
		}
		if req.City != "" {
			upd = upd.SetCity(req.City)
		}
		if req.State != "" {
			upd = upd.SetState(req.State)
		}
		if req.IsActive != nil {
			upd = upd.SetIsActive(*req.IsActive)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("school not found")
			}
			return kit.InternalError("update school failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// ListProgramsHandler lists programs sorted by name.
//
//	@Summary      List programs
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/programs [get]
func ListProgramsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rows, err := client.Program.Query().Order(ent.Asc(program.FieldName)).All(ctx)
		if err != nil {
			return kit.InternalError("query programs failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// CreateProgramHandler registers a program.
//
//	@Summary      Create program
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  admin.ProgramRequest  true  "program payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/admin/programs [post]
func CreateProgramHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ProgramRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			return kit.BadRequest("name required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		created, err := client.Program.Create().
			SetName(req.Name).
			SetDescription(req.Description).
			Save(ctx)
		if err != nil {
			return kit.BadRequest("program already exists", req.Name)
		}
		return kit.Created(c, created)
	}
}

// UpdateProgramHandler updates a program.
//
//	@Summary      Update program
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                true  "Program UUID"
//	@Param        body  body  admin.ProgramRequest  true  "program payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/programs/{id} [put]
func UpdateProgramHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid program id", c.Params("id"))
		}
		var req ProgramRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.Program.UpdateOneID(id)
		if strings.TrimSpace(req.Name) != "" {
			upd = upd.SetName(req.Name)
		}
		if req.Description != "" {
			upd = upd.SetDescription(req.Description)
		}
		if req.IsActive != nil {
			upd = upd.SetIsActive(*req.IsActive)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("program not found")
			}
			return kit.InternalError("update program failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// EnrollSchoolHandler enrols a school into a program. A school enrols into a
// program at most once; repeat calls update the student count.
//
//	@Summary      Enrol school into program
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  admin.EnrollRequest  true  "enrollment payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/enrollments [post]
func EnrollSchoolHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req EnrollRequest
		if err := c.BodyParser(&req); err != nil || req.SchoolID == uuid.Nil || req.ProgramID == uuid.Nil {
			return kit.BadRequest("school_id and program_id required", nil)
		}
		if req.NumberOfStudents < 0 {
			return kit.BadRequest("number_of_students must not be negative", req.NumberOfStudents)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := client.SchoolProgram.Query().
			Where(
				schoolprogram.HasSchoolWith(school.IDEQ(req.SchoolID)),
				schoolprogram.HasProgramWith(program.IDEQ(req.ProgramID)),
			).
			Only(ctx)
		if err == nil {
			updated, err := client.SchoolProgram.UpdateOneID(existing.ID).
				SetNumberOfStudents(req.NumberOfStudents).
				SetIsActive(true).
				Save(ctx)
			if err != nil {
				return kit.InternalError("update enrollment failed", err.Error())
			}
			return kit.OK(c, updated)
		}
		if !ent.IsNotFound(err) {
			return kit.InternalError("check enrollment failed", err.Error())
		}

		created, err := client.SchoolProgram.Create().
			SetSchoolID(req.SchoolID).
			SetProgramID(req.ProgramID).
			SetNumberOfStudents(req.NumberOfStudents).
			Save(ctx)
		if err != nil {
			return kit.NotFound("school or program not found")
		}

		if pub != nil {
			body, _ := json.Marshal(fiber.Map{"school_id": req.SchoolID, "program_id": req.ProgramID, "number_of_students": req.NumberOfStudents})
			if err := pub.Publish(ctx, mqx.EventStudentEnrolled, body); err != nil {
				adminLogger.Sugar().Warnf("publish %s failed: %v", mqx.EventStudentEnrolled, err)
			}
		}
		return kit.Created(c, created)
	}
}

// ListEnrollmentsHandler lists enrollments with both edges loaded.
//
//	@Summary      List enrollments
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/enrollments [get]
func ListEnrollmentsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rows, err := client.SchoolProgram.Query().
			WithSchool().
			WithProgram().
			Order(ent.Desc(schoolprogram.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query enrollments failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// PromoteUserHandler changes a user's type.
//
//	@Summary      Promote user
//	@Description  Change a user's type (student, admin, program_admin)
//	@Tags         admin
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                    true  "User UUID"
//	@Param        body  body  admin.PromoteUserRequest  true  "promotion payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/users/{id}/type [put]
func PromoteUserHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid user id", c.Params("id"))
		}
		var req PromoteUserRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		var ut user.Type
		switch req.Type {
		case string(user.TypeStudent):
			ut = user.TypeStudent
		case string(user.TypeAdmin):
			ut = user.TypeAdmin
		case string(user.TypeProgramAdmin):
			ut = user.TypeProgramAdmin
		default:
			return kit.BadRequest("unknown user type", req.Type)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		updated, err := client.User.UpdateOneID(id).SetType(ut).Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("user not found")
			}
			return kit.InternalError("update user failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}
