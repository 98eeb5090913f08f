// Package prototypes provides HTTP handlers for the stage-5 prototype record
// and its file metadata registry. Uploads themselves live in external object
// storage; only the pointers are kept here.
package prototypes

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/schema"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/httpx/mw"
	"sdg-innovation-api/internal/logx"
	"sdg-innovation-api/internal/mqx"
)

var prototypesLogger = logx.GetScope("prototypes")

// FilePayload is one prototype file pointer.
// swagger:model FilePayload
type FilePayload struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// SavePrototypeRequest creates or replaces a project's prototype.
// swagger:model SavePrototypeRequest
type SavePrototypeRequest struct {
	ProjectID   uuid.UUID     `json:"project_id"`
	Description string        `json:"description,omitempty"`
	Files       []FilePayload `json:"files,omitempty"`
}

func toSchemaFiles(in []FilePayload) []schema.PrototypeFile {
	out := make([]schema.PrototypeFile, 0, len(in))
	for _, f := range in {
		out = append(out, schema.PrototypeFile{URL: f.URL, Filename: f.Filename, OriginalName: f.OriginalName, Size: f.Size})
	}
	return out
}

// ownedProjectWithPrototype loads the project, enforces ownership and eager
// loads the prototype edge.
func ownedProjectWithPrototype(ctx context.Context, client *ent.Client, ownerID, projID uuid.UUID) (*ent.Project, error) {
	proj, err := client.Project.Query().
		Where(project.IDEQ(projID)).
		WithOwner().
		WithPrototype().
		Only(ctx)
	if err != nil {
		return nil, kit.NotFound("project not found")
	}
	if proj.Edges.Owner == nil || proj.Edges.Owner.ID != ownerID {
		return nil, fiber.ErrForbidden
	}
	return proj, nil
}

// SavePrototypeHandler creates the project's prototype or updates the
// existing one.
//
//	@Summary      Save prototype
//	@Description  Create or update the prototype record of an owned project
//	@Tags         prototypes
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  prototypes.SavePrototypeRequest  true  "prototype payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/prototypes [post]
func SavePrototypeHandler(client *ent.Client, pub mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req SavePrototypeRequest
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return kit.BadRequest("project_id required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		proj, err := ownedProjectWithPrototype(ctx, client, uid, req.ProjectID)
		if err != nil {
			return err
		}

		var proto *ent.Prototype
		if existing := proj.Edges.Prototype; existing != nil {
			proto, err = client.Prototype.UpdateOneID(existing.ID).
				SetDescription(req.Description).
				SetFiles(toSchemaFiles(req.Files)).
				Save(ctx)
			if err != nil {
				return kit.InternalError("update prototype failed", err.Error())
			}
		} else {
			proto, err = client.Prototype.Create().
				SetDescription(req.Description).
				SetFiles(toSchemaFiles(req.Files)).
				Save(ctx)
			if err != nil {
				return kit.InternalError("create prototype failed", err.Error())
			}
			if err := client.Project.UpdateOneID(req.ProjectID).SetPrototype(proto).Exec(ctx); err != nil {
				return kit.InternalError("attach prototype failed", err.Error())
			}
		}

		if pub != nil {
			body, _ := json.Marshal(fiber.Map{"user_id": uid, "project_id": req.ProjectID, "prototype_id": proto.ID, "file_count": len(proto.Files)})
			if err := pub.Publish(ctx, mqx.EventPrototypeSaved, body); err != nil {
				prototypesLogger.Sugar().Warnf("publish %s failed: %v", mqx.EventPrototypeSaved, err)
			}
		}
		return kit.OK(c, proto)
	}
}

// GetPrototypeHandler returns the prototype of an owned project.
//
//	@Summary      Get prototype
//	@Tags         prototypes
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        project_id  path  string  true  "Project UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/prototypes/{project_id} [get]
func GetPrototypeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("project_id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("project_id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		proj, err := ownedProjectWithPrototype(ctx, client, uid, projID)
		if err != nil {
			return err
		}
		if proj.Edges.Prototype == nil {
			return kit.NotFound("prototype not found")
		}
		return kit.OK(c, proj.Edges.Prototype)
	}
}

// AddFileHandler appends one file pointer to the project's prototype,
// creating the prototype on first use.
//
//	@Summary      Add prototype file
//	@Tags         prototypes
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        project_id  path  string                   true  "Project UUID"
//	@Param        body        body  prototypes.FilePayload   true  "file metadata"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/prototypes/{project_id}/files [post]
func AddFileHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("project_id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("project_id"))
		}
		var req FilePayload
		if err := c.BodyParser(&req); err != nil || req.URL == "" || req.Filename == "" {
			return kit.BadRequest("url and filename required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		proj, err := ownedProjectWithPrototype(ctx, client, uid, projID)
		if err != nil {
			return err
		}

		file := schema.PrototypeFile{URL: req.URL, Filename: req.Filename, OriginalName: req.OriginalName, Size: req.Size}
		var proto *ent.Prototype
		if existing := proj.Edges.Prototype; existing != nil {
			proto, err = client.Prototype.UpdateOneID(existing.ID).
				SetFiles(append(existing.Files, file)).
				Save(ctx)
			if err != nil {
				return kit.InternalError("update prototype failed", err.Error())
			}
		} else {
			proto, err = client.Prototype.Create().SetFiles([]schema.PrototypeFile{file}).Save(ctx)
			if err != nil {
				return kit.InternalError("create prototype failed", err.Error())
			}
			if err := client.Project.UpdateOneID(projID).SetPrototype(proto).Exec(ctx); err != nil {
				return kit.InternalError("attach prototype failed", err.Error())
			}
		}
		return kit.OK(c, proto)
	}
}

// DeleteFileHandler removes a file pointer by its index in the files list.
//
//	@Summary      Delete prototype file
//	@Tags         prototypes
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        project_id  path  string  true  "Project UUID"
//	@Param        index       path  int     true  "file index"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/prototypes/{project_id}/files/{index} [delete]
func DeleteFileHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		projID, err := uuid.Parse(c.Params("project_id"))
		if err != nil {
			return kit.BadRequest("invalid project id", c.Params("project_id"))
		}
		idx, err := c.ParamsInt("index")
		if err != nil || idx < 0 {
			return kit.BadRequest("invalid file index", c.Params("index"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		proj, err := ownedProjectWithPrototype(ctx, client, uid, projID)
		if err != nil {
			return err
		}
		proto := proj.Edges.Prototype
		if proto == nil {
			return kit.NotFound("prototype not found")
		}
		if idx >= len(proto.Files) {
			return kit.NotFound("file index out of range")
		}

		files := append(proto.Files[:idx:idx], proto.Files[idx+1:]...)
		updated, err := client.Prototype.UpdateOneID(proto.ID).SetFiles(files).Save(ctx)
		if err != nil {
			return kit.InternalError("update prototype failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}
