// Package users provides profile handlers and the admin user listing.
package users

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/user"
	"sdg-innovation-api/internal/httpx/kit"
	"sdg-innovation-api/internal/httpx/mw"
)

// UpdateProfileRequest updates the caller's own profile.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// GetProfileHandler returns the caller's user record.
//
//	@Summary      Get my profile
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/users/me [get]
func GetProfileHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		u, err := client.User.Get(ctx, uid)
		if err != nil {
			return kit.NotFound("user not found")
		}
		return kit.OK(c, u)
	}
}

// UpdateProfileHandler updates the caller's own profile fields.
//
//	@Summary      Update my profile
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  users.UpdateProfileRequest  true  "profile payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/users/me [put]
func UpdateProfileHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var req UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.User.UpdateOneID(uid)
		if req.DisplayName != nil && strings.TrimSpace(*req.DisplayName) != "" {
			upd = upd.SetDisplayName(*req.DisplayName)
		}
		if req.Email != nil {
			upd = upd.SetEmail(*req.Email)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update profile failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// ListUsersHandler lists users. Admin only; the role gate sits in the router.
//
//	@Summary      List users
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        limit   query  int  false  "page size"  default(20)
//	@Param        offset  query  int  false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/admin/users [get]
func ListUsersHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		rows, err := client.User.Query().
			Order(ent.Desc(user.FieldCreatedAt)).
			Limit(pg.Limit + 1).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("query users failed", err.Error())
		}
		hasMore := len(rows) > pg.Limit
		if hasMore {
			rows = rows[:pg.Limit]
		}
		return kit.List(c, rows, kit.ListMeta(pg, len(rows), hasMore, nil))
	}
}
