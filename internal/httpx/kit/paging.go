package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains pagination parameters from HTTP request
type PagingParams struct {
	Limit  int
	Offset int
	// Sort key string
	Sort string
	// Whether to compute total count
	WithTotal bool
}

func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{Limit: lo.Clamp(c.QueryInt("limit", 20), 1, 100)}
	p.Offset = c.QueryInt("offset", 0)
	if p.Offset < 0 {
		return p, BadRequest("invalid offset", p.Offset)
	}
	p.Sort = c.Query("sort", "")
	p.WithTotal = c.Query("with_total", "false") == "true"
	return p, nil
}

// ListMeta builds offset-mode page metadata from a fetched page. The caller
// fetches limit+1 rows and passes the trimmed count here.
func ListMeta(p PagingParams, count int, hasMore bool, total *int) PageMeta {
	meta := PageMeta{Limit: p.Limit, Offset: p.Offset, Count: count, Mode: "offset", HasMore: hasMore, Total: total}
	if hasMore {
		meta.NextOffset = lo.ToPtr(p.Offset + count)
	}
	return meta
}
