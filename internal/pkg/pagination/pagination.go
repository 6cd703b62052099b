// Package pagination reads page/limit query parameters and wraps list results.
package pagination

import "github.com/gofiber/fiber/v2"

const (
	// DefaultLimit applies when limit is missing or not positive
	DefaultLimit = 50
	// MaxLimit caps a single page
	MaxLimit = 200
)

// Params is a resolved page request
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// Meta describes where a page sits in the full result
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Page is one page of T plus its metadata
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// GetParams reads ?page and ?limit; bad values fall back to the defaults
func GetParams(c *fiber.Ctx) Params {
	return NewParams(c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit))
}

// NewParams clamps page and limit into the accepted range
func NewParams(page, limit int) Params {
	page = max(page, 1)
	if limit < 1 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	return Params{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// GetMeta computes page counts for total items
func GetMeta(params Params, total int64) Meta {
	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}

// NewPage wraps items; a nil slice is rendered as []
func NewPage[T any](items []T, params Params, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Data: items, Meta: GetMeta(params, total)}
}
