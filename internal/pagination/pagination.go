package pagination

import "strconv"

const (
	DefaultLimit  = 10
	DefaultSortBy = "created_at"
)

type Options struct {
	Page    int
	Limit   int
	SortBy  string
	OrderBy string
}

type Meta struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int64 `json:"totalPages"`
}

// Normalize parses raw query values and falls back to page 1, limit 10,
// sorted by creation time descending.
func Normalize(page, limit, sortBy, orderBy string) Options {
	o := Options{
		Page:    atoiOr(page, 1),
		Limit:   atoiOr(limit, DefaultLimit),
		SortBy:  sortBy,
		OrderBy: orderBy,
	}
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.SortBy == "" {
		o.SortBy = DefaultSortBy
	}
	if o.OrderBy != "asc" {
		o.OrderBy = "desc"
	}
	return o
}

func (o Options) Offset() int {
	return (o.Page - 1) * o.Limit
}

func NewMeta(o Options, total int64) Meta {
	pages := total / int64(o.Limit)
	if total%int64(o.Limit) != 0 {
		pages++
	}
	return Meta{
		Page:         o.Page,
		Limit:        o.Limit,
		TotalRecords: total,
		TotalPages:   pages,
	}
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
