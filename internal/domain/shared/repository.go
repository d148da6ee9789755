package shared

import (
	"strings"
)

// Listing defaults and bounds for paginated queries
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter represents query filter options.
// Field names follow the query parameters of the listing endpoints
// (page, limit, search, sortKey, sortValue).
type Filter struct {
	Page      int
	Limit     int
	SortKey   string
	SortValue string
	Search    string
	Filters   map[string]any
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortKey:   "created_at",
		SortValue: SortDesc,
		Filters:   make(map[string]any),
	}
}

// Normalize clamps paging values into range and lowercases the sort direction
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	f.SortValue = strings.ToLower(strings.TrimSpace(f.SortValue))
	if f.SortValue == "" {
		f.SortValue = SortDesc
	}
	f.Search = strings.TrimSpace(f.Search)
	if f.Filters == nil {
		f.Filters = make(map[string]any)
	}
	return f
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// With returns a copy of the filter with an extra key/value filter
func (f Filter) With(key string, value any) Filter {
	filters := make(map[string]any, len(f.Filters)+1)
	for k, v := range f.Filters {
		filters[k] = v
	}
	filters[key] = value
	f.Filters = filters
	return f
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	if pageSize < 1 {
		pageSize = DefaultLimit
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
