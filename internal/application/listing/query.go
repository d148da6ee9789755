// Package listing holds the paging, sorting and search parameters shared by
// every list endpoint.
package listing

import (
	"strings"
	"time"

	"github.com/flexo/backend/internal/domain/shared"
)

// Query is bound from the page, limit, search, sortKey and sortValue query
// parameters. Zero values fall back to the shared defaults.
type Query struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search    string `form:"search" binding:"max=200"`
	SortKey   string `form:"sortKey" binding:"max=64"`
	SortValue string `form:"sortValue" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Filter converts the query into a normalized domain filter
func (q Query) Filter() shared.Filter {
	return shared.Filter{
		Page:      q.Page,
		Limit:     q.Limit,
		Search:    q.Search,
		SortKey:   strings.TrimSpace(q.SortKey),
		SortValue: q.SortValue,
		Filters:   make(map[string]any),
	}.Normalize()
}

// Period is an optional created_at window given as from/to dates
// (YYYY-MM-DD). To is inclusive: the whole day is covered.
type Period struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Bounds parses the period. Missing ends are returned as nil.
func (p Period) Bounds() (from, to *time.Time, err error) {
	if p.From != "" {
		t, perr := time.ParseInLocation(time.DateOnly, p.From, time.Local)
		if perr != nil {
			return nil, nil, shared.NewDomainError("INVALID_PERIOD", "from must be a YYYY-MM-DD date")
		}
		from = &t
	}
	if p.To != "" {
		t, perr := time.ParseInLocation(time.DateOnly, p.To, time.Local)
		if perr != nil {
			return nil, nil, shared.NewDomainError("INVALID_PERIOD", "to must be a YYYY-MM-DD date")
		}
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, shared.NewDomainError("INVALID_PERIOD", "from must not be after to")
	}
	return from, to, nil
}

// Apply adds the period bounds to filter under fromKey and toKey
func (p Period) Apply(filter shared.Filter, fromKey, toKey string) (shared.Filter, error) {
	from, to, err := p.Bounds()
	if err != nil {
		return filter, err
	}
	if from != nil {
		filter = filter.With(fromKey, *from)
	}
	if to != nil {
		filter = filter.With(toKey, *to)
	}
	return filter, nil
}
