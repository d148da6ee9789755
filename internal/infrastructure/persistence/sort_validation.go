package persistence

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ErrInvalidSortKey is returned when a listing asks to sort by a column that
// is not whitelisted for the resource.
var ErrInvalidSortKey = shared.NewDomainError("INVALID_SORT_KEY", "Invalid sort key")

// ErrInvalidSortValue is returned for a sort direction other than asc/desc.
var ErrInvalidSortValue = shared.NewDomainError("INVALID_SORT_VALUE", "Sort value must be asc or desc")

// SortFields maps the sort keys accepted by the API to table columns. Keys
// are matched case-insensitively with underscores ignored, so "createdAt"
// and "created_at" both select created_at.
type SortFields map[string]string

func newSortFields(columns ...string) SortFields {
	fields := SortFields{}
	for _, c := range append([]string{"created_at", "updated_at"}, columns...) {
		fields[sortLookupKey(c)] = c
	}
	return fields
}

func sortLookupKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "_", ""))
}

// Column resolves an API sort key. An empty key selects defaultColumn.
func (f SortFields) Column(key, defaultColumn string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return defaultColumn, nil
	}
	col, ok := f[sortLookupKey(key)]
	if !ok {
		return "", shared.NewDomainError(ErrInvalidSortKey.Code, "Invalid sort key: "+key)
	}
	return col, nil
}

// ValidateSortOrder validates the sort direction and returns it as ASC or DESC.
// An empty direction defaults to DESC.
func ValidateSortOrder(orderDir string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(orderDir)) {
	case "", shared.SortDesc:
		return "DESC", nil
	case shared.SortAsc:
		return "ASC", nil
	default:
		return "", ErrInvalidSortValue
	}
}

// paginate applies ordering and paging to query. The filter is expected to
// be normalized.
func paginate(query *gorm.DB, filter shared.Filter, fields SortFields, defaultColumn string) (*gorm.DB, error) {
	col, err := fields.Column(filter.SortKey, defaultColumn)
	if err != nil {
		return nil, err
	}
	dir, err := ValidateSortOrder(filter.SortValue)
	if err != nil {
		return nil, err
	}
	query = query.Order(col + " " + dir)
	if col != "id" {
		query = query.Order("id " + dir)
	}
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit)
	}
	return query, nil
}

// applySearch matches search against any of columns, case-insensitively.
// LIKE wildcards in the input are escaped.
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	op := "LIKE"
	if query.Dialector != nil && query.Dialector.Name() == "postgres" {
		op = "ILIKE"
	} else {
		search = strings.ToLower(search)
	}
	pattern := "%" + strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(search) + "%"

	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		if op == "LIKE" {
			c = "LOWER(" + c + ")"
		}
		clauses[i] = c + " " + op + ` ? ESCAPE '\'`
		args[i] = pattern
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// Allowed sort keys per resource
var (
	CustomerSortFields     = newSortFields("name", "trade_name", "document", "email", "city", "state", "active")
	TransportSortFields    = newSortFields("name", "active")
	PrinterSortFields      = newSortFields("name", "manufacturer", "model", "colors", "customer_id")
	CurveSortFields        = newSortFields("name")
	ProfileSortFields      = newSortFields("name", "lineature", "dot_type", "printer_id")
	DieCutBlockSortFields  = newSortFields("code", "origin", "customer_id", "description")
	ServiceOrderSortFields = newSortFields("number", "status", "product_type", "price", "due_date", "customer_id", "finished_at")
	InvoiceSortFields      = newSortFields("number", "status", "total", "issue_date", "due_date", "customer_id")
	ChannelSortFields      = newSortFields("name", "active")
	NotificationSortFields = newSortFields("title", "read_at")
	UserSortFields         = newSortFields("name", "email", "role", "status", "last_login_at")
)
