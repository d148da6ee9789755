package identity

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
)

// NormalizePath lowercases p, forces a leading slash and drops trailing ones.
// The query string, if any, is ignored.
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.ToLower(strings.TrimSpace(p))
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// CanAccess reports whether any route grants path. A route grants its own
// path and every path below it, segment by segment: "/customer" grants
// "/customer/42" but not "/customers". The root route grants everything.
func CanAccess(routes []string, path string) bool {
	path = NormalizePath(path)
	for _, r := range routes {
		r = NormalizePath(r)
		if r == "/" || path == r || strings.HasPrefix(path, r+"/") {
			return true
		}
	}
	return false
}

// NormalizeRoutes normalizes and deduplicates a route list
func NormalizeRoutes(routes []string) ([]string, error) {
	seen := make(map[string]struct{}, len(routes))
	out := make([]string, 0, len(routes))
	for _, r := range routes {
		if strings.TrimSpace(r) == "" {
			return nil, shared.NewDomainError("INVALID_ROUTE", "Allowed routes cannot contain empty entries")
		}
		n := NormalizePath(r)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}
