package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
)

type SwaggerConfig struct {
	Enabled     bool
	RequireAuth bool
	// AllowedIPs takes addresses and CIDRs. Empty allows everyone.
	AllowedIPs []string
}

// allowList is a set of prefixes; a bare address is a full-length prefix
type allowList []netip.Prefix

// parseAllowList skips entries that are neither an address nor a CIDR
func parseAllowList(entries []string) allowList {
	var list allowList
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if p, err := netip.ParsePrefix(e); err == nil {
			list = append(list, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			list = append(list, netip.PrefixFrom(a.Unmap(), a.Unmap().BitLen()))
		}
	}
	return list
}

func (l allowList) allows(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range l {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// SwaggerProtection guards the docs route. A disabled config answers 404
// so the route looks absent. A configured list that parses to nothing
// denies everyone.
func SwaggerProtection(cfg SwaggerConfig, auth gin.HandlerFunc) gin.HandlerFunc {
	restricted := len(cfg.AllowedIPs) > 0
	list := parseAllowList(cfg.AllowedIPs)

	return func(c *gin.Context) {
		switch {
		case !cfg.Enabled:
			abortWithError(c, http.StatusNotFound, "ERR_NOT_FOUND", "API documentation is not available")
			return
		case restricted && !list.allows(c.ClientIP()):
			abortWithError(c, http.StatusForbidden, "ERR_FORBIDDEN", "Access to API documentation is restricted")
			return
		}
		if cfg.RequireAuth && auth != nil {
			if auth(c); c.IsAborted() {
				return
			}
		}
		c.Next()
	}
}
